package app_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/startuphub-br/startuphub-api/internal/adapter/database"
	handlers "github.com/startuphub-br/startuphub-api/internal/adapter/http"
	"github.com/startuphub-br/startuphub-api/internal/app"
	"github.com/startuphub-br/startuphub-api/internal/app/auth"
	"github.com/startuphub-br/startuphub-api/internal/app/community"
	"github.com/startuphub-br/startuphub-api/internal/app/event"
	"github.com/startuphub-br/startuphub-api/internal/infra/middleware"
	"github.com/startuphub-br/startuphub-api/internal/testutils"
	"github.com/startuphub-br/startuphub-api/pkg/cache"
	"github.com/startuphub-br/startuphub-api/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gormlogger "gorm.io/gorm/logger"
)

const testSecret = "um-segredo-de-teste-com-mais-de-32-bytes"

// newTestApp monta a aplicação completa sobre um sqlite em memória
func newTestApp(t *testing.T, name string) *gin.Engine {
	t.Helper()

	logger := testutils.TestLogger(t)
	ctx, cancel := testutils.ContextWithTimeout(t)
	defer cancel()

	db, err := database.NewDatabase(ctx, database.Config{
		Driver:       "sqlite",
		DSN:          fmt.Sprintf("file:%s?mode=memory&cache=shared", name),
		MaxIdleConns: 1,
		MaxOpenConns: 1,
		LogLevel:     gormlogger.Silent,
	}, logger)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	appCache := &cache.NoOpCache{}

	userRepo := database.NewUserRepository(db.DB())
	eventRepo := database.NewEventRepository(db.DB())
	communityRepo := database.NewCommunityRepository(db.DB())

	km, err := security.NewKeyManager(testSecret, logger)
	require.NoError(t, err)

	authService := auth.NewService(km, userRepo, 8*time.Hour, nil, logger)
	eventService := event.NewService(eventRepo, eventRepo, appCache, nil, logger)
	communityService := community.NewService(communityRepo, logger)

	application := &app.App{
		Logger:           logger,
		DB:               db,
		Cache:            appCache,
		Middleware:       middleware.NewMiddleware(logger, authService, nil),
		AuthHandler:      handlers.NewAuthHandler(authService, logger),
		EventHandler:     handlers.NewEventHandler(eventService, logger),
		CommunityHandler: handlers.NewCommunityHandler(communityService, logger),
		HealthChecker:    handlers.NewHealthChecker(db, appCache, logger),
	}

	gin.SetMode(gin.TestMode)
	router := gin.New()
	application.RegisterRoutes(router)
	return router
}

// TestFullFlow percorre o cenário completo: registro, login, criação de
// evento e check-in idempotente
func TestFullFlow(t *testing.T) {
	router := newTestApp(t, "fullflow")

	// Registro
	resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "a@b.com",
		"password": "pw",
		"name":     "A",
		"role":     "member",
	}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var registered struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}
	testutils.ParseResponse(t, resp, &registered)
	require.NotEmpty(t, registered.ID)
	assert.Equal(t, "a@b.com", registered.Email)

	// Email duplicado
	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "a@b.com",
		"password": "outra",
		"name":     "B",
	}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)

	// Login
	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "a@b.com",
		"password": "pw",
	}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var login struct {
		Token string `json:"token"`
		User  struct {
			ID    string `json:"id"`
			Email string `json:"email"`
			Role  string `json:"role"`
		} `json:"user"`
	}
	testutils.ParseResponse(t, resp, &login)
	require.NotEmpty(t, login.Token)
	assert.Equal(t, registered.ID, login.User.ID)

	// O hash de senha nunca aparece na resposta
	var raw struct {
		User map[string]any `json:"user"`
	}
	testutils.ParseResponse(t, resp, &raw)
	assert.NotContains(t, raw.User, "password")

	authHeaders := testutils.BearerHeader(login.Token)

	// Criação de evento
	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/eventos", gin.H{
		"title":       "Demo Day",
		"description": "Apresentação das startups",
		"date":        "2026-09-01",
		"location":    "Auditório",
	}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var created struct {
		Evento struct {
			ID     string `json:"id"`
			Title  string `json:"title"`
			QRCode string `json:"qrCode"`
		} `json:"evento"`
		QRDataURL string `json:"qrDataUrl"`
	}
	testutils.ParseResponse(t, resp, &created)
	require.NotEmpty(t, created.Evento.ID)
	require.NotEmpty(t, created.Evento.QRCode)
	assert.Contains(t, created.QRDataURL, "data:image/png;base64,")

	// Listagem de eventos
	resp = testutils.MakeRequest(t, router, http.MethodGet, "/api/eventos", nil, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var events []struct {
		ID string `json:"id"`
	}
	testutils.ParseResponse(t, resp, &events)
	require.Len(t, events, 1)
	assert.Equal(t, created.Evento.ID, events[0].ID)

	// Check-in com o QR retornado
	checkinPath := fmt.Sprintf("/api/eventos/%s/checkin", created.Evento.ID)
	resp = testutils.MakeRequest(t, router, http.MethodPost, checkinPath, gin.H{
		"qrText": created.Evento.QRCode,
		"userId": registered.ID,
	}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var attendance struct {
		ID      string `json:"id"`
		EventID string `json:"eventoId"`
		UserID  string `json:"userId"`
	}
	testutils.ParseResponse(t, resp, &attendance)
	require.NotEmpty(t, attendance.ID)
	assert.Equal(t, created.Evento.ID, attendance.EventID)
	assert.Equal(t, registered.ID, attendance.UserID)

	// Repetir o check-in retorna a mesma presença, sem duplicar
	resp = testutils.MakeRequest(t, router, http.MethodPost, checkinPath, gin.H{
		"qrText": created.Evento.QRCode,
		"userId": registered.ID,
	}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var repeated struct {
		ID string `json:"id"`
	}
	testutils.ParseResponse(t, resp, &repeated)
	assert.Equal(t, attendance.ID, repeated.ID)
}

func TestCheckInFailures(t *testing.T) {
	router := newTestApp(t, "checkinfail")

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "c@d.com",
		"password": "pw",
		"name":     "C",
	}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var registered struct {
		ID string `json:"id"`
	}
	testutils.ParseResponse(t, resp, &registered)

	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "c@d.com",
		"password": "pw",
	}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var login struct {
		Token string `json:"token"`
	}
	testutils.ParseResponse(t, resp, &login)
	authHeaders := testutils.BearerHeader(login.Token)

	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/eventos", gin.H{
		"title": "Pitch Night",
		"date":  "2026-10-15",
	}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var created struct {
		Evento struct {
			ID     string `json:"id"`
			QRCode string `json:"qrCode"`
		} `json:"evento"`
	}
	testutils.ParseResponse(t, resp, &created)

	// Segredo incorreto
	resp = testutils.MakeRequest(t, router, http.MethodPost,
		fmt.Sprintf("/api/eventos/%s/checkin", created.Evento.ID), gin.H{
			"qrText": "evento:pitch-night:falsificado",
			"userId": registered.ID,
		}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusBadRequest)
	assert.Contains(t, resp.Body.String(), "QR inválido")

	// Evento inexistente
	resp = testutils.MakeRequest(t, router, http.MethodPost,
		"/api/eventos/nao-existe/checkin", gin.H{
			"qrText": created.Evento.QRCode,
			"userId": registered.ID,
		}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
}

func TestAuthGate(t *testing.T) {
	router := newTestApp(t, "authgate")

	// Sem header
	resp := testutils.MakeRequest(t, router, http.MethodGet, "/api/eventos", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)
	assert.Contains(t, resp.Body.String(), "Token ausente")

	// Header sem prefixo Bearer
	resp = testutils.MakeRequest(t, router, http.MethodGet, "/api/eventos", nil,
		map[string]string{"Authorization": "abc"})
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)

	// Token inválido
	resp = testutils.MakeRequest(t, router, http.MethodGet, "/api/eventos", nil,
		testutils.BearerHeader("token-falso"))
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)
	assert.Contains(t, resp.Body.String(), "Token inválido")

	// Login com credenciais desconhecidas
	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "ninguem@x.com",
		"password": "pw",
	}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusUnauthorized)
}

func TestCommunityEndpoints(t *testing.T) {
	router := newTestApp(t, "communityflow")

	resp := testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/register", gin.H{
		"email":    "m@n.com",
		"password": "pw",
		"name":     "M",
		"role":     "admin",
	}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/auth/login", gin.H{
		"email":    "m@n.com",
		"password": "pw",
	}, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var login struct {
		Token string `json:"token"`
	}
	testutils.ParseResponse(t, resp, &login)
	authHeaders := testutils.BearerHeader(login.Token)

	// Mentor
	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/mentores", gin.H{
		"name":      "Mentora X",
		"expertise": "Vendas",
	}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var mentor struct {
		ID string `json:"id"`
	}
	testutils.ParseResponse(t, resp, &mentor)

	// Startup vinculada ao mentor
	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/startups", gin.H{
		"name":        "Acme",
		"description": "Logística",
		"mentorId":    mentor.ID,
	}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var startup struct {
		ID string `json:"id"`
	}
	testutils.ParseResponse(t, resp, &startup)

	// Mentoria
	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/mentorias", gin.H{
		"startupId": startup.ID,
		"mentorId":  mentor.ID,
	}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	// Listagem inclui startup e mentor
	resp = testutils.MakeRequest(t, router, http.MethodGet, "/api/mentorias", nil, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)

	var mentorships []struct {
		ID      string `json:"id"`
		Startup struct {
			Name string `json:"name"`
		} `json:"startup"`
		Mentor struct {
			Name string `json:"name"`
		} `json:"mentor"`
	}
	testutils.ParseResponse(t, resp, &mentorships)
	require.Len(t, mentorships, 1)
	assert.Equal(t, "Acme", mentorships[0].Startup.Name)
	assert.Equal(t, "Mentora X", mentorships[0].Mentor.Name)

	// Mentoria com startup inexistente
	resp = testutils.MakeRequest(t, router, http.MethodPost, "/api/mentorias", gin.H{
		"startupId": "fantasma",
		"mentorId":  mentor.ID,
	}, authHeaders)
	testutils.RequireHTTPStatus(t, resp, http.StatusNotFound)
}

func TestHealthEndpoint(t *testing.T) {
	router := newTestApp(t, "healthcheck")

	resp := testutils.MakeRequest(t, router, http.MethodGet, "/health", nil, nil)
	testutils.RequireHTTPStatus(t, resp, http.StatusOK)
	assert.Contains(t, resp.Body.String(), `"status":"ok"`)
}
