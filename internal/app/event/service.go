package event

import (
	"context"
	"crypto/rand"
	"crypto/subtle"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/startuphub-br/startuphub-api/internal/domain/repository"
	"github.com/startuphub-br/startuphub-api/internal/infra/metrics"
	"github.com/startuphub-br/startuphub-api/pkg/cache"
	apperrors "github.com/startuphub-br/startuphub-api/pkg/errors"
	"github.com/startuphub-br/startuphub-api/pkg/qrcode"
	"go.uber.org/zap"
)

const (
	eventsCacheKey = "eventos"
	eventsCacheTTL = 1 * time.Minute
)

// Service gerencia eventos e o fluxo de check-in
type Service struct {
	events      repository.EventRepository
	attendances repository.AttendanceRepository
	cache       cache.Cache
	metrics     *metrics.APIMetrics
	logger      *zap.Logger
}

// NewService cria um novo serviço de eventos
func NewService(events repository.EventRepository, attendances repository.AttendanceRepository, c cache.Cache, apiMetrics *metrics.APIMetrics, logger *zap.Logger) *Service {
	return &Service{
		events:      events,
		attendances: attendances,
		cache:       c,
		metrics:     apiMetrics,
		logger:      logger,
	}
}

// CreateInput são os dados de criação de um evento
type CreateInput struct {
	Title       string
	Description string
	Date        time.Time
	Location    string
}

// Create gera o segredo de check-in, persiste o evento e retorna o evento
// junto com o QR code renderizado como data URL
func (s *Service) Create(ctx context.Context, in CreateInput) (*model.EventEntity, string, error) {
	if strings.TrimSpace(in.Title) == "" {
		return nil, "", apperrors.Validation("Título é obrigatório")
	}
	if in.Date.IsZero() {
		return nil, "", apperrors.Validation("Data inválida")
	}

	secret, err := newCheckInSecret(in.Title)
	if err != nil {
		s.logger.Error("falha ao gerar segredo de check-in", zap.Error(err))
		return nil, "", apperrors.InternalServer("", err)
	}

	ev := &model.EventEntity{
		ID:          uuid.New().String(),
		Title:       in.Title,
		Description: in.Description,
		Date:        in.Date,
		Location:    in.Location,
		QRCode:      secret,
	}

	if err := s.events.CreateEvent(ctx, ev); err != nil {
		s.logger.Error("falha ao criar evento", zap.Error(err))
		return nil, "", apperrors.InternalServer("", err)
	}

	if err := s.cache.Delete(ctx, eventsCacheKey); err != nil {
		s.logger.Warn("falha ao invalidar cache de eventos", zap.Error(err))
	}

	qrDataURL, err := qrcode.DataURL(secret)
	if err != nil {
		s.logger.Error("falha ao renderizar QR code", zap.String("event_id", ev.ID), zap.Error(err))
		return nil, "", apperrors.InternalServer("", err)
	}

	s.logger.Info("evento criado", zap.String("event_id", ev.ID), zap.String("title", ev.Title))
	return ev, qrDataURL, nil
}

// List retorna todos os eventos, com cache de curta duração
func (s *Service) List(ctx context.Context) ([]*model.EventEntity, error) {
	var events []*model.EventEntity

	found, err := s.cache.Get(ctx, eventsCacheKey, &events)
	if err != nil {
		s.logger.Warn("falha ao buscar eventos do cache", zap.Error(err))
	} else if found {
		return events, nil
	}

	events, err = s.events.GetEvents(ctx)
	if err != nil {
		s.logger.Error("falha ao listar eventos", zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}

	if err := s.cache.Set(ctx, eventsCacheKey, events, eventsCacheTTL); err != nil {
		s.logger.Warn("falha ao armazenar eventos no cache", zap.Error(err))
	}

	return events, nil
}

// CheckIn valida o segredo apresentado contra o evento e registra a
// presença. Repetir o check-in do mesmo usuário no mesmo evento retorna
// a presença já registrada, sem criar duplicata.
func (s *Service) CheckIn(ctx context.Context, eventID, presentedSecret, userID string) (*model.AttendanceEntity, error) {
	ev, err := s.events.GetEventByID(ctx, eventID)
	if err != nil {
		if errors.Is(err, repository.ErrEventNotFound) {
			s.recordCheckInMetric("event_not_found")
			return nil, apperrors.NotFound("Evento")
		}
		s.logger.Error("falha ao buscar evento", zap.String("event_id", eventID), zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}

	if subtle.ConstantTimeCompare([]byte(presentedSecret), []byte(ev.QRCode)) != 1 {
		s.logger.Warn("check-in com segredo incorreto",
			zap.String("event_id", eventID),
			zap.String("user_id", userID))
		s.recordCheckInMetric("invalid_secret")
		return nil, apperrors.InvalidCheckIn()
	}

	attendance := &model.AttendanceEntity{
		ID:      uuid.New().String(),
		EventID: ev.ID,
		UserID:  userID,
	}

	recorded, created, err := s.attendances.RecordAttendance(ctx, attendance)
	if err != nil {
		s.logger.Error("falha ao registrar presença",
			zap.String("event_id", eventID),
			zap.String("user_id", userID),
			zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}

	if created {
		s.recordCheckInMetric("recorded")
		s.logger.Info("presença registrada",
			zap.String("event_id", eventID),
			zap.String("user_id", userID))
	} else {
		s.recordCheckInMetric("duplicate")
	}

	return recorded, nil
}

func (s *Service) recordCheckInMetric(result string) {
	if s.metrics != nil {
		s.metrics.CheckInAttempt(result)
	}
}

// newCheckInSecret monta o segredo de check-in no formato
// evento:<slug-do-título>:<hex aleatório de 128 bits>
func newCheckInSecret(title string) (string, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return fmt.Sprintf("evento:%s:%s", slugify(title), hex.EncodeToString(buf)), nil
}

// slugify reduz o título a letras minúsculas, dígitos e hífens
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(title) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
