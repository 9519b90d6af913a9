package middleware

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/startuphub-br/startuphub-api/internal/app/auth"
	"github.com/startuphub-br/startuphub-api/internal/infra/metrics"
	"go.uber.org/zap"
)

// Middleware contém todos os middlewares da aplicação
type Middleware struct {
	logger         *zap.Logger
	authMiddleware *AuthMiddleware
	metrics        *metrics.APIMetrics
}

// NewMiddleware cria um novo conjunto de middlewares
func NewMiddleware(logger *zap.Logger, authService *auth.Service, apiMetrics *metrics.APIMetrics) *Middleware {
	return &Middleware{
		logger:         logger,
		authMiddleware: NewAuthMiddleware(authService, logger),
		metrics:        apiMetrics,
	}
}

// Authenticate middleware para autenticação de usuários
func (m *Middleware) Authenticate(c *gin.Context) {
	m.authMiddleware.Authenticate(c)
}

// Logger registra cada requisição com método, caminho, status e duração
func (m *Middleware) Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		m.logger.Info("requisição processada",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("duration", time.Since(start)),
		)
	}
}

// Recovery recupera de pânicos e responde 500 sem derrubar o processo
func (m *Middleware) Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				m.logger.Error("recuperado de pânico",
					zap.Any("error", err),
					zap.String("path", c.Request.URL.Path),
					zap.String("method", c.Request.Method),
					zap.ByteString("stack", debug.Stack()),
				)

				c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
					"error": "Erro interno do servidor",
				})
			}
		}()

		c.Next()
	}
}

// Metrics registra métricas de requisição no Prometheus
func (m *Middleware) Metrics() gin.HandlerFunc {
	return func(c *gin.Context) {
		if m.metrics == nil {
			c.Next()
			return
		}

		path := c.FullPath()
		if path == "" {
			path = "unknown"
		}
		method := c.Request.Method

		m.metrics.RequestStarted(path, method)
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		m.metrics.RequestCompleted(path, method, strconv.Itoa(status), time.Since(start))

		if status >= 400 {
			errorType := "client_error"
			if status >= 500 {
				errorType = "server_error"
			}
			m.metrics.RequestError(path, method, errorType)
		}
	}
}
