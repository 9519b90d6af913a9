package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	apperrors "github.com/startuphub-br/startuphub-api/pkg/errors"
	"go.uber.org/zap"
)

// renderError converte erros da aplicação na resposta HTTP estruturada.
// Erros fora da taxonomia viram 500 genérico, sem vazar detalhes internos.
func renderError(c *gin.Context, logger *zap.Logger, err error) {
	var apiErr *apperrors.APIError
	if errors.As(err, &apiErr) {
		c.JSON(apiErr.Code, gin.H{"error": apiErr.Message})
		return
	}

	logger.Error("erro não mapeado", zap.Error(err))
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Erro interno do servidor"})
}
