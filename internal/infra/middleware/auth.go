package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/startuphub-br/startuphub-api/internal/app/auth"
	"github.com/startuphub-br/startuphub-api/pkg/security"
	"go.uber.org/zap"
)

// identityKey é a chave do contexto onde as claims verificadas são armazenadas
const identityKey = "identity"

// AuthMiddleware protege rotas exigindo um token de sessão válido
type AuthMiddleware struct {
	authService *auth.Service
	logger      *zap.Logger
}

// NewAuthMiddleware cria uma nova instância do middleware de autenticação
func NewAuthMiddleware(authService *auth.Service, logger *zap.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

// Authenticate extrai o bearer token do header Authorization, verifica a
// assinatura e expiração, e armazena as claims no contexto da requisição
func (m *AuthMiddleware) Authenticate(c *gin.Context) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token ausente"})
		return
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}

	claims, err := m.authService.ValidateToken(tokenString)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Token inválido"})
		return
	}

	c.Set(identityKey, claims)
	c.Next()
}

// CurrentClaims retorna as claims de identidade colocadas no contexto pelo
// Authenticate. O booleano indica se a requisição foi autenticada.
func CurrentClaims(c *gin.Context) (*security.Claims, bool) {
	value, exists := c.Get(identityKey)
	if !exists {
		return nil, false
	}
	claims, ok := value.(*security.Claims)
	return claims, ok
}
