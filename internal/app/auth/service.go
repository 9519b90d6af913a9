package auth

import (
	"context"
	"errors"
	"net/mail"
	"time"

	"github.com/google/uuid"
	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/startuphub-br/startuphub-api/internal/domain/repository"
	"github.com/startuphub-br/startuphub-api/internal/infra/metrics"
	apperrors "github.com/startuphub-br/startuphub-api/pkg/errors"
	"github.com/startuphub-br/startuphub-api/pkg/security"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

// Service gerencia registro, login e validação de tokens de sessão
type Service struct {
	keyManager *security.KeyManager
	userRepo   repository.UserRepository
	tokenTTL   time.Duration
	metrics    *metrics.APIMetrics
	logger     *zap.Logger
}

// NewService cria um novo serviço de autenticação
func NewService(keyManager *security.KeyManager, userRepo repository.UserRepository, tokenTTL time.Duration, apiMetrics *metrics.APIMetrics, logger *zap.Logger) *Service {
	return &Service{
		keyManager: keyManager,
		userRepo:   userRepo,
		tokenTTL:   tokenTTL,
		metrics:    apiMetrics,
		logger:     logger,
	}
}

// RegisterInput são os dados de registro de um novo usuário
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     string
}

// Register valida os dados, gera o hash da senha e cria o usuário.
// Email duplicado resulta em erro 400, detectado pela restrição única
// do banco.
func (s *Service) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if err := validateRegister(&in); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("falha ao gerar hash da senha", zap.Error(err))
		return nil, apperrors.InternalServer("Erro ao processar senha", err)
	}

	user := &model.UserEntity{
		ID:       uuid.New().String(),
		Email:    in.Email,
		Password: string(hashed),
		Name:     in.Name,
		Role:     in.Role,
	}

	if err := s.userRepo.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrUserExists) {
			s.logger.Warn("tentativa de registro com email já cadastrado", zap.String("email", in.Email))
			return nil, apperrors.DuplicateEmail()
		}
		s.logger.Error("falha ao criar usuário", zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}

	if s.metrics != nil {
		s.metrics.UserRegistered()
	}

	s.logger.Info("usuário registrado",
		zap.String("user_id", user.ID),
		zap.String("role", user.Role))

	return user.ToUser(), nil
}

// Login autentica um usuário e emite um token de sessão. Email desconhecido
// e senha incorreta produzem o mesmo erro para o cliente.
func (s *Service) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.userRepo.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			s.logger.Warn("login com email desconhecido", zap.String("email", email))
			return "", nil, apperrors.InvalidCredentials()
		}
		s.logger.Error("falha ao buscar usuário", zap.Error(err))
		return "", nil, apperrors.InternalServer("", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		s.logger.Warn("login com senha incorreta", zap.String("user_id", user.ID))
		return "", nil, apperrors.InvalidCredentials()
	}

	token, err := s.keyManager.GenerateToken(user.ID, user.Email, user.Role, s.tokenTTL)
	if err != nil {
		return "", nil, apperrors.InternalServer("Erro ao gerar token", err)
	}

	s.logger.Info("login bem-sucedido", zap.String("user_id", user.ID))
	return token, user.ToUser(), nil
}

// ValidateToken verifica um token de sessão e retorna as claims de identidade
func (s *Service) ValidateToken(tokenString string) (*security.Claims, error) {
	claims, err := s.keyManager.VerifyToken(tokenString)
	if err != nil {
		return nil, apperrors.Unauthorized("Token inválido")
	}
	return claims, nil
}

func validateRegister(in *RegisterInput) error {
	if in.Email == "" || in.Password == "" || in.Name == "" {
		return apperrors.Validation("Email, senha e nome são obrigatórios")
	}
	if _, err := mail.ParseAddress(in.Email); err != nil {
		return apperrors.Validation("Email inválido")
	}
	if in.Role == "" {
		in.Role = model.RoleMember
	}
	if !model.ValidRole(in.Role) {
		return apperrors.Validation("Papel de usuário inválido")
	}
	return nil
}
