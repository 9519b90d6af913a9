package auth_test

import (
	"testing"
	"time"

	"github.com/startuphub-br/startuphub-api/internal/app/auth"
	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/startuphub-br/startuphub-api/internal/domain/repository"
	"github.com/startuphub-br/startuphub-api/internal/mocks"
	"github.com/startuphub-br/startuphub-api/internal/testutils"
	apperrors "github.com/startuphub-br/startuphub-api/pkg/errors"
	"github.com/startuphub-br/startuphub-api/pkg/security"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "um-segredo-de-teste-com-mais-de-32-bytes"

func newService(t *testing.T, repo *mocks.MockUserRepository) *auth.Service {
	logger := testutils.TestLogger(t)
	km, err := security.NewKeyManager(testSecret, logger)
	require.NoError(t, err)
	return auth.NewService(km, repo, 8*time.Hour, nil, logger)
}

func TestService_Register(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newService(t, mockRepo)

		var stored *model.UserEntity
		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
			Run(func(args mock.Arguments) {
				stored = args.Get(1).(*model.UserEntity)
			}).
			Return(nil).Once()

		user, err := service.Register(ctx, auth.RegisterInput{
			Email:    "a@b.com",
			Password: "pw",
			Name:     "A",
			Role:     "member",
		})

		require.NoError(t, err)
		assert.Equal(t, "a@b.com", user.Email)
		assert.NotEmpty(t, user.ID)

		// A senha nunca é armazenada em claro
		require.NotNil(t, stored)
		assert.NotEqual(t, "pw", stored.Password)
		assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.Password), []byte("pw")))

		mockRepo.AssertExpectations(t)
	})

	t.Run("default role is member", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newService(t, mockRepo)

		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
			Return(nil).Once()

		user, err := service.Register(ctx, auth.RegisterInput{
			Email:    "b@c.com",
			Password: "pw",
			Name:     "B",
		})

		require.NoError(t, err)
		assert.Equal(t, model.RoleMember, user.Role)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newService(t, mockRepo)

		mockRepo.On("CreateUser", mock.Anything, mock.AnythingOfType("*model.UserEntity")).
			Return(repository.ErrUserExists).Once()

		user, err := service.Register(ctx, auth.RegisterInput{
			Email:    "a@b.com",
			Password: "pw",
			Name:     "A",
		})

		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrDuplicateEmail)
	})

	t.Run("validation errors", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newService(t, mockRepo)

		cases := []auth.RegisterInput{
			{Email: "", Password: "pw", Name: "A"},
			{Email: "a@b.com", Password: "", Name: "A"},
			{Email: "a@b.com", Password: "pw", Name: ""},
			{Email: "nao-e-email", Password: "pw", Name: "A"},
			{Email: "a@b.com", Password: "pw", Name: "A", Role: "superuser"},
		}

		for _, in := range cases {
			_, err := service.Register(ctx, in)
			assert.ErrorIs(t, err, apperrors.ErrValidation, "input: %+v", in)
		}

		mockRepo.AssertNotCalled(t, "CreateUser")
	})
}

func TestService_Login(t *testing.T) {
	hashed, err := bcrypt.GenerateFromPassword([]byte("pw"), bcrypt.DefaultCost)
	require.NoError(t, err)

	storedUser := &model.UserEntity{
		ID:       "user-1",
		Email:    "a@b.com",
		Password: string(hashed),
		Name:     "A",
		Role:     "member",
	}

	t.Run("success issues verifiable token", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newService(t, mockRepo)

		mockRepo.On("GetUserByEmail", mock.Anything, "a@b.com").
			Return(storedUser, nil).Once()

		token, user, err := service.Login(ctx, "a@b.com", "pw")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, "user-1", user.ID)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "user-1", claims.UserID)
		assert.Equal(t, "a@b.com", claims.Email)
		assert.Equal(t, "member", claims.Role)
	})

	t.Run("unknown email", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newService(t, mockRepo)

		mockRepo.On("GetUserByEmail", mock.Anything, "x@y.com").
			Return(nil, repository.ErrUserNotFound).Once()

		token, user, err := service.Login(ctx, "x@y.com", "pw")
		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})

	t.Run("wrong password", func(t *testing.T) {
		ctx, cancel := testutils.ContextWithTimeout(t)
		defer cancel()

		mockRepo := new(mocks.MockUserRepository)
		service := newService(t, mockRepo)

		mockRepo.On("GetUserByEmail", mock.Anything, "a@b.com").
			Return(storedUser, nil).Once()

		token, user, err := service.Login(ctx, "a@b.com", "errada")
		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
	})
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	mockRepo := new(mocks.MockUserRepository)
	service := newService(t, mockRepo)

	claims, err := service.ValidateToken("token-invalido")
	assert.Nil(t, claims)
	assert.ErrorIs(t, err, apperrors.ErrUnauthorized)
}
