package mocks

import (
	"context"

	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockUserRepository é um mock para repository.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *model.UserEntity) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByEmail(ctx context.Context, email string) (*model.UserEntity, error) {
	args := m.Called(ctx, email)
	if user := args.Get(0); user != nil {
		return user.(*model.UserEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*model.UserEntity, error) {
	args := m.Called(ctx, id)
	if user := args.Get(0); user != nil {
		return user.(*model.UserEntity), args.Error(1)
	}
	return nil, args.Error(1)
}
