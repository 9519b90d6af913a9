package repository

import (
	"context"
	"errors"

	"github.com/startuphub-br/startuphub-api/internal/domain/model"
)

var (
	ErrUserNotFound = errors.New("usuário não encontrado")
	ErrUserExists   = errors.New("usuário já existe")
)

// UserRepository define a interface para armazenamento de usuários
type UserRepository interface {
	// CreateUser insere um novo usuário; retorna ErrUserExists para email duplicado
	CreateUser(ctx context.Context, user *model.UserEntity) error

	// GetUserByEmail busca um usuário pelo email
	GetUserByEmail(ctx context.Context, email string) (*model.UserEntity, error)

	// GetUserByID busca um usuário pelo id
	GetUserByID(ctx context.Context, id string) (*model.UserEntity, error)
}
