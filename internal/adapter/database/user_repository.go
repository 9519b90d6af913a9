package database

import (
	"context"
	"errors"
	"strings"

	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/startuphub-br/startuphub-api/internal/domain/repository"
	"gorm.io/gorm"
)

// UserRepository implementa repository.UserRepository sobre GORM
type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

// CreateUser insere um novo usuário. Violação do índice único de email
// é mapeada para repository.ErrUserExists.
func (r *UserRepository) CreateUser(ctx context.Context, user *model.UserEntity) error {
	if err := r.db.WithContext(ctx).Create(user).Error; err != nil {
		if isUniqueViolation(err) {
			return repository.ErrUserExists
		}
		return err
	}
	return nil
}

// GetUserByEmail busca um usuário pelo email
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*model.UserEntity, error) {
	var user model.UserEntity
	if err := r.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// GetUserByID busca um usuário pelo id
func (r *UserRepository) GetUserByID(ctx context.Context, id string) (*model.UserEntity, error) {
	var user model.UserEntity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

// isUniqueViolation detecta violação de restrição única nos três
// dialetos suportados (sqlite, mysql, postgres)
func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") || // sqlite
		strings.Contains(msg, "Duplicate entry") || // mysql
		strings.Contains(msg, "duplicate key value") // postgres
}
