package model

import "time"

// Papéis reconhecidos de usuário
const (
	RoleAdmin  = "admin"
	RoleMentor = "mentor"
	RoleMember = "member"
)

// ValidRole verifica se o papel informado é um dos papéis reconhecidos
func ValidRole(role string) bool {
	switch role {
	case RoleAdmin, RoleMentor, RoleMember:
		return true
	}
	return false
}

// User representa um usuário do sistema na API, sem o hash de senha
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
	Role  string `json:"role"`
}

// UserEntity é a representação de banco de dados de um usuário
type UserEntity struct {
	ID        string    `gorm:"primaryKey;size:36"`
	Email     string    `gorm:"uniqueIndex;not null;size:100"`
	Password  string    `gorm:"not null"`
	Name      string    `gorm:"not null;size:100"`
	Role      string    `gorm:"default:member;size:20"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// TableName define o nome da tabela
func (UserEntity) TableName() string {
	return "users"
}

// ToUser converte a entidade para a representação de API
func (e *UserEntity) ToUser() *User {
	return &User{
		ID:    e.ID,
		Email: e.Email,
		Name:  e.Name,
		Role:  e.Role,
	}
}
