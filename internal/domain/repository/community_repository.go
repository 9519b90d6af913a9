package repository

import (
	"context"
	"errors"

	"github.com/startuphub-br/startuphub-api/internal/domain/model"
)

var (
	ErrStartupNotFound = errors.New("startup não encontrada")
	ErrMentorNotFound  = errors.New("mentor não encontrado")
)

// CommunityRepository define a interface para startups, mentores e mentorias
type CommunityRepository interface {
	// GetStartups retorna todas as startups com seus mentores
	GetStartups(ctx context.Context) ([]*model.StartupEntity, error)

	// GetStartupByID busca uma startup pelo id
	GetStartupByID(ctx context.Context, id string) (*model.StartupEntity, error)

	// CreateStartup persiste uma nova startup
	CreateStartup(ctx context.Context, startup *model.StartupEntity) error

	// GetMentors retorna todos os mentores
	GetMentors(ctx context.Context) ([]*model.MentorEntity, error)

	// GetMentorByID busca um mentor pelo id
	GetMentorByID(ctx context.Context, id string) (*model.MentorEntity, error)

	// CreateMentor persiste um novo mentor
	CreateMentor(ctx context.Context, mentor *model.MentorEntity) error

	// GetMentorships retorna todas as mentorias com startup e mentor
	GetMentorships(ctx context.Context) ([]*model.MentorshipEntity, error)

	// CreateMentorship persiste um novo vínculo de mentoria
	CreateMentorship(ctx context.Context, mentorship *model.MentorshipEntity) error
}
