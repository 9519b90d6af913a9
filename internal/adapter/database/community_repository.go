package database

import (
	"context"
	"errors"

	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/startuphub-br/startuphub-api/internal/domain/repository"
	"gorm.io/gorm"
)

// CommunityRepository implementa repository.CommunityRepository sobre GORM
type CommunityRepository struct {
	db *gorm.DB
}

func NewCommunityRepository(db *gorm.DB) *CommunityRepository {
	return &CommunityRepository{db: db}
}

// GetStartups retorna todas as startups com seus mentores pré-carregados
func (r *CommunityRepository) GetStartups(ctx context.Context) ([]*model.StartupEntity, error) {
	var startups []*model.StartupEntity
	if err := r.db.WithContext(ctx).Preload("Mentor").Find(&startups).Error; err != nil {
		return nil, err
	}
	return startups, nil
}

// GetStartupByID busca uma startup pelo id
func (r *CommunityRepository) GetStartupByID(ctx context.Context, id string) (*model.StartupEntity, error) {
	var startup model.StartupEntity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&startup).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrStartupNotFound
		}
		return nil, err
	}
	return &startup, nil
}

// CreateStartup persiste uma nova startup
func (r *CommunityRepository) CreateStartup(ctx context.Context, startup *model.StartupEntity) error {
	return r.db.WithContext(ctx).Create(startup).Error
}

// GetMentors retorna todos os mentores
func (r *CommunityRepository) GetMentors(ctx context.Context) ([]*model.MentorEntity, error) {
	var mentors []*model.MentorEntity
	if err := r.db.WithContext(ctx).Find(&mentors).Error; err != nil {
		return nil, err
	}
	return mentors, nil
}

// GetMentorByID busca um mentor pelo id
func (r *CommunityRepository) GetMentorByID(ctx context.Context, id string) (*model.MentorEntity, error) {
	var mentor model.MentorEntity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&mentor).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrMentorNotFound
		}
		return nil, err
	}
	return &mentor, nil
}

// CreateMentor persiste um novo mentor
func (r *CommunityRepository) CreateMentor(ctx context.Context, mentor *model.MentorEntity) error {
	return r.db.WithContext(ctx).Create(mentor).Error
}

// GetMentorships retorna todas as mentorias com startup e mentor pré-carregados
func (r *CommunityRepository) GetMentorships(ctx context.Context) ([]*model.MentorshipEntity, error) {
	var mentorships []*model.MentorshipEntity
	if err := r.db.WithContext(ctx).Preload("Startup").Preload("Mentor").Find(&mentorships).Error; err != nil {
		return nil, err
	}
	return mentorships, nil
}

// CreateMentorship persiste um novo vínculo de mentoria
func (r *CommunityRepository) CreateMentorship(ctx context.Context, mentorship *model.MentorshipEntity) error {
	return r.db.WithContext(ctx).Create(mentorship).Error
}
