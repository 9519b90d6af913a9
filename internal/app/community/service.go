package community

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/startuphub-br/startuphub-api/internal/domain/repository"
	apperrors "github.com/startuphub-br/startuphub-api/pkg/errors"
	"go.uber.org/zap"
)

// Service gerencia startups, mentores e mentorias
type Service struct {
	repo   repository.CommunityRepository
	logger *zap.Logger
}

func NewService(repo repository.CommunityRepository, logger *zap.Logger) *Service {
	return &Service{repo: repo, logger: logger}
}

// ListStartups retorna todas as startups com seus mentores
func (s *Service) ListStartups(ctx context.Context) ([]*model.StartupEntity, error) {
	startups, err := s.repo.GetStartups(ctx)
	if err != nil {
		s.logger.Error("falha ao listar startups", zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}
	return startups, nil
}

// StartupInput são os dados de criação de uma startup
type StartupInput struct {
	Name        string
	Description string
	MentorID    string
}

// CreateStartup valida e persiste uma nova startup. Quando um mentor é
// informado, sua existência é verificada antes da criação.
func (s *Service) CreateStartup(ctx context.Context, in StartupInput) (*model.StartupEntity, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.Validation("Nome é obrigatório")
	}

	startup := &model.StartupEntity{
		ID:          uuid.New().String(),
		Name:        in.Name,
		Description: in.Description,
	}

	if in.MentorID != "" {
		if _, err := s.repo.GetMentorByID(ctx, in.MentorID); err != nil {
			if errors.Is(err, repository.ErrMentorNotFound) {
				return nil, apperrors.NotFound("Mentor")
			}
			return nil, apperrors.InternalServer("", err)
		}
		startup.MentorID = &in.MentorID
	}

	if err := s.repo.CreateStartup(ctx, startup); err != nil {
		s.logger.Error("falha ao criar startup", zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}

	s.logger.Info("startup criada", zap.String("startup_id", startup.ID))
	return startup, nil
}

// ListMentors retorna todos os mentores
func (s *Service) ListMentors(ctx context.Context) ([]*model.MentorEntity, error) {
	mentors, err := s.repo.GetMentors(ctx)
	if err != nil {
		s.logger.Error("falha ao listar mentores", zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}
	return mentors, nil
}

// MentorInput são os dados de criação de um mentor
type MentorInput struct {
	Name      string
	Expertise string
}

// CreateMentor valida e persiste um novo mentor
func (s *Service) CreateMentor(ctx context.Context, in MentorInput) (*model.MentorEntity, error) {
	if strings.TrimSpace(in.Name) == "" {
		return nil, apperrors.Validation("Nome é obrigatório")
	}

	mentor := &model.MentorEntity{
		ID:        uuid.New().String(),
		Name:      in.Name,
		Expertise: in.Expertise,
	}

	if err := s.repo.CreateMentor(ctx, mentor); err != nil {
		s.logger.Error("falha ao criar mentor", zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}

	s.logger.Info("mentor criado", zap.String("mentor_id", mentor.ID))
	return mentor, nil
}

// ListMentorships retorna todas as mentorias com startup e mentor
func (s *Service) ListMentorships(ctx context.Context) ([]*model.MentorshipEntity, error) {
	mentorships, err := s.repo.GetMentorships(ctx)
	if err != nil {
		s.logger.Error("falha ao listar mentorias", zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}
	return mentorships, nil
}

// MentorshipInput são os dados de criação de um vínculo de mentoria
type MentorshipInput struct {
	StartupID string
	MentorID  string
}

// CreateMentorship verifica a integridade referencial do vínculo e o persiste
func (s *Service) CreateMentorship(ctx context.Context, in MentorshipInput) (*model.MentorshipEntity, error) {
	if in.StartupID == "" || in.MentorID == "" {
		return nil, apperrors.Validation("Startup e mentor são obrigatórios")
	}

	if _, err := s.repo.GetStartupByID(ctx, in.StartupID); err != nil {
		if errors.Is(err, repository.ErrStartupNotFound) {
			return nil, apperrors.NotFound("Startup")
		}
		return nil, apperrors.InternalServer("", err)
	}
	if _, err := s.repo.GetMentorByID(ctx, in.MentorID); err != nil {
		if errors.Is(err, repository.ErrMentorNotFound) {
			return nil, apperrors.NotFound("Mentor")
		}
		return nil, apperrors.InternalServer("", err)
	}

	mentorship := &model.MentorshipEntity{
		ID:        uuid.New().String(),
		StartupID: in.StartupID,
		MentorID:  in.MentorID,
	}

	if err := s.repo.CreateMentorship(ctx, mentorship); err != nil {
		s.logger.Error("falha ao criar mentoria", zap.Error(err))
		return nil, apperrors.InternalServer("", err)
	}

	s.logger.Info("mentoria criada",
		zap.String("mentorship_id", mentorship.ID),
		zap.String("startup_id", in.StartupID),
		zap.String("mentor_id", in.MentorID))
	return mentorship, nil
}
