package mocks

import (
	"context"

	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockCommunityRepository é um mock para repository.CommunityRepository
type MockCommunityRepository struct {
	mock.Mock
}

func (m *MockCommunityRepository) GetStartups(ctx context.Context) ([]*model.StartupEntity, error) {
	args := m.Called(ctx)
	if startups := args.Get(0); startups != nil {
		return startups.([]*model.StartupEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommunityRepository) GetStartupByID(ctx context.Context, id string) (*model.StartupEntity, error) {
	args := m.Called(ctx, id)
	if startup := args.Get(0); startup != nil {
		return startup.(*model.StartupEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommunityRepository) CreateStartup(ctx context.Context, startup *model.StartupEntity) error {
	args := m.Called(ctx, startup)
	return args.Error(0)
}

func (m *MockCommunityRepository) GetMentors(ctx context.Context) ([]*model.MentorEntity, error) {
	args := m.Called(ctx)
	if mentors := args.Get(0); mentors != nil {
		return mentors.([]*model.MentorEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommunityRepository) GetMentorByID(ctx context.Context, id string) (*model.MentorEntity, error) {
	args := m.Called(ctx, id)
	if mentor := args.Get(0); mentor != nil {
		return mentor.(*model.MentorEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommunityRepository) CreateMentor(ctx context.Context, mentor *model.MentorEntity) error {
	args := m.Called(ctx, mentor)
	return args.Error(0)
}

func (m *MockCommunityRepository) GetMentorships(ctx context.Context) ([]*model.MentorshipEntity, error) {
	args := m.Called(ctx)
	if mentorships := args.Get(0); mentorships != nil {
		return mentorships.([]*model.MentorshipEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockCommunityRepository) CreateMentorship(ctx context.Context, mentorship *model.MentorshipEntity) error {
	args := m.Called(ctx, mentorship)
	return args.Error(0)
}
