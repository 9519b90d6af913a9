package mocks

import (
	"context"

	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/stretchr/testify/mock"
)

// MockEventRepository é um mock para repository.EventRepository e
// repository.AttendanceRepository
type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) CreateEvent(ctx context.Context, event *model.EventEntity) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) GetEvents(ctx context.Context) ([]*model.EventEntity, error) {
	args := m.Called(ctx)
	if events := args.Get(0); events != nil {
		return events.([]*model.EventEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) GetEventByID(ctx context.Context, id string) (*model.EventEntity, error) {
	args := m.Called(ctx, id)
	if event := args.Get(0); event != nil {
		return event.(*model.EventEntity), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockEventRepository) RecordAttendance(ctx context.Context, attendance *model.AttendanceEntity) (*model.AttendanceEntity, bool, error) {
	args := m.Called(ctx, attendance)
	if recorded := args.Get(0); recorded != nil {
		return recorded.(*model.AttendanceEntity), args.Bool(1), args.Error(2)
	}
	return nil, args.Bool(1), args.Error(2)
}
