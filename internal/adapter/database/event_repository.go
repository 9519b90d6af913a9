package database

import (
	"context"
	"errors"

	"github.com/startuphub-br/startuphub-api/internal/domain/model"
	"github.com/startuphub-br/startuphub-api/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EventRepository implementa repository.EventRepository e
// repository.AttendanceRepository sobre GORM
type EventRepository struct {
	db *gorm.DB
}

func NewEventRepository(db *gorm.DB) *EventRepository {
	return &EventRepository{db: db}
}

// CreateEvent persiste um novo evento
func (r *EventRepository) CreateEvent(ctx context.Context, event *model.EventEntity) error {
	return r.db.WithContext(ctx).Create(event).Error
}

// GetEvents retorna todos os eventos, mais recentes primeiro
func (r *EventRepository) GetEvents(ctx context.Context) ([]*model.EventEntity, error) {
	var events []*model.EventEntity
	if err := r.db.WithContext(ctx).Order("date DESC").Find(&events).Error; err != nil {
		return nil, err
	}
	return events, nil
}

// GetEventByID busca um evento pelo id
func (r *EventRepository) GetEventByID(ctx context.Context, id string) (*model.EventEntity, error) {
	var event model.EventEntity
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&event).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrEventNotFound
		}
		return nil, err
	}
	return &event, nil
}

// RecordAttendance registra a presença de forma idempotente. O insert usa
// ON CONFLICT DO NOTHING sobre o índice único (event_id, user_id); quando
// nenhuma linha é afetada, a presença já existente é retornada. Isso mantém
// a invariante de presença única mesmo sob check-ins concorrentes.
func (r *EventRepository) RecordAttendance(ctx context.Context, attendance *model.AttendanceEntity) (*model.AttendanceEntity, bool, error) {
	result := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "event_id"}, {Name: "user_id"}},
			DoNothing: true,
		}).
		Create(attendance)
	if result.Error != nil {
		return nil, false, result.Error
	}

	if result.RowsAffected > 0 {
		return attendance, true, nil
	}

	var existing model.AttendanceEntity
	err := r.db.WithContext(ctx).
		Where("event_id = ? AND user_id = ?", attendance.EventID, attendance.UserID).
		First(&existing).Error
	if err != nil {
		return nil, false, err
	}
	return &existing, false, nil
}
