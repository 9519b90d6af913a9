package repository

import (
	"context"
	"errors"

	"github.com/startuphub-br/startuphub-api/internal/domain/model"
)

var ErrEventNotFound = errors.New("evento não encontrado")

// EventRepository define a interface para armazenamento de eventos
type EventRepository interface {
	// CreateEvent persiste um novo evento
	CreateEvent(ctx context.Context, event *model.EventEntity) error

	// GetEvents retorna todos os eventos
	GetEvents(ctx context.Context) ([]*model.EventEntity, error)

	// GetEventByID busca um evento pelo id
	GetEventByID(ctx context.Context, id string) (*model.EventEntity, error)
}

// AttendanceRepository define a interface para registro de presenças
type AttendanceRepository interface {
	// RecordAttendance insere a presença se ainda não existir para o par
	// (evento, usuário) e retorna a linha canônica. O booleano indica se
	// uma nova presença foi criada. A operação é atômica no banco.
	RecordAttendance(ctx context.Context, attendance *model.AttendanceEntity) (*model.AttendanceEntity, bool, error)
}
