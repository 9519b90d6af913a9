package model

import "time"

// AttendanceEntity registra que um usuário fez check-in em um evento.
// O índice único em (event_id, user_id) garante no máximo uma presença
// por par evento/usuário, mesmo sob check-ins concorrentes.
type AttendanceEntity struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	EventID   string    `gorm:"column:event_id;not null;size:36;uniqueIndex:idx_presencas_evento_usuario" json:"eventoId"`
	UserID    string    `gorm:"column:user_id;not null;size:36;uniqueIndex:idx_presencas_evento_usuario" json:"userId"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

// TableName define o nome da tabela
func (AttendanceEntity) TableName() string {
	return "presencas"
}
