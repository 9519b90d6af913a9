package model

import "time"

// EventEntity é a representação de banco de dados de um evento.
// QRCode é o segredo de check-in, único por evento e gerado na criação.
// Os nomes JSON seguem o contrato consumido pelo aplicativo móvel.
type EventEntity struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	Title       string    `gorm:"not null;size:200" json:"title"`
	Description string    `gorm:"type:text" json:"description"`
	Date        time.Time `gorm:"not null" json:"date"`
	Location    string    `gorm:"size:200" json:"location"`
	QRCode      string    `gorm:"uniqueIndex;not null;size:100" json:"qrCode"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"-"`
}

// TableName define o nome da tabela
func (EventEntity) TableName() string {
	return "eventos"
}
