package model

import "time"

// MentorEntity é a representação de banco de dados de um mentor
type MentorEntity struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	Name      string    `gorm:"not null;size:100" json:"name"`
	Expertise string    `gorm:"size:200" json:"expertise"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"createdAt"`
}

func (MentorEntity) TableName() string {
	return "mentores"
}

// StartupEntity é a representação de banco de dados de uma startup.
// O mentor é opcional.
type StartupEntity struct {
	ID          string        `gorm:"primaryKey;size:36" json:"id"`
	Name        string        `gorm:"not null;size:100" json:"name"`
	Description string        `gorm:"type:text" json:"description"`
	MentorID    *string       `gorm:"size:36" json:"mentorId,omitempty"`
	Mentor      *MentorEntity `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	CreatedAt   time.Time     `gorm:"autoCreateTime" json:"createdAt"`
}

func (StartupEntity) TableName() string {
	return "startups"
}

// MentorshipEntity liga uma startup a um mentor
type MentorshipEntity struct {
	ID        string         `gorm:"primaryKey;size:36" json:"id"`
	StartupID string         `gorm:"not null;size:36" json:"startupId"`
	MentorID  string         `gorm:"not null;size:36" json:"mentorId"`
	Startup   *StartupEntity `gorm:"foreignKey:StartupID" json:"startup,omitempty"`
	Mentor    *MentorEntity  `gorm:"foreignKey:MentorID" json:"mentor,omitempty"`
	CreatedAt time.Time      `gorm:"autoCreateTime" json:"createdAt"`
}

func (MentorshipEntity) TableName() string {
	return "mentorias"
}
