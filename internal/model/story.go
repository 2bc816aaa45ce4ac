package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Story is a usage-log entry. StoryID is the caller-facing identity used
// for full replacement; the content patch and delete operations resolve
// the storage-assigned ID instead (kept as-is from the inherited API).
type Story struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	StoryID      string    `json:"story_id" gorm:"uniqueIndex;not null;size:100"`
	Title        string    `json:"title" gorm:"size:200;index"`
	Dia          time.Time `json:"dia" gorm:"not null"`
	HorasUso     string    `json:"horasUso" gorm:"not null;size:100"`
	Indicaciones string    `json:"indicaciones" gorm:"type:text"`
	DiasActivos  time.Time `json:"diasActivos" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (s *Story) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}
