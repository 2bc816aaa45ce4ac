package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Priority levels for notifications
type Priority string

const (
	PriorityLow    Priority = "baja"
	PriorityMedium Priority = "media"
	PriorityHigh   Priority = "alta"
)

// Notification is a message addressed to a user. UsuarioID is a weak
// reference to User.UserID: deleting a user leaves their notifications
// in place until DeleteByUser is called explicitly.
type Notification struct {
	ID          uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	Descripcion string    `json:"descripcion" gorm:"not null;type:text"`
	FechaHora   time.Time `json:"fechaHora" gorm:"not null"`
	Tipo        string    `json:"tipo" gorm:"not null;size:50"`
	Leida       bool      `json:"leida" gorm:"not null;default:false"`
	UsuarioID   string    `json:"usuarioId" gorm:"index;size:100"`
	Prioridad   Priority  `json:"prioridad" gorm:"not null;size:10;default:'media'"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (n *Notification) BeforeCreate(tx *gorm.DB) error {
	if n.ID == uuid.Nil {
		n.ID = uuid.New()
	}
	if n.FechaHora.IsZero() {
		n.FechaHora = time.Now()
	}
	if n.Prioridad == "" {
		n.Prioridad = PriorityMedium
	}
	return nil
}
