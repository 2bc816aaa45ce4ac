package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Address is the optional structured address sub-record of a user
type Address struct {
	State        string `json:"state" gorm:"size:100"`
	Municipality string `json:"municipality" gorm:"size:100"`
}

// User represents a registered user. UserID is the caller-facing
// identity; ID is the storage-assigned one.
type User struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID       string    `json:"user_id" gorm:"uniqueIndex;not null;size:100"`
	Name         string    `json:"name" gorm:"uniqueIndex;not null;size:100"`
	Email        string    `json:"email" gorm:"uniqueIndex;not null;size:255"`
	Password     string    `json:"-" gorm:"not null;size:255"` // bcrypt hash, never plaintext
	Address      Address   `json:"address" gorm:"embedded;embeddedPrefix:address_"`
	ProfileImage string    `json:"profileImage" gorm:"size:500;default:''"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// BeforeCreate assigns the internal identity. Generated in Go rather
// than as a database default so every supported driver behaves the same.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}
