package repository

import (
	"time"

	"github.com/clothesguard/api/internal/model"
	"gorm.io/gorm"
)

// SensorRepository handles database operations for SensorReading.
// Readings are append-only: no update or delete is exposed.
type SensorRepository struct {
	db *gorm.DB
}

func NewSensorRepository(db *gorm.DB) *SensorRepository {
	return &SensorRepository{db: db}
}

// Insert persists a reading, defaulting FechaHora to now when the caller
// did not supply one.
func (r *SensorRepository) Insert(reading *model.SensorReading) error {
	if reading.FechaHora.IsZero() {
		reading.FechaHora = time.Now()
	}
	return translate(r.db.Create(reading).Error)
}

// GetAll returns all readings, newest first
func (r *SensorRepository) GetAll() ([]model.SensorReading, error) {
	var readings []model.SensorReading
	err := r.db.Order("fecha_hora DESC").Find(&readings).Error
	return readings, translate(err)
}
