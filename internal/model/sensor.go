package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// ReadingType distinguishes sensors from actuators
type ReadingType string

const (
	ReadingTypeSensor   ReadingType = "sensor"
	ReadingTypeActuator ReadingType = "actuador"
)

// SensorReading is a single telemetry record from a sensor or actuator.
// Valor is schema-free: devices report numbers ("23.5") as well as
// symbolic states ("abierto"). Readings are immutable once ingested.
type SensorReading struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primaryKey"`
	Tipo      ReadingType    `json:"tipo" gorm:"not null;size:20"`
	Nombre    string         `json:"nombre" gorm:"not null;size:100"`
	Valor     datatypes.JSON `json:"valor" gorm:"not null"`
	Unidad    string         `json:"unidad" gorm:"size:50;default:''"`
	Accion    string         `json:"accion" gorm:"size:100;default:''"`
	FechaHora time.Time      `json:"fechaHora" gorm:"not null;index:idx_sensor_readings_fecha_hora,sort:desc"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (r *SensorReading) BeforeCreate(tx *gorm.DB) error {
	if r.ID == uuid.Nil {
		r.ID = uuid.New()
	}
	return nil
}
