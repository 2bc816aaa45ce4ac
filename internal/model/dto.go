package model

import (
	"time"

	"gorm.io/datatypes"
)

// ========== User DTOs ==========

type CreateUserRequest struct {
	UserID   string   `json:"user_id" binding:"required,max=100"`
	Name     string   `json:"name" binding:"required,min=2,max=100"`
	Email    string   `json:"email" binding:"required,email"`
	Password string   `json:"password" binding:"required,min=6"`
	Address  *Address `json:"address"`
}

// UpdateUserRequest replaces only the fields that are supplied.
type UpdateUserRequest struct {
	Name    string   `json:"name" binding:"omitempty,min=2,max=100"`
	Email   string   `json:"email" binding:"omitempty,email"`
	Address *Address `json:"address"`
}

type LoginRequest struct {
	Name     string `json:"name" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	UserID  string `json:"userId"`
}

// ========== Sensor DTOs ==========

// CreateSensorReadingRequest carries FechaHora as a string so an
// unparseable value can be rejected with a clear error before any store
// call; an empty value defaults to ingestion time.
type CreateSensorReadingRequest struct {
	Tipo      ReadingType    `json:"tipo" binding:"required,oneof=sensor actuador"`
	Nombre    string         `json:"nombre" binding:"required,max=100"`
	Valor     datatypes.JSON `json:"valor" binding:"required"`
	Unidad    string         `json:"unidad"`
	Accion    string         `json:"accion"`
	FechaHora string         `json:"fechaHora"`
}

// ========== Story DTOs ==========

type CreateStoryRequest struct {
	StoryID      string    `json:"story_id" binding:"required,max=100"`
	Title        string    `json:"title" binding:"max=200"`
	Dia          time.Time `json:"dia" binding:"required"`
	HorasUso     string    `json:"horasUso" binding:"required,max=100"`
	Indicaciones string    `json:"indicaciones"`
	DiasActivos  time.Time `json:"diasActivos" binding:"required"`
}

type UpdateStoryRequest struct {
	Title        string     `json:"title" binding:"omitempty,max=200"`
	Dia          *time.Time `json:"dia"`
	HorasUso     string     `json:"horasUso" binding:"omitempty,max=100"`
	Indicaciones *string    `json:"indicaciones"`
	DiasActivos  *time.Time `json:"diasActivos"`
}

type UpdateStoryContentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ========== Notification DTOs ==========

type CreateNotificationRequest struct {
	Descripcion string     `json:"descripcion" binding:"required"`
	Tipo        string     `json:"tipo" binding:"required,max=50"`
	UsuarioID   string     `json:"usuarioId" binding:"omitempty,max=100"`
	Prioridad   Priority   `json:"prioridad" binding:"omitempty,oneof=baja media alta"`
	FechaHora   *time.Time `json:"fechaHora"`
}

// ========== WebSocket Event DTOs ==========

type WSEvent struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// WebSocket event types
const (
	WSEventSensorReading = "sensor_reading"
	WSEventNotification  = "notification"
)

// ========== Common ==========

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type SuccessResponse struct {
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// DataResponse is the envelope the user and sensor listings use.
type DataResponse struct {
	Data interface{} `json:"data"`
}
