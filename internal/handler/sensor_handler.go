package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/clothesguard/api/internal/model"
	"github.com/clothesguard/api/internal/repository"
	"github.com/clothesguard/api/internal/ws"
)

// SensorHandler handles telemetry ingestion and listing
type SensorHandler struct {
	sensorRepo *repository.SensorRepository
	hub        *ws.Hub
}

func NewSensorHandler(sensorRepo *repository.SensorRepository, hub *ws.Hub) *SensorHandler {
	return &SensorHandler{sensorRepo: sensorRepo, hub: hub}
}

// Create godoc
// @Summary Ingest a sensor or actuator reading
// @Tags Sensores
// @Accept json
// @Produce json
// @Param body body model.CreateSensorReadingRequest true "Reading payload"
// @Success 201 {object} model.SuccessResponse
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /sensores [post]
func (h *SensorHandler) Create(c *gin.Context) {
	var req model.CreateSensorReadingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	reading := model.SensorReading{
		Tipo:   req.Tipo,
		Nombre: req.Nombre,
		Valor:  req.Valor,
		Unidad: req.Unidad,
		Accion: req.Accion,
	}

	// Caller-supplied timestamps must parse; absent ones default to now
	// inside the repository.
	if req.FechaHora != "" {
		fechaHora, err := time.Parse(time.RFC3339, req.FechaHora)
		if err != nil {
			c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid date", Message: "fechaHora must be RFC 3339"})
			return
		}
		reading.FechaHora = fechaHora
	}

	if err := h.sensorRepo.Insert(&reading); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to save reading"})
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(&model.WSEvent{Type: model.WSEventSensorReading, Payload: reading})
	}

	c.JSON(http.StatusCreated, model.SuccessResponse{Message: "Reading saved", Data: reading})
}

// GetAll godoc
// @Summary List all readings, newest first
// @Tags Sensores
// @Produce json
// @Success 200 {object} model.DataResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /sensores [get]
func (h *SensorHandler) GetAll(c *gin.Context) {
	readings, err := h.sensorRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch readings"})
		return
	}
	c.JSON(http.StatusOK, model.DataResponse{Data: readings})
}
