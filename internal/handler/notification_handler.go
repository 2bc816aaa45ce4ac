package handler

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/clothesguard/api/internal/model"
	"github.com/clothesguard/api/internal/repository"
	"github.com/clothesguard/api/internal/ws"
	"github.com/clothesguard/api/pkg/push"
)

// NotificationHandler handles notification endpoints. Creation fans the
// notification out to the live stream and, when configured, to FCM;
// neither delivery failing affects the stored record.
type NotificationHandler struct {
	notificationRepo *repository.NotificationRepository
	hub              *ws.Hub
	push             *push.Service
}

func NewNotificationHandler(notificationRepo *repository.NotificationRepository, hub *ws.Hub, push *push.Service) *NotificationHandler {
	return &NotificationHandler{
		notificationRepo: notificationRepo,
		hub:              hub,
		push:             push,
	}
}

// GetAll godoc
// @Summary List all notifications
// @Tags Notificaciones
// @Produce json
// @Success 200 {array} model.Notification
// @Failure 500 {object} model.ErrorResponse
// @Router /notificaciones [get]
func (h *NotificationHandler) GetAll(c *gin.Context) {
	notifications, err := h.notificationRepo.GetAll()
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// GetOne godoc
// @Summary Fetch a notification by id
// @Tags Notificaciones
// @Produce json
// @Param id path string true "Notification id"
// @Success 200 {object} model.Notification
// @Failure 404 {object} model.ErrorResponse
// @Router /notificaciones/{id} [get]
func (h *NotificationHandler) GetOne(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid notification id"})
		return
	}

	notification, err := h.notificationRepo.GetOne(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch notification"})
		return
	}
	c.JSON(http.StatusOK, notification)
}

// GetByUser godoc
// @Summary List a user's notifications
// @Tags Notificaciones
// @Produce json
// @Param userId path string true "External user id"
// @Success 200 {array} model.Notification
// @Failure 500 {object} model.ErrorResponse
// @Router /notificaciones/user/{userId} [get]
func (h *NotificationHandler) GetByUser(c *gin.Context) {
	notifications, err := h.notificationRepo.GetByUser(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to fetch notifications"})
		return
	}
	c.JSON(http.StatusOK, notifications)
}

// Create godoc
// @Summary Create a notification
// @Tags Notificaciones
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body model.CreateNotificationRequest true "Notification payload"
// @Success 201 {object} model.Notification
// @Failure 400 {object} model.ErrorResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /notificaciones [post]
func (h *NotificationHandler) Create(c *gin.Context) {
	var req model.CreateNotificationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid request", Message: err.Error()})
		return
	}

	notification := model.Notification{
		Descripcion: req.Descripcion,
		Tipo:        req.Tipo,
		UsuarioID:   req.UsuarioID,
		Prioridad:   req.Prioridad,
	}
	if req.FechaHora != nil {
		notification.FechaHora = *req.FechaHora
	}

	if err := h.notificationRepo.Insert(&notification); err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to create notification"})
		return
	}

	if h.hub != nil {
		h.hub.Broadcast(&model.WSEvent{Type: model.WSEventNotification, Payload: notification})
	}
	if err := h.push.SendAlert(c.Request.Context(), &notification); err != nil {
		log.Printf("⚠️  Push delivery failed for notification %s: %v", notification.ID, err)
	}

	c.JSON(http.StatusCreated, notification)
}

// MarkRead godoc
// @Summary Mark a notification as read (idempotent)
// @Tags Notificaciones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification id"
// @Success 200 {object} model.Notification
// @Failure 404 {object} model.ErrorResponse
// @Router /notificaciones/{id}/read [patch]
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid notification id"})
		return
	}

	notification, err := h.notificationRepo.MarkRead(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to mark notification as read"})
		return
	}

	c.JSON(http.StatusOK, notification)
}

// Delete godoc
// @Summary Remove a notification by id
// @Tags Notificaciones
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification id"
// @Success 200 {object} model.SuccessResponse
// @Failure 404 {object} model.ErrorResponse
// @Router /notificaciones/{id} [delete]
func (h *NotificationHandler) Delete(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, model.ErrorResponse{Error: "Invalid notification id"})
		return
	}

	notification, err := h.notificationRepo.DeleteOne(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.JSON(http.StatusNotFound, model.ErrorResponse{Error: "Notification not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete notification"})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "Notification deleted", Data: notification})
}

// DeleteByUser godoc
// @Summary Remove all of a user's notifications
// @Tags Notificaciones
// @Produce json
// @Security BearerAuth
// @Param userId path string true "External user id"
// @Success 200 {object} model.SuccessResponse
// @Failure 500 {object} model.ErrorResponse
// @Router /notificaciones/user/{userId} [delete]
func (h *NotificationHandler) DeleteByUser(c *gin.Context) {
	count, err := h.notificationRepo.DeleteByUser(c.Param("userId"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, model.ErrorResponse{Error: "Failed to delete notifications"})
		return
	}

	c.JSON(http.StatusOK, model.SuccessResponse{Message: "User notifications deleted", Data: gin.H{"deleted": count}})
}
