package handler

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clothesguard/api/internal/model"
	"github.com/clothesguard/api/internal/repository"
)

func setupNotificationRouter(t *testing.T) *gin.Engine {
	t.Helper()

	h := NewNotificationHandler(repository.NewNotificationRepository(setupTestDB(t)), nil, nil)

	router := gin.New()
	router.GET("/api/notificaciones", h.GetAll)
	router.GET("/api/notificaciones/:id", h.GetOne)
	router.GET("/api/notificaciones/user/:userId", h.GetByUser)
	router.POST("/api/notificaciones", h.Create)
	router.PATCH("/api/notificaciones/:id/read", h.MarkRead)
	router.DELETE("/api/notificaciones/:id", h.Delete)
	router.DELETE("/api/notificaciones/user/:userId", h.DeleteByUser)
	return router
}

func createTestNotification(t *testing.T, router *gin.Engine, userID string) model.Notification {
	t.Helper()
	rec := performJSON(t, router, http.MethodPost, "/api/notificaciones", gin.H{
		"descripcion": "Se detectó lluvia, el techo se cerró.",
		"tipo":        "lluvia",
		"usuarioId":   userID,
		"prioridad":   "alta",
	})
	require.Equal(t, http.StatusCreated, rec.Code)

	var n model.Notification
	decodeBody(t, rec, &n)
	return n
}

func TestNotificationHandler_Create(t *testing.T) {
	router := setupNotificationRouter(t)

	t.Run("valid notification returns 201 unread", func(t *testing.T) {
		n := createTestNotification(t, router, "u-1")
		assert.False(t, n.Leida)
		assert.Equal(t, model.PriorityHigh, n.Prioridad)
		assert.False(t, n.FechaHora.IsZero())
	})

	t.Run("defaults prioridad to media", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPost, "/api/notificaciones", gin.H{
			"descripcion": "La ropa lleva 4 horas tendida.",
			"tipo":        "recordatorio",
		})
		require.Equal(t, http.StatusCreated, rec.Code)

		var n model.Notification
		decodeBody(t, rec, &n)
		assert.Equal(t, model.PriorityMedium, n.Prioridad)
	})

	t.Run("unknown prioridad returns 400", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPost, "/api/notificaciones", gin.H{
			"descripcion": "x",
			"tipo":        "lluvia",
			"prioridad":   "urgente",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotificationHandler_MarkRead(t *testing.T) {
	router := setupNotificationRouter(t)
	n := createTestNotification(t, router, "u-1")

	t.Run("marks as read", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPatch, "/api/notificaciones/"+n.ID.String()+"/read", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var read model.Notification
		decodeBody(t, rec, &read)
		assert.True(t, read.Leida)
	})

	t.Run("second mark is a no-op success", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPatch, "/api/notificaciones/"+n.ID.String()+"/read", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("malformed id returns 400", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodPatch, "/api/notificaciones/zzz/read", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestNotificationHandler_PerUser(t *testing.T) {
	router := setupNotificationRouter(t)
	createTestNotification(t, router, "u-1")
	createTestNotification(t, router, "u-1")
	createTestNotification(t, router, "u-2")

	t.Run("lists only the owner's notifications", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodGet, "/api/notificaciones/user/u-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)

		var list []model.Notification
		decodeBody(t, rec, &list)
		assert.Len(t, list, 2)
	})

	t.Run("bulk delete reports the count", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodDelete, "/api/notificaciones/user/u-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"deleted":2`)
	})

	t.Run("bulk delete with nothing left still succeeds", func(t *testing.T) {
		rec := performJSON(t, router, http.MethodDelete, "/api/notificaciones/user/u-1", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"deleted":0`)
	})
}

func TestNotificationHandler_Delete(t *testing.T) {
	router := setupNotificationRouter(t)
	n := createTestNotification(t, router, "u-1")

	rec := performJSON(t, router, http.MethodDelete, "/api/notificaciones/"+n.ID.String(), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = performJSON(t, router, http.MethodGet, "/api/notificaciones/"+n.ID.String(), nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
