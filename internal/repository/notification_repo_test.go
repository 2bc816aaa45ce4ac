package repository

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/clothesguard/api/internal/model"
)

func TestNotificationRepository_Insert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	t.Run("defaults fechaHora and prioridad", func(t *testing.T) {
		n := &model.Notification{
			Descripcion: "lluvia detectada",
			Tipo:        "lluvia",
			UsuarioID:   "u-1",
		}
		require.NoError(t, repo.Insert(n))
		assert.WithinDuration(t, time.Now(), n.FechaHora, 2*time.Second)
		assert.Equal(t, model.PriorityMedium, n.Prioridad)
		assert.False(t, n.Leida, "born unread")
	})

	t.Run("keeps explicit values", func(t *testing.T) {
		at := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
		n := &model.Notification{
			Descripcion: "ropa seca",
			Tipo:        "recordatorio",
			FechaHora:   at,
			Prioridad:   model.PriorityHigh,
		}
		require.NoError(t, repo.Insert(n))
		assert.True(t, n.FechaHora.Equal(at))
		assert.Equal(t, model.PriorityHigh, n.Prioridad)
	})
}

func TestNotificationRepository_MarkRead(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	n := &model.Notification{Descripcion: "lluvia detectada", Tipo: "lluvia", UsuarioID: "u-1"}
	require.NoError(t, repo.Insert(n))

	t.Run("flips the flag", func(t *testing.T) {
		read, err := repo.MarkRead(n.ID)
		require.NoError(t, err)
		assert.True(t, read.Leida)
	})

	t.Run("idempotent on a read notification", func(t *testing.T) {
		read, err := repo.MarkRead(n.ID)
		require.NoError(t, err)
		assert.True(t, read.Leida)
	})

	t.Run("unknown id returns ErrNotFound", func(t *testing.T) {
		_, err := repo.MarkRead(uuid.New())
		assert.ErrorIs(t, err, ErrNotFound)
	})
}

func TestNotificationRepository_GetByUser(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	for _, userID := range []string{"u-1", "u-1", "u-2"} {
		require.NoError(t, repo.Insert(&model.Notification{
			Descripcion: "aviso",
			Tipo:        "recordatorio",
			UsuarioID:   userID,
		}))
	}

	own, err := repo.GetByUser("u-1")
	require.NoError(t, err)
	assert.Len(t, own, 2)

	none, err := repo.GetByUser("u-3")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestNotificationRepository_Delete(t *testing.T) {
	db := setupTestDB(t)
	repo := NewNotificationRepository(db)

	n := &model.Notification{Descripcion: "aviso", Tipo: "recordatorio", UsuarioID: "u-1"}
	require.NoError(t, repo.Insert(n))
	require.NoError(t, repo.Insert(&model.Notification{
		Descripcion: "otro aviso", Tipo: "recordatorio", UsuarioID: "u-1",
	}))

	t.Run("DeleteOne returns the deleted record", func(t *testing.T) {
		deleted, err := repo.DeleteOne(n.ID)
		require.NoError(t, err)
		assert.Equal(t, n.ID, deleted.ID)

		_, err = repo.GetOne(n.ID)
		assert.ErrorIs(t, err, ErrNotFound)
	})

	t.Run("DeleteByUser reports the count", func(t *testing.T) {
		count, err := repo.DeleteByUser("u-1")
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})

	t.Run("DeleteByUser with nothing to delete succeeds", func(t *testing.T) {
		count, err := repo.DeleteByUser("u-1")
		require.NoError(t, err)
		assert.Zero(t, count)
	})
}
