package repository

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"

	"github.com/clothesguard/api/internal/model"
)

func TestSensorRepository_Insert(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSensorRepository(db)

	t.Run("keeps a caller-supplied timestamp", func(t *testing.T) {
		at := time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)
		reading := &model.SensorReading{
			Tipo:      model.ReadingTypeSensor,
			Nombre:    "humedad",
			Valor:     datatypes.JSON(`23.5`),
			Unidad:    "%",
			FechaHora: at,
		}
		require.NoError(t, repo.Insert(reading))
		assert.True(t, reading.FechaHora.Equal(at))
	})

	t.Run("defaults a missing timestamp to now", func(t *testing.T) {
		reading := &model.SensorReading{
			Tipo:   model.ReadingTypeActuator,
			Nombre: "techo",
			Valor:  datatypes.JSON(`"cerrado"`),
			Accion: "cerrar",
		}
		require.NoError(t, repo.Insert(reading))
		assert.WithinDuration(t, time.Now(), reading.FechaHora, 2*time.Second)
	})

	t.Run("accepts symbolic and numeric values alike", func(t *testing.T) {
		for _, valor := range []string{`42`, `"abierto"`, `{"x":1}`} {
			reading := &model.SensorReading{
				Tipo:   model.ReadingTypeSensor,
				Nombre: "mixto",
				Valor:  datatypes.JSON(valor),
			}
			require.NoError(t, repo.Insert(reading))
		}
	})
}

func TestSensorRepository_GetAll_NewestFirst(t *testing.T) {
	db := setupTestDB(t)
	repo := NewSensorRepository(db)

	base := time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)
	// Insert out of order: T1, T3, T2
	for _, offset := range []time.Duration{0, 2 * time.Hour, time.Hour} {
		require.NoError(t, repo.Insert(&model.SensorReading{
			Tipo:      model.ReadingTypeSensor,
			Nombre:    "humedad",
			Valor:     datatypes.JSON(`50`),
			FechaHora: base.Add(offset),
		}))
	}

	readings, err := repo.GetAll()
	require.NoError(t, err)
	require.Len(t, readings, 3)

	assert.True(t, readings[0].FechaHora.Equal(base.Add(2*time.Hour)))
	assert.True(t, readings[1].FechaHora.Equal(base.Add(time.Hour)))
	assert.True(t, readings[2].FechaHora.Equal(base))
}
