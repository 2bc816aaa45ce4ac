package main

import (
	"fmt"
	"log"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/datatypes"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clothesguard/api/internal/config"
	"github.com/clothesguard/api/internal/model"
)

func main() {
	// Load config
	cfg := config.Load()

	// Force DB logging off to avoid noise
	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to Database")

	// Common password for all users
	password := "password123"
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("❌ Failed to hash password: %v", err)
	}

	// Create 5 users
	log.Println("🌱 Seeding 5 users...")

	for i := 1; i <= 5; i++ {
		userID := fmt.Sprintf("cg-user-%d", i)

		// Check if exists
		var existing model.User
		if err := db.Where("user_id = ?", userID).First(&existing).Error; err == nil {
			continue
		}

		user := model.User{
			UserID:   userID,
			Name:     fmt.Sprintf("usuario%d", i),
			Email:    fmt.Sprintf("usuario%d@clothesguard.local", i),
			Password: string(hashedPassword),
			Address: model.Address{
				State:        "Oaxaca",
				Municipality: "Oaxaca de Juárez",
			},
		}

		if err := db.Create(&user).Error; err != nil {
			log.Printf("⚠️  Failed to create user %s: %v", userID, err)
			continue
		}
		log.Printf("👤 Created user: %s (password: %s)", user.Name, password)
	}

	// Create a day of fake telemetry: one humidity reading per hour
	log.Println("🌱 Seeding sensor readings...")
	base := time.Now().Add(-24 * time.Hour).Truncate(time.Hour)

	var readingCount int64
	db.Model(&model.SensorReading{}).Count(&readingCount)
	if readingCount == 0 {
		for i := 0; i < 24; i++ {
			reading := model.SensorReading{
				Tipo:      model.ReadingTypeSensor,
				Nombre:    "humedad",
				Valor:     datatypes.JSON(fmt.Sprintf("%d", 40+(i*7)%35)),
				Unidad:    "%",
				FechaHora: base.Add(time.Duration(i) * time.Hour),
			}
			if err := db.Create(&reading).Error; err != nil {
				log.Printf("⚠️  Failed to create reading: %v", err)
			}
		}
		// One actuator event to round it out
		actuator := model.SensorReading{
			Tipo:      model.ReadingTypeActuator,
			Nombre:    "techo",
			Valor:     datatypes.JSON(`"cerrado"`),
			Accion:    "cerrar",
			FechaHora: base.Add(12 * time.Hour),
		}
		if err := db.Create(&actuator).Error; err != nil {
			log.Printf("⚠️  Failed to create actuator event: %v", err)
		}
		log.Println("📡 Created 25 sensor readings")
	}

	// A couple of usage stories
	log.Println("🌱 Seeding stories...")
	today := time.Now().Truncate(24 * time.Hour)
	stories := []model.Story{
		{
			StoryID:      "lavado-lunes",
			Title:        "Lavado de lunes",
			Dia:          today,
			HorasUso:     "3h",
			Indicaciones: "Tender la ropa antes de las 10:00 para aprovechar el sol.",
			DiasActivos:  today.Add(24 * time.Hour),
		},
		{
			StoryID:      "secado-fin-de-semana",
			Title:        "Secado de fin de semana",
			Dia:          today.Add(-48 * time.Hour),
			HorasUso:     "6h",
			Indicaciones: "Revisar pronóstico de lluvia antes de tender.",
			DiasActivos:  today.Add(48 * time.Hour),
		},
	}
	for _, s := range stories {
		var existing model.Story
		if err := db.Where("story_id = ?", s.StoryID).First(&existing).Error; err == nil {
			continue
		}
		if err := db.Create(&s).Error; err != nil {
			log.Printf("⚠️  Failed to create story %s: %v", s.StoryID, err)
			continue
		}
		log.Printf("📖 Created story: %s", s.Title)
	}

	// Notifications for the first user
	log.Println("🌱 Seeding notifications...")
	var notifCount int64
	db.Model(&model.Notification{}).Count(&notifCount)
	if notifCount == 0 {
		notifications := []model.Notification{
			{
				Descripcion: "Se detectó lluvia, el techo se cerró automáticamente.",
				Tipo:        "lluvia",
				UsuarioID:   "cg-user-1",
				Prioridad:   model.PriorityHigh,
			},
			{
				Descripcion: "La ropa lleva 4 horas tendida.",
				Tipo:        "recordatorio",
				UsuarioID:   "cg-user-1",
				Prioridad:   model.PriorityMedium,
			},
		}
		for _, n := range notifications {
			if err := db.Create(&n).Error; err != nil {
				log.Printf("⚠️  Failed to create notification: %v", err)
			}
		}
		log.Println("🔔 Created 2 notifications")
	}

	log.Println("✅ Seeding complete")
}
