package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/clothesguard/api/internal/config"
	"github.com/clothesguard/api/internal/handler"
	"github.com/clothesguard/api/internal/middleware"
	"github.com/clothesguard/api/internal/model"
	"github.com/clothesguard/api/internal/repository"
	"github.com/clothesguard/api/internal/service"
	"github.com/clothesguard/api/internal/ws"
	"github.com/clothesguard/api/migrations"
	"github.com/clothesguard/api/pkg/auth"
	"github.com/clothesguard/api/pkg/push"
	"github.com/clothesguard/api/pkg/storage"
)

// @title           ClothesGuard API
// @version         1.0
// @description     Backend for the ClothesGuard IoT system: users, telemetry, usage stories and notifications.

// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT

// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// ==================== Load Config ====================
	cfg := config.Load()
	log.Printf("🚀 Starting ClothesGuard API Server [env=%s]", cfg.App.Env)

	// ==================== Database (PostgreSQL) ====================
	gormLogger := logger.Default.LogMode(logger.Info)
	if cfg.App.Env == "production" {
		gormLogger = logger.Default.LogMode(logger.Warn)
	}

	db, err := gorm.Open(postgres.Open(cfg.DB.DSN()), &gorm.Config{
		Logger:         gormLogger,
		TranslateError: true,
	})
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	log.Println("✅ Connected to PostgreSQL")

	// ==================== Run Migrations ====================
	if err := migrations.Run(cfg.DB.URL()); err != nil {
		log.Printf("⚠️  Migration warning: %v", err)
		log.Println("📦 Falling back to GORM AutoMigrate...")
		if err := db.AutoMigrate(
			&model.User{},
			&model.SensorReading{},
			&model.Story{},
			&model.Notification{},
		); err != nil {
			log.Fatalf("❌ Failed to migrate database: %v", err)
		}
	}
	log.Println("✅ Database migrated successfully")

	// ==================== Redis (token blacklist) ====================
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr(),
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("❌ Failed to connect to Redis: %v", err)
	}
	log.Println("✅ Connected to Redis")

	// ==================== Media Store ====================
	var mediaStore storage.Storage
	var localStore *storage.LocalStorage

	switch cfg.Storage.Driver {
	case "minio":
		mediaStore, err = storage.NewMinIO(storage.MinIOConfig{
			Endpoint:  cfg.MinIO.Endpoint,
			PublicURL: cfg.MinIO.PublicURL,
			AccessKey: cfg.MinIO.AccessKey,
			SecretKey: cfg.MinIO.SecretKey,
			Bucket:    cfg.MinIO.Bucket,
			UseSSL:    cfg.MinIO.UseSSL,
		})
		if err != nil {
			log.Fatalf("❌ Failed to initialize MinIO storage: %v", err)
		}
		log.Println("✅ Connected to MinIO")
	default:
		localStore, err = storage.NewLocal(storage.LocalConfig{
			Dir:        cfg.Storage.LocalDir,
			PublicPath: cfg.Storage.PublicPath,
		})
		if err != nil {
			log.Fatalf("❌ Failed to initialize local storage: %v", err)
		}
		mediaStore = localStore
		log.Printf("📁 Upload directory ready: %s", cfg.Storage.LocalDir)
	}

	// ==================== Initialize Layers ====================
	jwtManager := auth.NewJWTManager(cfg.JWT.Secret, cfg.JWT.Expiry)

	// Repositories
	userRepo := repository.NewUserRepository(db)
	sensorRepo := repository.NewSensorRepository(db)
	storyRepo := repository.NewStoryRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)

	// Services
	authService := service.NewAuthService(userRepo, jwtManager, rdb)
	profileService := service.NewProfileService(userRepo, mediaStore)

	// Live event stream
	hub := ws.NewHub()
	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go hub.Run(hubCtx)

	// FCM push (optional)
	pushService, err := push.New(cfg.FCM.CredentialsFile, cfg.FCM.Topic)
	if err != nil {
		log.Printf("⚠️  Push service unavailable: %v", err)
	}

	// Handlers
	userHandler := handler.NewUserHandler(userRepo, authService, profileService)
	sensorHandler := handler.NewSensorHandler(sensorRepo, hub)
	storyHandler := handler.NewStoryHandler(storyRepo)
	notificationHandler := handler.NewNotificationHandler(notificationRepo, hub, pushService)
	streamHandler := handler.NewStreamHandler(hub, jwtManager)

	// ==================== Gin Router ====================
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Serve swagger.json at /docs/swagger.json to avoid conflict with
	// the /swagger/* wildcard
	router.StaticFile("/docs/swagger.json", "./docs/swagger.json")
	url := ginSwagger.URL("/docs/swagger.json")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, url))

	// Global middleware
	router.Use(middleware.CORSMiddleware(cfg.CORS.Origins))

	// Uploaded images are served from the managed root when stored
	// locally; MinIO serves its own public URLs.
	if localStore != nil {
		router.Static(cfg.Storage.PublicPath, localStore.Dir())
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "clothesguard-api",
			"time":    time.Now().Format(time.RFC3339),
		})
	})

	// ==================== API Routes ====================
	api := router.Group("/api")
	authRequired := middleware.AuthMiddleware(jwtManager, rdb)
	{
		// Users: registration, login and reads are public; everything
		// else requires a token. The upstream API protected nothing —
		// deliberate hardening.
		users := api.Group("/users")
		{
			users.GET("", userHandler.GetAll)
			users.GET("/:user_id", userHandler.GetOne)
			users.POST("", userHandler.Create)
			users.POST("/login", userHandler.Login)
			users.POST("/logout", authRequired, userHandler.Logout)
			users.PUT("/:user_id", authRequired, userHandler.Update)
			users.DELETE("/:user_id", authRequired, userHandler.Delete)
			users.POST("/:user_id/upload-photo", authRequired, userHandler.UploadPhoto)
		}

		// Sensores: ingestion stays public, devices hold no user token
		sensores := api.Group("/sensores")
		{
			sensores.GET("", sensorHandler.GetAll)
			sensores.POST("", sensorHandler.Create)
		}

		stories := api.Group("/stories")
		{
			stories.GET("", storyHandler.GetAll)
			stories.GET("/:story_id", storyHandler.GetOne)
			stories.GET("/title/:title", storyHandler.GetByTitle)
			stories.POST("", authRequired, storyHandler.Create)
			stories.PUT("/:story_id", authRequired, storyHandler.Update)
			stories.PATCH("/:id/content", authRequired, storyHandler.UpdateContent)
			stories.DELETE("/:id", authRequired, storyHandler.Delete)
		}

		notificaciones := api.Group("/notificaciones")
		{
			notificaciones.GET("", notificationHandler.GetAll)
			notificaciones.GET("/:id", notificationHandler.GetOne)
			notificaciones.GET("/user/:userId", notificationHandler.GetByUser)
			notificaciones.POST("", authRequired, notificationHandler.Create)
			notificaciones.PATCH("/:id/read", authRequired, notificationHandler.MarkRead)
			notificaciones.DELETE("/:id", authRequired, notificationHandler.Delete)
			notificaciones.DELETE("/user/:userId", authRequired, notificationHandler.DeleteByUser)
		}
	}

	// Live event stream (auth via query parameter)
	router.GET("/ws", streamHandler.HandleWebSocket)

	// ==================== Start Server ====================
	srv := &http.Server{
		Addr:         ":" + cfg.App.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ Server failed: %v", err)
		}
	}()

	log.Printf("🌐 ClothesGuard API running on http://0.0.0.0:%s", cfg.App.Port)
	log.Printf("📋 API docs: http://0.0.0.0:%s/swagger/index.html", cfg.App.Port)
	log.Printf("🔌 Event stream: ws://0.0.0.0:%s/ws?token=<jwt>", cfg.App.Port)

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("🛑 Shutting down server...")

	// Give ongoing requests 5 seconds to complete
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	hubCancel()
	log.Println("✅ Server exited gracefully")
}
