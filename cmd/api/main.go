package main

import (
	"errors"
	"log"

	_ "backoffice/api/swagger" // swagger docs
	"backoffice/internal/blob"
	"backoffice/internal/config"
	"backoffice/internal/database"
	"backoffice/internal/entity"
	"backoffice/internal/handler"
	"backoffice/internal/permission"
	"backoffice/internal/service"
	"backoffice/internal/session"
	"backoffice/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Back-Office Management API
// @version         1.0
// @description     Multi-tenant municipal management back office: generic entity CRUD, cookie sessions and role permissions.
// @host            localhost:8080
// @BasePath        /
func main() {
	cfg, err := config.New("configs/.env")
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}
	if missing := cfg.MissingRequired(); len(missing) > 0 {
		// Keep serving so the frontend gets a clear 503 instead of a
		// connection refused.
		log.Printf("WARNING: missing required environment variables: %v", missing)
	}

	gin.SetMode(cfg.GinMode)

	db, err := database.NewConnection(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Connected to PostgreSQL successfully.")

	// Set up WebSocket Hub
	wsHub := websocket.NewHub()
	go wsHub.Run()

	// Set up dependencies (Store -> Service -> Handler)
	sessions := session.NewStore(db, cfg.SessionTTL)
	checker := permission.NewDefaultChecker()
	entityStore := entity.NewStore(db)
	entityService := service.NewEntityService(entityStore, checker, wsHub)
	authService := service.NewAuthService(db, sessions)

	blobStore, err := blob.New(cfg.Blob)
	if err != nil && !errors.Is(err, blob.ErrNotConfigured) {
		log.Fatalf("Blob storage setup failed: %v", err)
	}
	var uploads blob.Store
	if blobStore != nil {
		uploads = blobStore
	} else {
		log.Println("Blob storage not configured; uploads disabled")
	}

	// Initialize Handlers
	dataHandler := handler.NewDataHandler(cfg, db, sessions, entityService, authService)
	uploadHandler := handler.NewUploadHandler(uploads, sessions, db)
	setupHandler := handler.NewSetupHandler(cfg, db)

	// Set up Gin Router
	router := gin.Default()

	// CORS configuration
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = cfg.CORSOrigins
	corsConfig.AllowCredentials = true
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Accept"}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	router.Use(cors.New(corsConfig))

	// Swagger route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "OK"})
	})

	// WebSocket endpoint
	router.GET("/ws", func(c *gin.Context) {
		websocket.ServeWs(wsHub, c, sessions, db)
	})

	// Register API Routes
	dataHandler.RegisterRoutes(router.Group(""))
	uploadHandler.RegisterRoutes(router.Group(""))
	setupHandler.RegisterRoutes(router.Group(""))

	log.Printf("Server listening on :%s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
