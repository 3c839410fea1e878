package app

import (
	"fmt"
	"net/http"
	"time"

	"issavie_backend/database"
	"issavie_backend/internal/auth"
	"issavie_backend/internal/config"
	"issavie_backend/internal/email"
	"issavie_backend/internal/handlers"
	"issavie_backend/internal/logger"
	"issavie_backend/internal/metrics"
	"issavie_backend/internal/middleware"
	"issavie_backend/internal/routes"
	"issavie_backend/internal/services"
	"issavie_backend/internal/validator"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func Run() {
	config.LoadConfig()
	cfg := config.AppConfig

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	auth.Init(cfg.JWT.Secret, time.Duration(cfg.JWT.TTL)*time.Minute)

	logger.Info("Connecting to database...")
	gormDB, err := database.ConnectGorm()
	if err != nil {
		logger.Fatal("Failed to connect to database", "error", err)
	}
	sqlDB, err := gormDB.DB()
	if err != nil {
		logger.Fatal("Failed to get *sql.DB from GORM", "error", err)
	}
	if err = sqlDB.Ping(); err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	logger.Info("Database connected")

	if err := database.AutoMigrate(); err != nil {
		logger.Fatal("Migration failed", "error", err)
	}

	ginRouter := SetupRouter(cfg, gormDB)

	address := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info(fmt.Sprintf("Server starting on %s", address))
	if err := ginRouter.Run(address); err != nil {
		logger.Fatal("Server startup error", "error", err)
	}
}

func SetupRouter(cfg *config.Config, gormDB *gorm.DB) *gin.Engine {
	policy := auth.PolicyFromConfig(cfg.Server.UnlockAll)
	if cfg.Server.UnlockAll {
		logger.Warn("Access policy override active: every member passes role checks")
	}

	serviceContainer := initializeServices(cfg)
	appHandlers := initializeHandlers(serviceContainer, policy)

	ginRouter := initializeGinRouter(gormDB, cfg)
	routes.RegisterRoutes(ginRouter, appHandlers)

	return ginRouter
}

func initializeServices(cfg *config.Config) *services.ServiceContainer {
	var emailService email.Provider
	if cfg.Email.SMTPHost != "" {
		provider, err := email.NewSMTPProvider(email.Config{
			Host:      cfg.Email.SMTPHost,
			Port:      cfg.Email.SMTPPort,
			Username:  cfg.Email.SMTPUsername,
			Password:  cfg.Email.SMTPPassword,
			FromEmail: cfg.Email.FromEmail,
			FromName:  cfg.Email.FromName,
		})
		if err != nil {
			logger.Fatal("Failed to initialize SMTP provider", "error", err)
		}
		emailService = provider
	} else {
		logger.Warn("SMTP not configured, magic links are logged instead of sent")
		emailService = email.NewLogProvider()
	}

	notificationService := services.NewNotificationService()

	return &services.ServiceContainer{
		AuthService:          services.NewAuthService(emailService, cfg.Server.FrontendURL),
		TripService:          services.NewTripService(),
		MemberService:        services.NewMemberService(),
		InviteService:        services.NewInviteService(cfg.Server.FrontendURL),
		ItineraryService:     services.NewItineraryService(notificationService),
		ChangeRequestService: services.NewChangeRequestService(notificationService),
		AnnouncementService:  services.NewAnnouncementService(notificationService),
		CommentService:       services.NewCommentService(),
		EssentialsService:    services.NewEssentialsService(notificationService),
		NotificationService:  notificationService,
		AnalyticsService:     services.NewAnalyticsService(),
		ExportService:        services.NewExportService(),
		EmailService:         emailService,
	}
}

func initializeHandlers(services *services.ServiceContainer, policy auth.AccessPolicy) *handlers.AppHandlers {
	customValidator := validator.New()
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:          handlers.NewAuthHandler(baseHandler, services.AuthService),
		TripHandler:          handlers.NewTripHandler(baseHandler, policy, services.TripService, services.MemberService, services.InviteService),
		InviteHandler:        handlers.NewInviteHandler(baseHandler, services.InviteService),
		ItineraryHandler:     handlers.NewItineraryHandler(baseHandler, policy, services.ItineraryService, services.ExportService),
		ChangeRequestHandler: handlers.NewChangeRequestHandler(baseHandler, policy, services.ChangeRequestService),
		AnnouncementHandler:  handlers.NewAnnouncementHandler(baseHandler, policy, services.AnnouncementService, services.CommentService),
		EssentialsHandler:    handlers.NewEssentialsHandler(baseHandler, policy, services.EssentialsService),
		NotificationHandler:  handlers.NewNotificationHandler(baseHandler, services.NotificationService),
		AnalyticsHandler:     handlers.NewAnalyticsHandler(baseHandler, services.AnalyticsService),
	}
}

func initializeGinRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.CORSMiddleware([]string{cfg.Server.FrontendURL}))
	router.Use(metrics.Middleware())
	router.Use(middleware.DBMiddleware(db))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", metrics.Handler())

	return router
}
