package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"inflou_backend/internal/auth"
	"inflou_backend/internal/config"
	"inflou_backend/internal/database"
	"inflou_backend/internal/email"
	"inflou_backend/internal/handlers"
	"inflou_backend/internal/logger"
	"inflou_backend/internal/middleware"
	"inflou_backend/internal/repositories"
	"inflou_backend/internal/routes"
	"inflou_backend/internal/services"
	"inflou_backend/internal/storage"
	"inflou_backend/internal/validator"
	"inflou_backend/web"
)

const shutdownTimeout = 10 * time.Second

func Run() {
	cfg, err := config.Load("")
	if err != nil {
		// логгер еще не настроен
		logger.Init("production")
		logger.Fatal("Failed to load config", "error", err)
	}

	logger.Init(cfg.Server.Env)
	logger.Info("Logger initialized", "env", cfg.Server.Env)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info("Connecting to database...")
	gormDB, err := database.Open(ctx, cfg)
	if err != nil {
		logger.Fatal("Database unavailable", "error", err)
	}
	defer func() {
		if err := database.Close(gormDB); err != nil {
			logger.WithError(err).Error("Failed to close database")
		}
	}()
	logger.Info("Database connected")

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(ctx, gormDB); err != nil {
			logger.Fatal("Failed to apply migrations", "error", err)
		}
	}

	ginRouter, err := SetupRouter(ctx, cfg, gormDB)
	if err != nil {
		logger.Fatal("Failed to set up router", "error", err)
	}

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           ginRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info(fmt.Sprintf("🚀 Server starting on %s", cfg.Addr()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server startup error", "error", err)
		}
	}()

	<-ctx.Done()
	logger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.WithError(err).Error("Server forced to shutdown")
	}
	logger.Info("Server stopped")
}

// SetupRouter собирает сервисы, хэндлеры и маршруты поверх открытой БД.
func SetupRouter(ctx context.Context, cfg *config.Config, gormDB *gorm.DB) (*gin.Engine, error) {
	storageInstance, err := storage.NewStorage(ctx, storage.ConfigFromApp(cfg))
	if err != nil {
		return nil, fmt.Errorf("initialize storage: %w", err)
	}
	logger.Info("Storage initialized", "type", cfg.Storage.Type)

	customValidator := validator.New()

	// 1. Инициализируем сервисы
	serviceContainer, err := initializeServices(cfg, gormDB, storageInstance, customValidator)
	if err != nil {
		return nil, err
	}

	// 2. Инициализируем хэндлеры
	appHandlers := initializeHandlers(cfg, serviceContainer, customValidator)

	// 3. Инициализируем Gin
	ginRouter, err := initializeGinRouter(cfg)
	if err != nil {
		return nil, err
	}

	// 4. Делегируем регистрацию маршрутов пакету 'routes'
	routes.RegisterRoutes(ginRouter, appHandlers, cfg)

	return ginRouter, nil
}

func initializeServices(
	cfg *config.Config,
	gormDB *gorm.DB,
	storageInstance storage.Storage,
	customValidator *validator.Validator,
) (*services.ServiceContainer, error) {
	hasher, err := auth.NewPasswordHasher(cfg.Auth.PasswordHasher, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	emailProvider := email.NewSMTPProvider(email.ConfigFromApp(cfg))
	if !cfg.MailConfigured() {
		// сайт работает, но форма обратной связи будет отвечать ошибкой
		logger.Warn("SMTP credentials are not configured, contact form is disabled")
	}

	templates, err := email.NewDefaultTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("load email templates: %w", err)
	}
	logger.Info("Email templates loaded", "templates", templates.TemplateNames())

	// --- Инициализация репозиториев ---
	userRepo := repositories.NewUserRepository(gormDB)
	contactRepo := repositories.NewContactRepository(gormDB)

	// --- Инициализация сервисов ---
	authService := services.NewAuthService(userRepo, hasher, storageInstance, customValidator, services.AuthOptions{
		MaxUploadSize:      cfg.Upload.MaxSize,
		AllowedExtensions:  cfg.Upload.AllowedExtensions,
		UniformLoginErrors: cfg.Auth.UniformLoginErrors,
	})
	contactService := services.NewContactService(
		contactRepo,
		emailProvider,
		templates,
		customValidator,
		cfg.Email.ContactRecipient,
		cfg.Server.BaseURL,
	)

	return &services.ServiceContainer{
		AuthService:    authService,
		ContactService: contactService,
	}, nil
}

func initializeHandlers(cfg *config.Config, services *services.ServiceContainer, customValidator *validator.Validator) *handlers.AppHandlers {
	baseHandler := handlers.NewBaseHandler(customValidator)

	return &handlers.AppHandlers{
		AuthHandler:    handlers.NewAuthHandler(baseHandler, services.AuthService),
		ContactHandler: handlers.NewContactHandler(baseHandler, services.ContactService),
		PageHandler:    handlers.NewPageHandler(cfg.Server.BaseURL),
	}
}

func initializeGinRouter(cfg *config.Config) (*gin.Engine, error) {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse page templates: %w", err)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.LoggingMiddleware())
	router.Use(middleware.BodyLimitMiddleware(requestBodyLimit(cfg)))

	router.SetHTMLTemplate(tmpl)
	router.MaxMultipartMemory = cfg.Upload.MaxSize

	return router, nil
}

// requestBodyLimit - две загрузки и поля формы
func requestBodyLimit(cfg *config.Config) int64 {
	if cfg.Upload.MaxSize <= 0 {
		return 0
	}
	return 2*cfg.Upload.MaxSize + 1<<20
}
