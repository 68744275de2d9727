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
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/rafabene/staffdir-backend/internal/domain/ports"
	"github.com/rafabene/staffdir-backend/internal/domain/validation"
	httphandlers "github.com/rafabene/staffdir-backend/internal/handlers/http"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/config"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/i18n"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/logging"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/metrics"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/seed"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/thumbnail"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/tinify"
	"github.com/rafabene/staffdir-backend/internal/services"
)

//	@title			Staff Directory API
//	@version		1.0
//	@description	Personnel directory: registration with photo processing, listing, lookup and positions.
//	@BasePath		/
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level, cfg.Logging.File)
	logger.Info("starting staffdir backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(context.Background(), &cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	if err := postgres.Migrate(db); err != nil {
		logger.Error("failed to migrate database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewEmbeddedService("en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	appMetrics := metrics.New(prometheus.DefaultRegisterer)

	// Inicializar repositories
	personRepo := postgres.NewPersonRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Pipeline de imagem
	processor := thumbnail.NewProcessor(newOptimizer(cfg, logger), appMetrics)

	// Inicializar services
	userService := services.NewUserService(personRepo, logger)
	positionService := services.NewPositionService(personRepo, cfg.Cache.PositionsTTL, logger)
	tokenService := services.NewTokenService()
	registrationService := services.NewRegistrationService(
		validation.New(),
		processor,
		personRepo,
		uow,
		logger,
		services.WithTimeout(cfg.Registration.Timeout),
		services.WithMetrics(appMetrics),
		services.WithPositionsInvalidator(positionService),
	)
	adminService := services.NewAdminService(personRepo, seed.NewGenerator(time.Now().UnixNano()), positionService, logger)

	// Inicializar handlers
	handlers := httphandlers.Handlers{
		Users:     httphandlers.NewUserHandler(registrationService, userService, logger),
		Positions: httphandlers.NewPositionHandler(positionService),
		Tokens:    httphandlers.NewTokenHandler(tokenService),
		Pages:     httphandlers.NewPageHandler(userService),
		Admin:     httphandlers.NewAdminHandler(adminService),
	}

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	if !cfg.Admin.Enabled {
		logger.Info("admin routes disabled")
	}

	router := httphandlers.NewRouter(httphandlers.RouterConfig{
		Env:            cfg.Env,
		BaseURL:        cfg.Server.BaseURL,
		CORSOrigins:    cfg.CORS.AllowedOrigins,
		MaxUploadBytes: cfg.Server.MaxUploadBytes,
		AdminEnabled:   cfg.Admin.Enabled,
		Logger:         logger,
		I18n:           i18nService,
		Metrics:        appMetrics,
		Gatherer:       prometheus.DefaultGatherer,
		HealthCheck:    pingDatabase(db),
	}, handlers)

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	// registros em andamento podem levar até o timeout de registro
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Registration.Timeout+5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}

	logger.Info("server exited")
}

// newOptimizer usa o Tinify quando há chave e, sem ela, mantém o JPEG redimensionado
func newOptimizer(cfg *config.Config, logger ports.Logger) ports.ImageOptimizer {
	if cfg.Tinify.APIKey == "" {
		logger.Warn("TINIFY_API_KEY not set, photos will be stored without compression")
		return tinify.Passthrough{}
	}
	return tinify.NewClient(cfg.Tinify.BaseURL, cfg.Tinify.APIKey, cfg.Tinify.Timeout, logger)
}

func pingDatabase(db *gorm.DB) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return err
		}
		return sqlDB.PingContext(ctx)
	}
}
