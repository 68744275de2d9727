package http

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/staffdir-backend/docs" // registra o documento swagger
	"github.com/rafabene/staffdir-backend/internal/domain/ports"
	"github.com/rafabene/staffdir-backend/internal/handlers/dto"
	"github.com/rafabene/staffdir-backend/internal/handlers/middleware"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/i18n"
	"github.com/rafabene/staffdir-backend/internal/infrastructure/metrics"
)

const healthTimeout = 2 * time.Second

// RouterConfig reúne o que o roteador precisa além dos handlers
type RouterConfig struct {
	Env            string
	BaseURL        string
	CORSOrigins    string
	MaxUploadBytes int64
	AdminEnabled   bool
	Logger         ports.Logger
	I18n           *i18n.Service
	Metrics        *metrics.Metrics
	Gatherer       prometheus.Gatherer
	// HealthCheck verifica o banco; nil considera saudável
	HealthCheck func(ctx context.Context) error
}

// Handlers agrupa os handlers HTTP
type Handlers struct {
	Users     *UserHandler
	Positions *PositionHandler
	Tokens    *TokenHandler
	Pages     *PageHandler
	Admin     *AdminHandler
}

// NewRouter monta o engine Gin com middlewares e rotas
func NewRouter(cfg RouterConfig, h Handlers) *gin.Engine {
	router := gin.New()
	router.HandleMethodNotAllowed = true
	if cfg.MaxUploadBytes > 0 {
		router.MaxMultipartMemory = cfg.MaxUploadBytes
	}
	router.SetHTMLTemplate(Templates())

	router.Use(middleware.RequestID())
	router.Use(middleware.AccessLog(cfg.Logger))
	if cfg.Metrics != nil {
		router.Use(middleware.Metrics(cfg.Metrics))
	}

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.BaseURL)
		c.Next()
	})
	router.Use(middleware.NewI18nMiddleware(cfg.I18n).DetectLanguage())
	router.Use(gin.CustomRecoveryWithWriter(io.Discard, func(c *gin.Context, recovered any) {
		cfg.Logger.Error("panic recovered",
			"panic", recovered,
			"request_id", c.GetString(middleware.RequestIDContextKey),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, dto.InternalErrorResponse(c))
	}))
	router.Use(middleware.CORS(cfg.CORSOrigins))

	router.GET("/health", healthHandler(cfg))
	if cfg.Gatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(cfg.Gatherer, promhttp.HandlerOpts{})))
	}
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/", h.Pages.Index)
	router.POST("/register", limitBody(cfg.MaxUploadBytes), h.Users.Register)
	router.GET("/users", h.Users.ListUsers)
	router.GET("/users/:id", h.Users.GetUser)
	router.GET("/positions", h.Positions.ListPositions)
	router.GET("/token", h.Tokens.GetToken)

	if cfg.AdminEnabled && h.Admin != nil {
		router.POST("/generate", h.Admin.Generate)
		router.GET("/deleteUsers", h.Admin.DeleteAll)
	}

	router.NoRoute(dto.NotFoundProblem)
	router.NoMethod(dto.MethodNotAllowedProblem)

	return router
}

func healthHandler(cfg RouterConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.HealthCheck != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), healthTimeout)
			defer cancel()

			if err := cfg.HealthCheck(ctx); err != nil {
				c.Error(err) //nolint:errcheck
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "env": cfg.Env})
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "env": cfg.Env})
	}
}

// limitBody limita o corpo do registro para não bufferizar uploads gigantes
func limitBody(limit int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit > 0 {
			c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, limit)
		}
		c.Next()
	}
}
