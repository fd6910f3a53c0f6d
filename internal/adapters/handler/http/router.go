package http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/comitanigiacomo/progress-tracker/internal/adapters/handler/http/middleware"
	_ "github.com/comitanigiacomo/progress-tracker/internal/docs"
	"github.com/comitanigiacomo/progress-tracker/internal/metrics"
)

const defaultRateLimit = 100

type RouterDependencies struct {
	SessionHandler  *SessionHandler
	StatsHandler    *StatsHandler
	ExerciseHandler *ExerciseHandler
	AuthHandler     *AuthHandler
	HealthHandler   *HealthHandler

	// TokenValidator guards the write endpoints. Nil leaves them open.
	TokenValidator middleware.TokenValidator

	Redis           redis.Cmdable
	RateLimit       int
	Metrics         *metrics.Manager
	MetricsGatherer prometheus.Gatherer
	EnableDocs      bool
}

func NewRouter(deps RouterDependencies) *gin.Engine {
	router := gin.New()

	router.Use(middleware.Recovery(deps.Metrics), middleware.RequestLogger())

	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
		AllowHeaders:    []string{"Origin", "Content-Type", "Content-Length", "Accept-Encoding", "X-CSRF-Token", "Authorization"},
		ExposeHeaders:   []string{"X-RateLimit-Limit", "X-RateLimit-Remaining", "X-RateLimit-Reset"},
		MaxAge:          12 * time.Hour,
	}))

	if deps.Metrics != nil {
		router.Use(middleware.Metrics(deps.Metrics))
	}

	if deps.Redis != nil {
		limit := deps.RateLimit
		if limit <= 0 {
			limit = defaultRateLimit
		}
		router.Use(middleware.RateLimiterMiddleware(deps.Redis, limit, time.Minute, deps.Metrics))
	}

	if deps.HealthHandler != nil {
		router.GET("/health", deps.HealthHandler.Health)
	}

	if deps.MetricsGatherer != nil {
		router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(deps.MetricsGatherer, promhttp.HandlerOpts{})))
	}

	if deps.EnableDocs {
		router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiV1 := router.Group("/api/v1")

	protected := apiV1.Group("")
	if deps.TokenValidator != nil {
		protected.Use(middleware.AuthMiddleware(deps.TokenValidator))
	}

	if deps.AuthHandler != nil {
		deps.AuthHandler.RegisterRoutes(apiV1)
	}

	deps.SessionHandler.RegisterRoutes(apiV1, protected)
	deps.StatsHandler.RegisterRoutes(apiV1)
	deps.ExerciseHandler.RegisterRoutes(apiV1)

	return router
}
