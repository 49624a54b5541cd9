package routes

import (
	_ "rental_quotes/docs"
	"rental_quotes/internal/adapter/http/handlers"
	"rental_quotes/internal/adapter/http/middleware"
	"rental_quotes/internal/infrastructure/ratelimit"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// Dependencies are the handlers and guards the router mounts.
type Dependencies struct {
	Quotes       *handlers.QuoteHandler
	AdminQuotes  *handlers.AdminQuoteHandler
	EmailQueue   *handlers.EmailQueueHandler
	PublicLimit  ratelimit.Limiter
	JwtSecret    string
	CronSecret   string
	Logger       *zap.Logger
	IsProduction bool
}

// NewRouter builds the gin engine with every route of the service.
func NewRouter(deps Dependencies) *gin.Engine {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	if deps.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.MaxMultipartMemory = 12 << 20
	setMiddlewares(router, deps.Logger)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, deps)
	addAdminRoutes(v1, deps)
	addCronRoutes(v1, deps)
	return router
}

func setMiddlewares(router *gin.Engine, logger *zap.Logger) {
	router.Use(middleware.RequestLogger(logger))
	router.Use(middleware.Recovery(logger))
}
