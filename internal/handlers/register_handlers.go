package handlers

import (
	"net/http"

	"github.com/SscSPs/treeservice_ops/cmd/docs"
	portssvc "github.com/SscSPs/treeservice_ops/internal/core/ports/services"
	"github.com/SscSPs/treeservice_ops/internal/dto"
	"github.com/SscSPs/treeservice_ops/internal/middleware"
	"github.com/SscSPs/treeservice_ops/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	// Request DTOs bind decimal fields; the validator must know how to read them.
	dto.RegisterValidators()

	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	setupAPIV1Routes(r, cfg, services, limiterInstance)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
	limiterInstance *limiter.Limiter,
) {
	// API keys are checked first; requests without one fall through to JWT auth.
	v1 := r.Group("/api/v1",
		middleware.APITokenAuth(service.APIToken),
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer),
		middleware.RequireTenant(),
	)
	if limiterInstance != nil {
		v1.Use(middleware.RateLimit(limiterInstance))
	}

	registerV1Routes(v1, service)
}

// registerV1Routes delegates route registration to the per-resource handlers.
func registerV1Routes(v1 *gin.RouterGroup, service *portssvc.ServiceContainer) {
	registerCustomerRoutes(v1, service.Customer)
	registerEmployeeRoutes(v1, service.Employee, service.Workforce)
	registerEquipmentRoutes(v1, service.Equipment)
	registerLoadoutRoutes(v1, service.Loadout)
	registerJobRoutes(v1, service.Job, service.LineItem, service.TimeLog, service.Report)
	registerTimeLogRoutes(v1, service.TimeLog)
	registerWorkforceRoutes(v1, service.Workforce)
	registerReportingRoutes(v1, service.Report, service.Analytics)
	registerCalculatorRoutes(v1, service.Calculator)
	RegisterAPITokenRoutes(v1, service.APIToken)
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	// Swagger setup
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
