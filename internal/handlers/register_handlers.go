package handlers

import (
	"log/slog"

	"github.com/SscSPs/debt_tracker_app/cmd/docs"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/middleware"
	"github.com/SscSPs/debt_tracker_app/internal/platform/config"
	"github.com/SscSPs/debt_tracker_app/internal/platform/metrics"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const defaultLoginRateLimit = "5-M"

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	db Pinger,
) {
	registerValidators()

	r.GET("/health", getHealth)
	r.GET("/ready", readinessHandler(db))
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	setupAPIV1Routes(r, cfg, services)

	// Swagger routes (typically public or conditionally available)
	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
) {
	public := r.Group("/api/v1")
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret))

	RegisterAuthRoutes(public, v1, services, loginRateLimit(cfg.LoginRateLimit))

	backOffice := v1.Group("", middleware.RequireRoles(domain.RoleAdmin, domain.RoleSuperAdmin))
	RegisterClientRoutes(backOffice, services.Client)
	RegisterLedgerRoutes(backOffice, services.Ledger)
	RegisterDashboardRoutes(backOffice, services.Aggregation, cfg.Location)
	RegisterReportingRoutes(backOffice, services.Aggregation, services.Reporting)
	RegisterReportTemplateRoutes(backOffice, services.ReportTemplate)

	userAdmin := v1.Group("", middleware.RequireRoles(domain.RoleSuperAdmin))
	RegisterUserRoutes(userAdmin, services.User)
}

func loginRateLimit(formatted string) gin.HandlerFunc {
	limit, err := middleware.NewIPRateLimit(formatted)
	if err != nil {
		slog.Warn("Invalid LOGIN_RATE_LIMIT, using default",
			slog.String("value", formatted), slog.String("default", defaultLoginRateLimit))
		limit, _ = middleware.NewIPRateLimit(defaultLoginRateLimit)
	}
	return limit
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
