package http

import (
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/opolancoh/employee-permissions/internal/interfaces/http/middleware"
	"github.com/opolancoh/employee-permissions/internal/interfaces/http/routes"
	"github.com/opolancoh/employee-permissions/internal/shared/utils"

	_ "github.com/opolancoh/employee-permissions/docs"
)

// Router represents the HTTP router configuration
type Router struct {
	*Container
}

// NewRouter creates a new HTTP router on top of a wired container
func NewRouter(c *Container) *Router {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		utils.RegisterJSONTagNames(v)
	}
	return &Router{Container: c}
}

// SetupRoutes configures all HTTP routes
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.CustomLogger(r.log))
	r.engine.Use(middleware.Recovery(r.log))
	if r.infra.Metrics != nil {
		r.engine.Use(middleware.Metrics(r.infra.Metrics))
	}

	r.engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.engine.GET("/health", r.hdlrs.healthHandler.HealthCheck)

	if r.infra.Metrics != nil && r.cfg.Metrics.Enabled {
		r.engine.GET(r.cfg.Metrics.Path, gin.WrapH(r.infra.Metrics.Handler()))
	}

	routeCfg := &routes.PermissionRouteConfig{
		PermissionHandler:    r.hdlrs.permissionHandler,
		ReferenceDataHandler: r.hdlrs.referenceDataHandler,
	}
	if r.rateLimiter != nil {
		routeCfg.RateLimit = r.rateLimiter.Limit()
	}
	routes.SetupPermissionRoutes(r.engine, routeCfg)
}

// GetEngine returns the Gin engine
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
