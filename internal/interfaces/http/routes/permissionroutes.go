package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/opolancoh/employee-permissions/internal/interfaces/http/handlers"
)

// PermissionRouteConfig holds dependencies for permission routes.
type PermissionRouteConfig struct {
	PermissionHandler    *handlers.PermissionHandler
	ReferenceDataHandler *handlers.ReferenceDataHandler
	// RateLimit guards the write endpoints when set.
	RateLimit gin.HandlerFunc
}

func (cfg *PermissionRouteConfig) guarded(h gin.HandlerFunc) []gin.HandlerFunc {
	if cfg.RateLimit == nil {
		return []gin.HandlerFunc{h}
	}
	return []gin.HandlerFunc{cfg.RateLimit, h}
}

// SetupPermissionRoutes configures permission and reference data routes under /api.
func SetupPermissionRoutes(engine *gin.Engine, cfg *PermissionRouteConfig) {
	api := engine.Group("/api")

	permissions := api.Group("/permissions")
	{
		permissions.GET("", cfg.PermissionHandler.GetPermissions)
		permissions.POST("", cfg.guarded(cfg.PermissionHandler.RequestPermission)...)
		permissions.PUT("", cfg.guarded(cfg.PermissionHandler.ModifyPermission)...)
	}

	api.GET("/employees", cfg.ReferenceDataHandler.ListEmployees)
	api.GET("/permission-types", cfg.ReferenceDataHandler.ListPermissionTypes)
}
