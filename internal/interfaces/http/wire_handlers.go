package http

import (
	"github.com/opolancoh/employee-permissions/internal/infrastructure/ratelimit"
	"github.com/opolancoh/employee-permissions/internal/interfaces/http/handlers"
	"github.com/opolancoh/employee-permissions/internal/interfaces/http/middleware"
)

// allHandlers holds all HTTP handler instances used by the application.
type allHandlers struct {
	permissionHandler    *handlers.PermissionHandler
	referenceDataHandler *handlers.ReferenceDataHandler
	healthHandler        *handlers.HealthHandler
}

func (c *Container) initHandlers() {
	c.hdlrs = &allHandlers{
		permissionHandler: handlers.NewPermissionHandler(
			c.ucs.requestPermissionUC,
			c.ucs.modifyPermissionUC,
			c.ucs.listPermissionsUC,
			c.log,
		),
		referenceDataHandler: handlers.NewReferenceDataHandler(
			c.ucs.listEmployeesUC,
			c.ucs.listPermissionTypesUC,
			c.log,
		),
		healthHandler: handlers.NewHealthHandler(c.infra.HealthChecks, c.log),
	}
}

func (c *Container) initMiddlewares() {
	rl := c.cfg.Server.RateLimit
	if !rl.Enabled || c.infra.Redis == nil {
		return
	}
	c.rateLimiter = middleware.NewRateLimiter(
		ratelimit.NewRedisRateLimiter(c.infra.Redis),
		rl.Requests,
		rl.Window(),
		c.log,
	)
}
