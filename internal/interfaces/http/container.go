package http

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/opolancoh/employee-permissions/internal/domain/permission"
	"github.com/opolancoh/employee-permissions/internal/domain/shared/events"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/config"
	"github.com/opolancoh/employee-permissions/internal/infrastructure/metrics"
	"github.com/opolancoh/employee-permissions/internal/interfaces/http/handlers"
	"github.com/opolancoh/employee-permissions/internal/interfaces/http/middleware"
	"github.com/opolancoh/employee-permissions/internal/shared/logger"
)

// Infrastructure is the set of already-connected backends the container wires
// into use cases. The caller owns their lifecycle.
type Infrastructure struct {
	DB          *gorm.DB
	Redis       *redis.Client
	Publisher   events.OperationPublisher
	SearchIndex permission.SearchIndex
	Metrics     *metrics.Metrics

	// HealthChecks are reported by GET /health, keyed by component name.
	HealthChecks map[string]handlers.HealthCheck
}

// Container holds the repositories, use cases, handlers and middlewares of the
// HTTP surface and wires them together.
type Container struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface
	infra  Infrastructure

	// Repositories
	repos *repositories

	// Use cases
	ucs *allUseCases

	// Handlers
	hdlrs *allHandlers

	// Middlewares
	rateLimiter *middleware.RateLimiter
}

// NewContainer creates a new Container with all dependencies wired together.
// Metrics, Redis and HealthChecks are optional.
func NewContainer(infra Infrastructure, cfg *config.Config, log logger.Interface) *Container {
	c := &Container{
		engine: gin.New(),
		cfg:    cfg,
		log:    log,
		infra:  infra,
	}

	if infra.Metrics != nil {
		c.infra.Publisher = metrics.NewInstrumentedPublisher(infra.Publisher, infra.Metrics)
		c.infra.SearchIndex = metrics.NewInstrumentedSearchIndex(infra.SearchIndex, infra.Metrics)
	}

	c.initRepositories()
	c.initUseCases()
	c.initHandlers()
	c.initMiddlewares()

	return c
}
