package router

import (
	"time"

	"github.com/oksasatya/go-ddd-blog-api/internal/container"
	handlers "github.com/oksasatya/go-ddd-blog-api/internal/interface/http"
	"github.com/oksasatya/go-ddd-blog-api/internal/interface/middleware"
	"github.com/oksasatya/go-ddd-blog-api/internal/router/modules"
)

// InitModules initializes all application modules and registers them with the router registry
// This function should be called once during application startup to wire up all modules
func InitModules(r *Registry, c *container.Container) {
	cfg := c.Config

	writeLimit := middleware.RateLimit(c.Redis, cfg.RateLimitWritesPerMin, time.Minute, middleware.KeyByIP(), middleware.AllowPrivateIP())

	r.Add(modules.NewHealthModule(handlers.NewHealthHandler(c.HealthService)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(c.UserService, c.Logger), writeLimit))
	r.Add(modules.NewPostModule(handlers.NewPostHandler(c.PostService, c.Logger), writeLimit))

	if cfg.MetricsEnabled {
		r.AddRoot(modules.NewDebugModule())
	}
	if cfg.SwaggerEnabled {
		r.AddRoot(modules.NewDocsModule())
	}
}
