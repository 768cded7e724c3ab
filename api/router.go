package api

import (
	"net/http"

	"github.com/beka-birhanu/vinom-explorer/api/i"
	"github.com/gin-gonic/gin"
)

// Router manages the HTTP server and its dependencies,
// including controllers and the throttling middleware.
type Router struct {
	addr               string
	baseURL            string
	controllers        []i.Controller
	throttleMiddleware gin.HandlerFunc
	metricsHandler     http.Handler
}

// Config holds configuration settings for creating a new Router instance.
type Config struct {
	Addr               string // Address to listen on
	BaseURL            string // Base URL for API routes
	Controllers        []i.Controller
	ThrottleMiddleware gin.HandlerFunc // Optional; guards routes that run agents
	MetricsHandler     http.Handler    // Optional; served at /metrics
}

// NewRouter creates a new Router instance with the given configuration.
func NewRouter(config Config) *Router {
	return &Router{
		addr:               config.Addr,
		baseURL:            config.BaseURL,
		controllers:        config.Controllers,
		throttleMiddleware: config.ThrottleMiddleware,
		metricsHandler:     config.MetricsHandler,
	}
}

// Handler builds the gin engine with every route registered.
//
// Routes are grouped and managed under the base URL, with the following access levels:
// - Public routes: read-only, never throttled.
// - Throttled routes: run exploration agents, guarded by the throttle middleware.
func (r *Router) Handler() *gin.Engine {
	router := gin.Default()

	if r.metricsHandler != nil {
		router.GET("/metrics", gin.WrapH(r.metricsHandler))
	}

	// Setting up routes under baseURL
	api := router.Group(r.baseURL)

	{
		publicRoutes := api.Group("/v1")
		{
			for _, c := range r.controllers {
				c.RegisterPublic(publicRoutes)
			}
		}

		throttledRoutes := api.Group("/v1")
		if r.throttleMiddleware != nil {
			throttledRoutes.Use(r.throttleMiddleware)
		}
		{
			for _, c := range r.controllers {
				c.RegisterThrottled(throttledRoutes)
			}
		}
	}

	return router
}

// Run starts the HTTP server.
func (r *Router) Run() error {
	gin.ForceConsoleColor()
	return r.Handler().Run(r.addr)
}
