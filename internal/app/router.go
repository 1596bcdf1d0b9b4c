package app

import (
	"github.com/gin-gonic/gin"
	"github.com/newrelic/go-agent/v3/integrations/nrgin"
	"github.com/newrelic/go-agent/v3/newrelic"
	"github.com/redis/go-redis/v9"

	"carpool/internal/handler"
	"carpool/internal/middleware"
	"carpool/internal/session"
)

// RouterDeps contains all dependencies needed for the router.
type RouterDeps struct {
	AuthHandler    *handler.AuthHandler
	TripHandler    *handler.TripHandler
	VehicleHandler *handler.VehicleHandler
	ProfileHandler *handler.ProfileHandler
	PageHandler    *handler.PageHandler
	Sessions       session.Sessions
	RedisClient    *redis.Client
	NewRelicApp    *newrelic.Application
	TemplatesGlob  string
	DebugRoutes    bool
}

// NewRouter creates a new Gin router with all routes registered.
func NewRouter(deps RouterDeps) *gin.Engine {
	router := gin.New()

	// Global middleware.
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
	router.Use(middleware.CORSMiddleware())

	// Add New Relic middleware if enabled.
	if deps.NewRelicApp != nil {
		router.Use(nrgin.Middleware(deps.NewRelicApp))
	}

	router.Use(middleware.IdempotencyMiddleware(deps.RedisClient))
	router.Use(middleware.SessionMiddleware(deps.Sessions))

	if deps.TemplatesGlob != "" {
		router.LoadHTMLGlob(deps.TemplatesGlob)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Pages.
	router.GET("/", deps.PageHandler.Home)
	router.GET("/login", deps.PageHandler.LoginPage)
	router.GET("/register", deps.PageHandler.RegisterPage)

	pages := router.Group("", middleware.RequirePageSession())
	{
		pages.GET("/trips", deps.PageHandler.TripsPage)
		pages.GET("/profile", deps.PageHandler.ProfilePage)
	}

	// JSON API.
	api := router.Group("/api")
	{
		api.POST("/users", deps.AuthHandler.Register)
		api.POST("/login", deps.AuthHandler.Login)
		api.POST("/logout", deps.AuthHandler.Logout)
		api.GET("/current_user", deps.AuthHandler.CurrentUser)

		api.GET("/trips", deps.TripHandler.List)

		protected := api.Group("", middleware.RequireSession())
		{
			protected.POST("/trips", deps.TripHandler.Create)
			protected.POST("/trips/:id/join", deps.TripHandler.Join)
			protected.GET("/profile", deps.ProfileHandler.Get)
			protected.POST("/vehicles", deps.VehicleHandler.Create)
			protected.GET("/vehicles", deps.VehicleHandler.List)
		}

		// Development-only diagnostics.
		if deps.DebugRoutes {
			api.POST("/add_user", deps.AuthHandler.AddUser)
			api.POST("/simple_login", deps.AuthHandler.Login)
			api.GET("/debug/trips", deps.TripHandler.Debug)
		}
	}

	return router
}
