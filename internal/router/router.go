package router

import (
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"github.com/Antonio12313/mexase-api/internal/api"
	"github.com/Antonio12313/mexase-api/internal/middleware"
)

// Handlers groups the API handlers the router mounts.
type Handlers struct {
	Auth         *api.AuthHandler
	Wizard       *api.WizardHandler
	Patient      *api.PatientHandler
	Nutritionist *api.NutritionistHandler
	Dashboard    *api.DashboardHandler
}

// SetupRouter configures the application routes
func SetupRouter(h Handlers, validator middleware.TokenValidator, redisClient *redis.Client, corsOrigins []string) *gin.Engine {
	router := gin.Default()

	router.Use(middleware.CORS(corsOrigins))

	v1 := router.Group("/api/v1")

	// Login runs before authentication; limit it per client address.
	login := v1.Group("")
	if redisClient != nil {
		login.Use(middleware.NewLoginRateLimiter(redisClient).IPRateLimitMiddleware())
	}
	h.Auth.RegisterRoutes(login)

	protected := v1.Group("")
	protected.Use(middleware.AuthMiddleware(validator))
	{
		h.Wizard.RegisterRoutes(protected)
		h.Patient.RegisterRoutes(protected)
		h.Nutritionist.RegisterRoutes(protected)
		h.Dashboard.RegisterRoutes(protected)
	}

	return router
}
