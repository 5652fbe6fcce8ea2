package routes

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cnnct/internal/container"
	"github.com/joshua-takyi/cnnct/internal/handlers"
	"github.com/joshua-takyi/cnnct/internal/middleware"
)

// SetupRoutes configures all routes with the dependency container
func SetupRoutes(container *container.Container) *gin.Engine {
	if container.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     container.Config.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
	}))

	// Add middleware
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(container.Logger))
	r.Use(middleware.ErrorHandler(container.Logger))
	r.Use(gin.Recovery())

	// API version 1
	v1 := r.Group("/api/v1")
	// roughly 100 requests per 15 minutes per IP
	v1.Use(middleware.RateLimit(middleware.NewRateLimiter(100.0/900.0, 20)))
	{
		// Health check
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"status":  "OK",
				"service": "cnnct-api",
			})
		})

		// public routes
		v1.POST("/auth/register", handlers.Register(container.UserService))
		v1.POST("/auth/login", handlers.Login(container.UserService))
	}

	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware(container.Config.JWTSecret, container.Logger))

	protected.GET("/auth/me", handlers.GetMe(container.UserService))

	userRoutes := protected.Group("/users")
	{
		userRoutes.PUT("/updatedetails", handlers.UpdateDetails(container.UserService))
		userRoutes.PUT("/updatepassword", handlers.UpdatePassword(container.UserService))
	}

	availabilityRoutes := protected.Group("/availability")
	{
		availabilityRoutes.GET("", handlers.GetAvailability(container.AvailabilityService))
		availabilityRoutes.PUT("", handlers.UpdateAvailability(container.AvailabilityService))
	}

	eventRoutes := protected.Group("/events")
	{
		eventRoutes.GET("", handlers.ListEvents(container.EventService))
		eventRoutes.POST("", handlers.CreateEvent(container.EventService))
		eventRoutes.POST("/check-conflict", handlers.CheckConflict(container.EventService))
		eventRoutes.GET("/:id", handlers.GetEvent(container.EventService))
		eventRoutes.PUT("/:id", handlers.UpdateEvent(container.EventService))
		eventRoutes.DELETE("/:id", handlers.DeleteEvent(container.EventService))
		eventRoutes.PUT("/:id/toggle", handlers.ToggleEvent(container.EventService))
	}

	bookingRoutes := protected.Group("/bookings")
	{
		bookingRoutes.GET("", handlers.ListBookings(container.BookingService))
		bookingRoutes.POST("", handlers.CreateBooking(container.BookingService))
		bookingRoutes.GET("/:id", handlers.GetBooking(container.BookingService))
		bookingRoutes.PUT("/:id/status", handlers.UpdateBookingStatus(container.BookingService))
		bookingRoutes.DELETE("/:id", handlers.DeleteBooking(container.BookingService))
	}

	return r
}
