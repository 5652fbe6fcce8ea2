package container

import (
	"context"
	"log/slog"

	"github.com/joshua-takyi/cnnct/internal/config"
	"github.com/joshua-takyi/cnnct/internal/models"
	"github.com/joshua-takyi/cnnct/internal/services"
	"go.mongodb.org/mongo-driver/mongo"
)

// Container holds all application dependencies
type Container struct {
	Logger        *slog.Logger
	Config        *config.Config
	MongoDBClient *mongo.Client

	UserService         *services.UserService
	EventService        *services.EventService
	BookingService      *services.BookingService
	AvailabilityService *services.AvailabilityService
}

// NewContainer creates a new dependency injection container
func NewContainer(logger *slog.Logger, cfg *config.Config, mongoDBClient *mongo.Client) *Container {
	repo := models.MongodbNewRepo(mongoDBClient)

	// Index creation is best-effort; the app still works without them.
	ctx := context.Background()
	if err := repo.EnsureEventIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure event indexes", "error", err)
	}
	if err := repo.EnsureAvailabilityIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure availability indexes", "error", err)
	}
	if err := repo.EnsureUserIndexes(ctx); err != nil {
		logger.Warn("Failed to ensure user indexes", "error", err)
	}

	userService := services.NewUserService(repo, cfg.JWTSecret, cfg.JWTExpire)
	eventService := services.NewEventService(repo)
	bookingService := services.NewBookingService(repo, repo)
	availabilityService := services.NewAvailabilityService(repo)

	return &Container{
		Logger:              logger,
		Config:              cfg,
		MongoDBClient:       mongoDBClient,
		UserService:         userService,
		EventService:        eventService,
		BookingService:      bookingService,
		AvailabilityService: availabilityService,
	}
}
