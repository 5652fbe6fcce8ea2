package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/joshua-takyi/cnnct/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type AvailabilityService struct {
	availabilityRepo models.AvailabilityRepo
}

func NewAvailabilityService(availabilityRepo models.AvailabilityRepo) *AvailabilityService {
	return &AvailabilityService{
		availabilityRepo: availabilityRepo,
	}
}

// GetAvailability returns the user's weekly template, creating the default
// one (weekdays 9 to 5, weekends off) on first access.
func (as *AvailabilityService) GetAvailability(ctx context.Context, userId primitive.ObjectID) (*models.Availability, error) {
	if userId.IsZero() {
		return nil, fmt.Errorf("invalid user ID")
	}

	availability, err := as.availabilityRepo.GetAvailabilityByUser(ctx, userId)
	if errors.Is(err, models.ErrNotFound) {
		return as.availabilityRepo.CreateAvailability(ctx, models.NewAvailability(userId, nil))
	}
	if err != nil {
		return nil, err
	}
	return availability, nil
}

// UpdateAvailability replaces the whole weeklyHours array, creating the
// record first if the user has never touched it.
func (as *AvailabilityService) UpdateAvailability(ctx context.Context, userId primitive.ObjectID, weeklyHours []models.DayAvailability) (*models.Availability, error) {
	if userId.IsZero() {
		return nil, fmt.Errorf("invalid user ID")
	}
	for _, day := range weeklyHours {
		if err := models.Validate.Struct(day); err != nil {
			return nil, asValidationError(err)
		}
	}

	updated, err := as.availabilityRepo.ReplaceWeeklyHours(ctx, userId, weeklyHours)
	if errors.Is(err, models.ErrNotFound) {
		return as.availabilityRepo.CreateAvailability(ctx, models.NewAvailability(userId, weeklyHours))
	}
	if err != nil {
		return nil, err
	}
	return updated, nil
}
