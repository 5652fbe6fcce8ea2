package services

import (
	"context"
	"fmt"

	"github.com/joshua-takyi/cnnct/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type BookingService struct {
	bookingRepo models.BookingRepo
	eventRepo   models.EventRepo
}

func NewBookingService(bookingRepo models.BookingRepo, eventRepo models.EventRepo) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
	}
}

func (bs *BookingService) ListBookings(ctx context.Context, userId primitive.ObjectID) ([]*models.Booking, error) {
	if userId.IsZero() {
		return nil, fmt.Errorf("invalid user ID")
	}
	return bs.bookingRepo.ListBookingsByUser(ctx, userId)
}

func (bs *BookingService) GetBooking(ctx context.Context, userId, bookingId primitive.ObjectID) (*models.Booking, error) {
	booking, err := bs.bookingRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return nil, err
	}
	if booking.User != userId {
		return nil, models.ErrNotOwner
	}
	return booking, nil
}

// CreateBooking records a reservation against an existing event. Date and
// times come from the request and are stored as-is; they are not re-derived
// from the event later.
func (bs *BookingService) CreateBooking(ctx context.Context, userId primitive.ObjectID, booking *models.Booking) (*models.Booking, error) {
	if _, err := bs.eventRepo.GetEventByID(ctx, booking.Event); err != nil {
		return nil, err
	}

	booking.User = userId
	if err := models.Validate.Struct(booking); err != nil {
		return nil, asValidationError(err)
	}

	return bs.bookingRepo.CreateBooking(ctx, booking)
}

// UpdateBookingStatus moves the booking through its approval state machine
// and keeps the tab bucket and attendee count in step.
func (bs *BookingService) UpdateBookingStatus(ctx context.Context, userId, bookingId primitive.ObjectID, status string, participantsList []models.Participant) (*models.Booking, error) {
	switch status {
	case models.BookingStatusPending, models.BookingStatusAccepted, models.BookingStatusRejected:
	default:
		return nil, models.NewValidationError("status", "must be Pending, Accepted or Rejected")
	}

	booking, err := bs.bookingRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return nil, err
	}
	if booking.User != userId {
		return nil, models.ErrNotOwner
	}

	update := map[string]interface{}{
		"status": status,
		"tab":    models.TabForStatus(status, booking.Tab),
	}

	if participantsList != nil {
		for _, p := range participantsList {
			if err := models.Validate.Struct(p); err != nil {
				return nil, asValidationError(err)
			}
		}
		normalized := models.NormalizeParticipants(participantsList)
		update["participantsList"] = normalized
		update["attendees"] = models.CountAttendees(normalized)
	}

	return bs.bookingRepo.UpdateBooking(ctx, bookingId, update)
}

func (bs *BookingService) DeleteBooking(ctx context.Context, userId, bookingId primitive.ObjectID) error {
	booking, err := bs.bookingRepo.GetBookingByID(ctx, bookingId)
	if err != nil {
		return err
	}
	if booking.User != userId {
		return models.ErrNotOwner
	}
	return bs.bookingRepo.DeleteBooking(ctx, bookingId)
}
