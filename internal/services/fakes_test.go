package services

import (
	"context"

	"github.com/joshua-takyi/cnnct/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// In-memory repo fakes standing in for the Mongo-backed stores. The
// candidate filter mirrors the query the real repo issues.

type fakeEventRepo struct {
	events map[primitive.ObjectID]*models.Event
}

func newFakeEventRepo(events ...*models.Event) *fakeEventRepo {
	repo := &fakeEventRepo{events: map[primitive.ObjectID]*models.Event{}}
	for _, e := range events {
		if e.ID.IsZero() {
			e.ID = primitive.NewObjectID()
		}
		repo.events[e.ID] = e
	}
	return repo
}

func (f *fakeEventRepo) CreateEvent(ctx context.Context, event *models.Event) (*models.Event, error) {
	event.BeforeCreate()
	f.events[event.ID] = event
	return event, nil
}

func (f *fakeEventRepo) GetEventByID(ctx context.Context, id primitive.ObjectID) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) ListEventsByUser(ctx context.Context, userId primitive.ObjectID) ([]*models.Event, error) {
	out := []*models.Event{}
	for _, e := range f.events {
		if e.User == userId {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEventRepo) UpdateEvent(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Event, error) {
	event, ok := f.events[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	for key, value := range update {
		switch key {
		case "topic":
			event.Topic = value.(string)
		case "date":
			event.Date = value.(string)
		case "startTime":
			event.StartTime = value.(string)
		case "endTime":
			event.EndTime = value.(string)
		case "timeFormat":
			event.TimeFormat = value.(string)
		case "active":
			event.Active = value.(bool)
		case "conflict":
			event.Conflict = value.(bool)
		}
	}
	copied := *event
	return &copied, nil
}

func (f *fakeEventRepo) DeleteEvent(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.events[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.events, id)
	return nil
}

func (f *fakeEventRepo) FindConflictCandidates(ctx context.Context, userId primitive.ObjectID, date string, excludeId primitive.ObjectID) ([]*models.Event, error) {
	var out []*models.Event
	for _, e := range f.events {
		if e.User != userId || e.Date != date || !e.Active {
			continue
		}
		if !excludeId.IsZero() && e.ID == excludeId {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type fakeBookingRepo struct {
	bookings map[primitive.ObjectID]*models.Booking
}

func newFakeBookingRepo(bookings ...*models.Booking) *fakeBookingRepo {
	repo := &fakeBookingRepo{bookings: map[primitive.ObjectID]*models.Booking{}}
	for _, b := range bookings {
		if b.ID.IsZero() {
			b.ID = primitive.NewObjectID()
		}
		repo.bookings[b.ID] = b
	}
	return repo
}

func (f *fakeBookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) (*models.Booking, error) {
	booking.BeforeCreate()
	f.bookings[booking.ID] = booking
	return booking, nil
}

func (f *fakeBookingRepo) GetBookingByID(ctx context.Context, id primitive.ObjectID) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) ListBookingsByUser(ctx context.Context, userId primitive.ObjectID) ([]*models.Booking, error) {
	out := []*models.Booking{}
	for _, b := range f.bookings {
		if b.User == userId {
			out = append(out, b)
		}
	}
	return out, nil
}

func (f *fakeBookingRepo) UpdateBooking(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.Booking, error) {
	booking, ok := f.bookings[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	for key, value := range update {
		switch key {
		case "status":
			booking.Status = value.(string)
		case "tab":
			booking.Tab = value.(string)
		case "participantsList":
			booking.ParticipantsList = value.([]models.Participant)
		case "attendees":
			booking.Attendees = value.(int)
		}
	}
	copied := *booking
	return &copied, nil
}

func (f *fakeBookingRepo) DeleteBooking(ctx context.Context, id primitive.ObjectID) error {
	if _, ok := f.bookings[id]; !ok {
		return models.ErrNotFound
	}
	delete(f.bookings, id)
	return nil
}

type fakeAvailabilityRepo struct {
	byUser map[primitive.ObjectID]*models.Availability
}

func newFakeAvailabilityRepo() *fakeAvailabilityRepo {
	return &fakeAvailabilityRepo{byUser: map[primitive.ObjectID]*models.Availability{}}
}

func (f *fakeAvailabilityRepo) GetAvailabilityByUser(ctx context.Context, userId primitive.ObjectID) (*models.Availability, error) {
	availability, ok := f.byUser[userId]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *availability
	return &copied, nil
}

func (f *fakeAvailabilityRepo) CreateAvailability(ctx context.Context, availability *models.Availability) (*models.Availability, error) {
	f.byUser[availability.User] = availability
	return availability, nil
}

func (f *fakeAvailabilityRepo) ReplaceWeeklyHours(ctx context.Context, userId primitive.ObjectID, weeklyHours []models.DayAvailability) (*models.Availability, error) {
	availability, ok := f.byUser[userId]
	if !ok {
		return nil, models.ErrNotFound
	}
	availability.WeeklyHours = weeklyHours
	copied := *availability
	return &copied, nil
}

type fakeUserRepo struct {
	users map[primitive.ObjectID]*models.User
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	repo := &fakeUserRepo{users: map[primitive.ObjectID]*models.User{}}
	for _, u := range users {
		if u.ID.IsZero() {
			u.ID = primitive.NewObjectID()
		}
		repo.users[u.ID] = u
	}
	return repo
}

func (f *fakeUserRepo) CreateUser(ctx context.Context, user *models.User) (*models.User, error) {
	for _, existing := range f.users {
		if existing.Email == user.Email {
			return nil, models.NewValidationError("email", "already registered")
		}
	}
	user.BeforeCreate()
	f.users[user.ID] = user
	return user, nil
}

func (f *fakeUserRepo) GetUserByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	copied := *user
	return &copied, nil
}

func (f *fakeUserRepo) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, models.ErrNotFound
}

func (f *fakeUserRepo) UpdateUser(ctx context.Context, id primitive.ObjectID, update map[string]interface{}) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, models.ErrNotFound
	}
	for key, value := range update {
		switch key {
		case "firstName":
			user.FirstName = value.(string)
		case "lastName":
			user.LastName = value.(string)
		case "email":
			user.Email = value.(string)
		case "password":
			user.Password = value.(string)
		}
	}
	copied := *user
	return &copied, nil
}
