package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/joshua-takyi/cnnct/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type EventService struct {
	eventRepo models.EventRepo
}

func NewEventService(eventRepo models.EventRepo) *EventService {
	return &EventService{
		eventRepo: eventRepo,
	}
}

func (es *EventService) ListEvents(ctx context.Context, userId primitive.ObjectID) ([]*models.Event, error) {
	if userId.IsZero() {
		return nil, fmt.Errorf("invalid user ID")
	}
	return es.eventRepo.ListEventsByUser(ctx, userId)
}

func (es *EventService) GetEvent(ctx context.Context, userId, eventId primitive.ObjectID) (*models.Event, error) {
	event, err := es.eventRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if event.User != userId {
		return nil, models.ErrNotOwner
	}
	return event, nil
}

// CreateEvent computes the conflict flag against the owner's active events
// on the same date and persists it on the new event.
func (es *EventService) CreateEvent(ctx context.Context, userId primitive.ObjectID, event *models.Event) (*models.Event, error) {
	event.User = userId
	if err := models.Validate.Struct(event); err != nil {
		return nil, asValidationError(err)
	}

	hasConflict, err := es.CheckConflict(ctx, userId, event.Date, event.StartTime, event.EndTime, event.TimeFormat, primitive.NilObjectID)
	if err != nil {
		return nil, err
	}
	event.Conflict = hasConflict

	return es.eventRepo.CreateEvent(ctx, event)
}

// UpdateEvent applies a partial update. When any of the date or time fields
// is touched, the conflict flag is recomputed against the effective values,
// excluding the event itself from the candidate set.
func (es *EventService) UpdateEvent(ctx context.Context, userId, eventId primitive.ObjectID, update map[string]interface{}) (*models.Event, error) {
	event, err := es.eventRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if event.User != userId {
		return nil, models.ErrNotOwner
	}

	if err := models.Validate.Struct(mergeEventUpdate(event, update)); err != nil {
		return nil, asValidationError(err)
	}

	if touchesSchedule(update) {
		date := stringField(update, "date", event.Date)
		startTime := stringField(update, "startTime", event.StartTime)
		endTime := stringField(update, "endTime", event.EndTime)
		timeFormat := stringField(update, "timeFormat", event.TimeFormat)

		hasConflict, err := es.CheckConflict(ctx, userId, date, startTime, endTime, timeFormat, eventId)
		if err != nil {
			return nil, err
		}
		update["conflict"] = hasConflict
	}

	return es.eventRepo.UpdateEvent(ctx, eventId, update)
}

func (es *EventService) DeleteEvent(ctx context.Context, userId, eventId primitive.ObjectID) error {
	event, err := es.eventRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return err
	}
	if event.User != userId {
		return models.ErrNotOwner
	}
	return es.eventRepo.DeleteEvent(ctx, eventId)
}

// ToggleEvent flips the active flag. Inactive events drop out of every
// conflict scan until toggled back.
func (es *EventService) ToggleEvent(ctx context.Context, userId, eventId primitive.ObjectID) (*models.Event, error) {
	event, err := es.eventRepo.GetEventByID(ctx, eventId)
	if err != nil {
		return nil, err
	}
	if event.User != userId {
		return nil, models.ErrNotOwner
	}

	return es.eventRepo.UpdateEvent(ctx, eventId, map[string]interface{}{"active": !event.Active})
}

// CheckConflict decides whether the given interval overlaps any of the
// user's active events on the date. The result is not persisted here.
func (es *EventService) CheckConflict(ctx context.Context, userId primitive.ObjectID, date, startTime, endTime, timeFormat string, excludeId primitive.ObjectID) (bool, error) {
	candidates, err := es.eventRepo.FindConflictCandidates(ctx, userId, date, excludeId)
	if err != nil {
		return false, err
	}
	return models.HasOverlap(candidates, startTime, endTime, timeFormat), nil
}

// mergeEventUpdate overlays the partial update on a copy of the stored event
// so the full schema constraints apply to the document as it would exist
// after the write, not only to the touched fields.
func mergeEventUpdate(event *models.Event, update map[string]interface{}) *models.Event {
	merged := *event
	fields := map[string]*string{
		"topic":           &merged.Topic,
		"password":        &merged.Password,
		"description":     &merged.Description,
		"date":            &merged.Date,
		"startTime":       &merged.StartTime,
		"endTime":         &merged.EndTime,
		"timeFormat":      &merged.TimeFormat,
		"timezone":        &merged.Timezone,
		"duration":        &merged.Duration,
		"backgroundColor": &merged.BackgroundColor,
		"link":            &merged.Link,
		"emails":          &merged.Emails,
		"meetingType":     &merged.MeetingType,
	}
	for key, dst := range fields {
		if v, ok := update[key].(string); ok {
			*dst = v
		}
	}
	if v, ok := update["active"].(bool); ok {
		merged.Active = v
	}
	return &merged
}

func touchesSchedule(update map[string]interface{}) bool {
	for _, key := range []string{"date", "startTime", "endTime", "timeFormat"} {
		if _, ok := update[key]; ok {
			return true
		}
	}
	return false
}

func stringField(update map[string]interface{}, key, fallback string) string {
	if v, ok := update[key].(string); ok {
		return v
	}
	return fallback
}

func asValidationError(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return models.NewValidationError(verrs[0].Field(), "failed on "+verrs[0].Tag())
	}
	return err
}
