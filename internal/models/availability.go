package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const AvailabilityColName = "availability"

// Days in calendar order; weeklyHours always carries all seven.
var WeekDays = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

type TimeSlot struct {
	Start string `bson:"start" json:"start"`
	End   string `bson:"end" json:"end"`
}

type DayAvailability struct {
	Day       string     `bson:"day" json:"day" validate:"required,oneof=Sun Mon Tue Wed Thu Fri Sat"`
	Available bool       `bson:"available" json:"available"`
	TimeSlots []TimeSlot `bson:"timeSlots" json:"timeSlots"`
}

// Availability is a user's weekly schedule template. At most one record
// exists per user; it is created lazily on first access.
type Availability struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User        primitive.ObjectID `bson:"user" json:"user"`
	WeeklyHours []DayAvailability  `bson:"weeklyHours" json:"weeklyHours"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt   time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// DefaultWeeklyHours returns the template applied on first creation:
// weekdays open 9 to 5, weekends off with no slots.
func DefaultWeeklyHours() []DayAvailability {
	hours := make([]DayAvailability, 0, len(WeekDays))
	for _, day := range WeekDays {
		weekday := day != "Sun" && day != "Sat"
		slots := []TimeSlot{}
		if weekday {
			slots = []TimeSlot{{Start: "9:00 AM", End: "5:00 PM"}}
		}
		hours = append(hours, DayAvailability{
			Day:       day,
			Available: weekday,
			TimeSlots: slots,
		})
	}
	return hours
}

// NewAvailability builds a record for a user, filling in the default
// weekly hours when none are given.
func NewAvailability(userId primitive.ObjectID, weeklyHours []DayAvailability) *Availability {
	if len(weeklyHours) == 0 {
		weeklyHours = DefaultWeeklyHours()
	}
	now := time.Now()
	return &Availability{
		ID:          primitive.NewObjectID(),
		User:        userId,
		WeeklyHours: weeklyHours,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}
