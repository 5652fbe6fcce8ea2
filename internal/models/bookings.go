package models

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const BookingColName = "bookings"

const (
	BookingStatusPending  = "Pending"
	BookingStatusAccepted = "Accepted"
	BookingStatusRejected = "Rejected"
)

const (
	BookingTabUpcoming = "upcoming"
	BookingTabPending  = "pending"
	BookingTabCanceled = "canceled"
	BookingTabPast     = "past"
)

const DefaultAvatar = "/images/avatar.png"

type Participant struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Email    string `bson:"email" json:"email" validate:"required,email"`
	Selected bool   `bson:"selected" json:"selected"`
	Avatar   string `bson:"avatar" json:"avatar"`
}

// Booking is a request against an Event. Date and times are copied from the
// request at creation and never re-derived from the event afterwards.
type Booking struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title            string             `bson:"title" json:"title" validate:"required"`
	Date             string             `bson:"date" json:"date" validate:"required"`
	StartTime        string             `bson:"startTime" json:"startTime" validate:"required"`
	EndTime          string             `bson:"endTime" json:"endTime" validate:"required"`
	Participants     string             `bson:"participants" json:"participants"`
	Status           string             `bson:"status" json:"status" validate:"omitempty,oneof=Pending Accepted Rejected"`
	Attendees        int                `bson:"attendees" json:"attendees"`
	Tab              string             `bson:"tab" json:"tab"`
	ParticipantsList []Participant      `bson:"participantsList" json:"participantsList" validate:"omitempty,dive"`
	Event            primitive.ObjectID `bson:"event" json:"event"`
	User             primitive.ObjectID `bson:"user" json:"user"`
	CreatedAt        time.Time          `bson:"createdAt" json:"createdAt"`
}

func (b *Booking) BeforeCreate() {
	if b.ID.IsZero() {
		b.ID = primitive.NewObjectID()
	}
	b.Title = strings.TrimSpace(b.Title)
	if b.Status == "" {
		b.Status = BookingStatusPending
	}
	if b.Tab == "" {
		b.Tab = BookingTabPending
	}
	b.ParticipantsList = NormalizeParticipants(b.ParticipantsList)
	b.Attendees = CountAttendees(b.ParticipantsList)
	if b.CreatedAt.IsZero() {
		b.CreatedAt = time.Now()
	}
}

func NormalizeParticipants(list []Participant) []Participant {
	out := make([]Participant, len(list))
	for i, p := range list {
		if p.Avatar == "" {
			p.Avatar = DefaultAvatar
		}
		out[i] = p
	}
	return out
}

// CountAttendees keeps the attendees field equal to the number of selected
// participants at the last write.
func CountAttendees(list []Participant) int {
	count := 0
	for _, p := range list {
		if p.Selected {
			count++
		}
	}
	return count
}

// TabForStatus maps an approval status to the booking's display bucket.
// Pending bookings keep their current tab.
func TabForStatus(status, current string) string {
	switch status {
	case BookingStatusAccepted:
		return BookingTabUpcoming
	case BookingStatusRejected:
		return BookingTabCanceled
	}
	return current
}
