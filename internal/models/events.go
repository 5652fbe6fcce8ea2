package models

import (
	"strconv"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const EventColName = "events"

const (
	TimeFormatAM = "AM"
	TimeFormatPM = "PM"
)

const (
	MeetingGoogleMeet = "google_meet"
	MeetingZoom       = "zoom"
	MeetingTeams      = "teams"
	MeetingInPerson   = "in_person"
)

// Event is a bookable time-slot definition owned by a user. The date and
// times are kept as wall-clock strings; comparisons happen in
// minutes-since-midnight via TimeToMinutes.
type Event struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	User            primitive.ObjectID `bson:"user" json:"user"`
	Topic           string             `bson:"topic" json:"topic" validate:"required,max=100"`
	Password        string             `bson:"password" json:"password"`
	Description     string             `bson:"description" json:"description"`
	Date            string             `bson:"date" json:"date" validate:"required"`
	StartTime       string             `bson:"startTime" json:"startTime" validate:"required"`
	EndTime         string             `bson:"endTime" json:"endTime" validate:"required"`
	TimeFormat      string             `bson:"timeFormat" json:"timeFormat" validate:"required,oneof=AM PM"`
	Timezone        string             `bson:"timezone" json:"timezone"`
	Duration        string             `bson:"duration" json:"duration"`
	BackgroundColor string             `bson:"backgroundColor" json:"backgroundColor"`
	Link            string             `bson:"link" json:"link"`
	Emails          string             `bson:"emails" json:"emails"`
	MeetingType     string             `bson:"meetingType" json:"meetingType" validate:"omitempty,oneof=google_meet zoom teams in_person"`
	Active          bool               `bson:"active" json:"active"`
	Conflict        bool               `bson:"conflict" json:"conflict"`
	CreatedAt       time.Time          `bson:"createdAt" json:"createdAt"`
}

// BeforeCreate fills identity and schema defaults. This replaces the
// persistence layer's implicit defaulting with explicit factory logic.
func (e *Event) BeforeCreate() {
	if e.ID.IsZero() {
		e.ID = primitive.NewObjectID()
	}
	e.Topic = strings.TrimSpace(e.Topic)
	if e.Timezone == "" {
		e.Timezone = "(UTC +5:00 Delhi)"
	}
	if e.Duration == "" {
		e.Duration = "1 hour"
	}
	if e.BackgroundColor == "" {
		e.BackgroundColor = "#0066ff"
	}
	if e.MeetingType == "" {
		e.MeetingType = MeetingGoogleMeet
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
}

// TimeToMinutes converts an "H:MM"/"HH:MM" wall-clock string plus an AM/PM
// marker to minutes since midnight. Hours 1-12 are assumed; out-of-range or
// malformed input is not rejected here, validation lives upstream. Missing
// or unparseable minutes count as 0.
func TimeToMinutes(timeStr, format string) int {
	parts := strings.Split(timeStr, ":")
	hours, _ := strconv.Atoi(parts[0])

	if format == TimeFormatPM && hours < 12 {
		hours += 12
	} else if format == TimeFormatAM && hours == 12 {
		hours = 0
	}

	minutes := 0
	if len(parts) > 1 {
		minutes, _ = strconv.Atoi(parts[1])
	}

	return hours*60 + minutes
}

// Overlaps reports whether the [newStart, newEnd) request collides with this
// event's stored interval. The three disjuncts deliberately exclude the
// exact boundary touch (a slot starting when another ends) in the first two,
// while the containment disjunct still fires on equal intervals.
func (e *Event) Overlaps(newStart, newEnd int) bool {
	existingStart := TimeToMinutes(e.StartTime, e.TimeFormat)
	existingEnd := TimeToMinutes(e.EndTime, e.TimeFormat)

	return (newStart >= existingStart && newStart < existingEnd) ||
		(newEnd > existingStart && newEnd <= existingEnd) ||
		(newStart <= existingStart && newEnd >= existingEnd)
}

// HasOverlap runs the overlap rule against a candidate set, short-circuiting
// on the first hit. Candidates are expected to already be filtered to the
// same user, same date, active only.
func HasOverlap(candidates []*Event, startTime, endTime, timeFormat string) bool {
	newStart := TimeToMinutes(startTime, timeFormat)
	newEnd := TimeToMinutes(endTime, timeFormat)

	for _, event := range candidates {
		if event.Overlaps(newStart, newEnd) {
			return true
		}
	}
	return false
}
