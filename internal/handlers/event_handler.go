package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cnnct/internal/helpers"
	"github.com/joshua-takyi/cnnct/internal/models"
	"github.com/joshua-takyi/cnnct/internal/services"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type createEventRequest struct {
	Topic           string `json:"topic"`
	Password        string `json:"password"`
	Description     string `json:"description"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime"`
	EndTime         string `json:"endTime"`
	TimeFormat      string `json:"timeFormat"`
	Timezone        string `json:"timezone"`
	Duration        string `json:"duration"`
	BackgroundColor string `json:"backgroundColor"`
	Link            string `json:"link"`
	Emails          string `json:"emails"`
	MeetingType     string `json:"meetingType"`
	Active          *bool  `json:"active"`
}

type updateEventRequest struct {
	Topic           *string `json:"topic"`
	Password        *string `json:"password"`
	Description     *string `json:"description"`
	Date            *string `json:"date"`
	StartTime       *string `json:"startTime"`
	EndTime         *string `json:"endTime"`
	TimeFormat      *string `json:"timeFormat"`
	Timezone        *string `json:"timezone"`
	Duration        *string `json:"duration"`
	BackgroundColor *string `json:"backgroundColor"`
	Link            *string `json:"link"`
	Emails          *string `json:"emails"`
	MeetingType     *string `json:"meetingType"`
	Active          *bool   `json:"active"`
}

type checkConflictRequest struct {
	Date       string `json:"date"`
	StartTime  string `json:"startTime"`
	EndTime    string `json:"endTime"`
	TimeFormat string `json:"timeFormat"`
	EventID    string `json:"eventId"`
}

func ListEvents(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		events, err := es.ListEvents(c.Request.Context(), userId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.CountedResponse(events, len(events)))
	}
}

func GetEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}
		eventId, ok := parseIDParam(c)
		if !ok {
			return
		}

		event, err := es.GetEvent(c.Request.Context(), userId, eventId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(event, ""))
	}
}

func CreateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var req createEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		active := true
		if req.Active != nil {
			active = *req.Active
		}

		event := &models.Event{
			Topic:           req.Topic,
			Password:        req.Password,
			Description:     req.Description,
			Date:            req.Date,
			StartTime:       req.StartTime,
			EndTime:         req.EndTime,
			TimeFormat:      req.TimeFormat,
			Timezone:        req.Timezone,
			Duration:        req.Duration,
			BackgroundColor: req.BackgroundColor,
			Link:            req.Link,
			Emails:          req.Emails,
			MeetingType:     req.MeetingType,
			Active:          active,
		}

		created, err := es.CreateEvent(c.Request.Context(), userId, event)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "Event created successfully"))
	}
}

func UpdateEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}
		eventId, ok := parseIDParam(c)
		if !ok {
			return
		}

		var req updateEventRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		update := eventUpdateMap(req)
		if len(update) == 0 {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("no fields to update"))
			return
		}

		updated, err := es.UpdateEvent(c.Request.Context(), userId, eventId, update)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(updated, ""))
	}
}

func DeleteEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}
		eventId, ok := parseIDParam(c)
		if !ok {
			return
		}

		if err := es.DeleteEvent(c.Request.Context(), userId, eventId); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{}, "Event deleted successfully"))
	}
}

func ToggleEvent(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}
		eventId, ok := parseIDParam(c)
		if !ok {
			return
		}

		event, err := es.ToggleEvent(c.Request.Context(), userId, eventId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(event, ""))
	}
}

// CheckConflict is the dry-run endpoint: it reports the overlap decision
// without persisting anything.
func CheckConflict(es *services.EventService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var req checkConflictRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		excludeId := primitive.NilObjectID
		if strings.TrimSpace(req.EventID) != "" {
			parsed, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.EventID))
			if err != nil {
				c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid eventId format"))
				return
			}
			excludeId = parsed
		}

		hasConflict, err := es.CheckConflict(c.Request.Context(), userId, req.Date, req.StartTime, req.EndTime, req.TimeFormat, excludeId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"success":     true,
			"hasConflict": hasConflict,
		})
	}
}

func eventUpdateMap(req updateEventRequest) map[string]interface{} {
	update := map[string]interface{}{}
	set := func(key string, v *string) {
		if v != nil {
			update[key] = *v
		}
	}
	set("topic", req.Topic)
	set("password", req.Password)
	set("description", req.Description)
	set("date", req.Date)
	set("startTime", req.StartTime)
	set("endTime", req.EndTime)
	set("timeFormat", req.TimeFormat)
	set("timezone", req.Timezone)
	set("duration", req.Duration)
	set("backgroundColor", req.BackgroundColor)
	set("link", req.Link)
	set("emails", req.Emails)
	set("meetingType", req.MeetingType)
	if req.Active != nil {
		update["active"] = *req.Active
	}
	return update
}
