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

type participantRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Selected *bool  `json:"selected"`
	Avatar   string `json:"avatar"`
}

type createBookingRequest struct {
	Title            string               `json:"title"`
	Date             string               `json:"date"`
	StartTime        string               `json:"startTime"`
	EndTime          string               `json:"endTime"`
	Participants     string               `json:"participants"`
	Event            string               `json:"event"`
	ParticipantsList []participantRequest `json:"participantsList"`
}

type updateBookingStatusRequest struct {
	Status           string               `json:"status"`
	ParticipantsList []participantRequest `json:"participantsList"`
}

// participantsFromRequest converts the wire shape, defaulting selected to
// true when the field is absent.
func participantsFromRequest(list []participantRequest) []models.Participant {
	if list == nil {
		return nil
	}
	out := make([]models.Participant, 0, len(list))
	for _, p := range list {
		selected := true
		if p.Selected != nil {
			selected = *p.Selected
		}
		out = append(out, models.Participant{
			Name:     p.Name,
			Email:    p.Email,
			Selected: selected,
			Avatar:   p.Avatar,
		})
	}
	return out
}

func ListBookings(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		bookings, err := bs.ListBookings(c.Request.Context(), userId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.CountedResponse(bookings, len(bookings)))
	}
}

func GetBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}
		bookingId, ok := parseIDParam(c)
		if !ok {
			return
		}

		booking, err := bs.GetBooking(c.Request.Context(), userId, bookingId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(booking, ""))
	}
}

func CreateBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var req createBookingRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		eventId, err := primitive.ObjectIDFromHex(strings.TrimSpace(req.Event))
		if err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid event id format"))
			return
		}

		booking := &models.Booking{
			Title:            req.Title,
			Date:             req.Date,
			StartTime:        req.StartTime,
			EndTime:          req.EndTime,
			Participants:     req.Participants,
			ParticipantsList: participantsFromRequest(req.ParticipantsList),
			Event:            eventId,
		}

		created, err := bs.CreateBooking(c.Request.Context(), userId, booking)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusCreated, helpers.SuccessResponse(created, "Booking created successfully"))
	}
}

func UpdateBookingStatus(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}
		bookingId, ok := parseIDParam(c)
		if !ok {
			return
		}

		var req updateBookingStatusRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		booking, err := bs.UpdateBookingStatus(c.Request.Context(), userId, bookingId, req.Status, participantsFromRequest(req.ParticipantsList))
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(booking, ""))
	}
}

func DeleteBooking(bs *services.BookingService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}
		bookingId, ok := parseIDParam(c)
		if !ok {
			return
		}

		if err := bs.DeleteBooking(c.Request.Context(), userId, bookingId); err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(gin.H{}, "Booking deleted successfully"))
	}
}
