package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cnnct/internal/helpers"
	"github.com/joshua-takyi/cnnct/internal/models"
	"github.com/joshua-takyi/cnnct/internal/services"
)

type updateAvailabilityRequest struct {
	WeeklyHours []models.DayAvailability `json:"weeklyHours"`
}

func GetAvailability(as *services.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		availability, err := as.GetAvailability(c.Request.Context(), userId)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(availability, ""))
	}
}

func UpdateAvailability(as *services.AvailabilityService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userId, ok := currentUserID(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, helpers.ErrorResponse("unauthorized"))
			return
		}

		var req updateAvailabilityRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
			return
		}

		availability, err := as.UpdateAvailability(c.Request.Context(), userId, req.WeeklyHours)
		if err != nil {
			respondError(c, err)
			return
		}

		c.JSON(http.StatusOK, helpers.SuccessResponse(availability, ""))
	}
}
