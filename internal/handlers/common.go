package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/joshua-takyi/cnnct/internal/helpers"
	"github.com/joshua-takyi/cnnct/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// currentUserID reads the authenticated user's id placed in the context by
// the auth middleware.
func currentUserID(c *gin.Context) (primitive.ObjectID, bool) {
	v, exists := c.Get("userID")
	if !exists {
		return primitive.NilObjectID, false
	}
	id, ok := v.(primitive.ObjectID)
	return id, ok
}

func parseIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	raw := strings.TrimSpace(c.Param("id"))
	raw = strings.Trim(raw, "\"'")
	id, err := primitive.ObjectIDFromHex(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse("invalid id format"))
		return primitive.NilObjectID, false
	}
	return id, true
}

// respondError maps the store/service error taxonomy onto status codes.
// Unknown errors go through c.Error to the error-handler middleware.
func respondError(c *gin.Context, err error) {
	var verr *models.ValidationError
	switch {
	case errors.Is(err, models.ErrNotFound):
		c.JSON(http.StatusNotFound, helpers.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, helpers.ErrorResponse(err.Error()))
	case errors.Is(err, models.ErrBadCredentials):
		c.JSON(http.StatusUnauthorized, helpers.ErrorResponse(err.Error()))
	case errors.As(err, &verr):
		c.JSON(http.StatusBadRequest, helpers.ErrorResponse(err.Error()))
	default:
		c.Error(err)
		c.Abort()
	}
}
