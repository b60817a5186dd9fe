package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"nut-orders-backend/internal/models"
)

func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnsupportedMediaType):
		return http.StatusUnsupportedMediaType
	case errors.Is(err, models.ErrInvalidQuantity),
		errors.Is(err, models.ErrInvalidStatus),
		errors.Is(err, models.ErrInvalidPath):
		return http.StatusBadRequest
	case errors.Is(err, models.ErrStorageUnavailable):
		return http.StatusBadGateway
	}
	return http.StatusInternalServerError
}

func respondError(c *gin.Context, summary string, err error) {
	c.JSON(statusForError(err), models.ErrorResponse{
		Error:   summary,
		Message: err.Error(),
	})
}

// uuidParam parses a path parameter, writing a 400 response on failure.
func uuidParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{Error: "invalid " + name})
		return uuid.Nil, false
	}
	return id, true
}
