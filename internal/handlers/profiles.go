package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"nut-orders-backend/internal/middleware"
	"nut-orders-backend/internal/models"
)

// ProfileSource loads user profiles; *supabase.Client satisfies it.
type ProfileSource interface {
	GetProfile(userID uuid.UUID) (*models.Profile, error)
}

type ProfilesHandler struct {
	profiles ProfileSource
}

func NewProfilesHandler(profiles ProfileSource) *ProfilesHandler {
	return &ProfilesHandler{
		profiles: profiles,
	}
}

// GetMe godoc
// @Summary     Current user profile
// @Description Returns the profile of the authenticated user
// @Tags        profiles
// @Produce     json
// @Security    Bearer
// @Success     200 {object} models.Profile
// @Failure     401 {object} models.ErrorResponse
// @Failure     404 {object} models.ErrorResponse
// @Router      /me [get]
func (h *ProfilesHandler) GetMe(c *gin.Context) {
	userID := middleware.UserID(c)
	if userID == nil {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse{Error: "user id not found"})
		return
	}

	profile, err := h.profiles.GetProfile(*userID)
	if err != nil {
		respondError(c, "failed to get profile", err)
		return
	}

	c.JSON(http.StatusOK, profile)
}
