package supabase

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/supabase-community/supabase-go"
	"nut-orders-backend/internal/config"
	"nut-orders-backend/internal/models"
)

// Client talks to the Supabase REST (PostgREST) endpoint.
type Client struct {
	Supabase *supabase.Client
	Config   *config.Config
}

func NewClient(cfg *config.Config) (*Client, error) {
	client, err := supabase.NewClient(cfg.SupabaseURL, cfg.SupabasePublishableKey, nil)
	if err != nil {
		return nil, err
	}

	return &Client{
		Supabase: client,
		Config:   cfg,
	}, nil
}

// GetProfile loads a single profile row by user id.
func (c *Client) GetProfile(userID uuid.UUID) (*models.Profile, error) {
	var profiles []models.Profile
	_, err := c.Supabase.From("profiles").
		Select("id,full_name,phone_number,email,profile_avatar,user_type", "", false).
		Eq("id", userID.String()).
		ExecuteTo(&profiles)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch profile: %w", err)
	}
	if len(profiles) == 0 {
		return nil, fmt.Errorf("%w: profile %s", models.ErrNotFound, userID)
	}
	return &profiles[0], nil
}
