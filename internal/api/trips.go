package api

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/pehdsa/journey-native/internal/model"
)

type tripResponse struct {
	Trip *model.Trip `json:"trip"`
}

type tripIDResponse struct {
	TripID string `json:"tripId"`
}

func tripPath(id string, rest ...string) string {
	p := "/trips/" + url.PathEscape(id)
	for _, r := range rest {
		p += "/" + r
	}
	return p
}

// CreateTrip creates a trip and returns its ID.
func (c *Client) CreateTrip(ctx context.Context, trip model.NewTrip) (string, error) {
	var resp tripIDResponse
	if err := c.do(ctx, http.MethodPost, "/trips", trip, &resp); err != nil {
		return "", err
	}
	if resp.TripID == "" {
		return "", errors.New("trip API returned no trip ID")
	}
	return resp.TripID, nil
}

// GetTrip fetches a trip by ID.
func (c *Client) GetTrip(ctx context.Context, id string) (model.Trip, error) {
	var resp tripResponse
	if err := c.do(ctx, http.MethodGet, tripPath(id), nil, &resp); err != nil {
		return model.Trip{}, err
	}
	if resp.Trip == nil {
		return model.Trip{}, &APIError{Method: http.MethodGet, Path: tripPath(id), StatusCode: http.StatusNotFound, Message: "trip not found"}
	}
	return *resp.Trip, nil
}

// UpdateTrip changes a trip's destination and dates.
func (c *Client) UpdateTrip(ctx context.Context, id string, update model.TripUpdate) error {
	return c.do(ctx, http.MethodPut, tripPath(id), update, nil)
}

// ConfirmTrip confirms the trip, sending invitations to its guests.
func (c *Client) ConfirmTrip(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodGet, tripPath(id, "confirm"), nil, nil)
}
