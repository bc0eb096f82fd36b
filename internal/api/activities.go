package api

import (
	"context"
	"net/http"
	"time"

	"github.com/pehdsa/journey-native/internal/model"
)

type newActivity struct {
	Title    string    `json:"title"`
	OccursAt time.Time `json:"occurs_at"`
}

type activityIDResponse struct {
	ActivityID string `json:"activityId"`
}

type activitiesResponse struct {
	Activities []model.ActivityDay `json:"activities"`
}

// CreateActivity adds an activity to a trip and returns its ID.
func (c *Client) CreateActivity(ctx context.Context, tripID, title string, occursAt time.Time) (string, error) {
	var resp activityIDResponse
	err := c.do(ctx, http.MethodPost, tripPath(tripID, "activities"), newActivity{Title: title, OccursAt: occursAt}, &resp)
	return resp.ActivityID, err
}

// ListActivities returns the trip's activities grouped by day.
func (c *Client) ListActivities(ctx context.Context, tripID string) ([]model.ActivityDay, error) {
	var resp activitiesResponse
	if err := c.do(ctx, http.MethodGet, tripPath(tripID, "activities"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Activities, nil
}
