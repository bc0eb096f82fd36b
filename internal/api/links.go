package api

import (
	"context"
	"net/http"

	"github.com/pehdsa/journey-native/internal/model"
)

type newLink struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

type linkIDResponse struct {
	LinkID string `json:"linkId"`
}

type linksResponse struct {
	Links []model.Link `json:"links"`
}

// CreateLink attaches a link to a trip and returns its ID.
func (c *Client) CreateLink(ctx context.Context, tripID, title, url string) (string, error) {
	var resp linkIDResponse
	err := c.do(ctx, http.MethodPost, tripPath(tripID, "links"), newLink{Title: title, URL: url}, &resp)
	return resp.LinkID, err
}

// ListLinks returns the trip's links.
func (c *Client) ListLinks(ctx context.Context, tripID string) ([]model.Link, error) {
	var resp linksResponse
	if err := c.do(ctx, http.MethodGet, tripPath(tripID, "links"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Links, nil
}
