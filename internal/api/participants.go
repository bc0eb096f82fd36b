package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/pehdsa/journey-native/internal/model"
)

type participantsResponse struct {
	Participants []model.Participant `json:"participants"`
}

type invite struct {
	Email string `json:"email"`
}

type participantIDResponse struct {
	ParticipantID string `json:"participantId"`
}

type confirmParticipant struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// ListParticipants returns everyone invited to a trip.
func (c *Client) ListParticipants(ctx context.Context, tripID string) ([]model.Participant, error) {
	var resp participantsResponse
	if err := c.do(ctx, http.MethodGet, tripPath(tripID, "participants"), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Participants, nil
}

// InviteParticipant invites email to a trip and returns the new participant ID.
func (c *Client) InviteParticipant(ctx context.Context, tripID, email string) (string, error) {
	var resp participantIDResponse
	err := c.do(ctx, http.MethodPost, tripPath(tripID, "invites"), invite{Email: email}, &resp)
	return resp.ParticipantID, err
}

// ConfirmParticipant confirms attendance for a participant.
func (c *Client) ConfirmParticipant(ctx context.Context, participantID, name, email string) error {
	path := "/participants/" + url.PathEscape(participantID) + "/confirm"
	return c.do(ctx, http.MethodPatch, path, confirmParticipant{Name: name, Email: email}, nil)
}
