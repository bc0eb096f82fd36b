// Package apitest provides an in-memory trip API for tests.
package apitest

import (
	"net/http"
	"net/http/httptest"
	"sort"
	"sync"
	"time"

	"github.com/go-chi/chi"
	"github.com/go-chi/render"
	"github.com/google/uuid"

	"github.com/pehdsa/journey-native/internal/model"
	"github.com/pehdsa/journey-native/internal/timecalc"
)

// Server is a fake trip API backed by maps.
type Server struct {
	*httptest.Server

	mu           sync.Mutex
	trips        map[string]*model.Trip
	activities   map[string][]model.Activity
	links        map[string][]model.Link
	participants map[string][]model.Participant
	headers      []http.Header
}

// NewServer starts a fake trip API. It is closed when the test ends.
func NewServer(t interface{ Cleanup(func()) }) *Server {
	s := &Server{
		trips:        map[string]*model.Trip{},
		activities:   map[string][]model.Activity{},
		links:        map[string][]model.Link{},
		participants: map[string][]model.Participant{},
	}

	r := chi.NewRouter()
	r.Use(s.recordHeaders)
	r.Post("/trips", s.createTrip)
	r.Get("/trips/{id}", s.getTrip)
	r.Put("/trips/{id}", s.updateTrip)
	r.Get("/trips/{id}/confirm", s.confirmTrip)
	r.Post("/trips/{id}/activities", s.createActivity)
	r.Get("/trips/{id}/activities", s.listActivities)
	r.Post("/trips/{id}/links", s.createLink)
	r.Get("/trips/{id}/links", s.listLinks)
	r.Get("/trips/{id}/participants", s.listParticipants)
	r.Post("/trips/{id}/invites", s.invite)
	r.Patch("/participants/{id}/confirm", s.confirmParticipant)

	s.Server = httptest.NewServer(r)
	t.Cleanup(s.Close)
	return s
}

// Trip returns a copy of a stored trip.
func (s *Server) Trip(id string) (model.Trip, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.trips[id]
	if !ok {
		return model.Trip{}, false
	}
	return *trip, true
}

// Participants returns the participants of a trip.
func (s *Server) Participants(tripID string) []model.Participant {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]model.Participant(nil), s.participants[tripID]...)
}

// DeleteTrip drops a trip, as if it was removed on the server.
func (s *Server) DeleteTrip(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.trips, id)
}

// Headers returns the headers of every request received so far.
func (s *Server) Headers() []http.Header {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]http.Header(nil), s.headers...)
}

func (s *Server) recordHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.headers = append(s.headers, r.Header.Clone())
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func fail(w http.ResponseWriter, r *http.Request, status int, msg string) {
	render.Status(r, status)
	render.JSON(w, r, map[string]string{"message": msg})
}

// lookup returns the trip named by the URL; the caller must hold s.mu.
func (s *Server) lookup(w http.ResponseWriter, r *http.Request) (*model.Trip, bool) {
	trip, ok := s.trips[chi.URLParam(r, "id")]
	if !ok {
		fail(w, r, http.StatusNotFound, "Trip not found")
		return nil, false
	}
	return trip, true
}

func (s *Server) createTrip(w http.ResponseWriter, r *http.Request) {
	var req model.NewTrip
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.EndsAt.Before(req.StartsAt) {
		fail(w, r, http.StatusBadRequest, "Invalid trip end date")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	id := uuid.NewString()
	s.trips[id] = &model.Trip{ID: id, Destination: req.Destination, StartsAt: req.StartsAt, EndsAt: req.EndsAt}
	owner := req.OwnerName
	s.participants[id] = append(s.participants[id], model.Participant{
		ID: uuid.NewString(), Name: &owner, Email: req.OwnerEmail, IsConfirmed: true,
	})
	for _, email := range req.EmailsToInvite {
		s.participants[id] = append(s.participants[id], model.Participant{ID: uuid.NewString(), Email: email})
	}
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"tripId": id})
}

func (s *Server) getTrip(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.lookup(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, map[string]any{"trip": trip})
}

func (s *Server) updateTrip(w http.ResponseWriter, r *http.Request) {
	var req model.TripUpdate
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.lookup(w, r)
	if !ok {
		return
	}
	trip.Destination, trip.StartsAt, trip.EndsAt = req.Destination, req.StartsAt, req.EndsAt
	render.JSON(w, r, map[string]string{"tripId": trip.ID})
}

func (s *Server) confirmTrip(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.lookup(w, r)
	if !ok {
		return
	}
	trip.IsConfirmed = true
	render.JSON(w, r, map[string]string{"tripId": trip.ID})
}

func (s *Server) createActivity(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Title    string    `json:"title"`
		OccursAt time.Time `json:"occurs_at"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.lookup(w, r)
	if !ok {
		return
	}
	if req.OccursAt.Before(timecalc.StartOfDay(trip.StartsAt)) || req.OccursAt.After(timecalc.NextDay(trip.EndsAt)) {
		fail(w, r, http.StatusBadRequest, "Invalid activity date")
		return
	}
	a := model.Activity{ID: uuid.NewString(), Title: req.Title, OccursAt: req.OccursAt}
	s.activities[trip.ID] = append(s.activities[trip.ID], a)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"activityId": a.ID})
}

func (s *Server) listActivities(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.lookup(w, r)
	if !ok {
		return
	}
	days := []model.ActivityDay{}
	for d := timecalc.StartOfDay(trip.StartsAt); !d.After(trip.EndsAt); d = timecalc.NextDay(d) {
		day := model.ActivityDay{Date: d, Activities: []model.Activity{}}
		for _, a := range s.activities[trip.ID] {
			if timecalc.SameDay(a.OccursAt.In(d.Location()), d) {
				day.Activities = append(day.Activities, a)
			}
		}
		sort.Slice(day.Activities, func(i, j int) bool {
			return day.Activities[i].OccursAt.Before(day.Activities[j].OccursAt)
		})
		days = append(days, day)
	}
	render.JSON(w, r, map[string]any{"activities": days})
}

func (s *Server) createLink(w http.ResponseWriter, r *http.Request) {
	var req model.Link
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.lookup(w, r)
	if !ok {
		return
	}
	req.ID = uuid.NewString()
	s.links[trip.ID] = append(s.links[trip.ID], req)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"linkId": req.ID})
}

func (s *Server) listLinks(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.lookup(w, r)
	if !ok {
		return
	}
	links := append([]model.Link{}, s.links[trip.ID]...)
	render.JSON(w, r, map[string]any{"links": links})
}

func (s *Server) listParticipants(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.lookup(w, r)
	if !ok {
		return
	}
	ps := append([]model.Participant{}, s.participants[trip.ID]...)
	render.JSON(w, r, map[string]any{"participants": ps})
}

func (s *Server) invite(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Email string `json:"email"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	trip, ok := s.lookup(w, r)
	if !ok {
		return
	}
	p := model.Participant{ID: uuid.NewString(), Email: req.Email}
	s.participants[trip.ID] = append(s.participants[trip.ID], p)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, map[string]string{"participantId": p.ID})
}

func (s *Server) confirmParticipant(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		fail(w, r, http.StatusBadRequest, "invalid request body")
		return
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	id := chi.URLParam(r, "id")
	for tripID, ps := range s.participants {
		for i := range ps {
			if ps[i].ID != id {
				continue
			}
			name := req.Name
			s.participants[tripID][i].Name = &name
			s.participants[tripID][i].Email = req.Email
			s.participants[tripID][i].IsConfirmed = true
			w.WriteHeader(http.StatusNoContent)
			return
		}
	}
	fail(w, r, http.StatusNotFound, "Participant not found")
}
