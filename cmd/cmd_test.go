package cmd

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pehdsa/journey-native/internal/api/apitest"
	"github.com/pehdsa/journey-native/internal/exitcode"
	"github.com/pehdsa/journey-native/internal/storage"
)

var fixedNow = time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)

// setup points journey at a temp data directory and a fake trip API.
func setup(t *testing.T) (*apitest.Server, string) {
	t.Helper()
	base := t.TempDir()
	t.Setenv(storage.HomeEnv, base)

	srv := apitest.NewServer(t)
	cfg := `{
  "api": {"base_url": "` + srv.URL + `"},
  "owner": {"name": "Ana", "email": "ana@example.com"},
  "locale": "en",
  "timezone": "UTC"
}`
	if err := os.WriteFile(filepath.Join(base, "config.json"), []byte(cfg), 0o600); err != nil {
		t.Fatal(err)
	}

	origNow := now
	now = func() time.Time { return fixedNow }
	t.Cleanup(func() { now = origNow })
	return srv, base
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetPlanFlags()
	resetTripFlags()
	resetActivityFlags()
	resetLinkFlags()
	resetParticipantFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs(args)
	err := Execute()
	return buf.String(), err
}

func mustExecute(t *testing.T, args ...string) string {
	t.Helper()
	out, err := execute(t, args...)
	if err != nil {
		t.Fatalf("journey %s: %v", strings.Join(args, " "), err)
	}
	return out
}

// createTrip runs the whole creation flow for Aug 16-20.
func createTrip(t *testing.T, base string) string {
	t.Helper()
	mustExecute(t, "plan", "Florianópolis")
	mustExecute(t, "dates", "pick", "2026-08-16")
	mustExecute(t, "dates", "pick", "2026-08-20")
	mustExecute(t, "guests", "add", "bruno@example.com")
	mustExecute(t, "trip", "create")
	id, err := storage.LoadTripID(base)
	if err != nil {
		t.Fatalf("LoadTripID: %v", err)
	}
	return id
}

func TestDatesPick(t *testing.T) {
	setup(t)

	out := mustExecute(t, "dates", "pick", "2026-08-20")
	if !strings.Contains(out, "Start: 2026-08-20. Pick the end date.") {
		t.Errorf("first pick output = %q", out)
	}

	out = mustExecute(t, "dates", "pick", "2026-08-16")
	for _, want := range []string{
		"Selected: 16 to 20 of August (5 days)",
		"2026-08-16  start",
		"2026-08-18  in range",
		"2026-08-20  end",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("second pick output missing %q:\n%s", want, out)
		}
	}

	out = mustExecute(t, "dates", "pick", "2026-09-01")
	if !strings.Contains(out, "Start: 2026-09-01.") || strings.Contains(out, "2026-08-16") {
		t.Errorf("third pick should start over, got:\n%s", out)
	}

	out = mustExecute(t, "dates", "clear")
	if !strings.Contains(out, "Dates cleared.") {
		t.Errorf("clear output = %q", out)
	}
	out = mustExecute(t, "dates", "show")
	if !strings.Contains(out, "No dates selected.") {
		t.Errorf("show after clear = %q", out)
	}
}

func TestDatesPickRejectsPastAndMalformed(t *testing.T) {
	setup(t)

	for _, arg := range []string{"2026-07-31", "31/08/2026"} {
		_, err := execute(t, "dates", "pick", arg)
		if err == nil {
			t.Fatalf("pick %s: expected error", arg)
		}
		if exitcode.ExitCode(err) != exitcode.Usage {
			t.Errorf("pick %s: exit code = %d, want %d", arg, exitcode.ExitCode(err), exitcode.Usage)
		}
	}

	// Today itself is selectable.
	mustExecute(t, "dates", "pick", "2026-08-01")
}

func TestPlanShowsDraft(t *testing.T) {
	setup(t)

	out := mustExecute(t, "plan", "  Lisboa  ")
	if !strings.Contains(out, "Destination: Lisboa") || !strings.Contains(out, "When:        (not set)") {
		t.Errorf("plan output = %q", out)
	}
	mustExecute(t, "dates", "pick", "2026-08-28")
	mustExecute(t, "dates", "pick", "2026-09-02")
	mustExecute(t, "guests", "add", "bruno@example.com")

	out = mustExecute(t, "plan")
	for _, want := range []string{"Destination: Lisboa", "28 of August to 2 of September", "1 guest(s)"} {
		if !strings.Contains(out, want) {
			t.Errorf("plan output missing %q:\n%s", want, out)
		}
	}

	out = mustExecute(t, "plan", "--reset")
	if !strings.Contains(out, "Destination: (not set)") {
		t.Errorf("plan --reset output = %q", out)
	}
}

func TestGuests(t *testing.T) {
	setup(t)

	mustExecute(t, "guests", "add", "bruno@example.com")
	if _, err := execute(t, "guests", "add", "BRUNO@example.com"); exitcode.ExitCode(err) != exitcode.Usage {
		t.Errorf("duplicate guest: err = %v", err)
	}
	if _, err := execute(t, "guests", "add", "not-an-email"); exitcode.ExitCode(err) != exitcode.Usage {
		t.Errorf("invalid guest: err = %v", err)
	}
	mustExecute(t, "guests", "add", "carla@example.com")

	out := mustExecute(t, "guests", "list")
	if out != "bruno@example.com\ncarla@example.com\n" {
		t.Errorf("guests list = %q", out)
	}

	mustExecute(t, "guests", "remove", "bruno@example.com")
	if _, err := execute(t, "guests", "remove", "bruno@example.com"); err == nil {
		t.Error("removing a missing guest should fail")
	}
	out = mustExecute(t, "guests", "list")
	if out != "carla@example.com\n" {
		t.Errorf("guests list after remove = %q", out)
	}
}

func TestTripCreate(t *testing.T) {
	srv, base := setup(t)

	id := createTrip(t, base)

	trip, ok := srv.Trip(id)
	if !ok {
		t.Fatalf("trip %s not stored on the server", id)
	}
	if trip.Destination != "Florianópolis" {
		t.Errorf("Destination = %q", trip.Destination)
	}
	wantStart := time.Date(2026, 8, 16, 0, 0, 0, 0, time.UTC)
	if !trip.StartsAt.Equal(wantStart) {
		t.Errorf("StartsAt = %v, want %v", trip.StartsAt, wantStart)
	}
	if got := len(srv.Participants(id)); got != 2 {
		t.Errorf("participants = %d, want owner + 1 guest", got)
	}

	draft, err := storage.LoadDraft(base)
	if err != nil {
		t.Fatal(err)
	}
	if draft.Destination != "" || len(draft.Guests) != 0 {
		t.Errorf("draft should be cleared after create, got %+v", draft)
	}

	out := mustExecute(t, "trip", "show")
	for _, want := range []string{"Florianópolis 16 to 20 of August.", "Confirmed:   no"} {
		if !strings.Contains(out, want) {
			t.Errorf("trip show missing %q:\n%s", want, out)
		}
	}

	mustExecute(t, "trip", "confirm")
	out = mustExecute(t, "trip", "show")
	if !strings.Contains(out, "Confirmed:   yes") {
		t.Errorf("trip show after confirm:\n%s", out)
	}
}

func TestTripCreateValidation(t *testing.T) {
	setup(t)

	tests := []struct {
		name  string
		steps [][]string
		want  string
	}{
		{"nothing", nil, "fill in the destination and both trip dates"},
		{"short destination", [][]string{
			{"plan", "Rio"}, {"dates", "pick", "2026-08-16"}, {"dates", "pick", "2026-08-18"},
		}, "at least 4 characters"},
		{"half range", [][]string{
			{"plan", "Lisboa"}, {"dates", "pick", "2026-08-16"},
		}, "fill in the destination and both trip dates"},
		{"no guests", [][]string{
			{"plan", "Lisboa"}, {"dates", "pick", "2026-08-16"}, {"dates", "pick", "2026-08-18"},
		}, "invite at least one guest"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mustExecute(t, "plan", "--reset")
			for _, step := range tt.steps {
				mustExecute(t, step...)
			}
			_, err := execute(t, "trip", "create")
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Fatalf("trip create: err = %v, want %q", err, tt.want)
			}
			if exitcode.ExitCode(err) != exitcode.Usage {
				t.Errorf("exit code = %d, want %d", exitcode.ExitCode(err), exitcode.Usage)
			}
		})
	}
}

func TestTripShowForgetsDeletedTrip(t *testing.T) {
	srv, base := setup(t)
	id := createTrip(t, base)

	srv.DeleteTrip(id)
	_, err := execute(t, "trip", "show")
	if err == nil || !strings.Contains(err.Error(), "no longer exists") {
		t.Fatalf("trip show: err = %v", err)
	}
	if _, err := storage.LoadTripID(base); !errors.Is(err, storage.ErrNoTrip) {
		t.Errorf("stale trip ID kept: err = %v", err)
	}

	_, err = execute(t, "trip", "show")
	if err == nil || !strings.Contains(err.Error(), "no trip saved") {
		t.Errorf("trip show without trip: err = %v", err)
	}
}

func TestTripUpdate(t *testing.T) {
	srv, base := setup(t)
	id := createTrip(t, base)

	out := mustExecute(t, "trip", "update", "--destination", "Porto de Galinhas", "--from", "2026-08-30", "--to", "2026-08-27")
	if !strings.Contains(out, "Porto de Galin... 27 to 30 of August.") {
		t.Errorf("trip update output = %q", out)
	}
	trip, _ := srv.Trip(id)
	if trip.StartsAt.Day() != 27 || trip.EndsAt.Day() != 30 {
		t.Errorf("dates = %v..%v, want 27..30", trip.StartsAt, trip.EndsAt)
	}

	mustExecute(t, "trip", "update", "--to", "2026-09-02")
	trip, _ = srv.Trip(id)
	if trip.Destination != "Porto de Galinhas" || trip.EndsAt.Month() != time.September {
		t.Errorf("partial update = %+v", trip)
	}
}

func TestTripUpdateRejectsPastDates(t *testing.T) {
	srv, base := setup(t)
	id := createTrip(t, base)

	for _, args := range [][]string{
		{"--from", "2020-01-01", "--to", "2020-01-05"},
		{"--from", "2026-07-31"},
		{"--to", "2026-07-31"},
	} {
		_, err := execute(t, append([]string{"trip", "update"}, args...)...)
		if exitcode.ExitCode(err) != exitcode.Usage || !strings.Contains(err.Error(), "in the past") {
			t.Errorf("trip update %v: err = %v, want past-date usage error", args, err)
		}
	}
	trip, _ := srv.Trip(id)
	if trip.StartsAt.Day() != 16 || trip.EndsAt.Day() != 20 || trip.StartsAt.Month() != time.August {
		t.Errorf("trip dates changed to %v..%v", trip.StartsAt, trip.EndsAt)
	}
}

func TestTripForget(t *testing.T) {
	_, base := setup(t)
	createTrip(t, base)

	mustExecute(t, "trip", "forget")
	if _, err := storage.LoadTripID(base); !errors.Is(err, storage.ErrNoTrip) {
		t.Errorf("trip ID kept after forget: %v", err)
	}
}

func TestActivities(t *testing.T) {
	_, base := setup(t)
	createTrip(t, base)

	mustExecute(t, "activity", "add", "--title", "Dinner", "--date", "2026-08-17", "--hour", "20")
	out := mustExecute(t, "activity", "add", "--title", "Museum", "--date", "2026-08-17", "--hour", "9")
	if !strings.Contains(out, `"Museum" added on 2026-08-17 at 09:00`) {
		t.Errorf("activity add output = %q", out)
	}

	_, err := execute(t, "activity", "add", "--title", "Too late", "--date", "2026-08-25", "--hour", "9")
	if err == nil || !strings.Contains(err.Error(), "outside the trip") {
		t.Errorf("out of range activity: err = %v", err)
	}
	_, err = execute(t, "activity", "add", "--title", "Night", "--date", "2026-08-17", "--hour", "24")
	if exitcode.ExitCode(err) != exitcode.Usage {
		t.Errorf("hour 24: err = %v", err)
	}

	out = mustExecute(t, "activity", "list")
	for _, want := range []string{
		"Day 16, Sunday\n  No activities registered for this date.",
		"Day 17, Monday\n  [ ] 09:00  Museum\n  [ ] 20:00  Dinner",
		"Day 20, Thursday",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("activity list missing %q:\n%s", want, out)
		}
	}
}

func TestLinks(t *testing.T) {
	_, base := setup(t)
	createTrip(t, base)

	out := mustExecute(t, "link", "list")
	if !strings.Contains(out, "No links added.") {
		t.Errorf("empty link list = %q", out)
	}
	if _, err := execute(t, "link", "add", "--title", "Airbnb", "--url", "nope"); exitcode.ExitCode(err) != exitcode.Usage {
		t.Errorf("bad URL: err = %v", err)
	}
	mustExecute(t, "link", "add", "--title", "Airbnb", "--url", "https://airbnb.com/rooms/1")
	out = mustExecute(t, "link", "list")
	if out != "Airbnb\n  https://airbnb.com/rooms/1\n" {
		t.Errorf("link list = %q", out)
	}
}

func TestParticipants(t *testing.T) {
	srv, base := setup(t)
	id := createTrip(t, base)

	mustExecute(t, "participant", "invite", "carla@example.com")
	var carla string
	for _, p := range srv.Participants(id) {
		if p.Email == "carla@example.com" {
			carla = p.ID
		}
	}
	if carla == "" {
		t.Fatal("invited participant not stored")
	}

	if _, err := execute(t, "participant", "confirm", carla); exitcode.ExitCode(err) != exitcode.Usage {
		t.Errorf("confirm without name: err = %v", err)
	}
	mustExecute(t, "participant", "confirm", carla, "--name", "Carla", "--email", "carla@example.com")

	out := mustExecute(t, "participant", "list")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 {
		t.Fatalf("participant list = %d lines, want 3:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[0], "Ana") || !strings.Contains(lines[0], "confirmed") {
		t.Errorf("owner line = %q", lines[0])
	}
	if !strings.Contains(lines[1], "Guest 2") || !strings.Contains(lines[1], "pending") {
		t.Errorf("guest line = %q", lines[1])
	}
	if !strings.Contains(lines[2], "Carla") || !strings.Contains(lines[2], "confirmed") {
		t.Errorf("confirmed guest line = %q", lines[2])
	}
}

func TestExecuteUsageErrors(t *testing.T) {
	setup(t)

	for _, args := range [][]string{
		{"nope"},
		{"dates", "pick"},
		{"trip", "show", "extra"},
	} {
		_, err := execute(t, args...)
		if exitcode.ExitCode(err) != exitcode.Usage {
			t.Errorf("journey %v: exit code = %d (%v), want %d", args, exitcode.ExitCode(err), err, exitcode.Usage)
		}
	}
}

func TestShortDestination(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"Lisboa", "Lisboa"},
		{"Florianópolis", "Florianópolis"},
		{"Porto de Galinhas", "Porto de Galin..."},
		{"  São Paulo  ", "São Paulo"},
	}
	for _, tt := range tests {
		if got := shortDestination(tt.in); got != tt.want {
			t.Errorf("shortDestination(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
