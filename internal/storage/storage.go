package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pehdsa/journey-native/internal/model"
)

// HomeEnv overrides the data directory when set.
const HomeEnv = "JOURNEY_HOME"

// ErrNoTrip is returned when no trip ID has been saved on this device.
var ErrNoTrip = errors.New("no trip saved")

const (
	tripFile  = "trip.json"
	draftFile = "draft.json"
)

// tripRecord is the on-disk form of the saved trip ID.
type tripRecord struct {
	TripID string `json:"trip_id"`
}

// BaseDir returns the root data directory ($JOURNEY_HOME or ~/.journey).
func BaseDir() (string, error) {
	if dir := os.Getenv(HomeEnv); dir != "" {
		return dir, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	return filepath.Join(home, ".journey"), nil
}

// readJSON decodes path into v. It reports found=false when the file does
// not exist. A corrupt file is moved aside to <path>.corrupt.
func readJSON(path string, v any) (found bool, err error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("storage error reading %s: %w", path, err)
	}
	if err := json.Unmarshal(data, v); err != nil {
		backupPath := path + ".corrupt"
		_ = os.Rename(path, backupPath)
		return false, fmt.Errorf("corrupt JSON in %s (backed up to %s): %w", path, backupPath, err)
	}
	return true, nil
}

// writeJSON atomically writes v to path.
func writeJSON(path string, v any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return fmt.Errorf("storage error creating directories: %w", err)
	}

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("storage error marshalling JSON: %w", err)
	}

	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0o600); err != nil {
		return fmt.Errorf("storage error writing temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("storage error renaming temp file: %w", err)
	}
	return nil
}

func removeFile(path string) error {
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage error removing %s: %w", path, err)
	}
	return nil
}

// SaveTripID remembers id as the current trip.
func SaveTripID(base, id string) error {
	if id == "" {
		return errors.New("storage error: empty trip ID")
	}
	return writeJSON(filepath.Join(base, tripFile), tripRecord{TripID: id})
}

// LoadTripID returns the saved trip ID, or ErrNoTrip.
func LoadTripID(base string) (string, error) {
	var rec tripRecord
	found, err := readJSON(filepath.Join(base, tripFile), &rec)
	if err != nil {
		return "", err
	}
	if !found || rec.TripID == "" {
		return "", ErrNoTrip
	}
	return rec.TripID, nil
}

// RemoveTripID forgets the current trip. Removing a missing ID is not an error.
func RemoveTripID(base string) error {
	return removeFile(filepath.Join(base, tripFile))
}

// LoadDraft returns the saved creation draft, or an empty one.
func LoadDraft(base string) (model.Draft, error) {
	draft := model.Draft{Guests: []string{}}
	if _, err := readJSON(filepath.Join(base, draftFile), &draft); err != nil {
		return model.Draft{Guests: []string{}}, err
	}
	if draft.Guests == nil {
		draft.Guests = []string{}
	}
	return draft, nil
}

// SaveDraft persists the creation draft.
func SaveDraft(base string, draft model.Draft) error {
	return writeJSON(filepath.Join(base, draftFile), draft)
}

// ClearDraft discards the creation draft.
func ClearDraft(base string) error {
	return removeFile(filepath.Join(base, draftFile))
}
