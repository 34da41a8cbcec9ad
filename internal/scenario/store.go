// Package scenario persists named input scenarios as JSON on disk, so
// different strategies can be saved, reloaded, and compared. The calculation
// core never touches storage; callers load a scenario and pass its inputs in.
package scenario

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"roadmap-engine/internal/jsonpatch"
	"roadmap-engine/internal/model"
)

// Saved is one named scenario: a full input state frozen at save time.
type Saved struct {
	ID        string                   `json:"id"`
	Name      string                   `json:"name"`
	CreatedAt string                   `json:"created_at"`
	Inputs    model.CalculationRequest `json:"inputs"`
}

type file struct {
	Scenarios []Saved `json:"scenarios"`
}

type Store struct{ path string }

func New(path string) *Store { return &Store{path: path} }

func (s *Store) load() (*file, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &file{}, nil
		}
		return nil, err
	}
	var f file
	if err := json.Unmarshal(b, &f); err != nil {
		return nil, err
	}
	return &f, nil
}

func (s *Store) save(f *file) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b, err := json.MarshalIndent(f, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, b, 0o644)
}

// List returns all saved scenarios in save order.
func (s *Store) List() ([]Saved, error) {
	f, err := s.load()
	if err != nil {
		return nil, err
	}
	return f.Scenarios, nil
}

// Put saves the inputs under a new name and returns the stored record.
func (s *Store) Put(name string, inputs model.CalculationRequest) (Saved, error) {
	f, err := s.load()
	if err != nil {
		return Saved{}, err
	}
	sc := Saved{
		ID:        uuid.New().String(),
		Name:      name,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
		Inputs:    inputs,
	}
	f.Scenarios = append(f.Scenarios, sc)
	if err := s.save(f); err != nil {
		return Saved{}, err
	}
	return sc, nil
}

// Get finds a scenario by id or name.
func (s *Store) Get(idOrName string) (Saved, error) {
	f, err := s.load()
	if err != nil {
		return Saved{}, err
	}
	for _, sc := range f.Scenarios {
		if sc.ID == idOrName || sc.Name == idOrName {
			return sc, nil
		}
	}
	return Saved{}, fmt.Errorf("scenario %q not found", idOrName)
}

// Delete removes a scenario by id or name.
func (s *Store) Delete(idOrName string) error {
	f, err := s.load()
	if err != nil {
		return err
	}
	kept := f.Scenarios[:0]
	found := false
	for _, sc := range f.Scenarios {
		if sc.ID == idOrName || sc.Name == idOrName {
			found = true
			continue
		}
		kept = append(kept, sc)
	}
	if !found {
		return fmt.Errorf("scenario %q not found", idOrName)
	}
	f.Scenarios = kept
	return s.save(f)
}

// Diff returns an RFC 6902 patch describing how scenario b's inputs differ
// from scenario a's.
func Diff(a, b Saved) ([]map[string]interface{}, error) {
	var av, bv interface{}
	ab, err := json.Marshal(a.Inputs)
	if err != nil {
		return nil, err
	}
	bb, err := json.Marshal(b.Inputs)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(ab, &av); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(bb, &bv); err != nil {
		return nil, err
	}
	return jsonpatch.Diff(av, bv, ""), nil
}
