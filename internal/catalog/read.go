package catalog

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/roach88/openhours"
)

// ErrNotFound is returned by Get for a name with no entry.
var ErrNotFound = errors.New("entry not found")

// Get returns the entry under name, or ErrNotFound.
func (s *Store) Get(name string) (*Entry, error) {
	row := s.db.QueryRow(
		"SELECT id, name, expression, note, created_at FROM entries WHERE name = ?", name)
	var e Entry
	err := row.Scan(&e.ID, &e.Name, &e.Expression, &e.Note, &e.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read entry %q: %w", name, err)
	}
	return &e, nil
}

// List returns all entries ordered by name.
func (s *Store) List() ([]Entry, error) {
	rows, err := s.db.Query(
		"SELECT id, name, expression, note, created_at FROM entries ORDER BY name")
	if err != nil {
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		if err := rows.Scan(&e.ID, &e.Name, &e.Expression, &e.Note, &e.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// Status is the evaluated state of one entry at a queried instant.
type Status struct {
	Name       string `json:"name"`
	Expression string `json:"expression"`
	State      string `json:"state"`
	NextChange string `json:"next_change,omitempty"` // empty when the state never changes
}

// EvaluateAll evaluates every entry at the given instant (zero means
// now), ordered by name. Entries were validated on insert, so parse
// failures here indicate catalog corruption and are reported as errors.
func (s *Store) EvaluateAll(at time.Time) ([]Status, error) {
	entries, err := s.List()
	if err != nil {
		return nil, err
	}

	statuses := make([]Status, 0, len(entries))
	for _, e := range entries {
		schedule, err := openhours.Parse(e.Expression)
		if err != nil {
			return nil, fmt.Errorf("stored expression for %q no longer parses: %w", e.Name, err)
		}
		status := Status{
			Name:       e.Name,
			Expression: e.Expression,
			State:      schedule.State(at).String(),
		}
		if next, ok := schedule.NextChange(at); ok {
			status.NextChange = next.Format("2006-01-02 15:04")
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}
