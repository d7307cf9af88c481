package catalog

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/roach88/openhours"
)

// Entry is one named schedule in the catalog.
type Entry struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Expression string `json:"expression"`
	Note       string `json:"note,omitempty"`
	CreatedAt  string `json:"created_at"`
}

// Add validates expression and inserts a new entry under name. The
// classification of an invalid expression is the library's own
// (openhours.IsInvalidExpression matches the wrapped error). A duplicate
// name is rejected by the unique constraint.
func (s *Store) Add(name, expression, note string) (*Entry, error) {
	if name == "" {
		return nil, fmt.Errorf("entry name must not be empty")
	}
	if _, err := openhours.Parse(expression); err != nil {
		return nil, fmt.Errorf("invalid expression for %q: %w", name, err)
	}

	entry := &Entry{
		ID:         uuid.Must(uuid.NewV7()).String(),
		Name:       name,
		Expression: expression,
		Note:       note,
		CreatedAt:  time.Now().UTC().Format(time.RFC3339),
	}
	_, err := s.db.Exec(
		"INSERT INTO entries (id, name, expression, note, created_at) VALUES (?, ?, ?, ?, ?)",
		entry.ID, entry.Name, entry.Expression, entry.Note, entry.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert entry %q: %w", name, err)
	}
	s.log.Debugw("entry added", "name", name, "id", entry.ID)
	return entry, nil
}

// Remove deletes the entry under name. Removing a missing name is not an
// error; removed reports whether anything was deleted.
func (s *Store) Remove(name string) (removed bool, err error) {
	res, err := s.db.Exec("DELETE FROM entries WHERE name = ?", name)
	if err != nil {
		return false, fmt.Errorf("failed to delete entry %q: %w", name, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}
