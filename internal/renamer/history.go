// internal/renamer/history.go
package renamer

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/vmunix/renamarr/internal/migrations"
	_ "modernc.org/sqlite"
)

// HistoryEntry is one applied rename.
type HistoryEntry struct {
	ID        int64     `json:"id"`
	OldPath   string    `json:"old_path"`
	NewPath   string    `json:"new_path"`
	Kind      string    `json:"type,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// HistoryFilter specifies criteria for listing history.
type HistoryFilter struct {
	Kind  *string
	Limit int
}

// HistoryStore persists applied renames.
type HistoryStore struct {
	db *sql.DB
}

// NewHistoryStore creates a history store over an already migrated database.
func NewHistoryStore(db *sql.DB) *HistoryStore {
	return &HistoryStore{db: db}
}

// OpenHistory opens (creating if needed) the SQLite journal at path and
// applies migrations. Close the returned *sql.DB when done.
func OpenHistory(path string) (*HistoryStore, *sql.DB, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			return nil, nil, fmt.Errorf("create history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, nil, fmt.Errorf("open history: %w", err)
	}
	// A single connection keeps an in-memory database alive across calls.
	db.SetMaxOpenConns(1)

	if err := migrations.Apply(db); err != nil {
		_ = db.Close()
		return nil, nil, err
	}
	return NewHistoryStore(db), db, nil
}

// Add inserts a new history entry.
func (s *HistoryStore) Add(h *HistoryEntry) error {
	now := time.Now().UTC()
	result, err := s.db.Exec(`
		INSERT INTO rename_history (old_path, new_path, kind, created_at)
		VALUES (?, ?, ?, ?)`,
		h.OldPath, h.NewPath, h.Kind, now,
	)
	if err != nil {
		return fmt.Errorf("insert history: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("get last insert id: %w", err)
	}

	h.ID = id
	h.CreatedAt = now
	return nil
}

// List returns history entries matching the filter, most recent first.
func (s *HistoryStore) List(f HistoryFilter) ([]*HistoryEntry, error) {
	var conditions []string
	var args []any

	if f.Kind != nil {
		conditions = append(conditions, "kind = ?")
		args = append(args, *f.Kind)
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = "WHERE " + strings.Join(conditions, " AND ")
	}

	query := `SELECT id, old_path, new_path, kind, created_at
		FROM rename_history ` + whereClause + ` ORDER BY created_at DESC, id DESC`

	if f.Limit > 0 {
		query += fmt.Sprintf(" LIMIT %d", f.Limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("list history: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var results []*HistoryEntry
	for rows.Next() {
		h := &HistoryEntry{}
		if err := rows.Scan(&h.ID, &h.OldPath, &h.NewPath, &h.Kind, &h.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		results = append(results, h)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}

	return results, nil
}
