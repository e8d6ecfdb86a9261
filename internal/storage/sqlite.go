// Package storage provides SQLite-based persistence for the high score
// table. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MaxHighScores is how many entries the table keeps. Saving a score that
// does not rank in the top entries is accepted but pruned immediately.
const MaxHighScores = 5

// NameLength is the fixed width of a high score name.
const NameLength = 3

// DefaultPath is the default database location.
const DefaultPath = "~/.tetrion/scores.db"

// Store manages the SQLite database connection for score persistence.
type Store struct {
	db *sql.DB
}

// ScoreEntry represents a single high score record.
type ScoreEntry struct {
	ID        int64
	Name      string
	Score     int
	Level     int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS high_scores (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			score INTEGER NOT NULL,
			level INTEGER NOT NULL DEFAULT 1,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_high_scores_top ON high_scores(score DESC, created_at ASC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// NormalizeName uppercases a player name and forces it to the fixed
// three-character width, padding with spaces.
func NormalizeName(name string) string {
	name = strings.ToUpper(strings.TrimSpace(name))
	if len(name) > NameLength {
		name = name[:NameLength]
	}
	for len(name) < NameLength {
		name += " "
	}
	return name
}

// SaveHighScore records a score under the given player name and prunes
// everything below the kept top entries. Returns the ID of the inserted
// record. Ties rank the older entry first.
func (s *Store) SaveHighScore(name string, score, level int) (int64, error) {
	if strings.TrimSpace(name) == "" {
		return 0, fmt.Errorf("storage: empty player name")
	}

	result, err := s.db.Exec(
		"INSERT INTO high_scores (name, score, level) VALUES (?, ?, ?)",
		NormalizeName(name), score, level,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save score: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	if err := s.prune(); err != nil {
		return id, err
	}
	return id, nil
}

// prune deletes every record outside the kept top entries.
func (s *Store) prune() error {
	_, err := s.db.Exec(
		`DELETE FROM high_scores
		 WHERE id NOT IN (
			SELECT id FROM high_scores
			ORDER BY score DESC, created_at ASC, id ASC
			LIMIT ?
		 )`,
		MaxHighScores,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot prune scores: %w", err)
	}
	return nil
}

// TopScores retrieves the high score table, best first.
func (s *Store) TopScores() ([]ScoreEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, score, level, created_at
		 FROM high_scores
		 ORDER BY score DESC, created_at ASC, id ASC
		 LIMIT ?`,
		MaxHighScores,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query scores: %w", err)
	}
	defer rows.Close()

	var entries []ScoreEntry
	for rows.Next() {
		var e ScoreEntry
		var createdAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Score, &e.Level, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// Qualifies reports whether a score would enter the high score table.
// Zero scores never qualify.
func (s *Store) Qualifies(score int) (bool, error) {
	if score <= 0 {
		return false, nil
	}

	entries, err := s.TopScores()
	if err != nil {
		return false, err
	}
	if len(entries) < MaxHighScores {
		return true, nil
	}
	return score > entries[len(entries)-1].Score, nil
}

// BestScore returns the highest recorded score, or 0 when the table is
// empty.
func (s *Store) BestScore() (int, error) {
	var best sql.NullInt64
	err := s.db.QueryRow("SELECT MAX(score) FROM high_scores").Scan(&best)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query best score: %w", err)
	}
	return int(best.Int64), nil
}
