// Package journal provides a SQLite combat journal for balance runs.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package journal

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// MemoryPath opens a private in-memory journal.
const MemoryPath = ":memory:"

// Journal manages the SQLite database connection for run records.
type Journal struct {
	db *sql.DB
}

// Run is one complete play-through, from wave 1 to defeat or abort.
type Run struct {
	ID        uuid.UUID
	GameID    string
	Seed      int64
	Waves     int    // Highest wave reached
	Score     int    // Points held at the end of the run
	Ticks     uint64 // Simulation ticks played
	Defeated  bool   // False if the run was cut short
	CreatedAt time.Time
}

// WaveRecord describes one cleared wave of a run.
type WaveRecord struct {
	RunID  uuid.UUID
	Wave   int
	Ticks  uint64  // Ticks spent on this wave
	Kills  int     // Enemies destroyed during the wave
	Score  int     // Points held after the clear bonus
	Health float64 // Avatar health when the wave was cleared
}

// Stats aggregates every run of a game.
type Stats struct {
	GameID    string
	Runs      int
	BestWave  int
	BestScore int
	AvgWave   float64
	AvgScore  float64
}

// Open creates or opens a journal at the given path.
// An empty path or MemoryPath opens an in-memory database.
func Open(dbPath string) (*Journal, error) {
	memory := dbPath == "" || dbPath == MemoryPath
	if memory {
		dbPath = MemoryPath
	} else {
		// Expand ~ to home directory
		if dbPath[0] == '~' {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("journal: cannot expand home directory: %w", err)
			}
			dbPath = filepath.Join(home, dbPath[1:])
		}

		dir := filepath.Dir(dbPath)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("journal: cannot create directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot open database: %w", err)
	}
	if memory {
		// Each connection to :memory: is a separate database
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: cannot connect to database: %w", err)
	}

	j := &Journal{db: db}
	if err := j.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("journal: migration failed: %w", err)
	}

	return j, nil
}

// migrate creates the database schema if it doesn't exist.
func (j *Journal) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS runs (
			id TEXT PRIMARY KEY,
			game_id TEXT NOT NULL,
			seed INTEGER NOT NULL,
			waves INTEGER NOT NULL,
			score INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			defeated INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_game_id ON runs(game_id);

		CREATE TABLE IF NOT EXISTS waves (
			run_id TEXT NOT NULL REFERENCES runs(id),
			wave INTEGER NOT NULL,
			ticks INTEGER NOT NULL,
			kills INTEGER NOT NULL,
			score INTEGER NOT NULL,
			health REAL NOT NULL,
			PRIMARY KEY (run_id, wave)
		);
	`

	_, err := j.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// SaveRun records a finished run together with its cleared waves.
// A zero run ID is replaced with a fresh one; the stored ID is returned.
func (j *Journal) SaveRun(run Run, waves []WaveRecord) (uuid.UUID, error) {
	if run.ID == uuid.Nil {
		run.ID = uuid.New()
	}

	tx, err := j.db.Begin()
	if err != nil {
		return uuid.Nil, fmt.Errorf("journal: cannot begin transaction: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // No-op after Commit

	_, err = tx.Exec(
		`INSERT INTO runs (id, game_id, seed, waves, score, ticks, defeated)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		run.ID.String(), run.GameID, run.Seed, run.Waves, run.Score, int64(run.Ticks), run.Defeated,
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("journal: cannot save run: %w", err)
	}

	for _, w := range waves {
		_, err = tx.Exec(
			`INSERT INTO waves (run_id, wave, ticks, kills, score, health)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			run.ID.String(), w.Wave, int64(w.Ticks), w.Kills, w.Score, w.Health,
		)
		if err != nil {
			return uuid.Nil, fmt.Errorf("journal: cannot save wave %d: %w", w.Wave, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return uuid.Nil, fmt.Errorf("journal: cannot commit run: %w", err)
	}
	return run.ID, nil
}

// RunByID retrieves a run by its ID. Returns nil if no such run exists.
func (j *Journal) RunByID(id uuid.UUID) (*Run, error) {
	row := j.db.QueryRow(
		`SELECT id, game_id, seed, waves, score, ticks, defeated, created_at
		 FROM runs
		 WHERE id = ?`,
		id.String(),
	)

	run, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query run: %w", err)
	}
	return &run, nil
}

// RecentRuns retrieves the most recent runs of a game.
func (j *Journal) RecentRuns(gameID string, limit int) ([]Run, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := j.db.Query(
		`SELECT id, game_id, seed, waves, score, ticks, defeated, created_at
		 FROM runs
		 WHERE game_id = ?
		 ORDER BY created_at DESC, rowid DESC
		 LIMIT ?`,
		gameID, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("journal: cannot scan row: %w", err)
		}
		runs = append(runs, run)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}
	return runs, nil
}

// Waves retrieves the cleared waves of a run in wave order.
func (j *Journal) Waves(runID uuid.UUID) ([]WaveRecord, error) {
	rows, err := j.db.Query(
		`SELECT run_id, wave, ticks, kills, score, health
		 FROM waves
		 WHERE run_id = ?
		 ORDER BY wave`,
		runID.String(),
	)
	if err != nil {
		return nil, fmt.Errorf("journal: cannot query waves: %w", err)
	}
	defer rows.Close()

	var waves []WaveRecord
	for rows.Next() {
		var w WaveRecord
		var id string
		var ticks int64
		if err := rows.Scan(&id, &w.Wave, &ticks, &w.Kills, &w.Score, &w.Health); err != nil {
			return nil, fmt.Errorf("journal: cannot scan row: %w", err)
		}
		if w.RunID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("journal: malformed run id %q: %w", id, err)
		}
		w.Ticks = uint64(ticks)
		waves = append(waves, w)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("journal: row iteration error: %w", err)
	}
	return waves, nil
}

// Stats retrieves aggregated statistics for a game.
func (j *Journal) Stats(gameID string) (Stats, error) {
	stats := Stats{GameID: gameID}
	err := j.db.QueryRow(
		`SELECT COUNT(*), COALESCE(MAX(waves), 0), COALESCE(MAX(score), 0),
		        COALESCE(AVG(waves), 0), COALESCE(AVG(score), 0)
		 FROM runs WHERE game_id = ?`,
		gameID,
	).Scan(&stats.Runs, &stats.BestWave, &stats.BestScore, &stats.AvgWave, &stats.AvgScore)
	if err != nil {
		return Stats{}, fmt.Errorf("journal: cannot get stats: %w", err)
	}
	return stats, nil
}

// scanner is satisfied by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanRun(s scanner) (Run, error) {
	var run Run
	var id string
	var ticks int64
	var createdAt any
	if err := s.Scan(&id, &run.GameID, &run.Seed, &run.Waves, &run.Score, &ticks, &run.Defeated, &createdAt); err != nil {
		return Run{}, err
	}

	parsed, err := uuid.Parse(id)
	if err != nil {
		return Run{}, fmt.Errorf("malformed run id %q: %w", id, err)
	}
	run.ID = parsed
	run.Ticks = uint64(ticks)
	run.CreatedAt = parseTime(createdAt)
	return run, nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
