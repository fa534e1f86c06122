package stats

import (
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // registers the "sqlite" driver
)

// GameRecord is one finished game as persisted by Store.
type GameRecord struct {
	ID       string        `json:"id"`
	Strategy string        `json:"strategy"`
	Width    int           `json:"width"`
	Height   int           `json:"height"`
	Mines    int           `json:"mines"`
	Won      bool          `json:"won"`
	Moves    int           `json:"moves"`
	Guesses  int           `json:"guesses"`
	Duration time.Duration `json:"duration"`

	Inference Summary `json:"inference"`
}

// StrategySummary aggregates recorded games per safe-cell strategy.
type StrategySummary struct {
	Strategy   string  `json:"strategy"`
	Games      int     `json:"games"`
	Wins       int     `json:"wins"`
	WinRate    float64 `json:"win_rate"`
	AvgMoves   float64 `json:"avg_moves"`
	AvgGuesses float64 `json:"avg_guesses"`
}

// Store handles SQLite persistence of game records.
type Store struct {
	db *sql.DB
}

// OpenStore opens (creating if necessary) a SQLite database at the given
// path and ensures the schema exists.
func OpenStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS games (
		id TEXT PRIMARY KEY,
		strategy TEXT NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		mines INTEGER NOT NULL,
		won INTEGER NOT NULL,
		moves INTEGER NOT NULL,
		guesses INTEGER NOT NULL,
		duration_ms INTEGER NOT NULL,
		inferences_total INTEGER NOT NULL DEFAULT 0,
		comparisons_total INTEGER NOT NULL DEFAULT 0,
		iterations_total INTEGER NOT NULL DEFAULT 0,
		created_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_games_strategy ON games(strategy);
	`
	_, err := s.db.Exec(schema)
	return err
}

// RecordGame inserts one finished game.
func (s *Store) RecordGame(rec GameRecord) error {
	_, err := s.db.Exec(`
		INSERT INTO games (
			id, strategy, width, height, mines, won, moves, guesses,
			duration_ms, inferences_total, comparisons_total, iterations_total
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID, rec.Strategy, rec.Width, rec.Height, rec.Mines,
		rec.Won, rec.Moves, rec.Guesses, rec.Duration.Milliseconds(),
		rec.Inference.InferencesTotal, rec.Inference.ComparisonsTotal,
		rec.Inference.IterationsTotal,
	)
	if err != nil {
		return fmt.Errorf("record game %s: %w", rec.ID, err)
	}
	return nil
}

// StrategySummaries aggregates all recorded games grouped by strategy.
func (s *Store) StrategySummaries() ([]StrategySummary, error) {
	rows, err := s.db.Query(`
		SELECT strategy,
			COUNT(*),
			SUM(won),
			AVG(moves),
			AVG(guesses)
		FROM games
		GROUP BY strategy
		ORDER BY strategy`)
	if err != nil {
		return nil, fmt.Errorf("query summaries: %w", err)
	}
	defer rows.Close()

	var out []StrategySummary
	for rows.Next() {
		var sum StrategySummary
		if err := rows.Scan(&sum.Strategy, &sum.Games, &sum.Wins, &sum.AvgMoves, &sum.AvgGuesses); err != nil {
			return nil, fmt.Errorf("scan summary: %w", err)
		}
		if sum.Games > 0 {
			sum.WinRate = float64(sum.Wins) / float64(sum.Games)
		}
		out = append(out, sum)
	}
	return out, rows.Err()
}

// Close releases the underlying database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
