// Package history persists evaluated missions in a SQLite database.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/shopspring/decimal"

	"github.com/litescript/ls-missionplan/internal/mission"
)

const schemaSQL = `
CREATE TABLE IF NOT EXISTS missions (
	id               INTEGER PRIMARY KEY AUTOINCREMENT,
	created_at       DATETIME NOT NULL,
	rocket_code      TEXT NOT NULL,
	rocket_name      TEXT NOT NULL,
	body_code        TEXT NOT NULL,
	body_name        TEXT NOT NULL,
	start_date       TEXT NOT NULL,
	payload_kg       TEXT NOT NULL,
	strategy         TEXT NOT NULL,
	required_kmps    TEXT NOT NULL,
	final_capability TEXT NOT NULL,
	margin_kmps      TEXT NOT NULL,
	tankers          INTEGER NOT NULL DEFAULT 0,
	success          INTEGER NOT NULL,
	report_path      TEXT
);
CREATE INDEX IF NOT EXISTS idx_missions_created ON missions(created_at);
`

// Record is one stored evaluation.
type Record struct {
	ID              int64
	CreatedAt       time.Time
	RocketCode      string
	RocketName      string
	BodyCode        string
	BodyName        string
	StartDate       string
	PayloadKg       decimal.Decimal
	Strategy        mission.Strategy
	Required        decimal.Decimal
	FinalCapability decimal.Decimal
	Margin          decimal.Decimal
	Tankers         int
	Success         bool
	ReportPath      string
}

// Store is a SQLite-backed mission history.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open opens (creating if needed) the history database at path and applies
// the schema. ":memory:" gives a private in-memory store.
func Open(path string) (*Store, error) {
	if path != ":memory:" {
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("failed to create history directory: %w", err)
			}
		}
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}
	// Every connection to :memory: is a separate database.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize history schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// Record stores an evaluation and returns its row id.
func (s *Store) Record(ctx context.Context, res *mission.Result) (int64, error) {
	out, err := s.db.ExecContext(ctx,
		`INSERT INTO missions (created_at, rocket_code, rocket_name, body_code, body_name,
			start_date, payload_kg, strategy, required_kmps, final_capability, margin_kmps,
			tankers, success)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		s.now().UTC(),
		res.Rocket.Code, res.Rocket.Name, res.Body.Code, res.Body.Name,
		res.StartDate,
		decimal.NewFromFloat(res.PayloadKg).Round(0),
		res.Strategy.String(),
		kmps(res.Required),
		kmps(res.FinalCapability),
		kmps(res.FinalMargin),
		res.Tankers,
		res.Success,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to record mission: %w", err)
	}

	id, err := out.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("failed to read mission id: %w", err)
	}
	return id, nil
}

// MarkSaved attaches a report path to a stored evaluation.
func (s *Store) MarkSaved(ctx context.Context, id int64, path string) error {
	out, err := s.db.ExecContext(ctx, "UPDATE missions SET report_path = ? WHERE id = ?", path, id)
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}
	n, err := out.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to update mission: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("mission %d not found", id)
	}
	return nil
}

// Recent returns up to n evaluations, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]Record, error) {
	if n <= 0 {
		return nil, nil
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT id, created_at, rocket_code, rocket_name, body_code, body_name, start_date,
			payload_kg, strategy, required_kmps, final_capability, margin_kmps, tankers,
			success, report_path
		FROM missions ORDER BY id DESC LIMIT ?`, n)
	if err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			r          Record
			strategy   string
			reportPath sql.NullString
		)
		if err := rows.Scan(&r.ID, &r.CreatedAt, &r.RocketCode, &r.RocketName, &r.BodyCode,
			&r.BodyName, &r.StartDate, &r.PayloadKg, &strategy, &r.Required,
			&r.FinalCapability, &r.Margin, &r.Tankers, &r.Success, &reportPath); err != nil {
			return nil, fmt.Errorf("failed to scan mission: %w", err)
		}
		r.Strategy, _ = mission.ParseStrategy(strategy)
		r.ReportPath = reportPath.String
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list missions: %w", err)
	}
	return records, nil
}

// Stats returns the number of stored evaluations and how many were feasible.
func (s *Store) Stats(ctx context.Context) (total, feasible int, err error) {
	err = s.db.QueryRowContext(ctx,
		"SELECT COUNT(*), COALESCE(SUM(success), 0) FROM missions",
	).Scan(&total, &feasible)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to count missions: %w", err)
	}
	return total, feasible, nil
}

func kmps(v float64) decimal.Decimal {
	return decimal.NewFromFloat(v).Round(2)
}
