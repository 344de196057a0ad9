// Package sqlite archives finished simulation runs in an embedded SQLite
// database.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

var ErrNotFound = errors.New("run not found")

// RunRecord is one archived simulation. CET scores are nil when the exam
// was never taken.
type RunRecord struct {
	ID         string       `json:"id"`
	Track      string       `json:"track"`
	Background string       `json:"background"`
	Route      string       `json:"route"`
	Seed       int64        `json:"seed"`
	Credits    int          `json:"credits"`
	Graduated  bool         `json:"graduated"`
	GPA        float64      `json:"gpa"`
	CET4       *int         `json:"cet4,omitempty"`
	CET6       *int         `json:"cet6,omitempty"`
	SCI        int          `json:"sci"`
	Offers     int          `json:"offers"`
	Money      int          `json:"money"`
	CreatedAt  time.Time    `json:"createdAt"`
	Terms      []TermRecord `json:"terms,omitempty"`
}

type TermRecord struct {
	Year    int     `json:"year"`
	Term    int     `json:"term"`
	GPA     float64 `json:"gpa"`
	Credits int     `json:"credits"`
}

type Store struct {
	sqlDB *sql.DB
}

// Open opens the archive at path and applies migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}
	dsn := filepath.Clean(path) + "?_pragma=journal_mode(WAL)&_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := applyMigrations(context.Background(), sqlDB); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// SaveRun inserts a run together with its terms and returns its id. An
// empty id is filled with a new uuid.
func (s *Store) SaveRun(ctx context.Context, rec RunRecord) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("storage is not configured")
	}
	rec.Track = strings.TrimSpace(rec.Track)
	if rec.Track == "" {
		return "", fmt.Errorf("track is required")
	}
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("begin save run: %w", err)
	}
	_, err = tx.ExecContext(ctx, `
INSERT INTO runs (
	id,
	track,
	background,
	route,
	seed,
	credits,
	graduated,
	gpa,
	cet4,
	cet6,
	sci,
	offers,
	money,
	created_at
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`,
		rec.ID,
		rec.Track,
		rec.Background,
		rec.Route,
		rec.Seed,
		rec.Credits,
		rec.Graduated,
		rec.GPA,
		nullInt(rec.CET4),
		nullInt(rec.CET6),
		rec.SCI,
		rec.Offers,
		rec.Money,
		rec.CreatedAt.UTC().UnixMilli(),
	)
	if err != nil {
		_ = tx.Rollback()
		return "", fmt.Errorf("save run: %w", err)
	}
	if err := insertTerms(ctx, tx, rec.ID, rec.Terms); err != nil {
		_ = tx.Rollback()
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("commit run: %w", err)
	}
	return rec.ID, nil
}

// SaveTerms writes term rows for an existing run, replacing rows for the
// same year and term.
func (s *Store) SaveTerms(ctx context.Context, runID string, terms []TermRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save terms: %w", err)
	}
	var exists int
	if err := tx.QueryRowContext(ctx, `SELECT 1 FROM runs WHERE id = ?`, runID).Scan(&exists); err != nil {
		_ = tx.Rollback()
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return fmt.Errorf("check run: %w", err)
	}
	if err := insertTerms(ctx, tx, runID, terms); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit terms: %w", err)
	}
	return nil
}

func insertTerms(ctx context.Context, tx *sql.Tx, runID string, terms []TermRecord) error {
	for _, t := range terms {
		if _, err := tx.ExecContext(ctx, `
INSERT OR REPLACE INTO run_terms (run_id, year, term, gpa, credits)
VALUES (?, ?, ?, ?, ?)
`, runID, t.Year, t.Term, t.GPA, t.Credits); err != nil {
			return fmt.Errorf("save term %d/%d: %w", t.Year, t.Term, err)
		}
	}
	return nil
}

const runColumns = `
	id,
	track,
	background,
	route,
	seed,
	credits,
	graduated,
	gpa,
	cet4,
	cet6,
	sci,
	offers,
	money,
	created_at`

// GetRun loads a run with its terms in calendar order.
func (s *Store) GetRun(ctx context.Context, id string) (RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return RunRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return RunRecord{}, fmt.Errorf("storage is not configured")
	}
	row := s.sqlDB.QueryRowContext(ctx, `SELECT`+runColumns+` FROM runs WHERE id = ?`, id)
	rec, err := scanRun(row)
	if errors.Is(err, sql.ErrNoRows) {
		return RunRecord{}, ErrNotFound
	}
	if err != nil {
		return RunRecord{}, fmt.Errorf("get run: %w", err)
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT year, term, gpa, credits
FROM run_terms
WHERE run_id = ?
ORDER BY year, term
`, id)
	if err != nil {
		return RunRecord{}, fmt.Errorf("list terms: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var t TermRecord
		if err := rows.Scan(&t.Year, &t.Term, &t.GPA, &t.Credits); err != nil {
			return RunRecord{}, fmt.Errorf("scan term: %w", err)
		}
		rec.Terms = append(rec.Terms, t)
	}
	if err := rows.Err(); err != nil {
		return RunRecord{}, fmt.Errorf("iterate terms: %w", err)
	}
	return rec, nil
}

// ListRuns lists newest-first runs without their terms.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]RunRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}
	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than zero")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `SELECT`+runColumns+`
FROM runs
ORDER BY created_at DESC, id DESC
LIMIT ?
`, limit)
	if err != nil {
		return nil, fmt.Errorf("list runs: %w", err)
	}
	defer rows.Close()

	records := make([]RunRecord, 0, limit)
	for rows.Next() {
		rec, err := scanRun(rows)
		if err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRun(row scanner) (RunRecord, error) {
	var (
		rec        RunRecord
		cet4, cet6 sql.NullInt64
		createdAt  int64
	)
	if err := row.Scan(
		&rec.ID,
		&rec.Track,
		&rec.Background,
		&rec.Route,
		&rec.Seed,
		&rec.Credits,
		&rec.Graduated,
		&rec.GPA,
		&cet4,
		&cet6,
		&rec.SCI,
		&rec.Offers,
		&rec.Money,
		&createdAt,
	); err != nil {
		return RunRecord{}, err
	}
	rec.CET4 = intPtr(cet4)
	rec.CET6 = intPtr(cet6)
	rec.CreatedAt = time.UnixMilli(createdAt).UTC()
	return rec, nil
}

func nullInt(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: int64(*v), Valid: true}
}

func intPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)
	return &n
}
