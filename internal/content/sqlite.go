package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLite serves the catalog from a sqlite database written by Seed.
type SQLite struct {
	db *sql.DB
}

// OpenSQLite opens (and creates if needed) the content database at path.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}
	return s, nil
}

func (s *SQLite) Close() error {
	return s.db.Close()
}

func (s *SQLite) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS projects (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		data JSON NOT NULL
	);

	CREATE TABLE IF NOT EXISTS team_members (
		position INTEGER PRIMARY KEY,
		data JSON NOT NULL
	);

	CREATE TABLE IF NOT EXISTS company_sections (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		data JSON NOT NULL
	);

	CREATE TABLE IF NOT EXISTS process_steps (
		id INTEGER PRIMARY KEY,
		data JSON NOT NULL
	);

	CREATE TABLE IF NOT EXISTS repositories (
		id TEXT PRIMARY KEY,
		position INTEGER NOT NULL,
		data JSON NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Seed replaces the stored content with cat.
func (s *SQLite) Seed(ctx context.Context, cat Catalog) error {
	if err := cat.Validate(); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed: %w", err)
	}
	defer tx.Rollback()

	for _, table := range []string{"projects", "team_members", "company_sections", "process_steps", "repositories"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("failed to clear %s: %w", table, err)
		}
	}

	for i, p := range cat.Projects {
		if err := insertJSON(ctx, tx, `INSERT INTO projects (id, position, data) VALUES (?, ?, ?)`, p, p.ID, i); err != nil {
			return fmt.Errorf("failed to insert project %s: %w", p.ID, err)
		}
	}
	for i, m := range cat.Team {
		if err := insertJSON(ctx, tx, `INSERT INTO team_members (position, data) VALUES (?, ?)`, m, i); err != nil {
			return fmt.Errorf("failed to insert team member %s: %w", m.Name, err)
		}
	}
	for i, sec := range cat.CompanySections {
		if err := insertJSON(ctx, tx, `INSERT INTO company_sections (id, position, data) VALUES (?, ?, ?)`, sec, sec.ID, i); err != nil {
			return fmt.Errorf("failed to insert company section %s: %w", sec.ID, err)
		}
	}
	for _, st := range cat.Process.Steps {
		if err := insertJSON(ctx, tx, `INSERT INTO process_steps (id, data) VALUES (?, ?)`, st, st.ID); err != nil {
			return fmt.Errorf("failed to insert process step %d: %w", st.ID, err)
		}
	}
	for i, r := range cat.Repositories {
		if err := insertJSON(ctx, tx, `INSERT INTO repositories (id, position, data) VALUES (?, ?, ?)`, r, r.ID, i); err != nil {
			return fmt.Errorf("failed to insert repository %s: %w", r.ID, err)
		}
	}

	return tx.Commit()
}

func insertJSON(ctx context.Context, tx *sql.Tx, query string, v any, args ...any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	_, err = tx.ExecContext(ctx, query, append(args, data)...)
	return err
}

// loadJSON scans single-column JSON rows into a slice, in query order.
func loadJSON[T any](ctx context.Context, db *sql.DB, query string) ([]T, error) {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		var data []byte
		if err := rows.Scan(&data); err != nil {
			return nil, err
		}
		var v T
		if err := json.Unmarshal(data, &v); err != nil {
			return nil, fmt.Errorf("failed to unmarshal row: %w", err)
		}
		out = append(out, v)
	}
	return out, rows.Err()
}

func (s *SQLite) Projects(ctx context.Context) ([]Project, error) {
	return loadJSON[Project](ctx, s.db, `SELECT data FROM projects ORDER BY position`)
}

func (s *SQLite) Team(ctx context.Context) ([]TeamMember, error) {
	return loadJSON[TeamMember](ctx, s.db, `SELECT data FROM team_members ORDER BY position`)
}

func (s *SQLite) CompanySections(ctx context.Context) ([]CompanySection, error) {
	return loadJSON[CompanySection](ctx, s.db, `SELECT data FROM company_sections ORDER BY position`)
}

func (s *SQLite) Process(ctx context.Context) (Process, error) {
	steps, err := loadJSON[ProcessStep](ctx, s.db, `SELECT data FROM process_steps ORDER BY id`)
	if err != nil {
		return Process{}, err
	}
	return Process{Steps: steps}, nil
}

func (s *SQLite) Repositories(ctx context.Context) ([]Repository, error) {
	return loadJSON[Repository](ctx, s.db, `SELECT data FROM repositories ORDER BY position`)
}
