package storage

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"spendtrack/internal/core"
)

// SQLiteRepository stores categories and spending records in a local SQLite
// file. It implements the store ports.
type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// List implements store.CategoryReader. Names come back in insertion order;
// duplicates are returned as stored.
func (r *SQLiteRepository) List(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT name FROM categories ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		names = append(names, name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate categories: %w", err)
	}
	return names, nil
}

// Create implements store.CategoryWriter. The schema carries no UNIQUE
// constraint on name, so inserting an existing name adds a second row.
func (r *SQLiteRepository) Create(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, `INSERT INTO categories (name) VALUES (?)`, name); err != nil {
		return fmt.Errorf("create category: %w", err)
	}

	slog.InfoContext(ctx, "Category saved to SQLite", "name", name)
	return nil
}

// Record implements store.SpendingWriter.
func (r *SQLiteRepository) Record(ctx context.Context, s core.Spending) (int64, error) {
	recordedAt := time.Now().UTC()
	res, err := r.db.ExecContext(ctx,
		`INSERT INTO spending (amount, category, created_at) VALUES (?, ?, ?)`,
		s.Amount, s.Category, recordedAt.Format(time.RFC3339))
	if err != nil {
		return 0, fmt.Errorf("insert spending: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("spending insert id: %w", err)
	}

	slog.InfoContext(ctx, "Spending saved to SQLite",
		"id", id,
		"amount", s.Amount.String(),
		"category", s.Category)

	return id, nil
}

// Get implements store.SpendingReader.
func (r *SQLiteRepository) Get(ctx context.Context, id int64) (core.Spending, error) {
	var (
		s         core.Spending
		createdAt string
	)
	err := r.db.QueryRowContext(ctx,
		`SELECT id, amount, category, created_at FROM spending WHERE id = ?`, id).
		Scan(&s.ID, &s.Amount, &s.Category, &createdAt)
	if err != nil {
		return core.Spending{}, fmt.Errorf("get spending %d: %w", id, err)
	}

	ts, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return core.Spending{}, fmt.Errorf("parse spending %d timestamp: %w", id, err)
	}
	s.RecordedAt = ts

	return s, nil
}

// Ping implements store.Pinger.
func (r *SQLiteRepository) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}
