package watchlist

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"

	"watchdeck/models"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// SQLiteStore persists watchlist items in a local SQLite database. It is the
// default backend when no Firestore project is configured.
type SQLiteStore struct {
	conn *sql.DB
}

// NewSQLiteStore opens (creating if needed) the database at path and runs
// embedded migrations.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	connString := fmt.Sprintf("%s?_journal_mode=WAL&_synchronous=NORMAL&_busy_timeout=5000", path)
	conn, err := sql.Open("sqlite3", connString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	conn.SetMaxOpenConns(4)
	conn.SetConnMaxIdleTime(15 * time.Minute)

	if err := conn.Ping(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	if _, err := conn.Exec("PRAGMA foreign_keys = ON"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set pragma: %w", err)
	}

	goose.SetBaseFS(embedMigrations)
	if err := goose.SetDialect("sqlite3"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to set migration dialect: %w", err)
	}
	if err := goose.Up(conn, "migrations"); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return &SQLiteStore{conn: conn}, nil
}

func (s *SQLiteStore) ListByUser(ctx context.Context, userID string) ([]models.WatchlistItem, error) {
	rows, err := s.conn.QueryContext(ctx, `
		SELECT id, user_id, tmdb_id, title, type, poster_path, release_year, added_at
		FROM watchlist_items
		WHERE user_id = ?
		ORDER BY added_at ASC, rowid ASC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []models.WatchlistItem
	for rows.Next() {
		var item models.WatchlistItem
		var posterPath sql.NullString
		var releaseYear sql.NullInt64
		var addedAt string
		if err := rows.Scan(&item.ID, &item.UserID, &item.TmdbID, &item.Title, &item.Type, &posterPath, &releaseYear, &addedAt); err != nil {
			return nil, err
		}
		if posterPath.Valid {
			item.PosterPath = &posterPath.String
		}
		if releaseYear.Valid {
			year := int(releaseYear.Int64)
			item.ReleaseYear = &year
		}
		if ts, err := time.Parse(time.RFC3339Nano, addedAt); err == nil {
			item.AddedAt = ts
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

func (s *SQLiteStore) Insert(ctx context.Context, item models.WatchlistItem) error {
	var posterPath sql.NullString
	if item.PosterPath != nil {
		posterPath = sql.NullString{String: *item.PosterPath, Valid: true}
	}
	var releaseYear sql.NullInt64
	if item.ReleaseYear != nil {
		releaseYear = sql.NullInt64{Int64: int64(*item.ReleaseYear), Valid: true}
	}

	_, err := s.conn.ExecContext(ctx, `
		INSERT INTO watchlist_items (id, user_id, tmdb_id, title, type, poster_path, release_year, added_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		item.ID, item.UserID, item.TmdbID, item.Title, item.Type,
		posterPath, releaseYear, item.AddedAt.Format(time.RFC3339Nano))
	return err
}

func (s *SQLiteStore) DeleteByUserAndTmdbID(ctx context.Context, userID string, tmdbID int) (int, error) {
	result, err := s.conn.ExecContext(ctx,
		`DELETE FROM watchlist_items WHERE user_id = ? AND tmdb_id = ?`, userID, tmdbID)
	if err != nil {
		return 0, err
	}
	deleted, err := result.RowsAffected()
	return int(deleted), err
}

func (s *SQLiteStore) Ping(ctx context.Context) error {
	return s.conn.PingContext(ctx)
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}
