package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/mattn/go-sqlite3"

	"quiz-cli/internal/domain"
)

// RankingStore persists session results in a local SQLite database.
type RankingStore struct {
	db *sql.DB
}

func NewRankingStore(ctx context.Context, path string) (*RankingStore, error) {
	if strings.TrimSpace(path) == "" {
		path = "ranking.db"
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	db.SetMaxOpenConns(1)

	if _, err := db.ExecContext(ctx, `PRAGMA busy_timeout = 5000;`); err != nil {
		_ = db.Close()
		return nil, err
	}

	store := &RankingStore{db: db}
	if err := store.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return store, nil
}

func (s *RankingStore) Close() error {
	return s.db.Close()
}

func (s *RankingStore) initSchema(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS rankings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		nombre TEXT NOT NULL,
		aciertos INTEGER NOT NULL,
		total INTEGER NOT NULL,
		porcentaje REAL NOT NULL,
		created_at_unix INTEGER NOT NULL DEFAULT (strftime('%s', 'now'))
	);`)
	if err != nil {
		return fmt.Errorf("init ranking schema: %w", err)
	}
	return nil
}

func (s *RankingStore) Append(ctx context.Context, result domain.SessionResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO rankings (nombre, aciertos, total, porcentaje) VALUES (?, ?, ?, ?)`,
		result.PlayerName, result.Correct, result.Total, result.Percentage)
	if err != nil {
		return fmt.Errorf("insert ranking: %w", err)
	}
	return nil
}

func (s *RankingStore) List(ctx context.Context) ([]domain.SessionResult, error) {
	rows, err := s.db.QueryContext(ctx, `SELECT nombre, aciertos, total, porcentaje FROM rankings ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("list ranking: %w", err)
	}
	defer rows.Close()

	var results []domain.SessionResult
	for rows.Next() {
		var r domain.SessionResult
		if err := rows.Scan(&r.PlayerName, &r.Correct, &r.Total, &r.Percentage); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		results = append(results, r)
	}
	return results, rows.Err()
}
