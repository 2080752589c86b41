// Package sqlite backs the repository with a local SQLite file. Meant for
// development and single-node deployments where running Postgres is overkill.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"modernc.org/sqlite"
	sqlitelib "modernc.org/sqlite/lib"

	"github.com/hushboard/backend/config"
	"github.com/hushboard/backend/internal/repository"
)

type sqliteRepository struct {
	db *sql.DB
}

func New(conf config.Storage) (*sqliteRepository, error) {
	db, err := sql.Open("sqlite", conf.SQLitePath)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %v", err)
	}
	// modernc/sqlite handles one writer at a time.
	db.SetMaxOpenConns(1)
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("db.Ping: %v", err)
	}
	if err := migrateSchema(db); err != nil {
		return nil, fmt.Errorf("migrate: %v", err)
	}
	return &sqliteRepository{db: db}, nil
}

func migrateSchema(db *sql.DB) error {
	stmts := []string{
		`PRAGMA foreign_keys = ON;`,
		`CREATE TABLE IF NOT EXISTS posts(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			username TEXT NOT NULL,
			message TEXT NOT NULL,
			timestamp DATETIME NOT NULL,
			kindness_points INTEGER NOT NULL DEFAULT 0
		);`,
		`CREATE INDEX IF NOT EXISTS idx_posts_timestamp ON posts(timestamp);`,
		`CREATE TABLE IF NOT EXISTS kindness_votes(
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			post_id INTEGER NOT NULL REFERENCES posts(id),
			token_hash TEXT UNIQUE NOT NULL,
			created_at DATETIME NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_kindness_votes_post_id ON kindness_votes(post_id);`,
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}

func (sr sqliteRepository) CreatePost(ctx context.Context, post *repository.Post) (*repository.Post, error) {
	if post.Timestamp.IsZero() {
		post.Timestamp = time.Now().UTC()
	}
	res, err := sr.db.ExecContext(ctx,
		"INSERT INTO posts (username, message, timestamp, kindness_points) VALUES(?, ?, ?, 0)",
		post.Username, post.Message, post.Timestamp)
	if err != nil {
		return nil, err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return nil, err
	}
	return sr.GetPost(ctx, int(id))
}

func (sr sqliteRepository) GetPost(ctx context.Context, id int) (*repository.Post, error) {
	post := &repository.Post{}
	err := sr.db.QueryRowContext(ctx,
		"SELECT id, username, message, timestamp, kindness_points FROM posts WHERE id = ?", id).Scan(
		&post.ID, &post.Username, &post.Message, &post.Timestamp, &post.KindnessPoints)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (sr sqliteRepository) GetPosts(ctx context.Context, filter repository.PostFilter) ([]repository.Post, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if filter.Since.IsZero() {
		rows, err = sr.db.QueryContext(ctx,
			"SELECT id, username, message, timestamp, kindness_points FROM posts ORDER BY timestamp DESC LIMIT ? OFFSET ?",
			filter.Limit, filter.Offset)
	} else {
		rows, err = sr.db.QueryContext(ctx,
			"SELECT id, username, message, timestamp, kindness_points FROM posts WHERE timestamp >= ? ORDER BY timestamp DESC LIMIT ? OFFSET ?",
			filter.Since, filter.Limit, filter.Offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (sr sqliteRepository) CountPosts(ctx context.Context, filter repository.PostFilter) (int, error) {
	var count int
	var err error
	if filter.Since.IsZero() {
		err = sr.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	} else {
		err = sr.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts WHERE timestamp >= ?", filter.Since).Scan(&count)
	}
	return count, err
}

func (sr sqliteRepository) TopPosts(ctx context.Context, window time.Duration, limit int) ([]repository.Post, error) {
	cutoff := time.Now().UTC().Add(-window)
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = sr.db.QueryContext(ctx,
			"SELECT id, username, message, timestamp, kindness_points FROM posts WHERE timestamp >= ? ORDER BY kindness_points DESC, timestamp DESC LIMIT ?",
			cutoff, limit)
	} else {
		rows, err = sr.db.QueryContext(ctx,
			"SELECT id, username, message, timestamp, kindness_points FROM posts WHERE timestamp >= ? ORDER BY kindness_points DESC, timestamp DESC",
			cutoff)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (sr sqliteRepository) RedeemKindness(ctx context.Context, postID int, tokenHash string) (int, error) {
	tx, err := sr.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("db.BeginTx: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		"INSERT INTO kindness_votes (post_id, token_hash, created_at) VALUES(?, ?, ?)",
		postID, tokenHash, time.Now().UTC())
	if err != nil {
		if isUniqueViolation(err) {
			return 0, repository.ErrTokenAlreadyUsed
		}
		return 0, err
	}

	res, err := tx.ExecContext(ctx,
		"UPDATE posts SET kindness_points = kindness_points + 1 WHERE id = ?", postID)
	if err != nil {
		return 0, err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, err
	}
	if affected == 0 {
		return 0, repository.ErrPostNotFound
	}

	var newPoints int
	err = tx.QueryRowContext(ctx,
		"SELECT kindness_points FROM posts WHERE id = ?", postID).Scan(&newPoints)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("tx.Commit: %w", err)
	}
	return newPoints, nil
}

func isUniqueViolation(err error) bool {
	var serr *sqlite.Error
	if errors.As(err, &serr) {
		code := serr.Code()
		return code == sqlitelib.SQLITE_CONSTRAINT_UNIQUE || code == sqlitelib.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}

func scanPosts(rows *sql.Rows) ([]repository.Post, error) {
	posts := []repository.Post{}
	for rows.Next() {
		post := repository.Post{}
		err := rows.Scan(&post.ID, &post.Username, &post.Message, &post.Timestamp, &post.KindnessPoints)
		if err != nil {
			return nil, err
		}
		posts = append(posts, post)
	}
	return posts, rows.Err()
}
