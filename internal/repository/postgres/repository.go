package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/golang-migrate/migrate/v4"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/lib/pq"

	"github.com/hushboard/backend/config"
	"github.com/hushboard/backend/internal/repository"

	_ "github.com/golang-migrate/migrate/v4/source/file"
)

type postgresRepository struct {
	db *sql.DB
}

func New(conf config.Storage) (*postgresRepository, error) {
	url := fmt.Sprintf(
		"postgresql://%v:%v@%v:%v/%v?sslmode=disable", conf.User, conf.Pass, conf.Host, conf.Port, conf.DB)

	db, err := sql.Open("postgres", url)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %v", err)
	}
	err = db.Ping()
	if err != nil {
		return nil, fmt.Errorf("db.Ping: %v", err)
	}
	driver, err := migratepg.WithInstance(db, &migratepg.Config{})
	if err != nil {
		return nil, fmt.Errorf("postgres.WithInstance: %v", err)
	}
	migrations := fmt.Sprintf("file://%v", conf.Migrations)
	m, err := migrate.NewWithDatabaseInstance(migrations, conf.DB, driver)
	if err != nil {
		return nil, fmt.Errorf("migrate.NewWithDatabaseInstance: %v", err)
	}
	log.Println("applying migrations...")
	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Println("nothing to migrate")
		} else {
			return nil, fmt.Errorf("error when migrating: %v", err)
		}
	} else {
		log.Println("migrated successfully!")
	}

	return &postgresRepository{
		db: db,
	}, nil
}

func (pr postgresRepository) CreatePost(ctx context.Context, post *repository.Post) (*repository.Post, error) {
	if post.Timestamp.IsZero() {
		post.Timestamp = time.Now().UTC()
	}
	err := pr.db.QueryRowContext(ctx,
		"INSERT INTO posts (username, message, timestamp, kindness_points) VALUES($1, $2, $3, 0) RETURNING id",
		post.Username, post.Message, post.Timestamp).Scan(&post.ID)
	if err != nil {
		return nil, err
	}
	return pr.GetPost(ctx, post.ID)
}

func (pr postgresRepository) GetPost(ctx context.Context, id int) (*repository.Post, error) {
	post := &repository.Post{}
	err := pr.db.QueryRowContext(ctx,
		"SELECT id, username, message, timestamp, kindness_points FROM posts WHERE id = $1", id).Scan(
		&post.ID, &post.Username, &post.Message, &post.Timestamp, &post.KindnessPoints)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrPostNotFound
	}
	if err != nil {
		return nil, err
	}
	return post, nil
}

func (pr postgresRepository) GetPosts(ctx context.Context, filter repository.PostFilter) ([]repository.Post, error) {
	var (
		rows *sql.Rows
		err  error
	)
	if filter.Since.IsZero() {
		rows, err = pr.db.QueryContext(ctx,
			"SELECT id, username, message, timestamp, kindness_points FROM posts ORDER BY timestamp DESC LIMIT $1 OFFSET $2",
			filter.Limit, filter.Offset)
	} else {
		rows, err = pr.db.QueryContext(ctx,
			"SELECT id, username, message, timestamp, kindness_points FROM posts WHERE timestamp >= $1 ORDER BY timestamp DESC LIMIT $2 OFFSET $3",
			filter.Since, filter.Limit, filter.Offset)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

func (pr postgresRepository) CountPosts(ctx context.Context, filter repository.PostFilter) (int, error) {
	var count int
	var err error
	if filter.Since.IsZero() {
		err = pr.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts").Scan(&count)
	} else {
		err = pr.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM posts WHERE timestamp >= $1", filter.Since).Scan(&count)
	}
	return count, err
}

func (pr postgresRepository) TopPosts(ctx context.Context, window time.Duration, limit int) ([]repository.Post, error) {
	cutoff := time.Now().UTC().Add(-window)
	var (
		rows *sql.Rows
		err  error
	)
	if limit > 0 {
		rows, err = pr.db.QueryContext(ctx,
			"SELECT id, username, message, timestamp, kindness_points FROM posts WHERE timestamp >= $1 ORDER BY kindness_points DESC, timestamp DESC LIMIT $2",
			cutoff, limit)
	} else {
		rows, err = pr.db.QueryContext(ctx,
			"SELECT id, username, message, timestamp, kindness_points FROM posts WHERE timestamp >= $1 ORDER BY kindness_points DESC, timestamp DESC",
			cutoff)
	}
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanPosts(rows)
}

// RedeemKindness runs the vote insert and the point increment in one
// transaction. The unique index on kindness_votes.token_hash serializes
// concurrent redemptions of the same token: the loser of the race gets a
// unique violation and the whole transaction rolls back.
func (pr postgresRepository) RedeemKindness(ctx context.Context, postID int, tokenHash string) (int, error) {
	tx, err := pr.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("db.BeginTx: %w", err)
	}
	defer tx.Rollback()

	if err := insertVote(ctx, tx, postID, tokenHash); err != nil {
		return 0, err
	}
	newPoints, err := incrementKindnessPoints(ctx, tx, postID, 1)
	if err != nil {
		return 0, err
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("tx.Commit: %w", err)
	}
	return newPoints, nil
}

func insertVote(ctx context.Context, tx *sql.Tx, postID int, tokenHash string) error {
	_, err := tx.ExecContext(ctx,
		"INSERT INTO kindness_votes (post_id, token_hash, created_at) VALUES($1, $2, $3)",
		postID, tokenHash, time.Now().UTC())
	if err == nil {
		return nil
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505": // unique_violation
			return repository.ErrTokenAlreadyUsed
		case "23503": // foreign_key_violation
			return repository.ErrPostNotFound
		}
	}
	return err
}

func incrementKindnessPoints(ctx context.Context, tx *sql.Tx, postID int, delta int) (int, error) {
	var newPoints int
	err := tx.QueryRowContext(ctx,
		"UPDATE posts SET kindness_points = kindness_points + $1 WHERE id = $2 RETURNING kindness_points",
		delta, postID).Scan(&newPoints)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, repository.ErrPostNotFound
	}
	if err != nil {
		return 0, err
	}
	return newPoints, nil
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
