package repository

import (
	"context"
	"errors"
	"time"
)

var (
	ErrPostNotFound     = errors.New("post not found")
	ErrTokenAlreadyUsed = errors.New("token already used")
)

// PostFilter narrows list queries. Zero values mean "no constraint".
type PostFilter struct {
	Since  time.Time
	Offset int
	Limit  int
}

type Repository interface {
	// CreatePost assigns the ID and, when the timestamp is zero, stamps the
	// current UTC time. Returns the persisted row.
	CreatePost(ctx context.Context, post *Post) (*Post, error)
	GetPost(ctx context.Context, id int) (*Post, error)
	// GetPosts returns posts ordered by timestamp descending.
	GetPosts(ctx context.Context, filter PostFilter) ([]Post, error)
	CountPosts(ctx context.Context, filter PostFilter) (int, error)
	// TopPosts returns posts within the trailing window ordered by
	// kindness_points descending, then timestamp descending. limit <= 0
	// means no truncation.
	TopPosts(ctx context.Context, window time.Duration, limit int) ([]Post, error)
	// RedeemKindness inserts a KindnessVote for tokenHash and increments the
	// post's kindness_points by one in a single atomic unit. Returns the new
	// total, ErrTokenAlreadyUsed if the hash was already redeemed, or
	// ErrPostNotFound if the post does not exist.
	RedeemKindness(ctx context.Context, postID int, tokenHash string) (int, error)
}
