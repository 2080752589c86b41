package repository

import "time"

type Post struct {
	ID             int       `json:"id"`
	Username       string    `json:"username"`
	Message        string    `json:"message"`
	Timestamp      time.Time `json:"timestamp"`
	KindnessPoints int       `json:"kindness_points"`
}

// KindnessVote records a redeemed kindness token. The unique token hash is
// the double-spend guard: a token can land in this ledger at most once.
type KindnessVote struct {
	ID        int       `json:"id"`
	PostID    int       `json:"post_id"`
	TokenHash string    `json:"token_hash"`
	CreatedAt time.Time `json:"created_at"`
}
