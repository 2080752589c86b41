package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/hushboard/backend/internal/kindness"
	"github.com/hushboard/backend/internal/moderation"
	"github.com/hushboard/backend/internal/ranking"
	"github.com/hushboard/backend/internal/repository"
	"github.com/hushboard/backend/internal/username"
)

const MaxMessageLength = 280

var (
	ErrEmptyMessage    = errors.New("message required")
	ErrMessageTooLong  = fmt.Errorf("message exceeds %d character limit", MaxMessageLength)
	ErrInvalidToken    = errors.New("invalid or expired token")
	ErrFeatureDisabled = errors.New("kindness points feature disabled")
)

// ModerationError reports a blocklist rejection. Reason and term are exposed
// to the client; the blocklist is not a secret.
type ModerationError struct {
	Reason string
	Term   string
}

func (e *ModerationError) Error() string {
	return fmt.Sprintf("hateful content not allowed (detected by %s: %s)", e.Reason, e.Term)
}

type Service struct {
	repo            repository.Repository
	tokens          *kindness.Service
	kindnessEnabled bool
}

func New(repo repository.Repository, tokens *kindness.Service, kindnessEnabled bool) *Service {
	return &Service{
		repo:            repo,
		tokens:          tokens,
		kindnessEnabled: kindnessEnabled,
	}
}

// CreatePost drives a submission through validation, moderation, username
// assignment, and persistence. The creation timestamp is always stamped
// server-side in UTC; client-supplied timestamps are never trusted.
func (svc *Service) CreatePost(ctx context.Context, message string) (*repository.Post, error) {
	message = strings.TrimSpace(message)
	if message == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(message) > MaxMessageLength {
		return nil, ErrMessageTooLong
	}
	if result := moderation.Classify(message); result.Hateful {
		return nil, &ModerationError{Reason: result.Reason, Term: result.Term}
	}
	if moderation.IsKind(message) {
		log.Println("[POST] kind message accepted")
	}

	post := &repository.Post{
		Username:  username.Generate(),
		Message:   message,
		Timestamp: time.Now().UTC(),
	}
	created, err := svc.repo.CreatePost(ctx, post)
	if err != nil {
		return nil, fmt.Errorf("repo.CreatePost: %w", err)
	}
	return created, nil
}

func (svc *Service) GetPost(ctx context.Context, id int) (*repository.Post, error) {
	return svc.repo.GetPost(ctx, id)
}

func (svc *Service) ListPosts(ctx context.Context, filter repository.PostFilter) ([]repository.Post, int, error) {
	total, err := svc.repo.CountPosts(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.CountPosts: %w", err)
	}
	posts, err := svc.repo.GetPosts(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("repo.GetPosts: %w", err)
	}
	return posts, total, nil
}

// TopPosts serves the "top" view over the trailing 24 hour window.
func (svc *Service) TopPosts(ctx context.Context, limit int) ([]repository.Post, error) {
	posts, err := svc.repo.TopPosts(ctx, ranking.DefaultWindow, limit)
	if err != nil {
		return nil, fmt.Errorf("repo.TopPosts: %w", err)
	}
	return posts, nil
}

// IssueToken hands out a fresh kindness token for an existing post. Issuance
// is stateless; nothing is written until redemption.
func (svc *Service) IssueToken(ctx context.Context, postID int) (string, int, error) {
	if !svc.kindnessEnabled {
		return "", 0, ErrFeatureDisabled
	}
	if _, err := svc.repo.GetPost(ctx, postID); err != nil {
		return "", 0, err
	}
	token, expiresIn := svc.tokens.Issue(postID)
	return token, expiresIn, nil
}

// Redeem verifies the token, confirms the post, and awards exactly one
// kindness point. The repository call is the atomic step: insert of the
// token's hash plus the increment commit together or not at all.
func (svc *Service) Redeem(ctx context.Context, postID int, token string) (int, error) {
	if !svc.kindnessEnabled {
		return 0, ErrFeatureDisabled
	}
	if _, ok := svc.tokens.Verify(token); !ok {
		return 0, ErrInvalidToken
	}
	if _, err := svc.repo.GetPost(ctx, postID); err != nil {
		return 0, err
	}
	newPoints, err := svc.repo.RedeemKindness(ctx, postID, kindness.Hash(token))
	if err != nil {
		if errors.Is(err, repository.ErrTokenAlreadyUsed) || errors.Is(err, repository.ErrPostNotFound) {
			return 0, err
		}
		return 0, fmt.Errorf("repo.RedeemKindness: %w", err)
	}
	return newPoints, nil
}

func (svc *Service) KindnessPoints(ctx context.Context, postID int) (int, error) {
	post, err := svc.repo.GetPost(ctx, postID)
	if err != nil {
		return 0, err
	}
	return post.KindnessPoints, nil
}

func (svc *Service) KindnessEnabled() bool {
	return svc.kindnessEnabled
}
