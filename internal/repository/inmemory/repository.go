// Package inmemory keeps everything in process memory behind a RWMutex.
// Used by the test suite and the "memory" storage driver. The used-token set
// gives the same at-most-once redemption guarantee the SQL backends get from
// their unique index.
package inmemory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/hushboard/backend/internal/ranking"
	"github.com/hushboard/backend/internal/repository"
)

type memoryRepository struct {
	mu         sync.RWMutex
	posts      map[int]*repository.Post
	votes      []repository.KindnessVote
	usedTokens map[string]struct{}
	nextPostID int
	nextVoteID int
}

func New() *memoryRepository {
	return &memoryRepository{
		posts:      make(map[int]*repository.Post),
		usedTokens: make(map[string]struct{}),
		nextPostID: 1,
		nextVoteID: 1,
	}
}

func (mr *memoryRepository) CreatePost(ctx context.Context, post *repository.Post) (*repository.Post, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	post.ID = mr.nextPostID
	mr.nextPostID++
	if post.Timestamp.IsZero() {
		post.Timestamp = time.Now().UTC()
	}
	stored := *post
	mr.posts[post.ID] = &stored
	return post, nil
}

func (mr *memoryRepository) GetPost(ctx context.Context, id int) (*repository.Post, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	post, ok := mr.posts[id]
	if !ok {
		return nil, repository.ErrPostNotFound
	}
	copied := *post
	return &copied, nil
}

func (mr *memoryRepository) GetPosts(ctx context.Context, filter repository.PostFilter) ([]repository.Post, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	all := mr.snapshot()
	if !filter.Since.IsZero() {
		filtered := all[:0]
		for _, p := range all {
			if !p.Timestamp.Before(filter.Since) {
				filtered = append(filtered, p)
			}
		}
		all = filtered
	}
	sort.SliceStable(all, func(i, j int) bool {
		if !all[i].Timestamp.Equal(all[j].Timestamp) {
			return all[i].Timestamp.After(all[j].Timestamp)
		}
		return all[i].ID > all[j].ID
	})

	start := filter.Offset
	if start >= len(all) {
		return []repository.Post{}, nil
	}
	end := len(all)
	if filter.Limit > 0 && start+filter.Limit < end {
		end = start + filter.Limit
	}
	return all[start:end], nil
}

func (mr *memoryRepository) CountPosts(ctx context.Context, filter repository.PostFilter) (int, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	if filter.Since.IsZero() {
		return len(mr.posts), nil
	}
	count := 0
	for _, p := range mr.posts {
		if !p.Timestamp.Before(filter.Since) {
			count++
		}
	}
	return count, nil
}

func (mr *memoryRepository) TopPosts(ctx context.Context, window time.Duration, limit int) ([]repository.Post, error) {
	mr.mu.RLock()
	defer mr.mu.RUnlock()

	return ranking.TopPosts(mr.snapshot(), time.Now().UTC(), window, limit), nil
}

func (mr *memoryRepository) RedeemKindness(ctx context.Context, postID int, tokenHash string) (int, error) {
	mr.mu.Lock()
	defer mr.mu.Unlock()

	post, ok := mr.posts[postID]
	if !ok {
		return 0, repository.ErrPostNotFound
	}
	if _, used := mr.usedTokens[tokenHash]; used {
		return 0, repository.ErrTokenAlreadyUsed
	}
	mr.usedTokens[tokenHash] = struct{}{}
	mr.votes = append(mr.votes, repository.KindnessVote{
		ID:        mr.nextVoteID,
		PostID:    postID,
		TokenHash: tokenHash,
		CreatedAt: time.Now().UTC(),
	})
	mr.nextVoteID++
	post.KindnessPoints++
	return post.KindnessPoints, nil
}

// snapshot copies posts out in ID order so downstream sorts start from a
// deterministic base.
func (mr *memoryRepository) snapshot() []repository.Post {
	ids := make([]int, 0, len(mr.posts))
	for id := range mr.posts {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	posts := make([]repository.Post, 0, len(ids))
	for _, id := range ids {
		posts = append(posts, *mr.posts[id])
	}
	return posts
}
