package ranking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hushboard/backend/internal/repository"
)

func post(id, points int, age time.Duration, now time.Time) repository.Post {
	return repository.Post{ID: id, KindnessPoints: points, Timestamp: now.Add(-age)}
}

func ids(posts []repository.Post) []int {
	out := make([]int, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.ID)
	}
	return out
}

func TestTopPosts_OrderByPointsThenRecency(t *testing.T) {
	now := time.Now().UTC()
	posts := []repository.Post{
		post(1, 10, 3*time.Hour, now),
		post(2, 20, 5*time.Hour, now),
		post(3, 15, 1*time.Hour, now),
		post(4, 15, 4*time.Hour, now),
	}

	ranked := TopPosts(posts, now, DefaultWindow, 0)
	// Points {20,15,15,10}; the two 15s break the tie by recency.
	assert.Equal(t, []int{2, 3, 4, 1}, ids(ranked))
}

func TestTopPosts_WindowExcludesOldPosts(t *testing.T) {
	now := time.Now().UTC()
	posts := []repository.Post{
		post(1, 50, 48*time.Hour, now),
		post(2, 1, 12*time.Hour, now),
	}

	ranked := TopPosts(posts, now, DefaultWindow, 0)
	assert.Equal(t, []int{2}, ids(ranked))
}

func TestTopPosts_ZeroTimestampExcluded(t *testing.T) {
	now := time.Now().UTC()
	posts := []repository.Post{
		{ID: 1, KindnessPoints: 99},
		post(2, 1, time.Hour, now),
	}

	ranked := TopPosts(posts, now, DefaultWindow, 0)
	assert.Equal(t, []int{2}, ids(ranked))
}

func TestTopPosts_Limit(t *testing.T) {
	now := time.Now().UTC()
	posts := []repository.Post{
		post(1, 4, time.Hour, now),
		post(2, 3, time.Hour, now),
		post(3, 2, time.Hour, now),
		post(4, 1, time.Hour, now),
	}

	unlimited := TopPosts(posts, now, DefaultWindow, 0)
	limited := TopPosts(posts, now, DefaultWindow, 3)
	require.Len(t, limited, 3)
	// Truncation preserves the relative order of the unlimited computation.
	assert.Equal(t, ids(unlimited)[:3], ids(limited))

	assert.Len(t, TopPosts(posts[:2], now, DefaultWindow, 3), 2)
}

func TestTopPosts_Deterministic(t *testing.T) {
	now := time.Now().UTC()
	same := now.Add(-time.Hour)
	posts := []repository.Post{
		{ID: 1, KindnessPoints: 5, Timestamp: same},
		{ID: 2, KindnessPoints: 5, Timestamp: same},
		{ID: 3, KindnessPoints: 5, Timestamp: same},
	}

	first := ids(TopPosts(posts, now, DefaultWindow, 0))
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ids(TopPosts(posts, now, DefaultWindow, 0)))
	}
}

func TestTopPosts_DoesNotMutateInput(t *testing.T) {
	now := time.Now().UTC()
	posts := []repository.Post{
		post(1, 1, time.Hour, now),
		post(2, 2, time.Hour, now),
	}

	TopPosts(posts, now, DefaultWindow, 0)
	assert.Equal(t, []int{1, 2}, ids(posts))
}
