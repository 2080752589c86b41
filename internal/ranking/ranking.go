// Package ranking orders posts for the "top" view. It is a pure function so
// the same semantics can be asserted in unit tests and mirrored by the SQL
// repositories (filter + ORDER BY kindness_points DESC, timestamp DESC +
// LIMIT).
package ranking

import (
	"sort"
	"time"

	"github.com/hushboard/backend/internal/repository"
)

const DefaultWindow = 24 * time.Hour

// TopPosts filters posts to those stamped within the trailing window and
// sorts them by kindness points descending, breaking ties by recency. Posts
// with a zero timestamp are excluded. limit <= 0 returns the whole filtered
// sequence. The sort is stable, so repeated calls on the same input always
// produce the same order.
func TopPosts(posts []repository.Post, now time.Time, window time.Duration, limit int) []repository.Post {
	cutoff := now.Add(-window)

	ranked := make([]repository.Post, 0, len(posts))
	for _, p := range posts {
		if p.Timestamp.IsZero() || p.Timestamp.Before(cutoff) {
			continue
		}
		ranked = append(ranked, p)
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].KindnessPoints != ranked[j].KindnessPoints {
			return ranked[i].KindnessPoints > ranked[j].KindnessPoints
		}
		return ranked[i].Timestamp.After(ranked[j].Timestamp)
	})

	if limit > 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}
