package v1

import (
	"time"

	"github.com/hushboard/backend/internal/repository"
)

type postMeta struct {
	Display string `json:"display"`
	Future  bool   `json:"future"`
}

// postResponse is the canonical wire representation of a post. `message` and
// `content` carry the same value; older clients read one, newer ones the
// other. Timestamps are ISO-8601 UTC with a 'Z' suffix.
type postResponse struct {
	ID                int      `json:"id"`
	Username          string   `json:"username"`
	Message           string   `json:"message"`
	Content           string   `json:"content"`
	Timestamp         string   `json:"timestamp"`
	CreationTimestamp string   `json:"creation_timestamp"`
	KindnessPoints    int      `json:"kindness_points"`
	Meta              postMeta `json:"meta"`
}

type pageResponse struct {
	Posts      []postResponse `json:"posts"`
	TotalCount int            `json:"total_count"`
	Page       int            `json:"page"`
	Limit      int            `json:"limit"`
	HasMore    bool           `json:"has_more"`
}

type errorResponse struct {
	Error string `json:"error"`
}

const displayLayout = "Jan 2, 2006 3:04 PM MST"

// presentPost shapes a post for the wire. `future` should never be true for
// server-stamped rows; it exists for display-time-override scenarios. When
// the viewer supplied a usable tz the display string is localized, otherwise
// it falls back to the canonical UTC form.
func presentPost(p repository.Post, now time.Time, viewerTZ string) postResponse {
	iso := p.Timestamp.UTC().Format(time.RFC3339)
	display := iso
	if viewerTZ != "" {
		if loc, err := time.LoadLocation(viewerTZ); err == nil {
			display = p.Timestamp.In(loc).Format(displayLayout)
		}
	}
	return postResponse{
		ID:                p.ID,
		Username:          p.Username,
		Message:           p.Message,
		Content:           p.Message,
		Timestamp:         iso,
		CreationTimestamp: iso,
		KindnessPoints:    p.KindnessPoints,
		Meta: postMeta{
			Display: display,
			Future:  p.Timestamp.After(now),
		},
	}
}

func presentPosts(posts []repository.Post, now time.Time, viewerTZ string) []postResponse {
	items := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		items = append(items, presentPost(p, now, viewerTZ))
	}
	return items
}
