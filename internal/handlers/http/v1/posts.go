package v1

import (
	"errors"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/hushboard/backend/internal/repository"
	"github.com/hushboard/backend/internal/service"
)

func (h *handler) createPost(c *gin.Context) {
	req := bindCreatePost(c)

	post, err := h.svc.CreatePost(c.Request.Context(), req.Message)
	if err != nil {
		var modErr *service.ModerationError
		switch {
		case errors.Is(err, service.ErrEmptyMessage):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Message required"})
		case errors.Is(err, service.ErrMessageTooLong):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Message exceeds 280 character limit"})
		case errors.As(err, &modErr):
			c.JSON(http.StatusForbidden, errorResponse{Error: "Hateful content not allowed (detected by " + modErr.Reason + ": " + modErr.Term + ")"})
		default:
			log.Println("[HTTP] create post failed:", err)
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database error. Please try again later."})
		}
		return
	}

	c.JSON(http.StatusCreated, presentPost(*post, time.Now().UTC(), c.Query("tz")))
}

// listPosts serves both feed shapes: a flat list when the client sent no
// paging parameters, and the paginated envelope when it did. view=top swaps
// the recency ordering for the windowed kindness ranking.
func (h *handler) listPosts(c *gin.Context) {
	var (
		_, hasPage      = c.GetQuery("page")
		_, hasLimit     = c.GetQuery("limit")
		since, hasSince = c.GetQuery("since")
	)
	hasPaging := hasPage || hasLimit || hasSince

	page := intQuery(c, "page", 1)
	limit := intQuery(c, "limit", 50)
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}

	filter := repository.PostFilter{
		Offset: (page - 1) * limit,
		Limit:  limit,
	}
	if hasSince {
		if ts, ok := parseSince(since); ok {
			filter.Since = ts
		}
	}

	view := c.DefaultQuery("view", "latest")
	start := time.Now()

	var (
		posts []repository.Post
		total int
		err   error
	)
	if view == "top" {
		posts, err = h.svc.TopPosts(c.Request.Context(), limit)
		total = len(posts)
	} else {
		posts, total, err = h.svc.ListPosts(c.Request.Context(), filter)
	}
	if err != nil {
		log.Printf("[HTTP] GET /api/posts view=%v failed: %v latency=%v", view, err, time.Since(start))
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database error. Please try again later."})
		return
	}
	log.Printf("[HTTP] GET /api/posts view=%v count=%v latency=%v", view, len(posts), time.Since(start))

	items := presentPosts(posts, time.Now().UTC(), c.Query("tz"))
	if !hasPaging {
		c.JSON(http.StatusOK, items)
		return
	}

	c.JSON(http.StatusOK, pageResponse{
		Posts:      items,
		TotalCount: total,
		Page:       page,
		Limit:      limit,
		HasMore:    page*limit < total,
	})
}

func (h *handler) getPost(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
		return
	}

	post, err := h.svc.GetPost(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database error. Please try again later."})
		return
	}

	c.JSON(http.StatusOK, presentPost(*post, time.Now().UTC(), c.Query("tz")))
}

func (h *handler) debugFlags(c *gin.Context) {
	if h.conf.Env == "production" {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Not available"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"flags": gin.H{
		"ENABLE_KINDNESS_POINTS": h.conf.Kindness.Enabled,
		"ENABLE_RATE_LIMITING":   h.conf.RateLimit.Enabled,
		"APP_ENV":                h.conf.Env,
	}})
}

func intQuery(c *gin.Context, key string, fallback int) int {
	raw, ok := c.GetQuery(key)
	if !ok {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return n
}

// parseSince accepts RFC3339 timestamps, naive ISO timestamps (assumed UTC),
// or epoch seconds (integer or fractional).
func parseSince(raw string) (time.Time, bool) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, true
	}
	if ts, err := time.Parse("2006-01-02T15:04:05", raw); err == nil {
		return ts.UTC(), true
	}
	if secs, err := strconv.ParseFloat(raw, 64); err == nil {
		return time.Unix(int64(secs), 0).UTC(), true
	}
	return time.Time{}, false
}
