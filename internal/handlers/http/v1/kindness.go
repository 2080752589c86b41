package v1

import (
	"errors"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/hushboard/backend/internal/repository"
	"github.com/hushboard/backend/internal/service"
)

func (h *handler) issueToken(c *gin.Context) {
	req := bindKindness(c)
	if req.PostID == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Missing post_id"})
		return
	}
	postID, err := strconv.Atoi(req.PostID)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid post_id"})
		return
	}

	token, expiresIn, err := h.svc.IssueToken(c.Request.Context(), postID)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeatureDisabled):
			c.JSON(http.StatusNotFound, errorResponse{Error: "Feature disabled"})
		case errors.Is(err, repository.ErrPostNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Error: "Post not found"})
		default:
			log.Println("[KINDNESS] token generation failed:", err)
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "Token generation failed"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "expires_in": expiresIn})
}

func (h *handler) redeemToken(c *gin.Context) {
	req := bindKindness(c)
	if req.PostID == "" || req.Token == "" {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Missing post_id or token"})
		return
	}
	postID, err := strconv.Atoi(req.PostID)
	if err != nil {
		c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid post_id"})
		return
	}

	newPoints, err := h.svc.Redeem(c.Request.Context(), postID, req.Token)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrFeatureDisabled):
			c.JSON(http.StatusNotFound, errorResponse{Error: "Feature disabled"})
		case errors.Is(err, service.ErrInvalidToken):
			c.JSON(http.StatusBadRequest, errorResponse{Error: "Invalid or expired token"})
		case errors.Is(err, repository.ErrPostNotFound):
			c.JSON(http.StatusNotFound, errorResponse{Error: "Post not found"})
		case errors.Is(err, repository.ErrTokenAlreadyUsed):
			c.JSON(http.StatusConflict, errorResponse{Error: "Token already used"})
		default:
			log.Println("[KINDNESS] redeem failed:", err)
			c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database error"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "new_points": newPoints})
}

func (h *handler) getKindness(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, errorResponse{Error: "Post not found"})
		return
	}

	points, err := h.svc.KindnessPoints(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, repository.ErrPostNotFound) {
			c.JSON(http.StatusNotFound, errorResponse{Error: "Post not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, errorResponse{Error: "Database error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"kindness_points": points})
}
