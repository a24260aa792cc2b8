package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

const recentFeedbackLimit = 6

// ListFeedback returns the latest testimonials. The endpoint is public
// so the landing page can show them without a session.
func (h *Handler) ListFeedback(c *gin.Context) {
	entries, err := h.feedbackRepo.GetRecentFeedback(recentFeedbackLimit)
	if err != nil {
		slog.Error("Database error", "operation", "list_feedback", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load feedback"})
		return
	}

	responses := make([]feedbackResponse, 0, len(entries))
	for _, fb := range entries {
		responses = append(responses, feedbackResponse{
			ID:        fb.ID,
			UserName:  fb.UserName,
			Rating:    fb.Rating,
			Comment:   fb.Comment,
			CreatedAt: fb.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{"feedback": responses})
}

func (h *Handler) AddFeedback(c *gin.Context) {
	var req feedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	if req.Rating < 1 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Rating must be between 1 and 5"})
		return
	}

	comment := strings.TrimSpace(req.Comment)
	if comment == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A comment is required"})
		return
	}

	// Display name is the local part of the email on the token
	email := c.GetString(userEmailKey)
	userName, _, _ := strings.Cut(email, "@")
	if userName == "" {
		userName = "Anonymous"
	}

	fb, err := h.feedbackRepo.AddFeedback(currentUserID(c), userName, req.Rating, comment)
	if err != nil {
		slog.Error("Database error", "operation", "add_feedback", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save feedback"})
		return
	}

	c.JSON(http.StatusCreated, feedbackResponse{
		ID:        fb.ID,
		UserName:  fb.UserName,
		Rating:    fb.Rating,
		Comment:   fb.Comment,
		CreatedAt: fb.CreatedAt,
	})
}
