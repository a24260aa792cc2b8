package api

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reelvault/reelvault/app/database"
	"github.com/reelvault/reelvault/app/vault"
)

// ListItems returns the caller's collection, filtered by the optional
// search and mood query parameters. Stats and mood facets always cover
// the full unfiltered collection; the recently-viewed shelf is only
// included when no filter is active.
func (h *Handler) ListItems(c *gin.Context) {
	userID := currentUserID(c)

	searchTerm := c.Query("search")
	var mood vault.Mood
	if moodParam := c.Query("mood"); moodParam != "" {
		parsed, err := vault.ParseMood(moodParam)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Unknown mood filter"})
			return
		}
		mood = parsed
	}

	items, err := h.itemRepo.ListItems(userID)
	if err != nil {
		slog.Error("Database error", "operation", "list_items", "user", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load your saved items"})
		return
	}

	collection := vault.NewCollection(items)
	filtered := collection.Filter(searchTerm, mood)

	response := gin.H{
		"items":       itemResponses(filtered, searchTerm),
		"stats":       collection.Stats(),
		"mood_facets": collection.MoodFacets(),
	}

	if strings.TrimSpace(searchTerm) == "" && mood == "" {
		response["recently_viewed"] = itemResponses(collection.RecentlyViewed(), "")
	}

	c.JSON(http.StatusOK, response)
}

// CreateItem validates and saves a new item. The mood is always derived
// server-side from the final description and tags.
func (h *Handler) CreateItem(c *gin.Context) {
	userID := currentUserID(c)

	var req createItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	url := strings.TrimSpace(req.URL)
	description := strings.TrimSpace(req.Description)

	if url == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "URL required",
			"message": "Please enter a valid Instagram Reel or YouTube Shorts URL.",
		})
		return
	}
	if err := vault.ValidateURL(url); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid URL",
			"message": "Please enter a valid Instagram Reel or YouTube Shorts URL.",
		})
		return
	}
	if description == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Description required",
			"message": "Please add a description for this item.",
		})
		return
	}

	tags := normalizeTags(req.Tags)

	created, err := h.itemRepo.CreateItem(vault.Item{
		UserID:      userID,
		URL:         url,
		Description: description,
		Tags:        tags,
		Mood:        vault.DetectMood(description, tags),
		Notes:       strings.TrimSpace(req.Notes),
		IsPublic:    req.IsPublic,
	})
	if err != nil {
		slog.Error("Database error", "operation", "create_item", "user", userID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not save your item. Please try again."})
		return
	}

	c.JSON(http.StatusCreated, toItemResponse(*created, ""))
}

// SuggestItem previews the tags and mood the classifier would assign,
// so the form can offer them before the item is saved.
func (h *Handler) SuggestItem(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	tags := normalizeTags(req.Tags)
	mood := vault.DetectMood(req.Description, tags)

	c.JSON(http.StatusOK, gin.H{
		"suggested_tags": vault.SuggestTags(req.Description),
		"mood":           mood,
		"mood_emoji":     mood.Emoji(),
		"mood_color":     mood.Color(),
	})
}

func (h *Handler) UpdateLiked(c *gin.Context) {
	var req likeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.mutateItem(c, "update_liked", func(userID, itemID string) error {
		return h.itemRepo.UpdateLiked(userID, itemID, req.IsLiked)
	})
}

func (h *Handler) UpdateNotes(c *gin.Context) {
	var req notesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	h.mutateItem(c, "update_notes", func(userID, itemID string) error {
		return h.itemRepo.UpdateNotes(userID, itemID, req.Notes)
	})
}

// RecordView is called when the embedded player loads: it bumps the view
// counter and stamps the last-viewed time.
func (h *Handler) RecordView(c *gin.Context) {
	h.mutateItem(c, "record_view", h.itemRepo.IncrementViewCount)
}

func (h *Handler) DeleteItem(c *gin.Context) {
	userID := currentUserID(c)
	itemID := c.Param("id")

	err := h.itemRepo.DeleteItem(userID, itemID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		slog.Error("Database error", "operation", "delete_item", "user", userID, "item", itemID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not delete the item"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// mutateItem runs an ownership-scoped mutation and responds with the
// refreshed item.
func (h *Handler) mutateItem(c *gin.Context, operation string, mutate func(userID, itemID string) error) {
	userID := currentUserID(c)
	itemID := c.Param("id")

	err := mutate(userID, itemID)
	if errors.Is(err, database.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Item not found"})
		return
	}
	if err != nil {
		slog.Error("Database error", "operation", operation, "user", userID, "item", itemID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not update the item"})
		return
	}

	item, err := h.itemRepo.GetItem(userID, itemID)
	if err != nil || item == nil {
		slog.Error("Database error", "operation", operation, "user", userID, "item", itemID, "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not load the updated item"})
		return
	}

	c.JSON(http.StatusOK, toItemResponse(*item, ""))
}

func (h *Handler) GetHealth(c *gin.Context) {
	health := gin.H{
		"timestamp": time.Now().In(time.Local).Format(time.RFC3339),
	}

	if userCount, err := h.userRepo.GetUserCount(); err == nil {
		health["users"] = userCount
	}
	if itemCount, err := h.itemRepo.GetItemCount(); err == nil {
		health["items"] = itemCount
	}

	c.JSON(http.StatusOK, health)
}

func (h *Handler) GetStats(c *gin.Context) {
	stats := gin.H{}

	if userCount, err := h.userRepo.GetUserCount(); err == nil {
		stats["users"] = userCount
	}
	if itemCount, err := h.itemRepo.GetItemCount(); err == nil {
		stats["items"] = itemCount
	}

	c.JSON(http.StatusOK, stats)
}

// normalizeTags trims, drops empties, and deduplicates while keeping
// first-seen order.
func normalizeTags(tags []string) []string {
	normalized := []string{}
	seen := make(map[string]bool)
	for _, tag := range tags {
		tag = strings.TrimSpace(tag)
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		normalized = append(normalized, tag)
	}
	return normalized
}

func itemResponses(items []vault.Item, searchTerm string) []itemResponse {
	responses := make([]itemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, toItemResponse(item, searchTerm))
	}
	return responses
}

func toItemResponse(item vault.Item, searchTerm string) itemResponse {
	resp := itemResponse{
		ID:          item.ID,
		URL:         item.URL,
		EmbedURL:    vault.EmbedURL(item.URL),
		Description: item.Description,
		Tags:        item.Tags,
		Mood:        string(item.Mood),
		MoodEmoji:   item.Mood.Emoji(),
		MoodColor:   item.Mood.Color(),
		Notes:       item.Notes,
		IsPublic:    item.IsPublic,
		IsLiked:     item.IsLiked,
		ViewCount:   item.ViewCount,
		LastViewed:  item.LastViewed,
		DateSaved:   item.DateSaved,
	}

	if strings.TrimSpace(searchTerm) != "" {
		highlighted := highlightedText{
			Description: vault.Highlight(item.Description, searchTerm),
			Tags:        make([]string, 0, len(item.Tags)),
		}
		for _, tag := range item.Tags {
			highlighted.Tags = append(highlighted.Tags, vault.Highlight(tag, searchTerm))
		}
		resp.Highlighted = &highlighted
	}

	return resp
}
