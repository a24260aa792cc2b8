package api

import (
	"time"

	"github.com/reelvault/reelvault/app/database"
)

type Handler struct {
	userRepo     database.UserRepository
	itemRepo     database.ItemRepository
	feedbackRepo database.FeedbackRepository
	jwtSecret    string
	tokenTTL     time.Duration
}

func NewHandler(userRepo database.UserRepository, itemRepo database.ItemRepository,
	feedbackRepo database.FeedbackRepository, jwtSecret string, tokenTTL time.Duration) *Handler {
	return &Handler{
		userRepo:     userRepo,
		itemRepo:     itemRepo,
		feedbackRepo: feedbackRepo,
		jwtSecret:    jwtSecret,
		tokenTTL:     tokenTTL,
	}
}

// Request payloads

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type createItemRequest struct {
	URL         string   `json:"url"`
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
	Notes       string   `json:"notes"`
	IsPublic    bool     `json:"is_public"`
}

type suggestRequest struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type likeRequest struct {
	IsLiked bool `json:"is_liked"`
}

type notesRequest struct {
	Notes string `json:"notes"`
}

type feedbackRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// Response payloads

type userResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

type authResponse struct {
	User  userResponse `json:"user"`
	Token string       `json:"token"`
}

type highlightedText struct {
	Description string   `json:"description"`
	Tags        []string `json:"tags"`
}

type itemResponse struct {
	ID          string           `json:"id"`
	URL         string           `json:"url"`
	EmbedURL    string           `json:"embed_url,omitempty"`
	Description string           `json:"description"`
	Tags        []string         `json:"tags"`
	Mood        string           `json:"mood"`
	MoodEmoji   string           `json:"mood_emoji"`
	MoodColor   string           `json:"mood_color"`
	Notes       string           `json:"notes,omitempty"`
	IsPublic    bool             `json:"is_public"`
	IsLiked     bool             `json:"is_liked"`
	ViewCount   int              `json:"view_count"`
	LastViewed  *time.Time       `json:"last_viewed,omitempty"`
	DateSaved   time.Time        `json:"date_saved"`
	Highlighted *highlightedText `json:"highlighted,omitempty"`
}

type feedbackResponse struct {
	ID        string    `json:"id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}
