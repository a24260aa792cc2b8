package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/reelvault/reelvault/app/auth"
)

const minPasswordLength = 6

// Register creates a new account and returns a session token so the
// client can sign in immediately.
func (h *Handler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if email == "" || !strings.Contains(email, "@") {
		c.JSON(http.StatusBadRequest, gin.H{"error": "A valid email address is required"})
		return
	}
	if len(req.Password) < minPasswordLength {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Password must be at least 6 characters"})
		return
	}

	existing, err := h.userRepo.GetUserByEmail(email)
	if err != nil {
		slog.Error("Database error", "operation", "register", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account"})
		return
	}
	if existing != nil {
		c.JSON(http.StatusConflict, gin.H{"error": "An account with this email already exists"})
		return
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		slog.Error("Password hashing failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account"})
		return
	}

	user, err := h.userRepo.CreateUser(email, hash)
	if err != nil {
		slog.Error("Database error", "operation", "register", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create account"})
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, h.tokenTTL, user.ID, user.Email)
	if err != nil {
		slog.Error("Token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	c.JSON(http.StatusCreated, authResponse{
		User:  userResponse{ID: user.ID, Email: user.Email},
		Token: token,
	})
}

// Login verifies credentials and issues a fresh token. The same message
// covers an unknown email and a wrong password.
func (h *Handler) Login(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := h.userRepo.GetUserByEmail(email)
	if err != nil {
		slog.Error("Database error", "operation", "login", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not sign in"})
		return
	}
	if user == nil || auth.CheckPassword(req.Password, user.PasswordHash) != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		return
	}

	token, err := auth.GenerateToken(h.jwtSecret, h.tokenTTL, user.ID, user.Email)
	if err != nil {
		slog.Error("Token generation failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create session"})
		return
	}

	c.JSON(http.StatusOK, authResponse{
		User:  userResponse{ID: user.ID, Email: user.Email},
		Token: token,
	})
}

// Me returns the identity baked into the caller's token.
func (h *Handler) Me(c *gin.Context) {
	c.JSON(http.StatusOK, userResponse{
		ID:    c.GetString(userIDKey),
		Email: c.GetString(userEmailKey),
	})
}
