package api

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/reelvault/reelvault/app/auth"
	"github.com/reelvault/reelvault/app/cfg"
)

// NewServer creates a new HTTP server with all routes configured
func NewServer(handler *Handler) *gin.Engine {
	// Set Gin mode (can be controlled via GIN_MODE environment variable)
	gin.SetMode(gin.ReleaseMode)

	r := gin.New()

	// Middleware
	r.Use(gin.LoggerWithConfig(gin.LoggerConfig{
		Formatter: func(param gin.LogFormatterParams) string {
			return fmt.Sprintf("%s - [%s] \"%s %s %s %d %s \"%s\" %s\"\n",
				param.ClientIP,
				param.TimeStamp.Format(time.RFC3339),
				param.Method,
				param.Path,
				param.Request.Proto,
				param.StatusCode,
				param.Latency,
				param.Request.UserAgent(),
				param.ErrorMessage,
			)
		},
	}))

	r.Use(gin.Recovery())

	// CORS middleware for API endpoints
	r.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Routes
	setupRoutes(r, handler)

	return r
}

// setupRoutes configures all the application routes
func setupRoutes(r *gin.Engine, handler *Handler) {
	// Health and status endpoints
	r.GET("/health", handler.GetHealth)
	r.GET("/stats", handler.GetStats)

	api := r.Group("/api")
	{
		api.POST("/auth/register", handler.Register)
		api.POST("/auth/login", handler.Login)

		// Testimonials are public; submitting one requires a session
		api.GET("/feedback", handler.ListFeedback)

		authed := api.Group("")
		authed.Use(authMiddleware(handler.jwtSecret))
		{
			authed.GET("/auth/me", handler.Me)

			authed.GET("/items", handler.ListItems)
			authed.POST("/items", handler.CreateItem)
			authed.POST("/items/suggest", handler.SuggestItem)
			authed.PUT("/items/:id/like", handler.UpdateLiked)
			authed.PUT("/items/:id/notes", handler.UpdateNotes)
			authed.POST("/items/:id/view", handler.RecordView)
			authed.DELETE("/items/:id", handler.DeleteItem)

			authed.POST("/feedback", handler.AddFeedback)
		}
	}

	// Root endpoint with basic information
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"service":     "ReelVault",
			"version":     cfg.GetVersion(),
			"description": "Save, organize, and search short-form video links",
			"endpoints": map[string]string{
				"register": "/api/auth/register (POST)",
				"login":    "/api/auth/login (POST)",
				"items":    "/api/items (requires Authorization: Bearer <token>)",
				"feedback": "/api/feedback",
				"health":   "/health",
				"stats":    "/stats",
			},
		})
	})

	// Favicon handler (return 204 to avoid 404s)
	r.GET("/favicon.ico", func(c *gin.Context) {
		c.Status(204)
	})
}

const userIDKey = "user_id"
const userEmailKey = "user_email"

// authMiddleware validates the Bearer token and stores the caller's
// identity on the request context.
func authMiddleware(jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Authentication required",
				"message": "Provide an access token in the Authorization: Bearer <token> header",
			})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid authorization header",
				"message": "Expected format: Authorization: Bearer <token>",
			})
			c.Abort()
			return
		}

		claims, err := auth.ValidateToken(jwtSecret, tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"error":   "Invalid token",
				"message": "The provided access token is not valid",
			})
			c.Abort()
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set(userEmailKey, claims.Email)

		c.Next()
	}
}

func currentUserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}
