package database

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// feedbackRepository handles database operations for testimonials
type feedbackRepository struct {
	db *DB
}

var _ FeedbackRepository = (*feedbackRepository)(nil)

func NewFeedbackRepository(db *DB) FeedbackRepository {
	return &feedbackRepository{db: db}
}

func (r *feedbackRepository) AddFeedback(userID, userName string, rating int, comment string) (*Feedback, error) {
	fb := &Feedback{
		ID:        uuid.New().String(),
		UserID:    userID,
		UserName:  userName,
		Rating:    rating,
		Comment:   comment,
		CreatedAt: time.Now().UTC(),
	}

	_, err := r.db.Exec(`
		INSERT INTO feedback (id, user_id, user_name, rating, comment, created_at)
		VALUES (?, ?, ?, ?, ?, ?)
	`, fb.ID, fb.UserID, fb.UserName, fb.Rating, fb.Comment, fb.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to store feedback: %w", err)
	}

	return fb, nil
}

// GetRecentFeedback returns the newest feedback entries, most recent first.
func (r *feedbackRepository) GetRecentFeedback(limit int) ([]Feedback, error) {
	rows, err := r.db.Query(`
		SELECT id, user_id, user_name, rating, comment, created_at
		FROM feedback
		ORDER BY created_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get feedback: %w", err)
	}
	defer rows.Close()

	var entries []Feedback
	for rows.Next() {
		var fb Feedback
		err := rows.Scan(&fb.ID, &fb.UserID, &fb.UserName, &fb.Rating, &fb.Comment, &fb.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan feedback row: %w", err)
		}
		entries = append(entries, fb)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating feedback rows: %w", err)
	}

	return entries, nil
}
