package database

import (
	"errors"

	"github.com/reelvault/reelvault/app/vault"
)

// ErrNotFound is returned by mutation methods when no row matched the
// given item/user pair. Reads return (nil, nil) for missing rows.
var ErrNotFound = errors.New("not found")

type UserRepository interface {
	CreateUser(email, passwordHash string) (*User, error)
	GetUserByEmail(email string) (*User, error)
	GetUserByID(id string) (*User, error)
	GetUserCount() (int, error)
}

type ItemRepository interface {
	ListItems(userID string) ([]vault.Item, error)
	GetItem(userID, itemID string) (*vault.Item, error)
	CreateItem(item vault.Item) (*vault.Item, error)
	UpdateLiked(userID, itemID string, liked bool) error
	UpdateNotes(userID, itemID, notes string) error
	IncrementViewCount(userID, itemID string) error
	DeleteItem(userID, itemID string) error
	GetItemCount() (int, error)
}

type FeedbackRepository interface {
	AddFeedback(userID, userName string, rating int, comment string) (*Feedback, error)
	GetRecentFeedback(limit int) ([]Feedback, error)
}
