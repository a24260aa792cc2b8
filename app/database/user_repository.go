package database

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// userRepository handles database operations for accounts
type userRepository struct {
	db *DB
}

var _ UserRepository = (*userRepository)(nil)

func NewUserRepository(db *DB) UserRepository {
	return &userRepository{db: db}
}

// CreateUser persists a new account. Emails are stored lower-cased so
// sign-in is case-insensitive.
func (r *userRepository) CreateUser(email, passwordHash string) (*User, error) {
	user := &User{
		ID:           uuid.New().String(),
		Email:        strings.ToLower(strings.TrimSpace(email)),
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}

	_, err := r.db.Exec(`
		INSERT INTO users (id, email, password_hash, created_at)
		VALUES (?, ?, ?, ?)
	`, user.ID, user.Email, user.PasswordHash, user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user, nil
}

// GetUserByEmail returns the account for an email, or (nil, nil) when absent.
func (r *userRepository) GetUserByEmail(email string) (*User, error) {
	return r.getUser("email = ?", strings.ToLower(strings.TrimSpace(email)))
}

// GetUserByID returns the account for an id, or (nil, nil) when absent.
func (r *userRepository) GetUserByID(id string) (*User, error) {
	return r.getUser("id = ?", id)
}

func (r *userRepository) getUser(where string, arg interface{}) (*User, error) {
	var user User
	err := r.db.QueryRow(`
		SELECT id, email, password_hash, created_at FROM users WHERE `+where,
		arg).Scan(&user.ID, &user.Email, &user.PasswordHash, &user.CreatedAt)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

func (r *userRepository) GetUserCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM users").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get user count: %w", err)
	}
	return count, nil
}
