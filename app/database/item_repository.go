package database

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/reelvault/reelvault/app/vault"
)

// itemRepository handles database operations for saved items
type itemRepository struct {
	db *DB
}

var _ ItemRepository = (*itemRepository)(nil)

func NewItemRepository(db *DB) ItemRepository {
	return &itemRepository{db: db}
}

const itemColumns = `id, user_id, url, description, tags, mood,
       COALESCE(notes, ''), is_public, is_liked, view_count,
       last_viewed, date_saved`

// ListItems returns all items owned by a user, newest-first by date_saved.
func (r *itemRepository) ListItems(userID string) ([]vault.Item, error) {
	rows, err := r.db.Query(`
		SELECT `+itemColumns+`
		FROM items
		WHERE user_id = ?
		ORDER BY date_saved DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list items: %w", err)
	}
	defer rows.Close()

	var items []vault.Item
	for rows.Next() {
		item, err := scanItem(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating item rows: %w", err)
	}

	return items, nil
}

// GetItem returns one item owned by a user, or (nil, nil) when absent.
func (r *itemRepository) GetItem(userID, itemID string) (*vault.Item, error) {
	row := r.db.QueryRow(`
		SELECT `+itemColumns+`
		FROM items
		WHERE user_id = ? AND id = ?
	`, userID, itemID)

	item, err := scanItem(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// CreateItem persists a new item, assigning its id and save timestamp.
func (r *itemRepository) CreateItem(item vault.Item) (*vault.Item, error) {
	item.ID = uuid.New().String()
	item.DateSaved = time.Now().UTC()

	tags, err := json.Marshal(item.Tags)
	if err != nil {
		return nil, fmt.Errorf("failed to encode tags: %w", err)
	}

	_, err = r.db.Exec(`
		INSERT INTO items (
			id, user_id, url, description, tags, mood,
			notes, is_public, is_liked, view_count, last_viewed, date_saved
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, 0, NULL, ?)
	`, item.ID, item.UserID, item.URL, item.Description, string(tags),
		string(item.Mood), item.Notes, item.IsPublic, item.IsLiked, item.DateSaved)
	if err != nil {
		return nil, fmt.Errorf("failed to store item: %w", err)
	}

	item.ViewCount = 0
	item.LastViewed = nil

	return &item, nil
}

func (r *itemRepository) UpdateLiked(userID, itemID string, liked bool) error {
	result, err := r.db.Exec(`
		UPDATE items SET is_liked = ? WHERE user_id = ? AND id = ?
	`, liked, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to update liked flag: %w", err)
	}
	return requireRow(result)
}

func (r *itemRepository) UpdateNotes(userID, itemID, notes string) error {
	result, err := r.db.Exec(`
		UPDATE items SET notes = ? WHERE user_id = ? AND id = ?
	`, notes, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to update notes: %w", err)
	}
	return requireRow(result)
}

// IncrementViewCount bumps the view counter and stamps last_viewed.
// The counter only ever grows.
func (r *itemRepository) IncrementViewCount(userID, itemID string) error {
	result, err := r.db.Exec(`
		UPDATE items
		SET view_count = view_count + 1, last_viewed = ?
		WHERE user_id = ? AND id = ?
	`, time.Now().UTC(), userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to increment view count: %w", err)
	}
	return requireRow(result)
}

func (r *itemRepository) DeleteItem(userID, itemID string) error {
	result, err := r.db.Exec(`
		DELETE FROM items WHERE user_id = ? AND id = ?
	`, userID, itemID)
	if err != nil {
		return fmt.Errorf("failed to delete item: %w", err)
	}
	return requireRow(result)
}

// GetItemCount returns the total number of items across all users.
func (r *itemRepository) GetItemCount() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM items").Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to get item count: %w", err)
	}
	return count, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanItem(row rowScanner) (vault.Item, error) {
	var item vault.Item
	var tags string
	var mood string
	var lastViewed sql.NullTime

	err := row.Scan(
		&item.ID, &item.UserID, &item.URL, &item.Description, &tags, &mood,
		&item.Notes, &item.IsPublic, &item.IsLiked, &item.ViewCount,
		&lastViewed, &item.DateSaved,
	)
	if err == sql.ErrNoRows {
		return item, err
	}
	if err != nil {
		return item, fmt.Errorf("failed to scan item row: %w", err)
	}

	if err := json.Unmarshal([]byte(tags), &item.Tags); err != nil {
		return item, fmt.Errorf("failed to decode tags: %w", err)
	}
	item.Mood = vault.Mood(mood)
	if lastViewed.Valid {
		t := lastViewed.Time
		item.LastViewed = &t
	}

	return item, nil
}

func requireRow(result sql.Result) error {
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
