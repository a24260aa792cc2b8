package database

import (
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/reelvault/reelvault/app/vault"
)

func newTestDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnection(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	if _, _, err := RunMigrations(db); err != nil {
		t.Fatalf("Failed to run migrations: %v", err)
	}

	return db
}

func newTestUser(t *testing.T, db *DB) *User {
	t.Helper()

	user, err := NewUserRepository(db).CreateUser("test@example.com", "hash")
	if err != nil {
		t.Fatalf("Failed to create test user: %v", err)
	}
	return user
}

func TestItemRepository_CreateAndList(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	repo := NewItemRepository(db)

	created, err := repo.CreateItem(vault.Item{
		UserID:      user.ID,
		URL:         "https://youtube.com/shorts/abc123",
		Description: "first item",
		Tags:        []string{"a", "b"},
		Mood:        vault.MoodFunny,
		Notes:       "a note",
		IsPublic:    false,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	if created.ID == "" {
		t.Error("Expected server-assigned id")
	}
	if created.DateSaved.IsZero() {
		t.Error("Expected server-assigned date_saved")
	}
	if created.ViewCount != 0 {
		t.Errorf("Expected zero view count, got %d", created.ViewCount)
	}
	if created.LastViewed != nil {
		t.Error("Expected nil last_viewed on creation")
	}

	items, err := repo.ListItems(user.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("Expected 1 item, got %d", len(items))
	}

	item := items[0]
	if item.ID != created.ID {
		t.Errorf("Expected id %s, got %s", created.ID, item.ID)
	}
	// Round-trip: tags come back in the same set with no duplication
	if !reflect.DeepEqual(item.Tags, []string{"a", "b"}) {
		t.Errorf("Tags not preserved: %v", item.Tags)
	}
	if item.Mood != vault.MoodFunny {
		t.Errorf("Mood not preserved: %s", item.Mood)
	}
	if item.Notes != "a note" {
		t.Errorf("Notes not preserved: %q", item.Notes)
	}
	if item.IsPublic {
		t.Error("IsPublic not preserved")
	}
}

func TestItemRepository_ListNewestFirst(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	repo := NewItemRepository(db)

	first, err := repo.CreateItem(vault.Item{
		UserID: user.ID, URL: "https://youtu.be/one", Description: "one", Mood: vault.MoodCalm,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	time.Sleep(10 * time.Millisecond)

	second, err := repo.CreateItem(vault.Item{
		UserID: user.ID, URL: "https://youtu.be/two", Description: "two", Mood: vault.MoodCalm,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	items, err := repo.ListItems(user.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("Expected 2 items, got %d", len(items))
	}
	if items[0].ID != second.ID || items[1].ID != first.ID {
		t.Errorf("Expected newest-first ordering, got %s then %s", items[0].ID, items[1].ID)
	}
}

func TestItemRepository_IncrementViewCount(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	repo := NewItemRepository(db)

	created, err := repo.CreateItem(vault.Item{
		UserID: user.ID, URL: "https://youtu.be/abc", Description: "clip", Mood: vault.MoodFunny,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	if err := repo.IncrementViewCount(user.ID, created.ID); err != nil {
		t.Fatalf("IncrementViewCount failed: %v", err)
	}

	afterFirst, err := repo.GetItem(user.ID, created.ID)
	if err != nil || afterFirst == nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if afterFirst.ViewCount != 1 {
		t.Errorf("Expected view count 1, got %d", afterFirst.ViewCount)
	}
	if afterFirst.LastViewed == nil {
		t.Fatal("Expected last_viewed to be set")
	}

	time.Sleep(10 * time.Millisecond)

	if err := repo.IncrementViewCount(user.ID, created.ID); err != nil {
		t.Fatalf("Second IncrementViewCount failed: %v", err)
	}

	afterSecond, err := repo.GetItem(user.ID, created.ID)
	if err != nil || afterSecond == nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	// Two increments raise the counter by exactly 2; last_viewed moves
	// to the second call's timestamp
	if afterSecond.ViewCount != 2 {
		t.Errorf("Expected view count 2, got %d", afterSecond.ViewCount)
	}
	if !afterSecond.LastViewed.After(*afterFirst.LastViewed) {
		t.Error("Expected last_viewed to advance on second increment")
	}
}

func TestItemRepository_UpdateLikedAndNotes(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	repo := NewItemRepository(db)

	created, err := repo.CreateItem(vault.Item{
		UserID: user.ID, URL: "https://youtu.be/abc", Description: "clip", Mood: vault.MoodFunny,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	if err := repo.UpdateLiked(user.ID, created.ID, true); err != nil {
		t.Fatalf("UpdateLiked failed: %v", err)
	}
	if err := repo.UpdateNotes(user.ID, created.ID, "watch later"); err != nil {
		t.Fatalf("UpdateNotes failed: %v", err)
	}

	item, err := repo.GetItem(user.ID, created.ID)
	if err != nil || item == nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if !item.IsLiked {
		t.Error("Expected item to be liked")
	}
	if item.Notes != "watch later" {
		t.Errorf("Expected updated notes, got %q", item.Notes)
	}
}

func TestItemRepository_Delete(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	repo := NewItemRepository(db)

	created, err := repo.CreateItem(vault.Item{
		UserID: user.ID, URL: "https://youtu.be/abc", Description: "clip", Mood: vault.MoodFunny,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	if err := repo.DeleteItem(user.ID, created.ID); err != nil {
		t.Fatalf("DeleteItem failed: %v", err)
	}

	items, err := repo.ListItems(user.ID)
	if err != nil {
		t.Fatalf("ListItems failed: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("Expected empty list after delete, got %d items", len(items))
	}

	item, err := repo.GetItem(user.ID, created.ID)
	if err != nil {
		t.Fatalf("GetItem failed: %v", err)
	}
	if item != nil {
		t.Error("Expected deleted item to be absent")
	}
}

func TestItemRepository_OwnershipEnforced(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	repo := NewItemRepository(db)

	created, err := repo.CreateItem(vault.Item{
		UserID: user.ID, URL: "https://youtu.be/abc", Description: "clip", Mood: vault.MoodFunny,
	})
	if err != nil {
		t.Fatalf("CreateItem failed: %v", err)
	}

	// Another user's id must not see or touch the item
	if item, err := repo.GetItem("someone-else", created.ID); err != nil || item != nil {
		t.Errorf("Expected (nil, nil) for foreign item, got (%v, %v)", item, err)
	}
	if err := repo.UpdateLiked("someone-else", created.ID, true); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
	if err := repo.DeleteItem("someone-else", created.ID); err != ErrNotFound {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}
}

func TestUserRepository_CreateAndGet(t *testing.T) {
	db := newTestDB(t)
	repo := NewUserRepository(db)

	user, err := repo.CreateUser("Someone@Example.com", "hash")
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}
	if user.Email != "someone@example.com" {
		t.Errorf("Expected lower-cased email, got %q", user.Email)
	}

	// Duplicate email rejected by the unique constraint
	if _, err := repo.CreateUser("someone@example.com", "hash2"); err == nil {
		t.Error("Expected error for duplicate email")
	}

	byEmail, err := repo.GetUserByEmail("SOMEONE@example.com")
	if err != nil || byEmail == nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if byEmail.ID != user.ID {
		t.Errorf("Expected user %s, got %s", user.ID, byEmail.ID)
	}

	missing, err := repo.GetUserByEmail("nobody@example.com")
	if err != nil {
		t.Fatalf("GetUserByEmail failed: %v", err)
	}
	if missing != nil {
		t.Error("Expected nil for unknown email")
	}
}

func TestFeedbackRepository_RecentFirst(t *testing.T) {
	db := newTestDB(t)
	user := newTestUser(t, db)
	repo := NewFeedbackRepository(db)

	for i, comment := range []string{"first", "second", "third"} {
		if _, err := repo.AddFeedback(user.ID, "Tester", (i%5)+1, comment); err != nil {
			t.Fatalf("AddFeedback failed: %v", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	entries, err := repo.GetRecentFeedback(2)
	if err != nil {
		t.Fatalf("GetRecentFeedback failed: %v", err)
	}
	if len(entries) != 2 {
		t.Fatalf("Expected 2 entries, got %d", len(entries))
	}
	if entries[0].Comment != "third" || entries[1].Comment != "second" {
		t.Errorf("Expected newest-first feedback, got %q then %q", entries[0].Comment, entries[1].Comment)
	}
}
