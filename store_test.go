package blogpost

import (
	"path/filepath"
	"testing"
)

func setupTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test_blog.db")

	s, err := NewStore(path)
	if err != nil {
		t.Fatalf("failed to create store: %v", err)
	}
	t.Cleanup(func() { s.Close() })

	return s
}

func seedCategory(t *testing.T, s *Store, name string) int64 {
	t.Helper()
	res, err := s.db.Exec(`INSERT INTO categories (name) VALUES (?)`, name)
	if err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("seed category %q: %v", name, err)
	}
	return id
}

func seedUser(t *testing.T, s *Store, username, password string) int64 {
	t.Helper()
	if err := s.Register(username, password); err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	id, err := s.UserID(username)
	if err != nil {
		t.Fatalf("seed user %q: %v", username, err)
	}
	return id
}

// seedPost inserts a post row directly so tests control created_at.
func seedPost(t *testing.T, s *Store, title, content string, userID int64, createdAt string) int64 {
	t.Helper()
	var author interface{}
	if userID != 0 {
		author = userID
	}
	res, err := s.db.Exec(`INSERT INTO posts (title, content, user_id, created_at) VALUES (?, ?, ?, ?)`,
		title, content, author, createdAt)
	if err != nil {
		t.Fatalf("seed post %q: %v", title, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("seed post %q: %v", title, err)
	}
	return id
}

func countAssociations(t *testing.T, s *Store, postID int64) int {
	t.Helper()
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM post_categories WHERE post_id = ?`, postID).Scan(&n); err != nil {
		t.Fatalf("count associations: %v", err)
	}
	return n
}

func TestNewStore(t *testing.T) {
	s := setupTestStore(t)

	if s == nil {
		t.Fatal("store should not be nil")
	}
	if s.db == nil {
		t.Fatal("db should not be nil")
	}
}

func TestSchemaIsIdempotent(t *testing.T) {
	s := setupTestStore(t)

	if err := s.ensureSchema(); err != nil {
		t.Fatalf("second ensureSchema failed: %v", err)
	}
}
