package blogpost

import (
	"database/sql"
	"fmt"
	"strings"
)

// CreatePost validates title and content, inserts the post row, resolves
// categoryNames, and inserts one association row per resolved identifier.
// The post insert and the association inserts run in a single transaction:
// a failure after the post insert rolls the whole write back instead of
// leaving an orphaned post with partial categories. A zero userID stores a
// NULL author.
func (s *Store) CreatePost(userID int64, title, content string, categoryNames []string) (int64, error) {
	if strings.TrimSpace(title) == "" {
		return 0, ErrTitleRequired
	}
	if strings.TrimSpace(content) == "" {
		return 0, ErrContentRequired
	}

	categoryIDs, err := s.ResolveCategoryIDs(categoryNames)
	if err != nil {
		return 0, err
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	defer tx.Rollback()

	author := sql.NullInt64{Int64: userID, Valid: userID != 0}
	res, err := tx.Exec(`INSERT INTO posts (title, content, user_id, created_at) VALUES (?, ?, ?, ?)`,
		title, content, author, now())
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	postID, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	for _, categoryID := range categoryIDs {
		if _, err := tx.Exec(`INSERT INTO post_categories (post_id, category_id) VALUES (?, ?)`,
			postID, categoryID); err != nil {
			return 0, fmt.Errorf("create post: associate category %d: %w", categoryID, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("create post: %w", err)
	}
	return postID, nil
}

// ListPosts returns posts newest first, each joined with its author's
// username, windowed by offset and limit. Posts whose user reference is
// missing or dangling get the author "Unknown". Timestamp ties break by
// descending id so insertion order survives within one second.
func (s *Store) ListPosts(offset, limit int) ([]PostView, error) {
	rows, err := s.db.Query(`
		SELECT p.id, p.title, p.content, COALESCE(u.username, 'Unknown'), p.created_at
		FROM posts p
		LEFT JOIN users u ON p.user_id = u.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	defer rows.Close()

	var posts []PostView
	for rows.Next() {
		var p PostView
		if err := rows.Scan(&p.ID, &p.Title, &p.Content, &p.Author, &p.CreatedAt); err != nil {
			return nil, fmt.Errorf("list posts: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list posts: %w", err)
	}
	return posts, nil
}

// ListPostsByCategory returns every post associated with categoryID as a
// title+content summary, in the store's natural order.
func (s *Store) ListPostsByCategory(categoryID int64) ([]PostSummary, error) {
	rows, err := s.db.Query(`
		SELECT p.title, p.content
		FROM posts p
		INNER JOIN post_categories pc ON p.id = pc.post_id
		WHERE pc.category_id = ?`, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list posts by category: %w", err)
	}
	defer rows.Close()
	return scanSummaries(rows)
}

// SearchPosts returns posts in the given category whose title or content
// contains keyword as a substring, newest first, windowed by offset and
// limit. The keyword is always bound as a parameter, never interpolated.
func (s *Store) SearchPosts(categoryID int64, keyword string, offset, limit int) ([]PostSummary, error) {
	pattern := "%" + keyword + "%"
	rows, err := s.db.Query(`
		SELECT p.title, p.content
		FROM posts p
		INNER JOIN post_categories pc ON p.id = pc.post_id
		WHERE pc.category_id = ?
		AND (p.title LIKE ? OR p.content LIKE ?)
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT ? OFFSET ?`, categoryID, pattern, pattern, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("search posts: %w", err)
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func scanSummaries(rows *sql.Rows) ([]PostSummary, error) {
	var posts []PostSummary
	for rows.Next() {
		var p PostSummary
		if err := rows.Scan(&p.Title, &p.Content); err != nil {
			return nil, fmt.Errorf("scan post: %w", err)
		}
		posts = append(posts, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("scan post: %w", err)
	}
	return posts, nil
}

// CountPosts returns the total number of posts, used to drive pagination.
func (s *Store) CountPosts() (int, error) {
	var n int
	if err := s.db.QueryRow(`SELECT COUNT(*) FROM posts`).Scan(&n); err != nil {
		return 0, fmt.Errorf("count posts: %w", err)
	}
	return n, nil
}

// PostTrendsByDate returns the number of posts created per calendar date,
// ascending by date. The series feeds an external charting client; nothing
// here renders it.
func (s *Store) PostTrendsByDate() ([]TrendPoint, error) {
	rows, err := s.db.Query(`
		SELECT DATE(created_at), COUNT(*)
		FROM posts
		GROUP BY DATE(created_at)
		ORDER BY DATE(created_at)`)
	if err != nil {
		return nil, fmt.Errorf("post trends: %w", err)
	}
	defer rows.Close()

	var trends []TrendPoint
	for rows.Next() {
		var t TrendPoint
		if err := rows.Scan(&t.Date, &t.Count); err != nil {
			return nil, fmt.Errorf("post trends: %w", err)
		}
		trends = append(trends, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("post trends: %w", err)
	}
	return trends, nil
}
