package blogpost

import (
	"database/sql"
	"fmt"
	"sort"
)

// baselineCategories always appear in listings, whether or not the store
// defines them.
var baselineCategories = []string{"Python", "AWS", "GCP", "Azure", "MySQL", "Streamlit", "Heroku"}

// ListCategories returns the union of the baseline names and the
// store-defined names, deduplicated and sorted ascending.
func (s *Store) ListCategories() ([]string, error) {
	rows, err := s.db.Query(`SELECT name FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	defer rows.Close()

	set := make(map[string]struct{}, len(baselineCategories))
	for _, name := range baselineCategories {
		set[name] = struct{}{}
	}
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("list categories: %w", err)
		}
		set[name] = struct{}{}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

// ResolveCategoryIDs maps category names to their identifiers by exact,
// case-sensitive match. Names with no matching row are dropped, not an
// error, so the result may be shorter than the input.
func (s *Store) ResolveCategoryIDs(names []string) ([]int64, error) {
	var ids []int64
	for _, name := range names {
		var id int64
		err := s.db.QueryRow(`SELECT id FROM categories WHERE name = ?`, name).Scan(&id)
		if err == sql.ErrNoRows {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("resolve category %q: %w", name, err)
		}
		ids = append(ids, id)
	}
	return ids, nil
}
