package blogpost

import (
	"sort"
	"testing"
)

func TestListCategoriesBaselineOnly(t *testing.T) {
	s := setupTestStore(t)

	got, err := s.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}

	want := []string{"AWS", "Azure", "GCP", "Heroku", "MySQL", "Python", "Streamlit"}
	if len(got) != len(want) {
		t.Fatalf("ListCategories = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("ListCategories[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestListCategoriesMergesStoreNames(t *testing.T) {
	s := setupTestStore(t)

	seedCategory(t, s, "Go")
	seedCategory(t, s, "Python") // duplicates a baseline name

	got, err := s.ListCategories()
	if err != nil {
		t.Fatalf("ListCategories failed: %v", err)
	}

	// 7 baseline + "Go"; "Python" deduplicated.
	if len(got) != 8 {
		t.Fatalf("ListCategories count = %d, want 8, got %v", len(got), got)
	}
	if !sort.StringsAreSorted(got) {
		t.Errorf("ListCategories not sorted: %v", got)
	}
	seen := make(map[string]int)
	for _, name := range got {
		seen[name]++
	}
	if seen["Python"] != 1 {
		t.Errorf("Python appears %d times, want 1", seen["Python"])
	}
	if seen["Go"] != 1 {
		t.Errorf("Go appears %d times, want 1", seen["Go"])
	}
}

func TestResolveCategoryIDs(t *testing.T) {
	s := setupTestStore(t)

	pythonID := seedCategory(t, s, "Python")
	goID := seedCategory(t, s, "Go")

	ids, err := s.ResolveCategoryIDs([]string{"Python", "Nope", "Go"})
	if err != nil {
		t.Fatalf("ResolveCategoryIDs failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("resolved %d ids, want 2: %v", len(ids), ids)
	}
	found := map[int64]bool{ids[0]: true, ids[1]: true}
	if !found[pythonID] || !found[goID] {
		t.Errorf("resolved ids %v, want {%d, %d}", ids, pythonID, goID)
	}
}

func TestResolveCategoryIDsNoMatches(t *testing.T) {
	s := setupTestStore(t)

	ids, err := s.ResolveCategoryIDs([]string{"Nope", "Missing"})
	if err != nil {
		t.Fatalf("ResolveCategoryIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("resolved %v, want none", ids)
	}
}

func TestResolveCategoryIDsCaseSensitive(t *testing.T) {
	s := setupTestStore(t)

	seedCategory(t, s, "Python")

	ids, err := s.ResolveCategoryIDs([]string{"python", "PYTHON"})
	if err != nil {
		t.Fatalf("ResolveCategoryIDs failed: %v", err)
	}
	if len(ids) != 0 {
		t.Errorf("case-mismatched names resolved to %v, want none", ids)
	}
}
