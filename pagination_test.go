package blogpost

import (
	"errors"
	"testing"
)

func TestTotalPages(t *testing.T) {
	tests := []struct {
		items, size, want int
	}{
		{0, 10, 0},
		{1, 10, 1},
		{9, 10, 1},
		{10, 10, 1},
		{11, 10, 2},
		{23, 10, 3},
		{100, 7, 15},
		{1, 1, 1},
	}

	for _, tt := range tests {
		got, err := TotalPages(tt.items, tt.size)
		if err != nil {
			t.Errorf("TotalPages(%d, %d) failed: %v", tt.items, tt.size, err)
			continue
		}
		if got != tt.want {
			t.Errorf("TotalPages(%d, %d) = %d, want %d", tt.items, tt.size, got, tt.want)
		}
	}
}

func TestTotalPagesBounds(t *testing.T) {
	// pages*size covers all items, and one page fewer would not.
	for items := 0; items <= 50; items++ {
		for size := 1; size <= 12; size++ {
			pages, err := TotalPages(items, size)
			if err != nil {
				t.Fatalf("TotalPages(%d, %d) failed: %v", items, size, err)
			}
			if pages*size < items {
				t.Errorf("TotalPages(%d, %d) = %d: pages*size < items", items, size, pages)
			}
			if items > 0 && (pages-1)*size >= items {
				t.Errorf("TotalPages(%d, %d) = %d: one page too many", items, size, pages)
			}
		}
	}
}

func TestTotalPagesInvalidPageSize(t *testing.T) {
	for _, size := range []int{0, -1, -10} {
		if _, err := TotalPages(5, size); !errors.Is(err, ErrInvalidPageSize) {
			t.Errorf("TotalPages(5, %d): got %v, want ErrInvalidPageSize", size, err)
		}
	}
}

func TestPageOffset(t *testing.T) {
	for _, size := range []int{1, 5, 10, 100} {
		got, err := PageOffset(1, size)
		if err != nil {
			t.Fatalf("PageOffset(1, %d) failed: %v", size, err)
		}
		if got != 0 {
			t.Errorf("PageOffset(1, %d) = %d, want 0", size, got)
		}
	}

	got, err := PageOffset(3, 10)
	if err != nil {
		t.Fatalf("PageOffset(3, 10) failed: %v", err)
	}
	if got != 20 {
		t.Errorf("PageOffset(3, 10) = %d, want 20", got)
	}
}

func TestPageOffsetInvalidArguments(t *testing.T) {
	if _, err := PageOffset(0, 10); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("PageOffset(0, 10): got %v, want ErrInvalidPage", err)
	}
	if _, err := PageOffset(-2, 10); !errors.Is(err, ErrInvalidPage) {
		t.Errorf("PageOffset(-2, 10): got %v, want ErrInvalidPage", err)
	}
	if _, err := PageOffset(1, 0); !errors.Is(err, ErrInvalidPageSize) {
		t.Errorf("PageOffset(1, 0): got %v, want ErrInvalidPageSize", err)
	}
}
