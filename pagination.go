package blogpost

// TotalPages returns ceil(totalItems / pageSize) using integer arithmetic.
// Zero items yields zero pages.
func TotalPages(totalItems, pageSize int) (int, error) {
	if pageSize <= 0 {
		return 0, ErrInvalidPageSize
	}
	return (totalItems + pageSize - 1) / pageSize, nil
}

// PageOffset returns the row offset for a 1-indexed page number. Callers
// must keep page within 1..TotalPages; no clamping happens here.
func PageOffset(page, pageSize int) (int, error) {
	if page < 1 {
		return 0, ErrInvalidPage
	}
	if pageSize <= 0 {
		return 0, ErrInvalidPageSize
	}
	return (page - 1) * pageSize, nil
}
