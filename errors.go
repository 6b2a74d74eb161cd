package blogpost

import (
	"database/sql"
	"errors"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = sql.ErrNoRows

var (
	// ErrTitleRequired and ErrContentRequired reject empty post fields
	// before any statement reaches the store.
	ErrTitleRequired   = errors.New("post title is required")
	ErrContentRequired = errors.New("post content is required")

	// ErrDuplicateUsername is returned by Register when the username is
	// already taken.
	ErrDuplicateUsername = errors.New("username already taken")

	// ErrInvalidPageSize and ErrInvalidPage reject pagination arguments
	// outside their domain.
	ErrInvalidPageSize = errors.New("page size must be positive")
	ErrInvalidPage     = errors.New("page number must be at least 1")
)
