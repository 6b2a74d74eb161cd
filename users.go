package blogpost

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
)

// hashPassword returns the SHA-256 hex digest of password. The scheme is
// unsalted and single-round; every stored credential depends on it, so
// changing it invalidates all existing rows.
func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

// Register inserts a new user with the digest of password. Returns
// ErrDuplicateUsername when the username is already taken. Password
// strength and confirmation checks belong to the caller.
func (s *Store) Register(username, password string) error {
	_, err := s.db.Exec(`INSERT INTO users (username, password) VALUES (?, ?)`,
		username, hashPassword(password))
	if isUniqueViolation(err) {
		return ErrDuplicateUsername
	}
	if err != nil {
		return fmt.Errorf("register user: %w", err)
	}
	return nil
}

// Authenticate reports whether username exists and password matches the
// stored digest. Unknown usernames and digest mismatches both come back
// false; only an exact digest match is true.
func (s *Store) Authenticate(username, password string) (bool, error) {
	var stored string
	err := s.db.QueryRow(`SELECT password FROM users WHERE username = ?`, username).Scan(&stored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("authenticate user: %w", err)
	}
	return stored == hashPassword(password), nil
}

// UserID returns the identifier for username, or ErrNotFound.
func (s *Store) UserID(username string) (int64, error) {
	var id int64
	err := s.db.QueryRow(`SELECT id FROM users WHERE username = ?`, username).Scan(&id)
	if err == sql.ErrNoRows {
		return 0, ErrNotFound
	}
	if err != nil {
		return 0, fmt.Errorf("look up user: %w", err)
	}
	return id, nil
}
