// repository/session_repository.go
package repository

import (
	"database/sql"
	"fmt"
)

// SessionRepository handles the active user pointer, the second record kept
// in the store. The engine itself never reads it; the surrounding app uses
// it as a precondition gate.
type SessionRepository struct {
	DB *sql.DB
}

// NewSessionRepository creates a new SessionRepository
func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		DB: GetDB(),
	}
}

// GetCurrentUser returns the active user ID, or "" when nobody is signed in.
func (r *SessionRepository) GetCurrentUser() (string, error) {
	value, err := getValue(r.DB, CurrentUserKey)
	if err != nil {
		return "", fmt.Errorf("failed to read current user: %v", err)
	}
	return value, nil
}

// SetCurrentUser stores the active user ID.
func (r *SessionRepository) SetCurrentUser(userID string) error {
	if err := setValue(r.DB, CurrentUserKey, userID); err != nil {
		return fmt.Errorf("failed to write current user: %v", err)
	}
	return nil
}

// ClearCurrentUser removes the active user pointer. Clearing an absent
// pointer is a no-op.
func (r *SessionRepository) ClearCurrentUser() error {
	if err := deleteValue(r.DB, CurrentUserKey); err != nil {
		return fmt.Errorf("failed to clear current user: %v", err)
	}
	return nil
}
