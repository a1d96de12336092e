package session

import "context"

// Storage defines the session storage API
type Storage interface {
	// GetByRawToken retrieves a session by its raw (prior hashing) token.
	// Expired sessions are treated as absent.
	GetByRawToken(ctx context.Context, rawToken string) (*Session, error)

	// Create creates a new session and returns its raw token
	Create(ctx context.Context, accessToken, userID string, expires int64) (string, error)

	// TerminateByRawToken terminates a session by its raw token
	TerminateByRawToken(ctx context.Context, rawToken string) error

	// TerminateExpired terminates all sessions that are expired
	TerminateExpired(ctx context.Context) (int, error)
}
