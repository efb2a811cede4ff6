package planning

import "context"

// SessionRepository holds the single draft planning session. The flow is
// single-user and synchronous; the repository only isolates storage so use
// cases stay pure over (state, input).
type SessionRepository interface {
	Current(ctx context.Context) (*Session, error)
	Save(ctx context.Context, s *Session) error
}
