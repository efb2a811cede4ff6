package persistence

import (
	"context"
	"sync"

	"loomflow/internal/domain/planning"
)

// SessionRepository holds the single draft planning session in memory.
// Current hands out a clone and Save stores one, so concurrent requests
// never mutate the stored draft through a shared pointer; the last Save
// wins.
type SessionRepository struct {
	mu      sync.Mutex
	session *planning.Session
}

func NewSessionRepository() *SessionRepository {
	return &SessionRepository{
		session: planning.NewSession(),
	}
}

func (r *SessionRepository) Current(ctx context.Context) (*planning.Session, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.session.Clone(), nil
}

func (r *SessionRepository) Save(ctx context.Context, s *planning.Session) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.session = s.Clone()
	return nil
}
