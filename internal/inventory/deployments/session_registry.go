package deployments

import (
	"context"
	"sync"
	"time"

	custom_error "github.com/jsphkabil/FRIB-Inventory-Tracker/pkg/errors"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionRegistry keeps the open deployment sessions of HTTP clients.
type SessionRegistry struct {
	mu       sync.Mutex
	sessions map[string]*Session
	resolver *Resolver
	logger   *zap.Logger
	now      func() time.Time
}

func NewSessionRegistry(r *Resolver, logger *zap.Logger) *SessionRegistry {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SessionRegistry{
		sessions: make(map[string]*Session),
		resolver: r,
		logger:   logger.Named("deployments"),
		now:      time.Now,
	}
}

func (r *SessionRegistry) Open() *Session {
	session := NewSession(uuid.NewString(), r.resolver)
	session.onTransition = func(s *Session, from, to SessionState) {
		r.logger.Debug("deployment session transition",
			zap.String("session_id", s.ID),
			zap.String("from", string(from)),
			zap.String("to", string(to)),
		)
	}

	session.touch(r.now())

	r.mu.Lock()
	r.sessions[session.ID] = session
	r.mu.Unlock()

	return session
}

func (r *SessionRegistry) Get(id string) (*Session, error) {
	r.mu.Lock()
	session, ok := r.sessions[id]
	r.mu.Unlock()

	if !ok {
		return nil, custom_error.NewNotFoundError("deployment session", id)
	}
	session.touch(r.now())
	return session, nil
}

// Close cancels and forgets a session.
func (r *SessionRegistry) Close(id string) error {
	r.mu.Lock()
	session, ok := r.sessions[id]
	delete(r.sessions, id)
	r.mu.Unlock()

	if !ok {
		return custom_error.NewNotFoundError("deployment session", id)
	}
	session.Cancel()
	return nil
}

func (r *SessionRegistry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.sessions)
}

// Run discards sessions idle for longer than ttl every interval until ctx is
// done.
func (r *SessionRegistry) Run(ctx context.Context, interval, ttl time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			r.Cleanup(ttl)
		}
	}
}

// Cleanup cancels and forgets every session not used within ttl and returns
// how many were dropped.
func (r *SessionRegistry) Cleanup(ttl time.Duration) int {
	cutoff := r.now().Add(-ttl)

	r.mu.Lock()
	var expired []*Session
	for id, session := range r.sessions {
		if session.idleSince().Before(cutoff) {
			expired = append(expired, session)
			delete(r.sessions, id)
		}
	}
	r.mu.Unlock()

	for _, session := range expired {
		session.Cancel()
	}
	if len(expired) > 0 {
		r.logger.Info("expired idle deployment sessions", zap.Int("count", len(expired)), zap.Duration("ttl", ttl))
	}

	return len(expired)
}
