package admin

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/prologistix/backend/db"
	"github.com/prologistix/backend/db/tables"
	"go.uber.org/zap"
)

// SessionStorer is the persistence surface for server side sessions,
// satisfied by *db.DataStore
type SessionStorer interface {
	InsertSession(ctx context.Context, token string, expiresAt time.Time) error
	SessionByToken(ctx context.Context, token string) (*tables.SessionTable, error)
	DeleteSession(ctx context.Context, token string) error
	DeleteExpiredSessions(ctx context.Context) (int64, error)
}

// SessionService issues and validates the opaque server side sessions
// behind the admin cookie
type SessionService struct {
	store SessionStorer
	ttl   time.Duration
	log   *zap.Logger
}

func NewSessionService(store SessionStorer, ttl time.Duration, log *zap.Logger) *SessionService {
	return &SessionService{
		store: store,
		ttl:   ttl,
		log:   log,
	}
}

// TTL returns the configured session lifetime
func (s *SessionService) TTL() time.Duration {
	return s.ttl
}

// Issue creates a fresh session and returns its opaque token together
// with the expiry. Stale rows are swept out on the way, there is no
// background task for that.
func (s *SessionService) Issue(ctx context.Context) (string, time.Time, error) {
	if swept, err := s.store.DeleteExpiredSessions(ctx); err != nil {
		s.log.Warn("unable to sweep expired sessions", zap.Error(err))
	} else if swept > 0 {
		s.log.Debug("swept expired sessions", zap.Int64("count", swept))
	}
	token := uuid.NewString()
	expires := time.Now().UTC().Add(s.ttl)
	if err := s.store.InsertSession(ctx, token, expires); err != nil {
		s.log.Error("unable to store session", zap.Error(err))
		return "", time.Time{}, err
	}
	return token, expires, nil
}

// Validate reports whether the token belongs to a live session. Any
// storage error counts as anonymous, the gate fails closed.
func (s *SessionService) Validate(ctx context.Context, token string) bool {
	entity, err := s.store.SessionByToken(ctx, token)
	if err != nil {
		if !errors.Is(err, db.ErrNotFound) {
			s.log.Error("session lookup failed", zap.Error(err))
		}
		return false
	}
	if time.Now().UTC().After(entity.ExpiresAt) {
		if err := s.store.DeleteSession(ctx, token); err != nil {
			s.log.Warn("unable to delete expired session", zap.Error(err))
		}
		return false
	}
	return true
}

// Revoke destroys the server side session, used on logout
func (s *SessionService) Revoke(ctx context.Context, token string) error {
	return s.store.DeleteSession(ctx, token)
}
