package admin

import (
	"context"
	"testing"
	"time"

	"github.com/prologistix/backend/db"
	"github.com/prologistix/backend/db/tables"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type memorySessionStore struct {
	sessions map[string]time.Time
	failing  bool
	swept    int
}

func newMemorySessionStore() *memorySessionStore {
	return &memorySessionStore{sessions: make(map[string]time.Time)}
}

func (m *memorySessionStore) InsertSession(
	ctx context.Context,
	token string,
	expiresAt time.Time,
) error {
	if m.failing {
		return assert.AnError
	}
	m.sessions[token] = expiresAt
	return nil
}

func (m *memorySessionStore) SessionByToken(
	ctx context.Context,
	token string,
) (*tables.SessionTable, error) {
	if m.failing {
		return nil, assert.AnError
	}
	expires, ok := m.sessions[token]
	if !ok {
		return nil, db.ErrNotFound
	}
	return &tables.SessionTable{Token: token, ExpiresAt: expires}, nil
}

func (m *memorySessionStore) DeleteSession(ctx context.Context, token string) error {
	delete(m.sessions, token)
	return nil
}

func (m *memorySessionStore) DeleteExpiredSessions(ctx context.Context) (int64, error) {
	var swept int64
	now := time.Now().UTC()
	for token, expires := range m.sessions {
		if expires.Before(now) {
			delete(m.sessions, token)
			swept++
		}
	}
	m.swept++
	return swept, nil
}

func TestIssueAndValidate(t *testing.T) {
	store := newMemorySessionStore()
	s := NewSessionService(store, time.Hour, zap.NewNop())

	token, expires, err := s.Issue(context.Background())
	assert.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.WithinDuration(t, time.Now().UTC().Add(time.Hour), expires, time.Minute)

	assert.True(t, s.Validate(context.Background(), token))
}

func TestIssueSweepsExpiredSessions(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["stale"] = time.Now().UTC().Add(-time.Hour)
	s := NewSessionService(store, time.Hour, zap.NewNop())

	_, _, err := s.Issue(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, store.swept)
	assert.NotContains(t, store.sessions, "stale")
}

func TestValidateUnknownToken(t *testing.T) {
	s := NewSessionService(newMemorySessionStore(), time.Hour, zap.NewNop())
	assert.False(t, s.Validate(context.Background(), "never-issued"))
}

func TestValidateExpiredTokenDeletesRow(t *testing.T) {
	store := newMemorySessionStore()
	store.sessions["bygone"] = time.Now().UTC().Add(-time.Minute)
	s := NewSessionService(store, time.Hour, zap.NewNop())

	assert.False(t, s.Validate(context.Background(), "bygone"))
	assert.NotContains(t, store.sessions, "bygone")
}

// the gate fails closed, a broken store never lets anyone in
func TestValidateFailsClosedOnStoreError(t *testing.T) {
	store := newMemorySessionStore()
	store.failing = true
	s := NewSessionService(store, time.Hour, zap.NewNop())
	assert.False(t, s.Validate(context.Background(), "whatever"))
}

func TestRevoke(t *testing.T) {
	store := newMemorySessionStore()
	s := NewSessionService(store, time.Hour, zap.NewNop())

	token, _, err := s.Issue(context.Background())
	assert.NoError(t, err)
	assert.True(t, s.Validate(context.Background(), token))

	assert.NoError(t, s.Revoke(context.Background(), token))
	assert.False(t, s.Validate(context.Background(), token))
}
