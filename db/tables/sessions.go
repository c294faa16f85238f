package tables

import (
	"time"
)

// SessionTable represents the sessions table which holds the
// server side state of issued admin sessions
type SessionTable struct {
	ID        int       `db:"id,omitempty"`
	Token     string    `db:"token"`
	ExpiresAt time.Time `db:"expires_at"`
	CreatedAt time.Time `db:"created_at"`
}
