package portal

import (
	"context"
	"time"
)

// SignIner validates the single operator credential
type SignIner interface {
	SignIn(username string, password string) error
}

// SessionManager issues and destroys the server side admin sessions
type SessionManager interface {
	Issue(ctx context.Context) (string, time.Time, error)
	Validate(ctx context.Context, token string) bool
	Revoke(ctx context.Context, token string) error
}
