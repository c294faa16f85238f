// Package auth holds the session cookie handling and the request gate
// for everything only the operator may touch. The same gate serves two
// kinds of callers: JSON API routes answer an unauthenticated request
// with a structured 401 body, document routes redirect to the login
// form instead.
package auth

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
)

// SessionValidator reports whether an opaque session token belongs to a
// live admin session. Implementations must fail closed, any lookup
// error counts as anonymous.
type SessionValidator interface {
	Validate(ctx context.Context, token string) bool
}

// RequireSession gates a subtree behind a valid admin session. The
// denied handler decides how an anonymous caller is turned away.
func RequireSession(
	codec *CookieCodec,
	sessions SessionValidator,
	denied http.HandlerFunc,
) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			token, err := codec.TokenFromRequest(r)
			if err != nil || !sessions.Validate(r.Context(), token) {
				denied(w, r)
				return
			}
			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(fn)
	}
}

// DenyWithRedirect sends anonymous browsers to the login form
func DenyWithRedirect(target string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, target, http.StatusFound)
	}
}

type unauthorizedResponse struct {
	Error string `json:"error"`
}

func (e *unauthorizedResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, http.StatusUnauthorized)
	return nil
}

// DenyWithJSON answers anonymous API callers with a structured 401
func DenyWithJSON() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		_ = render.Render(w, r, &unauthorizedResponse{Error: "unauthorized"})
	}
}
