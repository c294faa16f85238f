package auth

import (
	"net/http"
	"time"

	"github.com/gorilla/securecookie"
)

// SessionCookieName is the cookie carrying the signed admin session token
const SessionCookieName = "__prologistix"

// CookieCodec wraps the opaque session token into a signed cookie
// value, the signature uses the configured session secret. The token
// itself stays server side state, the cookie only ever transports it.
type CookieCodec struct {
	sc     *securecookie.SecureCookie
	secure bool
}

// NewCookieCodec creates a codec, secure controls the cookie Secure
// attribute and should be on whenever the service is reached over https
func NewCookieCodec(secret string, secure bool, ttl time.Duration) *CookieCodec {
	sc := securecookie.New([]byte(secret), nil)
	sc.MaxAge(int(ttl.Seconds()))
	return &CookieCodec{
		sc:     sc,
		secure: secure,
	}
}

// Issue sets the session cookie on the response
func (c *CookieCodec) Issue(w http.ResponseWriter, token string, expires time.Time) error {
	encoded, err := c.sc.Encode(SessionCookieName, token)
	if err != nil {
		return err
	}
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    encoded,
		Path:     "/",
		Expires:  expires,
		MaxAge:   int(time.Until(expires).Seconds()),
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, cookie)
	return nil
}

// Clear expires the session cookie on the client
func (c *CookieCodec) Clear(w http.ResponseWriter) {
	cookie := &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		Expires:  time.Unix(0, 0),
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.secure,
		SameSite: http.SameSiteStrictMode,
	}
	http.SetCookie(w, cookie)
}

// TokenFromRequest extracts and verifies the session token from the
// request cookie
func (c *CookieCodec) TokenFromRequest(r *http.Request) (string, error) {
	cookie, err := r.Cookie(SessionCookieName)
	if err != nil {
		return "", err
	}
	var token string
	if err := c.sc.Decode(SessionCookieName, cookie.Value, &token); err != nil {
		return "", err
	}
	return token, nil
}
