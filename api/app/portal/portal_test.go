package portal

import (
	"context"
	"io"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"testing/fstest"
	"time"

	"github.com/prologistix/backend/api/auth"
	"github.com/prologistix/backend/config"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type stubSignIn struct {
	err error
}

func (s *stubSignIn) SignIn(username string, password string) error {
	return s.err
}

type stubSessions struct {
	issued  string
	revoked []string
	valid   map[string]bool
}

func (s *stubSessions) Issue(ctx context.Context) (string, time.Time, error) {
	s.issued = "issued-token"
	return s.issued, time.Now().UTC().Add(time.Hour), nil
}

func (s *stubSessions) Validate(ctx context.Context, token string) bool {
	return s.valid[token]
}

func (s *stubSessions) Revoke(ctx context.Context, token string) error {
	s.revoked = append(s.revoked, token)
	delete(s.valid, token)
	return nil
}

func templateFixture() fs.FS {
	return fstest.MapFS{
		"login.html": &fstest.MapFile{
			Data: []byte(`<form>{{ .csrfField }}{{ if .error }}failed{{ end }}</form>`),
		},
		"admin.html": &fstest.MapFile{
			Data: []byte(`<h1>Driver Applications</h1>`),
		},
		"404.html": &fstest.MapFile{
			Data: []byte(`<h1>404</h1>`),
		},
	}
}

func portalFixture(
	t *testing.T,
	signIn SignIner,
	sessions SessionManager,
) (*PortalRessource, *auth.CookieCodec) {
	codec := auth.NewCookieCodec("NeUBFYhgnBI5Dqs2ZQxoAzKUCsMfgzqi", false, time.Hour)
	templates := templateFixture()
	p := NewPortalRessource(
		zap.NewNop(),
		signIn,
		sessions,
		codec,
		&config.ServerConfiguration{
			CSRFToken:     "vJ2QQfWnoOCDMxvyoPYXBIMhQuWQpVzg",
			SecureCookies: false,
		},
		&config.FileSystems{
			StaticFolder: fstest.MapFS{},
			Templates:    templates,
		},
	)
	return p, codec
}

func sessionCookie(t *testing.T, codec *auth.CookieCodec, token string) *http.Cookie {
	rec := httptest.NewRecorder()
	err := codec.Issue(rec, token, time.Now().UTC().Add(time.Hour))
	assert.NoError(t, err)
	cookies := rec.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatal("expected exactly one session cookie")
	}
	return cookies[0]
}

func TestIndex(t *testing.T) {
	p, _ := portalFixture(t, &stubSignIn{}, &stubSessions{valid: map[string]bool{}})
	apitest.New().
		Handler(p.Router()).
		Get("/").
		Expect(t).
		Body("PROLOGISTIX backend is running").
		Status(http.StatusOK).
		End()
}

func TestLoginPage(t *testing.T) {
	p, _ := portalFixture(t, &stubSignIn{}, &stubSessions{valid: map[string]bool{}})
	apitest.New().
		Handler(p.Router()).
		Get("/login").
		Expect(t).
		Status(http.StatusOK).
		End()
}

func TestAdminPageRedirectsAnonymous(t *testing.T) {
	p, _ := portalFixture(t, &stubSignIn{}, &stubSessions{valid: map[string]bool{}})
	apitest.New().
		Handler(p.Router()).
		Get("/admin").
		Expect(t).
		Status(http.StatusFound).
		Header("Location", "/login").
		End()
}

func TestAdminPageWithSession(t *testing.T) {
	sessions := &stubSessions{valid: map[string]bool{"valid-session": true}}
	p, codec := portalFixture(t, &stubSignIn{}, sessions)
	cookie := sessionCookie(t, codec, "valid-session")
	apitest.New().
		Handler(p.Router()).
		Get("/admin").
		Cookie(cookie.Name, cookie.Value).
		Expect(t).
		Status(http.StatusOK).
		End()
}

// the login handler is exercised directly, the csrf middleware has its
// own tests upstream
func TestLoginWithBadCredentials(t *testing.T) {
	p, _ := portalFixture(
		t,
		&stubSignIn{err: assert.AnError},
		&stubSessions{valid: map[string]bool{}},
	)
	form := url.Values{"username": {"operator"}, "password": {"wrong"}}
	apitest.New().
		HandlerFunc(p.login).
		Post("/login").
		Header("Content-Type", "application/x-www-form-urlencoded").
		Body(form.Encode()).
		Expect(t).
		Status(http.StatusUnauthorized).
		Assert(func(res *http.Response, req *http.Request) error {
			assert.Empty(t, res.Cookies())
			return nil
		}).
		End()
}

func TestLoginWithGoodCredentials(t *testing.T) {
	sessions := &stubSessions{valid: map[string]bool{}}
	p, _ := portalFixture(t, &stubSignIn{}, sessions)
	form := url.Values{"username": {"operator"}, "password": {"hunter2"}}
	apitest.New().
		HandlerFunc(p.login).
		Post("/login").
		Header("Content-Type", "application/x-www-form-urlencoded").
		Body(form.Encode()).
		Expect(t).
		Status(http.StatusFound).
		Header("Location", "/admin").
		Assert(func(res *http.Response, req *http.Request) error {
			cookies := res.Cookies()
			assert.Len(t, cookies, 1)
			if len(cookies) == 1 {
				assert.Equal(t, auth.SessionCookieName, cookies[0].Name)
				assert.True(t, cookies[0].HttpOnly)
				assert.Equal(t, http.SameSiteStrictMode, cookies[0].SameSite)
			}
			return nil
		}).
		End()
	assert.Equal(t, "issued-token", sessions.issued)
}

func TestLogoutRevokesSession(t *testing.T) {
	sessions := &stubSessions{valid: map[string]bool{"valid-session": true}}
	p, codec := portalFixture(t, &stubSignIn{}, sessions)
	cookie := sessionCookie(t, codec, "valid-session")
	apitest.New().
		HandlerFunc(p.logout).
		Get("/logout").
		Cookie(cookie.Name, cookie.Value).
		Expect(t).
		Status(http.StatusFound).
		Header("Location", "/login").
		End()
	assert.Equal(t, []string{"valid-session"}, sessions.revoked)
}

func TestUnknownPagesAnswerWith404(t *testing.T) {
	p, _ := portalFixture(t, &stubSignIn{}, &stubSessions{valid: map[string]bool{}})
	apitest.New().
		Handler(p.Router()).
		Get("/no-such-page").
		Expect(t).
		Status(http.StatusNotFound).
		Assert(func(res *http.Response, req *http.Request) error {
			body := new(strings.Builder)
			_, err := io.Copy(body, res.Body)
			assert.NoError(t, err)
			assert.Contains(t, body.String(), "404")
			return nil
		}).
		End()
}
