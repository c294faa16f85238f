package review

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prologistix/backend/api/auth"
	"github.com/prologistix/backend/applications"
	"github.com/steinfletcher/apitest"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
)

type fakeApplicationService struct {
	submitted  []string
	submitErr  error
	list       []*applications.ApplicationDTO
	setID      int
	setStatus  applications.Status
	statusErr  error
	listCalled bool
}

func (f *fakeApplicationService) Submit(
	ctx context.Context,
	name string,
	steam string,
	reason string,
) (int, error) {
	if f.submitErr != nil {
		return 0, f.submitErr
	}
	f.submitted = append(f.submitted, name)
	return len(f.submitted), nil
}

func (f *fakeApplicationService) List(
	ctx context.Context,
	query string,
	sort string,
) ([]*applications.ApplicationDTO, error) {
	f.listCalled = true
	return f.list, nil
}

func (f *fakeApplicationService) SetStatus(
	ctx context.Context,
	id int,
	status applications.Status,
) error {
	if f.statusErr != nil {
		return f.statusErr
	}
	f.setID = id
	f.setStatus = status
	return nil
}

type acceptToken string

func (a acceptToken) Validate(ctx context.Context, token string) bool {
	return token == string(a)
}

// issues a signed session cookie the same way the login flow does
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

func reviewFixture(service ApplicationService) (*ReviewRessource, *auth.CookieCodec) {
	codec := auth.NewCookieCodec("NeUBFYhgnBI5Dqs2ZQxoAzKUCsMfgzqi", false, time.Hour)
	return NewReviewRessource(
		zap.NewNop(),
		service,
		codec,
		acceptToken("valid-session"),
	), codec
}

func TestSubmitApplication(t *testing.T) {
	service := &fakeApplicationService{}
	m, _ := reviewFixture(service)
	apitest.New().
		Handler(m.Router()).
		Post("/").
		Body(`{"name":"Alice","steam":"STEAM_0:1:123456","reason":"I drive a lot"}`).
		Expect(t).
		Body(`{"success":true}`).
		Status(http.StatusOK).
		End()
	assert.Equal(t, []string{"Alice"}, service.submitted)
}

func TestSubmitApplicationRequiresNoSession(t *testing.T) {
	service := &fakeApplicationService{}
	m, _ := reviewFixture(service)
	// no cookie at all
	apitest.New().
		Handler(m.Router()).
		Post("/").
		Body(`{"name":"Bob","steam":"","reason":""}`).
		Expect(t).
		Status(http.StatusOK).
		End()
}

func TestSubmitApplicationInvalidPayload(t *testing.T) {
	m, _ := reviewFixture(&fakeApplicationService{})
	apitest.New().
		Handler(m.Router()).
		Post("/").
		Body(`{"name": unquoted}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestListApplicationsWithoutSession(t *testing.T) {
	service := &fakeApplicationService{}
	m, _ := reviewFixture(service)
	apitest.New().
		Handler(m.Router()).
		Get("/").
		Expect(t).
		Body(`{"error":"unauthorized"}`).
		Status(http.StatusUnauthorized).
		End()
	assert.False(t, service.listCalled)
}

func TestListApplicationsWithForgedCookie(t *testing.T) {
	m, _ := reviewFixture(&fakeApplicationService{})
	apitest.New().
		Handler(m.Router()).
		Get("/").
		Cookie(auth.SessionCookieName, "not-a-signed-value").
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestListApplications(t *testing.T) {
	service := &fakeApplicationService{
		list: []*applications.ApplicationDTO{
			{
				ID:        1,
				Name:      "Alice",
				Steam:     "STEAM_0:1:123456",
				Reason:    "I drive a lot",
				Status:    applications.StatusPending,
				CreatedAt: time.Date(2024, 2, 1, 12, 0, 0, 0, time.UTC),
			},
		},
	}
	m, codec := reviewFixture(service)
	cookie := sessionCookie(t, codec, "valid-session")
	apitest.New().
		Handler(m.Router()).
		Get("/").
		Cookie(cookie.Name, cookie.Value).
		Expect(t).
		Body(`[{"id":1,"name":"Alice","steam":"STEAM_0:1:123456","reason":"I drive a lot","status":"pending","created_at":"2024-02-01T12:00:00Z"}]`).
		Status(http.StatusOK).
		End()
}

func TestUpdateStatus(t *testing.T) {
	service := &fakeApplicationService{}
	m, codec := reviewFixture(service)
	cookie := sessionCookie(t, codec, "valid-session")
	apitest.New().
		Handler(m.Router()).
		Put("/1").
		Cookie(cookie.Name, cookie.Value).
		Body(`{"status":"approved"}`).
		Expect(t).
		Body(`{"success":true}`).
		Status(http.StatusOK).
		End()
	assert.Equal(t, 1, service.setID)
	assert.Equal(t, applications.StatusApproved, service.setStatus)
}

func TestUpdateStatusWithoutSession(t *testing.T) {
	m, _ := reviewFixture(&fakeApplicationService{})
	apitest.New().
		Handler(m.Router()).
		Put("/1").
		Body(`{"status":"approved"}`).
		Expect(t).
		Status(http.StatusUnauthorized).
		End()
}

func TestUpdateStatusUnknownID(t *testing.T) {
	service := &fakeApplicationService{statusErr: applications.ErrNotFound}
	m, codec := reviewFixture(service)
	cookie := sessionCookie(t, codec, "valid-session")
	apitest.New().
		Handler(m.Router()).
		Put("/4711").
		Cookie(cookie.Name, cookie.Value).
		Body(`{"status":"approved"}`).
		Expect(t).
		Body(`{"error":"application not found"}`).
		Status(http.StatusNotFound).
		End()
}

func TestUpdateStatusInvalidStatus(t *testing.T) {
	m, codec := reviewFixture(&fakeApplicationService{})
	cookie := sessionCookie(t, codec, "valid-session")
	apitest.New().
		Handler(m.Router()).
		Put("/1").
		Cookie(cookie.Name, cookie.Value).
		Body(`{"status":"banana"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}

func TestUpdateStatusNonNumericID(t *testing.T) {
	m, codec := reviewFixture(&fakeApplicationService{})
	cookie := sessionCookie(t, codec, "valid-session")
	apitest.New().
		Handler(m.Router()).
		Put("/abc").
		Cookie(cookie.Name, cookie.Value).
		Body(`{"status":"approved"}`).
		Expect(t).
		Status(http.StatusBadRequest).
		End()
}
