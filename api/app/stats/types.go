package stats

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/prologistix/backend/vtc"
)

type healthResponse struct {
	Status string `json:"status"`
}

func (h *healthResponse) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

// statsResponse is the JSON rendering of a vtc snapshot
type statsResponse struct {
	Drivers  int   `json:"drivers"`
	Distance int64 `json:"distance"`
	Convoys  int   `json:"convoys"`
}

func statsFromSnapshot(s *vtc.Snapshot) *statsResponse {
	return &statsResponse{
		Drivers:  s.Drivers,
		Distance: s.Distance,
		Convoys:  s.Convoys,
	}
}

func createError(err string, status int) *genericErrorResponse {
	return &genericErrorResponse{
		Error:      err,
		StatusCode: status,
	}
}

type genericErrorResponse struct {
	Error      string `json:"error,omitempty"`
	StatusCode int    `json:"-"`
}

func (e *genericErrorResponse) Render(w http.ResponseWriter, r *http.Request) error {
	render.Status(r, e.StatusCode)
	return nil
}
