package review

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/go-playground/validator/v10"
	"github.com/prologistix/backend/api/auth"
	"github.com/prologistix/backend/applications"
	"go.uber.org/zap"
)

// ReviewRessource exposes the application store over http: the public
// submission endpoint and the session gated listing and status update
type ReviewRessource struct {
	log      *zap.Logger
	service  ApplicationService
	codec    *auth.CookieCodec
	sessions auth.SessionValidator
	validate *validator.Validate
}

func NewReviewRessource(
	logger *zap.Logger,
	service ApplicationService,
	codec *auth.CookieCodec,
	sessions auth.SessionValidator,
) *ReviewRessource {
	return &ReviewRessource{
		log:      logger,
		service:  service,
		codec:    codec,
		sessions: sessions,
		validate: validator.New(),
	}
}

func (m *ReviewRessource) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Post("/", m.submitApplication)

	r.Group(func(gr chi.Router) {
		gr.Use(auth.RequireSession(m.codec, m.sessions, auth.DenyWithJSON()))
		gr.Get("/", m.listApplications)
		gr.Put("/{id}", m.updateStatus)
	})

	return r
}

func (m *ReviewRessource) submitApplication(w http.ResponseWriter, r *http.Request) {
	var req *submitApplicationRequest
	err := json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		m.log.Info("invalid payload data", zap.Error(err))
		_ = render.Render(w, r, createError("invalid payload", http.StatusBadRequest))
		return
	}

	_, err = m.service.Submit(r.Context(), req.Name, req.Steam, req.Reason)
	if err != nil {
		_ = render.Render(w, r, createError("internal server error", http.StatusInternalServerError))
		return
	}
	render.Respond(w, r, &genericSuccessResponse{Success: true})
}

func (m *ReviewRessource) listApplications(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("query")
	sort := r.URL.Query().Get("sort")

	apps, err := m.service.List(r.Context(), query, sort)
	if err != nil {
		m.log.Error("error listing applications", zap.Error(err))
		_ = render.Render(w, r, createError("internal server error", http.StatusInternalServerError))
		return
	}
	render.Respond(w, r, apps)
}

func (m *ReviewRessource) updateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		_ = render.Render(w, r, createError("invalid application id", http.StatusBadRequest))
		return
	}
	var req *updateStatusRequest
	err = json.NewDecoder(r.Body).Decode(&req)
	if err != nil {
		m.log.Info("invalid payload data", zap.Error(err))
		_ = render.Render(w, r, createError("invalid payload", http.StatusBadRequest))
		return
	}
	if err := m.validate.Struct(req); err != nil {
		_ = render.Render(w, r, createError("invalid status", http.StatusBadRequest))
		return
	}
	status, err := applications.ParseStatus(req.Status)
	if err != nil {
		_ = render.Render(w, r, createError("invalid status", http.StatusBadRequest))
		return
	}

	err = m.service.SetStatus(r.Context(), id, status)
	if err != nil {
		if errors.Is(err, applications.ErrNotFound) {
			_ = render.Render(w, r, createError("application not found", http.StatusNotFound))
			return
		}
		m.log.Error("error updating application", zap.Error(err), zap.Int("id", id))
		_ = render.Render(w, r, createError("internal server error", http.StatusInternalServerError))
		return
	}
	render.Respond(w, r, &genericSuccessResponse{Success: true})
}
