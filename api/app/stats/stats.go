package stats

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"go.uber.org/zap"
)

// StatsRessource mirrors the community statistics from the TruckersMP
// API as plain JSON. It is stateless, the second renderer of the same
// snapshot lives in the bot package.
type StatsRessource struct {
	log       *zap.Logger
	snapshots SnapshotSource
}

func NewStatsRessource(logger *zap.Logger, snapshots SnapshotSource) *StatsRessource {
	return &StatsRessource{
		log:       logger,
		snapshots: snapshots,
	}
}

func (s *StatsRessource) Router() *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept"},
		MaxAge:         300,
	}))

	r.Get("/health", s.health)
	r.Get("/stats", s.stats)
	r.Get("/drivers", s.drivers)

	return r
}

func (s *StatsRessource) health(w http.ResponseWriter, r *http.Request) {
	render.Respond(w, r, &healthResponse{Status: "ok"})
}

func (s *StatsRessource) stats(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.snapshots.Snapshot(r.Context())
	if err != nil {
		s.log.Error("unable to fetch stats", zap.Error(err))
		_ = render.Render(w, r, createError("failed to fetch stats", http.StatusBadGateway))
		return
	}
	render.Respond(w, r, statsFromSnapshot(snapshot))
}

func (s *StatsRessource) drivers(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.snapshots.Snapshot(r.Context())
	if err != nil {
		s.log.Error("unable to fetch drivers", zap.Error(err))
		_ = render.Render(w, r, createError("failed to fetch drivers", http.StatusBadGateway))
		return
	}
	render.Respond(w, r, snapshot.Members)
}
