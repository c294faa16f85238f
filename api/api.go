package api

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prologistix/backend/api/app/portal"
	"github.com/prologistix/backend/api/app/review"
	"github.com/prologistix/backend/api/app/stats"
	"github.com/prologistix/backend/api/auth"
	"github.com/prologistix/backend/config"

	"go.uber.org/zap"
)

func compose(logger *zap.Logger,
	cfg *config.Configuration,
	signInService portal.SignIner,
	sessionService portal.SessionManager,
	applicationService review.ApplicationService,
	snapshotSource stats.SnapshotSource,
	fileSystems *config.FileSystems) (*chi.Mux, error) {

	codec := auth.NewCookieCodec(
		cfg.Admin.SessionSecret,
		cfg.Server.SecureCookies,
		cfg.Admin.SessionTTL,
	)

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)

	r.Use(loggerMiddleware(logger))

	r.Use(middleware.Recoverer)

	r.Use(middleware.Timeout(50 * time.Second))

	reviewRessource := review.NewReviewRessource(
		logger.Named("review_ressource"),
		applicationService,
		codec,
		sessionService,
	)
	statsRessource := stats.NewStatsRessource(
		logger.Named("stats_ressource"),
		snapshotSource,
	)
	portalRessource := portal.NewPortalRessource(
		logger.Named("portal_ressource"),
		signInService,
		sessionService,
		codec,
		cfg.Server,
		fileSystems,
	)

	r.Route("/api", func(sr chi.Router) {
		sr.Mount("/applications", reviewRessource.Router())
		sr.Mount("/", statsRessource.Router())
	})

	r.Mount("/", portalRessource.Router())

	return r, nil
}
