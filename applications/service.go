package applications

import (
	"context"
	"errors"

	"github.com/prologistix/backend/db"
	"github.com/prologistix/backend/db/tables"
	"github.com/prologistix/backend/sanitize"
	"go.uber.org/zap"
)

// ErrNotFound indicates the targeted application does not exist
var ErrNotFound = errors.New("application does not exist")

// ApplicationStorer is the persistence surface the service needs,
// satisfied by *db.DataStore
type ApplicationStorer interface {
	InsertApplication(
		ctx context.Context,
		name string,
		steam string,
		reason string,
		status string,
	) (int, error)
	Applications(
		ctx context.Context,
		query string,
		sort string,
	) ([]*tables.ApplicationTable, error)
	ApplicationByID(ctx context.Context, id int) (*tables.ApplicationTable, error)
	SetApplicationStatus(ctx context.Context, id int, status string) error
}

// Service is the single source of truth for driver applications
type Service struct {
	store ApplicationStorer
	log   *zap.Logger
}

func NewService(store ApplicationStorer, log *zap.Logger) *Service {
	return &Service{
		store: store,
		log:   log,
	}
}

// Submit persists a new application with status pending. No field
// validation happens here, empty strings are accepted.
func (s *Service) Submit(
	ctx context.Context,
	name string,
	steam string,
	reason string,
) (int, error) {
	id, err := s.store.InsertApplication(ctx, name, steam, reason, string(StatusPending))
	if err != nil {
		s.log.Error("unable to store application", zap.Error(err))
		return 0, err
	}
	s.log.Info(
		"application submitted",
		zap.Int("id", id),
		sanitize.UserInputString("name", name),
	)
	return id, nil
}

// List returns the full snapshot of applications, newest first. query
// and sort are optional FIQL expressions for the admin listing.
func (s *Service) List(ctx context.Context, query string, sort string) ([]*ApplicationDTO, error) {
	entities, err := s.store.Applications(ctx, query, sort)
	if err != nil {
		s.log.Error("unable to list applications", zap.Error(err))
		return nil, err
	}
	dtos := make([]*ApplicationDTO, len(entities))
	for i, v := range entities {
		dtos[i] = applicationDTOfromDB(v)
	}
	return dtos, nil
}

// ByID loads a single application
func (s *Service) ByID(ctx context.Context, id int) (*ApplicationDTO, error) {
	entity, err := s.store.ApplicationByID(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return applicationDTOfromDB(entity), nil
}

// SetStatus overwrites the review status of one application. Only the
// status column changes, id and created_at stay untouched.
func (s *Service) SetStatus(ctx context.Context, id int, status Status) error {
	err := s.store.SetApplicationStatus(ctx, id, string(status))
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrNotFound
		}
		s.log.Error("unable to update application status", zap.Error(err), zap.Int("id", id))
		return err
	}
	s.log.Info("application status updated", zap.Int("id", id), zap.String("status", string(status)))
	return nil
}
