package review

import (
	"context"

	"github.com/prologistix/backend/applications"
)

// ApplicationService covers everything the review endpoints do with the
// application store
type ApplicationService interface {
	Submit(ctx context.Context, name string, steam string, reason string) (int, error)
	List(ctx context.Context, query string, sort string) ([]*applications.ApplicationDTO, error)
	SetStatus(ctx context.Context, id int, status applications.Status) error
}
