package applications

import (
	"net/http"
	"time"

	"github.com/prologistix/backend/db/tables"
)

// ApplicationDTO is the outward facing shape of a stored application
type ApplicationDTO struct {
	ID        int       `json:"id"`
	Name      string    `json:"name"`
	Steam     string    `json:"steam"`
	Reason    string    `json:"reason"`
	Status    Status    `json:"status"`
	CreatedAt time.Time `json:"created_at"`
}

func (a *ApplicationDTO) Render(w http.ResponseWriter, r *http.Request) error {
	return nil
}

func applicationDTOfromDB(t *tables.ApplicationTable) *ApplicationDTO {
	return &ApplicationDTO{
		ID:        t.ID,
		Name:      t.Name,
		Steam:     t.Steam,
		Reason:    t.Reason,
		Status:    Status(t.Status),
		CreatedAt: t.CreatedAt,
	}
}
