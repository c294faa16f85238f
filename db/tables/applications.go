package tables

import (
	"time"
)

// ApplicationTable represents the applications table, one row per
// submitted driver application
type ApplicationTable struct {
	ID        int       `db:"id,omitempty" fiql:"id,db:id"`
	Name      string    `db:"name"         fiql:"name,db:name"`
	Steam     string    `db:"steam"        fiql:"steam,db:steam"`
	Reason    string    `db:"reason"`
	Status    string    `db:"status"       fiql:"status,db:status"`
	CreatedAt time.Time `db:"created_at"   fiql:"created_at,db:created_at"`
}
