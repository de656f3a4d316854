package table

import "time"

// Status of a physical table. "free" is the single idle value; the
// legacy "available" synonym from older installs is normalized on read.
type Status string

const (
	StatusFree        Status = "free"
	StatusOccupied    Status = "occupied"
	StatusReserved    Status = "reserved"
	StatusMaintenance Status = "maintenance"
	StatusWaiting     Status = "waiting"
)

type Table struct {
	ID             string    `json:"id"`
	TableNumber    int       `json:"table_number"`
	Name           string    `json:"name"`
	Capacity       int       `json:"capacity"`
	Status         Status    `json:"status"`
	CurrentOrderID *string   `json:"current_order_id,omitempty"`
	Location       string    `json:"location,omitempty"`
	IsActive       bool      `json:"is_active"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
