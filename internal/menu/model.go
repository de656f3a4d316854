package menu

import "time"

type Item struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	// We store price as a string to avoid rounding errors (NUMERIC in Postgres)
	Price           string    `json:"price"`
	IsAvailable     bool      `json:"is_available"`
	IsVeg           bool      `json:"is_veg"`
	PreparationTime int       `json:"preparation_time"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
