package order

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusAccepted  Status = "accepted"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusAccepted, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}

// Terminal reports whether no further transition is permitted from s.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelled
}

type Type string

const (
	TypeDineIn   Type = "dine-in"
	TypeTakeaway Type = "takeaway"
	TypeDelivery Type = "delivery"
)

func (t Type) Valid() bool {
	switch t {
	case TypeDineIn, TypeTakeaway, TypeDelivery:
		return true
	}
	return false
}

const (
	PaymentUnpaid = "unpaid"
	PaymentPaid   = "paid"
)

// Order is one customer transaction. Monetary fields are strings to
// avoid rounding errors (NUMERIC in Postgres); math goes through
// shopspring/decimal. Total is fixed at creation and never recomputed.
type Order struct {
	ID            string     `json:"id"`
	OrderNumber   string     `json:"order_number"`
	TableID       *string    `json:"table_id,omitempty"`
	CustomerName  string     `json:"customer_name"`
	CustomerPhone string     `json:"customer_phone,omitempty"`
	OrderType     Type       `json:"order_type"`
	Status        Status     `json:"status"`
	Subtotal      string     `json:"subtotal"`
	Tax           string     `json:"tax"`
	Discount      string     `json:"discount"`
	Total         string     `json:"total"`
	Notes         string     `json:"notes,omitempty"`
	AcceptedBy    *string    `json:"accepted_by,omitempty"`
	AcceptedAt    *time.Time `json:"accepted_at,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
	PaymentStatus string     `json:"payment_status"`
	PaymentMethod *string    `json:"payment_method,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// DineIn reports whether the order holds (or may hold) a table binding.
func (o *Order) DineIn() bool { return o.OrderType == TypeDineIn && o.TableID != nil }

// Line is the immutable snapshot of one ordered item. The price is the
// menu price at order time; later menu edits do not touch it.
type Line struct {
	ID       string `json:"id"`
	OrderID  string `json:"order_id"`
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	Price    string `json:"price"`
	Notes    string `json:"notes,omitempty"`
}
