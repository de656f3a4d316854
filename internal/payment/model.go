package payment

import "time"

type Method string

const (
	MethodCash   Method = "cash"
	MethodCard   Method = "card"
	MethodUPI    Method = "upi"
	MethodWallet Method = "wallet"
)

func (m Method) Valid() bool {
	switch m {
	case MethodCash, MethodCard, MethodUPI, MethodWallet:
		return true
	}
	return false
}

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusRefunded  = "refunded"
)

// Payment is one settlement event against an order. Rows are written
// once and never updated.
type Payment struct {
	ID      string `json:"id"`
	OrderID string `json:"order_id"`
	// We store amount as a string to avoid rounding errors (NUMERIC in Postgres)
	Amount        string    `json:"amount"`
	PaymentMethod Method    `json:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty"`
	ProcessedBy   *string   `json:"processed_by,omitempty"`
	Status        string    `json:"status"`
	Notes         string    `json:"notes,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}
