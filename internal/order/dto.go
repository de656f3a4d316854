package order

import "restopos/internal/payment"

// CreateLineRequest is one requested item line.
// swagger:model CreateLineRequest
type CreateLineRequest struct {
	ItemID   string `json:"item_id" example:"0b6f9d1e-3f6a-4a7e-9a41-111111111101"`
	Quantity int    `json:"quantity" example:"2"`
	Notes    string `json:"notes" example:"no onions"`
}

// CreateRequest is the order-creation payload.
// swagger:model CreateRequest
type CreateRequest struct {
	Items         []CreateLineRequest `json:"items"`
	TableID       string              `json:"table_id" example:"4c2a8e72-9b0d-4d15-8c33-222222222201"`
	OrderType     string              `json:"order_type" example:"dine-in"`
	CustomerName  string              `json:"customer_name" example:"Asha"`
	CustomerPhone string              `json:"customer_phone" example:"+91 98100 00000"`
	Notes         string              `json:"notes" example:"birthday table"`
}

// UpdateDetailsRequest edits contact fields and notes on a live order.
// swagger:model UpdateDetailsRequest
type UpdateDetailsRequest struct {
	CustomerName  string `json:"customer_name"`
	CustomerPhone string `json:"customer_phone"`
	Notes         string `json:"notes"`
}

// SetStatusRequest drives a status transition.
// swagger:model SetStatusRequest
type SetStatusRequest struct {
	Status string `json:"status" example:"accepted"`
}

// PayRequest records a settlement against an order. Amount defaults to
// the order total when empty.
// swagger:model PayRequest
type PayRequest struct {
	PaymentMethod string `json:"payment_method" example:"card"`
	Amount        string `json:"amount" example:"262.50"`
	TransactionID string `json:"transaction_id" example:"txn_8861"`
	Notes         string `json:"notes"`
}

// Detail is an order plus its line snapshots.
// swagger:model Detail
type Detail struct {
	Order *Order `json:"order"`
	Lines []Line `json:"items"`
}

// CashierDetail is the settlement view of an order: the order, its
// lines, and every payment recorded against it.
// swagger:model CashierDetail
type CashierDetail struct {
	Order    *Order            `json:"order"`
	Lines    []Line            `json:"items"`
	Payments []payment.Payment `json:"payments"`
}
