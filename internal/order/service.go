// Package order owns the order ledger, its line snapshots, and the
// lifecycle coordination between orders, tables, and payments.
package order

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"restopos/internal/menu"
	"restopos/internal/payment"
	"restopos/internal/table"
)

// Flat 5% tax applied at creation. A policy constant, not configuration.
var taxRate = decimal.RequireFromString("0.05")

// Staff is the acting principal, resolved and trusted upstream.
type Staff struct {
	ID   string
	Role string
}

// CanManage reports whether the role may accept, settle, and close
// orders.
func (s Staff) CanManage() bool {
	return s.Role == "admin" || s.Role == "cashier"
}

// Service is the order lifecycle coordinator. It validates against the
// menu store and table registry, drives the status machine, and keeps
// the ledger and the registry mutually consistent.
type Service struct {
	orders   Repository
	items    menu.Repository
	tables   table.Repository
	payments payment.Repository

	now     func() time.Time
	randInt func(n int) int
}

func NewService(orders Repository, items menu.Repository, tables table.Repository, payments payment.Repository) *Service {
	return &Service{
		orders:   orders,
		items:    items,
		tables:   tables,
		payments: payments,
		now:      time.Now,
		randInt:  rand.Intn,
	}
}

// Create places a new order: resolves and validates every line, fixes
// prices and totals, generates the order number, and for dine-in binds
// the table. All writes land in one transaction; any failure leaves
// nothing behind.
func (s *Service) Create(ctx context.Context, req CreateRequest) (*Detail, error) {
	if len(req.Items) == 0 {
		return nil, fmt.Errorf("%w: order has no items", ErrInvalidRequest)
	}

	orderType := Type(req.OrderType)
	if req.OrderType == "" {
		orderType = TypeDineIn
	}
	if !orderType.Valid() {
		return nil, fmt.Errorf("%w: unknown order type %q", ErrInvalidRequest, req.OrderType)
	}

	subtotal := decimal.Zero
	lines := make([]Line, 0, len(req.Items))
	for _, reqLine := range req.Items {
		if reqLine.Quantity < 1 {
			return nil, fmt.Errorf("%w: quantity must be positive for item %s", ErrInvalidRequest, reqLine.ItemID)
		}
		item, err := s.items.GetByID(ctx, reqLine.ItemID)
		if err != nil {
			return nil, fmt.Errorf("item %s: %w", reqLine.ItemID, menu.ErrNotFound)
		}
		if !item.IsAvailable {
			return nil, &ItemUnavailableError{ItemID: item.ID, Name: item.Name}
		}
		price, err := decimal.NewFromString(item.Price)
		if err != nil {
			return nil, fmt.Errorf("item %s has malformed price: %w", item.ID, err)
		}
		subtotal = subtotal.Add(price.Mul(decimal.NewFromInt(int64(reqLine.Quantity))))
		lines = append(lines, Line{
			ID:       uuid.NewString(),
			ItemID:   item.ID,
			Quantity: reqLine.Quantity,
			Price:    item.Price,
			Notes:    reqLine.Notes,
		})
	}

	// Round-half-up to 2 places; see DESIGN.md for the rounding policy.
	tax := subtotal.Mul(taxRate).Round(2)
	total := subtotal.Add(tax)

	var tableID *string
	if orderType == TypeDineIn && req.TableID != "" {
		t, err := s.tables.GetByID(ctx, req.TableID)
		if err != nil {
			return nil, fmt.Errorf("table %s: %w", req.TableID, table.ErrNotFound)
		}
		if !t.IsActive {
			return nil, ErrTableInactive
		}
		if t.CurrentOrderID != nil {
			return nil, &TableConflictError{TableID: t.ID, ConflictingOrderID: *t.CurrentOrderID}
		}
		tableID = &t.ID
	}

	customerName := req.CustomerName
	if customerName == "" {
		customerName = "Guest"
	}

	createdAt := s.now()
	startOfDay, endOfDay := dayBounds(createdAt)
	countToday, err := s.orders.CountCreatedBetween(ctx, startOfDay, endOfDay)
	if err != nil {
		return nil, fmt.Errorf("count today's orders: %w", err)
	}

	o := &Order{
		ID:            uuid.NewString(),
		OrderNumber:   sequentialNumber(createdAt, countToday),
		TableID:       tableID,
		CustomerName:  customerName,
		CustomerPhone: req.CustomerPhone,
		OrderType:     orderType,
		Status:        StatusPending,
		Subtotal:      subtotal.StringFixed(2),
		Tax:           tax.StringFixed(2),
		Discount:      "0.00",
		Total:         total.StringFixed(2),
		Notes:         req.Notes,
		PaymentStatus: PaymentUnpaid,
	}
	for i := range lines {
		lines[i].OrderID = o.ID
	}

	err = s.orders.Create(ctx, o, lines)
	if errors.Is(err, errDuplicateNumber) {
		// Concurrent creation raced us on today's sequence. Retry once
		// with the timestamp fallback instead of failing the write.
		o.OrderNumber = fallbackNumber(createdAt, s.randInt(1000))
		err = s.orders.Create(ctx, o, lines)
	}
	if err != nil {
		return nil, err
	}
	return &Detail{Order: o, Lines: lines}, nil
}

func (s *Service) Get(ctx context.Context, id string) (*Detail, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	lines, err := s.orders.GetLines(ctx, id)
	if err != nil {
		return nil, err
	}
	return &Detail{Order: o, Lines: lines}, nil
}

func (s *Service) List(ctx context.Context, f Filter) ([]Order, error) {
	return s.orders.List(ctx, f)
}

// GetActiveByTable returns the live dine-in order bound to a table.
func (s *Service) GetActiveByTable(ctx context.Context, tableID string) (*Detail, error) {
	o, err := s.orders.GetActiveByTable(ctx, tableID)
	if err != nil {
		return nil, err
	}
	lines, err := s.orders.GetLines(ctx, o.ID)
	if err != nil {
		return nil, err
	}
	return &Detail{Order: o, Lines: lines}, nil
}

// UpdateDetails edits contact info and notes on a live order. Lines and
// totals are immutable after creation.
func (s *Service) UpdateDetails(ctx context.Context, id string, req UpdateDetailsRequest) (*Order, error) {
	return s.orders.UpdateDetails(ctx, id, req.CustomerName, req.CustomerPhone, req.Notes)
}

// SetStatus drives the order state machine:
//
//	pending -> accepted -> preparing -> ready -> completed
//
// with cancelled reachable from any non-terminal state. Terminal states
// reject every further transition. Accepting requires a managing role
// and stamps the accepting staff; completing requires a settled payment
// no matter which endpoint asked, and releases the table.
func (s *Service) SetStatus(ctx context.Context, id string, to Status, staff Staff) (*Order, error) {
	if !to.Valid() {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidRequest, to)
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, ErrInvalidState
	}

	switch to {
	case StatusPending:
		// Orders never move back to pending.
		return nil, ErrInvalidState
	case StatusAccepted:
		if !staff.CanManage() {
			return nil, ErrForbidden
		}
		return s.orders.MarkAccepted(ctx, id, staff.ID)
	case StatusCompleted:
		paid, err := s.payments.HasCompleted(ctx, id)
		if err != nil {
			return nil, err
		}
		if !paid {
			return nil, ErrPaymentRequired
		}
		return s.orders.Complete(ctx, o)
	case StatusCancelled:
		return s.orders.Cancel(ctx, o)
	default:
		return s.orders.SetStatus(ctx, id, to)
	}
}

// Cancel moves a non-terminal order to cancelled and releases its
// table. Cancellation is a terminal status, never a row deletion.
func (s *Service) Cancel(ctx context.Context, id string) (*Order, error) {
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, ErrInvalidState
	}
	return s.orders.Cancel(ctx, o)
}

// RecordPayment settles an order: one full-settlement event, amount
// defaulting to the order total. The order is stamped paid but stays
// open; closing is an explicit separate step.
func (s *Service) RecordPayment(ctx context.Context, id string, req PayRequest, staff Staff) (*payment.Payment, error) {
	if !staff.CanManage() {
		return nil, ErrForbidden
	}
	method := payment.Method(req.PaymentMethod)
	if !method.Valid() {
		return nil, fmt.Errorf("%w: unknown payment method %q", ErrInvalidRequest, req.PaymentMethod)
	}

	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, ErrInvalidState
	}
	if o.PaymentStatus == PaymentPaid {
		return nil, ErrAlreadyPaid
	}

	amount := o.Total
	if req.Amount != "" {
		d, err := decimal.NewFromString(req.Amount)
		if err != nil || d.IsNegative() {
			return nil, fmt.Errorf("%w: bad amount %q", ErrInvalidRequest, req.Amount)
		}
		amount = d.StringFixed(2)
	}

	// MarkPaid is the compare-and-swap gate: a racing second settlement
	// loses here, before any payment row exists.
	if _, err := s.orders.MarkPaid(ctx, id, string(method)); err != nil {
		return nil, err
	}

	staffID := staff.ID
	p := &payment.Payment{
		ID:            uuid.NewString(),
		OrderID:       id,
		Amount:        amount,
		PaymentMethod: method,
		TransactionID: req.TransactionID,
		ProcessedBy:   &staffID,
		Status:        payment.StatusCompleted,
		Notes:         req.Notes,
	}
	if err := s.payments.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("order %s marked paid but payment record failed: %w", id, err)
	}
	return p, nil
}

// Close completes a settled order. Without a completed payment record
// the order stays open, no matter its kitchen status.
func (s *Service) Close(ctx context.Context, id string, staff Staff) (*Order, error) {
	if !staff.CanManage() {
		return nil, ErrForbidden
	}
	o, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if o.Status.Terminal() {
		return nil, ErrInvalidState
	}
	paid, err := s.payments.HasCompleted(ctx, id)
	if err != nil {
		return nil, err
	}
	if !paid {
		return nil, ErrPaymentRequired
	}
	return s.orders.Complete(ctx, o)
}

// CashierOrder returns the settlement view: the order, its lines, and
// every payment recorded against it.
func (s *Service) CashierOrder(ctx context.Context, id string) (*CashierDetail, error) {
	detail, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	pays, err := s.payments.ListByOrder(ctx, id)
	if err != nil {
		return nil, err
	}
	return &CashierDetail{Order: detail.Order, Lines: detail.Lines, Payments: pays}, nil
}
