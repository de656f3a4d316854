package order

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"restopos/internal/menu"
	"restopos/internal/payment"
	"restopos/internal/table"
)

//
// ---------- FAKES ----------
//

type fakeTables struct {
	byID map[string]*table.Table
}

func (f *fakeTables) GetByID(_ context.Context, id string) (*table.Table, error) {
	t, ok := f.byID[id]
	if !ok {
		return nil, table.ErrNotFound
	}
	return t, nil
}

func (f *fakeTables) List(_ context.Context) ([]table.Table, error) {
	var out []table.Table
	for _, t := range f.byID {
		out = append(out, *t)
	}
	return out, nil
}

func (f *fakeTables) release(_ context.Context, tableID, orderID string) error {
	t, ok := f.byID[tableID]
	if !ok {
		return nil
	}
	if t.CurrentOrderID != nil && *t.CurrentOrderID == orderID {
		t.Status = table.StatusFree
		t.CurrentOrderID = nil
	}
	return nil
}

type fakeMenu struct {
	byID map[string]*menu.Item
}

func (f *fakeMenu) GetByID(_ context.Context, id string) (*menu.Item, error) {
	it, ok := f.byID[id]
	if !ok {
		return nil, menu.ErrNotFound
	}
	return it, nil
}

func (f *fakeMenu) List(_ context.Context, availableOnly bool) ([]menu.Item, error) {
	var out []menu.Item
	for _, it := range f.byID {
		if !availableOnly || it.IsAvailable {
			out = append(out, *it)
		}
	}
	return out, nil
}

type fakePayments struct {
	records []payment.Payment
}

func (f *fakePayments) Create(_ context.Context, p *payment.Payment) error {
	p.CreatedAt = time.Now()
	f.records = append(f.records, *p)
	return nil
}

func (f *fakePayments) HasCompleted(_ context.Context, orderID string) (bool, error) {
	for _, p := range f.records {
		if p.OrderID == orderID && p.Status == payment.StatusCompleted {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakePayments) ListByOrder(_ context.Context, orderID string) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range f.records {
		if p.OrderID == orderID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakePayments) ListByRange(_ context.Context, from, to time.Time, status string) ([]payment.Payment, error) {
	var out []payment.Payment
	for _, p := range f.records {
		if !p.CreatedAt.Before(from) && !p.CreatedAt.After(to) && (status == "" || p.Status == status) {
			out = append(out, p)
		}
	}
	return out, nil
}

// fakeOrders mimics the PG repo's compare-and-swap behavior in memory,
// including the unique order-number index and the table bind/release
// that share the creation and completion transactions.
type fakeOrders struct {
	byID    map[string]*Order
	byNum   map[string]string
	lines   map[string][]Line
	tables  *fakeTables
	now     func() time.Time
	bindErr error // forces a non-conflict bind failure
}

func newFakeOrders(tables *fakeTables) *fakeOrders {
	return &fakeOrders{
		byID:   map[string]*Order{},
		byNum:  map[string]string{},
		lines:  map[string][]Line{},
		tables: tables,
		now:    time.Now,
	}
}

func (f *fakeOrders) Create(_ context.Context, o *Order, lines []Line) error {
	if _, taken := f.byNum[o.OrderNumber]; taken {
		return errDuplicateNumber
	}
	if o.DineIn() {
		if f.bindErr != nil {
			return &BindWarningError{TableID: *o.TableID, Err: f.bindErr}
		}
		t, ok := f.tables.byID[*o.TableID]
		if !ok {
			return &BindWarningError{TableID: *o.TableID, Err: errors.New("no row")}
		}
		if !t.IsActive {
			return ErrTableInactive
		}
		if t.CurrentOrderID != nil {
			return &TableConflictError{TableID: t.ID, ConflictingOrderID: *t.CurrentOrderID}
		}
		t.Status = table.StatusOccupied
		id := o.ID
		t.CurrentOrderID = &id
	}
	if o.CreatedAt.IsZero() {
		o.CreatedAt = f.now()
	}
	o.UpdatedAt = o.CreatedAt
	cp := *o
	f.byID[o.ID] = &cp
	f.byNum[o.OrderNumber] = o.ID
	f.lines[o.ID] = append([]Line(nil), lines...)
	return nil
}

func (f *fakeOrders) GetByID(_ context.Context, id string) (*Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) GetLines(_ context.Context, orderID string) ([]Line, error) {
	return f.lines[orderID], nil
}

func (f *fakeOrders) List(_ context.Context, filter Filter) ([]Order, error) {
	var out []Order
	for _, o := range f.byID {
		if len(filter.Statuses) > 0 {
			match := false
			for _, s := range filter.Statuses {
				if o.Status == s {
					match = true
				}
			}
			if !match {
				continue
			}
		}
		out = append(out, *o)
	}
	return out, nil
}

func (f *fakeOrders) GetActiveByTable(_ context.Context, tableID string) (*Order, error) {
	for _, o := range f.byID {
		if o.TableID != nil && *o.TableID == tableID && !o.Status.Terminal() {
			cp := *o
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeOrders) UpdateDetails(_ context.Context, id, name, phone, notes string) (*Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if o.Status.Terminal() {
		return nil, ErrInvalidState
	}
	if name != "" {
		o.CustomerName = name
	}
	if phone != "" {
		o.CustomerPhone = phone
	}
	if notes != "" {
		o.Notes = notes
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) MarkAccepted(_ context.Context, id, staffID string) (*Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if o.Status.Terminal() {
		return nil, ErrInvalidState
	}
	now := time.Now()
	o.Status = StatusAccepted
	o.AcceptedBy = &staffID
	o.AcceptedAt = &now
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) SetStatus(_ context.Context, id string, to Status) (*Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if o.Status.Terminal() {
		return nil, ErrInvalidState
	}
	o.Status = to
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) finish(id string, to Status) (*Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if o.Status.Terminal() {
		return nil, ErrInvalidState
	}
	o.Status = to
	if to == StatusCompleted {
		now := time.Now()
		o.CompletedAt = &now
	}
	if o.DineIn() {
		_ = f.tables.release(context.Background(), *o.TableID, o.ID)
	}
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) Complete(_ context.Context, o *Order) (*Order, error) {
	return f.finish(o.ID, StatusCompleted)
}

func (f *fakeOrders) Cancel(_ context.Context, o *Order) (*Order, error) {
	return f.finish(o.ID, StatusCancelled)
}

func (f *fakeOrders) MarkPaid(_ context.Context, id, method string) (*Order, error) {
	o, ok := f.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	if o.PaymentStatus == PaymentPaid {
		return nil, ErrAlreadyPaid
	}
	o.PaymentStatus = PaymentPaid
	o.PaymentMethod = &method
	cp := *o
	return &cp, nil
}

func (f *fakeOrders) CountCreatedBetween(_ context.Context, from, to time.Time) (int, error) {
	n := 0
	for _, o := range f.byID {
		if !o.CreatedAt.Before(from) && !o.CreatedAt.After(to) {
			n++
		}
	}
	return n, nil
}

//
// ---------- FIXTURE ----------
//

const (
	itemPizza   = "item-pizza"   // 100.00
	itemBread   = "item-bread"   // 50.00
	itemOffMenu = "item-special" // unavailable
	tableT1     = "table-t1"
	tableT2     = "table-t2"
	tableDead   = "table-dead"
)

func newFixture() (*Service, *fakeOrders, *fakeTables, *fakePayments) {
	tables := &fakeTables{byID: map[string]*table.Table{
		tableT1:   {ID: tableT1, TableNumber: 1, Name: "T1", Capacity: 2, Status: table.StatusFree, IsActive: true},
		tableT2:   {ID: tableT2, TableNumber: 2, Name: "T2", Capacity: 4, Status: table.StatusFree, IsActive: true},
		tableDead: {ID: tableDead, TableNumber: 9, Name: "T9", Capacity: 4, Status: table.StatusMaintenance, IsActive: false},
	}}
	items := &fakeMenu{byID: map[string]*menu.Item{
		itemPizza:   {ID: itemPizza, Name: "Margherita Pizza", Price: "100.00", IsAvailable: true},
		itemBread:   {ID: itemBread, Name: "Garlic Bread", Price: "50.00", IsAvailable: true},
		itemOffMenu: {ID: itemOffMenu, Name: "Seasonal Special", Price: "150.00", IsAvailable: false},
	}}
	orders := newFakeOrders(tables)
	payments := &fakePayments{}
	svc := NewService(orders, items, tables, payments)
	return svc, orders, tables, payments
}

func dineInRequest(tableID string) CreateRequest {
	return CreateRequest{
		Items: []CreateLineRequest{
			{ItemID: itemPizza, Quantity: 2},
			{ItemID: itemBread, Quantity: 1},
		},
		TableID:      tableID,
		OrderType:    "dine-in",
		CustomerName: "Asha",
	}
}

var staffCashier = Staff{ID: "staff-1", Role: "cashier"}
var staffWaiter = Staff{ID: "staff-2", Role: "waiter"}

//
// ---------- TESTS ----------
//

func TestCreate_TotalsAndBinding(t *testing.T) {
	svc, _, tables, _ := newFixture()

	detail, err := svc.Create(context.Background(), dineInRequest(tableT1))
	require.NoError(t, err)

	o := detail.Order
	assert.Equal(t, "250.00", o.Subtotal)
	assert.Equal(t, "12.50", o.Tax)
	assert.Equal(t, "0.00", o.Discount)
	assert.Equal(t, "262.50", o.Total)
	assert.Equal(t, StatusPending, o.Status)
	assert.Equal(t, PaymentUnpaid, o.PaymentStatus)
	assert.Equal(t, "Asha", o.CustomerName)
	assert.Len(t, detail.Lines, 2)
	assert.Equal(t, "100.00", detail.Lines[0].Price)

	bound := tables.byID[tableT1]
	assert.Equal(t, table.StatusOccupied, bound.Status)
	require.NotNil(t, bound.CurrentOrderID)
	assert.Equal(t, o.ID, *bound.CurrentOrderID)
}

func TestCreate_DefaultsGuestAndDineIn(t *testing.T) {
	svc, _, _, _ := newFixture()

	detail, err := svc.Create(context.Background(), CreateRequest{
		Items: []CreateLineRequest{{ItemID: itemBread, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "Guest", detail.Order.CustomerName)
	assert.Equal(t, TypeDineIn, detail.Order.OrderType)
	assert.Nil(t, detail.Order.TableID) // no table requested, none bound
}

func TestCreate_UnknownItemAbortsWholeOrder(t *testing.T) {
	svc, orders, _, _ := newFixture()

	req := dineInRequest(tableT1)
	req.Items = append(req.Items, CreateLineRequest{ItemID: "item-ghost", Quantity: 1})
	_, err := svc.Create(context.Background(), req)
	require.ErrorIs(t, err, menu.ErrNotFound)
	assert.Empty(t, orders.byID) // nothing persisted
}

func TestCreate_UnavailableItem(t *testing.T) {
	svc, orders, _, _ := newFixture()

	req := dineInRequest(tableT1)
	req.Items[0].ItemID = itemOffMenu
	_, err := svc.Create(context.Background(), req)

	var unavailable *ItemUnavailableError
	require.ErrorAs(t, err, &unavailable)
	assert.Equal(t, "Seasonal Special", unavailable.Name)
	assert.Empty(t, orders.byID)
}

func TestCreate_TableConflictReportsBlockingOrder(t *testing.T) {
	svc, _, tables, _ := newFixture()

	first, err := svc.Create(context.Background(), dineInRequest(tableT1))
	require.NoError(t, err)

	_, err = svc.Create(context.Background(), dineInRequest(tableT1))
	var conflict *TableConflictError
	require.ErrorAs(t, err, &conflict)
	assert.Equal(t, first.Order.ID, conflict.ConflictingOrderID)

	// The first binding is untouched.
	assert.Equal(t, first.Order.ID, *tables.byID[tableT1].CurrentOrderID)
}

func TestCreate_InactiveTable(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.Create(context.Background(), dineInRequest(tableDead))
	require.ErrorIs(t, err, ErrTableInactive)
}

func TestCreate_MissingTable(t *testing.T) {
	svc, _, _, _ := newFixture()

	_, err := svc.Create(context.Background(), dineInRequest("table-ghost"))
	require.ErrorIs(t, err, table.ErrNotFound)
}

func TestCreate_TakeawayIgnoresTableBinding(t *testing.T) {
	svc, _, tables, _ := newFixture()

	req := dineInRequest(tableT1)
	req.OrderType = "takeaway"
	detail, err := svc.Create(context.Background(), req)
	require.NoError(t, err)
	assert.Nil(t, detail.Order.TableID)
	assert.Equal(t, table.StatusFree, tables.byID[tableT1].Status)
}

func TestCreate_SequentialOrderNumbers(t *testing.T) {
	svc, orders, _, _ := newFixture()
	at := time.Date(2026, 9, 1, 12, 30, 0, 0, time.Local)
	svc.now = func() time.Time { return at }
	orders.now = svc.now

	first, err := svc.Create(context.Background(), CreateRequest{
		Items: []CreateLineRequest{{ItemID: itemBread, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260901-0001", first.Order.OrderNumber)

	second, err := svc.Create(context.Background(), CreateRequest{
		Items: []CreateLineRequest{{ItemID: itemBread, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, "ORD-20260901-0002", second.Order.OrderNumber)
}

func TestCreate_NumberCollisionFallsBack(t *testing.T) {
	svc, orders, _, _ := newFixture()
	at := time.Date(2026, 9, 1, 12, 30, 0, 0, time.Local)
	svc.now = func() time.Time { return at }
	svc.randInt = func(int) int { return 7 }

	// A racing creation already took today's first sequence number; its
	// created_at sits outside today's count window to mimic the race.
	orders.byNum["ORD-20260901-0001"] = "other-order"

	detail, err := svc.Create(context.Background(), CreateRequest{
		Items: []CreateLineRequest{{ItemID: itemBread, Quantity: 1}},
	})
	require.NoError(t, err)
	assert.Equal(t, fmt.Sprintf("ORD-%d-7", at.UnixMilli()), detail.Order.OrderNumber)
}

func TestCreate_BindFailureSurfacesWarning(t *testing.T) {
	svc, orders, _, _ := newFixture()
	orders.bindErr = errors.New("connection reset")

	_, err := svc.Create(context.Background(), dineInRequest(tableT1))
	var warn *BindWarningError
	require.ErrorAs(t, err, &warn)
	assert.Equal(t, tableT1, warn.TableID)
}

func TestSetStatus_AcceptStampsStaff(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	o, err := svc.SetStatus(context.Background(), detail.Order.ID, StatusAccepted, staffCashier)
	require.NoError(t, err)
	assert.Equal(t, StatusAccepted, o.Status)
	require.NotNil(t, o.AcceptedBy)
	assert.Equal(t, staffCashier.ID, *o.AcceptedBy)
	assert.NotNil(t, o.AcceptedAt)
}

func TestSetStatus_AcceptRequiresManagingRole(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	_, err := svc.SetStatus(context.Background(), detail.Order.ID, StatusAccepted, staffWaiter)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestSetStatus_CompletedRequiresPaymentEvenViaStatusEndpoint(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	_, err := svc.SetStatus(context.Background(), detail.Order.ID, StatusCompleted, staffCashier)
	require.ErrorIs(t, err, ErrPaymentRequired)
}

func TestSetStatus_CompletedAfterPaymentReleasesTable(t *testing.T) {
	svc, _, tables, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	_, err := svc.RecordPayment(context.Background(), detail.Order.ID, PayRequest{PaymentMethod: "cash"}, staffCashier)
	require.NoError(t, err)

	o, err := svc.SetStatus(context.Background(), detail.Order.ID, StatusCompleted, staffCashier)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, o.Status)
	assert.NotNil(t, o.CompletedAt)
	assert.Equal(t, table.StatusFree, tables.byID[tableT1].Status)
	assert.Nil(t, tables.byID[tableT1].CurrentOrderID)
}

func TestSetStatus_TerminalOrderRejectsEverything(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))
	_, err := svc.Cancel(context.Background(), detail.Order.ID)
	require.NoError(t, err)

	for _, target := range []Status{StatusAccepted, StatusPreparing, StatusReady, StatusCompleted, StatusCancelled} {
		_, err := svc.SetStatus(context.Background(), detail.Order.ID, target, staffCashier)
		assert.ErrorIs(t, err, ErrInvalidState, "transition to %s", target)
	}
}

func TestSetStatus_NeverBackToPending(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))
	_, err := svc.SetStatus(context.Background(), detail.Order.ID, StatusPreparing, staffCashier)
	require.NoError(t, err)

	_, err = svc.SetStatus(context.Background(), detail.Order.ID, StatusPending, staffCashier)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestCancel_PendingReleasesTable(t *testing.T) {
	svc, _, tables, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	o, err := svc.Cancel(context.Background(), detail.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, o.Status)
	assert.Equal(t, table.StatusFree, tables.byID[tableT1].Status)
	assert.Nil(t, tables.byID[tableT1].CurrentOrderID)
}

func TestCancel_CompletedOrderFails(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))
	_, err := svc.RecordPayment(context.Background(), detail.Order.ID, PayRequest{PaymentMethod: "upi"}, staffCashier)
	require.NoError(t, err)
	_, err = svc.Close(context.Background(), detail.Order.ID, staffCashier)
	require.NoError(t, err)

	_, err = svc.Cancel(context.Background(), detail.Order.ID)
	require.ErrorIs(t, err, ErrInvalidState)
}

func TestRecordPayment_DefaultsAmountToTotal(t *testing.T) {
	svc, _, _, payments := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	p, err := svc.RecordPayment(context.Background(), detail.Order.ID, PayRequest{PaymentMethod: "card"}, staffCashier)
	require.NoError(t, err)
	assert.Equal(t, "262.50", p.Amount)
	assert.Equal(t, payment.MethodCard, p.PaymentMethod)
	assert.Equal(t, payment.StatusCompleted, p.Status)
	require.NotNil(t, p.ProcessedBy)
	assert.Equal(t, staffCashier.ID, *p.ProcessedBy)
	assert.Len(t, payments.records, 1)

	// The order is stamped paid but stays open until closed.
	got, err := svc.Get(context.Background(), detail.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, PaymentPaid, got.Order.PaymentStatus)
	assert.Equal(t, StatusPending, got.Order.Status)
}

func TestRecordPayment_SecondSettlementFails(t *testing.T) {
	svc, _, _, payments := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	_, err := svc.RecordPayment(context.Background(), detail.Order.ID, PayRequest{PaymentMethod: "cash"}, staffCashier)
	require.NoError(t, err)
	_, err = svc.RecordPayment(context.Background(), detail.Order.ID, PayRequest{PaymentMethod: "cash"}, staffCashier)
	require.ErrorIs(t, err, ErrAlreadyPaid)
	assert.Len(t, payments.records, 1)
}

func TestRecordPayment_RequiresManagingRole(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	_, err := svc.RecordPayment(context.Background(), detail.Order.ID, PayRequest{PaymentMethod: "cash"}, staffWaiter)
	require.ErrorIs(t, err, ErrForbidden)
}

func TestRecordPayment_UnknownMethod(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	_, err := svc.RecordPayment(context.Background(), detail.Order.ID, PayRequest{PaymentMethod: "barter"}, staffCashier)
	require.ErrorIs(t, err, ErrInvalidRequest)
}

func TestClose_WithoutPaymentFails(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	_, err := svc.Close(context.Background(), detail.Order.ID, staffCashier)
	require.ErrorIs(t, err, ErrPaymentRequired)
}

func TestClose_AfterPaymentCompletesAndReleases(t *testing.T) {
	svc, _, tables, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	_, err := svc.RecordPayment(context.Background(), detail.Order.ID, PayRequest{PaymentMethod: "wallet", Amount: "262.50"}, staffCashier)
	require.NoError(t, err)

	o, err := svc.Close(context.Background(), detail.Order.ID, staffCashier)
	require.NoError(t, err)
	assert.Equal(t, StatusCompleted, o.Status)
	assert.NotNil(t, o.CompletedAt)
	assert.Equal(t, table.StatusFree, tables.byID[tableT1].Status)

	// The table is immediately rebookable.
	_, err = svc.Create(context.Background(), dineInRequest(tableT1))
	require.NoError(t, err)
}

func TestCashierOrder_IncludesPayments(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	_, err := svc.RecordPayment(context.Background(), detail.Order.ID, PayRequest{PaymentMethod: "cash"}, staffCashier)
	require.NoError(t, err)

	view, err := svc.CashierOrder(context.Background(), detail.Order.ID)
	require.NoError(t, err)
	assert.Equal(t, detail.Order.ID, view.Order.ID)
	assert.Len(t, view.Lines, 2)
	require.Len(t, view.Payments, 1)
	assert.Equal(t, "262.50", view.Payments[0].Amount)

	_, err = svc.CashierOrder(context.Background(), "order-ghost")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestGetActiveByTable(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT2))

	found, err := svc.GetActiveByTable(context.Background(), tableT2)
	require.NoError(t, err)
	assert.Equal(t, detail.Order.ID, found.Order.ID)
	assert.Len(t, found.Lines, 2)

	_, err = svc.Cancel(context.Background(), detail.Order.ID)
	require.NoError(t, err)
	_, err = svc.GetActiveByTable(context.Background(), tableT2)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestUpdateDetails_KeepsTotalsFrozen(t *testing.T) {
	svc, _, _, _ := newFixture()
	detail, _ := svc.Create(context.Background(), dineInRequest(tableT1))

	o, err := svc.UpdateDetails(context.Background(), detail.Order.ID, UpdateDetailsRequest{
		CustomerName: "Ravi", Notes: "allergic to nuts",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravi", o.CustomerName)
	assert.Equal(t, "allergic to nuts", o.Notes)
	assert.Equal(t, "262.50", o.Total)
}
