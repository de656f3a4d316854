package order

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"restopos/internal/table"
)

type Filter struct {
	Statuses  []Status
	OrderType Type
	From      time.Time
	To        time.Time
}

type Repository interface {
	Create(ctx context.Context, o *Order, lines []Line) error
	GetByID(ctx context.Context, id string) (*Order, error)
	GetLines(ctx context.Context, orderID string) ([]Line, error)
	List(ctx context.Context, f Filter) ([]Order, error)
	GetActiveByTable(ctx context.Context, tableID string) (*Order, error)
	UpdateDetails(ctx context.Context, id, customerName, customerPhone, notes string) (*Order, error)
	MarkAccepted(ctx context.Context, id, staffID string) (*Order, error)
	SetStatus(ctx context.Context, id string, to Status) (*Order, error)
	Complete(ctx context.Context, o *Order) (*Order, error)
	Cancel(ctx context.Context, o *Order) (*Order, error)
	MarkPaid(ctx context.Context, id string, method string) (*Order, error)
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const orderCols = `id, order_number, table_id, customer_name, customer_phone, order_type, status,
	subtotal::text, tax::text, discount::text, total::text, notes,
	accepted_by, accepted_at, completed_at, payment_status, payment_method, created_at, updated_at`

func scanOrder(row pgx.Row) (*Order, error) {
	var o Order
	err := row.Scan(&o.ID, &o.OrderNumber, &o.TableID, &o.CustomerName, &o.CustomerPhone,
		&o.OrderType, &o.Status, &o.Subtotal, &o.Tax, &o.Discount, &o.Total, &o.Notes,
		&o.AcceptedBy, &o.AcceptedAt, &o.CompletedAt, &o.PaymentStatus, &o.PaymentMethod,
		&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return &o, nil
}

// Create inserts the order and its lines, and for dine-in binds the
// table, all in one transaction. The bind is a compare-and-swap on
// current_order_id so a racing creation loses cleanly with a conflict
// instead of double-booking the table.
func (r *PGRepo) Create(ctx context.Context, o *Order, lines []Line) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	err = tx.QueryRow(ctx, `
		INSERT INTO orders (id, order_number, table_id, customer_name, customer_phone, order_type,
			status, subtotal, tax, discount, total, notes, payment_status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,'unpaid',NOW(),NOW())
		RETURNING created_at, updated_at
	`, o.ID, o.OrderNumber, o.TableID, o.CustomerName, o.CustomerPhone, o.OrderType,
		o.Status, o.Subtotal, o.Tax, o.Discount, o.Total, o.Notes).
		Scan(&o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errDuplicateNumber
		}
		return err
	}

	for _, ln := range lines {
		if _, err := tx.Exec(ctx, `
			INSERT INTO order_items (id, order_id, item_id, quantity, price, notes)
			VALUES ($1,$2,$3,$4,$5,$6)
		`, ln.ID, o.ID, ln.ItemID, ln.Quantity, ln.Price, ln.Notes); err != nil {
			return err
		}
	}

	if o.DineIn() {
		if err := bindTable(ctx, tx, *o.TableID, o.ID); err != nil {
			return err
		}
	}
	return tx.Commit(ctx)
}

func bindTable(ctx context.Context, tx pgx.Tx, tableID, orderID string) error {
	tag, err := tx.Exec(ctx, `
		UPDATE tables
		SET status = 'occupied', current_order_id = $2, updated_at = NOW()
		WHERE id = $1 AND is_active AND current_order_id IS NULL
	`, tableID, orderID)
	if err != nil {
		return &BindWarningError{TableID: tableID, Err: err}
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	// Lost the CAS. Figure out whether it was a race or a dead table.
	var isActive bool
	var current *string
	if err := tx.QueryRow(ctx,
		`SELECT is_active, current_order_id FROM tables WHERE id=$1`, tableID).
		Scan(&isActive, &current); err != nil {
		return &BindWarningError{TableID: tableID, Err: err}
	}
	if !isActive {
		return ErrTableInactive
	}
	if current != nil {
		return &TableConflictError{TableID: tableID, ConflictingOrderID: *current}
	}
	return &BindWarningError{TableID: tableID, Err: errors.New("bind matched no row")}
}

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `SELECT `+orderCols+` FROM orders WHERE id=$1`, id))
	if err != nil {
		return nil, ErrNotFound
	}
	return o, nil
}

func (r *PGRepo) GetLines(ctx context.Context, orderID string) ([]Line, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, item_id, quantity, price::text, notes
		FROM order_items WHERE order_id=$1
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Line
	for rows.Next() {
		var ln Line
		if err := rows.Scan(&ln.ID, &ln.OrderID, &ln.ItemID, &ln.Quantity, &ln.Price, &ln.Notes); err != nil {
			return nil, err
		}
		out = append(out, ln)
	}
	return out, rows.Err()
}

func (r *PGRepo) List(ctx context.Context, f Filter) ([]Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	statuses := make([]string, 0, len(f.Statuses))
	for _, s := range f.Statuses {
		statuses = append(statuses, string(s))
	}
	rows, err := r.db.Query(ctx, `
		SELECT `+orderCols+`
		FROM orders
		WHERE (cardinality($1::text[]) = 0 OR status = ANY($1::text[]))
		  AND ($2 = '' OR order_type = $2)
		  AND ($3::timestamptz IS NULL OR created_at >= $3)
		  AND ($4::timestamptz IS NULL OR created_at <= $4)
		ORDER BY created_at DESC
	`, statuses, string(f.OrderType), nullTime(f.From), nullTime(f.To))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Order
	for rows.Next() {
		o, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *o)
	}
	return out, rows.Err()
}

func nullTime(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// GetActiveByTable returns the non-terminal dine-in order bound to a
// table, if any.
func (r *PGRepo) GetActiveByTable(ctx context.Context, tableID string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		SELECT `+orderCols+` FROM orders
		WHERE table_id=$1 AND status NOT IN ('completed','cancelled')
		ORDER BY created_at DESC LIMIT 1
	`, tableID))
	if err != nil {
		return nil, ErrNotFound
	}
	return o, nil
}

// UpdateDetails mutates contact fields and notes only; lines and totals
// are frozen at creation. Terminal orders reject the write.
func (r *PGRepo) UpdateDetails(ctx context.Context, id, customerName, customerPhone, notes string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders
		SET customer_name = COALESCE(NULLIF($2,''), customer_name),
		    customer_phone = COALESCE(NULLIF($3,''), customer_phone),
		    notes = COALESCE(NULLIF($4,''), notes),
		    updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('completed','cancelled')
		RETURNING `+orderCols+`
	`, id, customerName, customerPhone, notes))
	if err != nil {
		return nil, stateOrNotFound(ctx, r.db, id)
	}
	return o, nil
}

func (r *PGRepo) MarkAccepted(ctx context.Context, id, staffID string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders
		SET status = 'accepted', accepted_by = $2, accepted_at = NOW(), updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('completed','cancelled')
		RETURNING `+orderCols+`
	`, id, staffID))
	if err != nil {
		return nil, stateOrNotFound(ctx, r.db, id)
	}
	return o, nil
}

// SetStatus moves an order to a non-terminal working status. Terminal
// targets go through Complete/Cancel, which also release the table.
func (r *PGRepo) SetStatus(ctx context.Context, id string, to Status) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders
		SET status = $2, updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('completed','cancelled')
		RETURNING `+orderCols+`
	`, id, to))
	if err != nil {
		return nil, stateOrNotFound(ctx, r.db, id)
	}
	return o, nil
}

func (r *PGRepo) Complete(ctx context.Context, o *Order) (*Order, error) {
	return r.finish(ctx, o, StatusCompleted)
}

func (r *PGRepo) Cancel(ctx context.Context, o *Order) (*Order, error) {
	return r.finish(ctx, o, StatusCancelled)
}

// finish moves an order into a terminal state and releases its table in
// the same transaction, keeping ledger and registry consistent.
func (r *PGRepo) finish(ctx context.Context, o *Order, to Status) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	completedAt := "NULL"
	if to == StatusCompleted {
		completedAt = "NOW()"
	}
	updated, err := scanOrder(tx.QueryRow(ctx, `
		UPDATE orders
		SET status = $2, completed_at = `+completedAt+`, updated_at = NOW()
		WHERE id = $1 AND status NOT IN ('completed','cancelled')
		RETURNING `+orderCols+`
	`, o.ID, to))
	if err != nil {
		return nil, stateOrNotFound(ctx, r.db, o.ID)
	}

	if o.DineIn() {
		if err := table.ReleaseTx(ctx, tx, *o.TableID, o.ID); err != nil {
			return nil, err
		}
	}
	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return updated, nil
}

// MarkPaid stamps the order's settlement fields. The payment_status
// guard makes a double payment fail instead of overwriting the first.
func (r *PGRepo) MarkPaid(ctx context.Context, id string, method string) (*Order, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	o, err := scanOrder(r.db.QueryRow(ctx, `
		UPDATE orders
		SET payment_status = 'paid', payment_method = $2, updated_at = NOW()
		WHERE id = $1 AND payment_status = 'unpaid'
		RETURNING `+orderCols+`
	`, id, method))
	if err != nil {
		if _, gerr := r.GetByID(ctx, id); gerr != nil {
			return nil, ErrNotFound
		}
		return nil, ErrAlreadyPaid
	}
	return o, nil
}

func (r *PGRepo) CountCreatedBetween(ctx context.Context, from, to time.Time) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var n int
	err := r.db.QueryRow(ctx, `
		SELECT COUNT(*) FROM orders WHERE created_at >= $1 AND created_at <= $2
	`, from, to).Scan(&n)
	return n, err
}

// stateOrNotFound distinguishes "no such order" from "order is in a
// state that rejects the write" after a guarded UPDATE matched nothing.
func stateOrNotFound(ctx context.Context, db *pgxpool.Pool, id string) error {
	var status Status
	if err := db.QueryRow(ctx, `SELECT status FROM orders WHERE id=$1`, id).Scan(&status); err != nil {
		return ErrNotFound
	}
	return ErrInvalidState
}
