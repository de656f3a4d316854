package payment

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Repository interface {
	Create(ctx context.Context, p *Payment) error
	HasCompleted(ctx context.Context, orderID string) (bool, error)
	ListByOrder(ctx context.Context, orderID string) ([]Payment, error)
	ListByRange(ctx context.Context, from, to time.Time, status string) ([]Payment, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) Create(ctx context.Context, p *Payment) error {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	return r.db.QueryRow(ctx, `
		INSERT INTO payments (id, order_id, amount, payment_method, transaction_id, processed_by, status, notes, created_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,NOW())
		RETURNING created_at
	`, p.ID, p.OrderID, p.Amount, p.PaymentMethod, p.TransactionID,
		p.ProcessedBy, p.Status, p.Notes).Scan(&p.CreatedAt)
}

func (r *PGRepo) HasCompleted(ctx context.Context, orderID string) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var exists bool
	err := r.db.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM payments WHERE order_id=$1 AND status='completed')
	`, orderID).Scan(&exists)
	return exists, err
}

func (r *PGRepo) ListByOrder(ctx context.Context, orderID string) ([]Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, amount::text, payment_method, transaction_id, processed_by, status, notes, created_at
		FROM payments WHERE order_id=$1
		ORDER BY created_at
	`, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

// ListByRange is the read surface the daily-summary component
// aggregates over; no aggregation happens here.
func (r *PGRepo) ListByRange(ctx context.Context, from, to time.Time, status string) ([]Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, order_id, amount::text, payment_method, transaction_id, processed_by, status, notes, created_at
		FROM payments
		WHERE created_at >= $1 AND created_at <= $2
		  AND ($3 = '' OR status = $3)
		ORDER BY created_at
	`, from, to, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanPayments(rows)
}

func scanPayments(rows pgx.Rows) ([]Payment, error) {
	var out []Payment
	for rows.Next() {
		var p Payment
		if err := rows.Scan(&p.ID, &p.OrderID, &p.Amount, &p.PaymentMethod, &p.TransactionID,
			&p.ProcessedBy, &p.Status, &p.Notes, &p.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
