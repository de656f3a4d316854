// Package table is the registry of physical tables. Administrative CRUD
// (numbers, capacity, floor layout) belongs to the back-office service;
// the order flow reads tables and mutates only status/current_order_id.
package table

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("table not found")

type Repository interface {
	GetByID(ctx context.Context, id string) (*Table, error)
	List(ctx context.Context) ([]Table, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

const selectCols = `
	SELECT id, table_number, name, capacity,
	       CASE WHEN status = 'available' THEN 'free' ELSE status END,
	       current_order_id, location, is_active, created_at, updated_at
	FROM tables`

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var t Table
	err := r.db.QueryRow(ctx, selectCols+` WHERE id=$1`, id).
		Scan(&t.ID, &t.TableNumber, &t.Name, &t.Capacity, &t.Status,
			&t.CurrentOrderID, &t.Location, &t.IsActive, &t.CreatedAt, &t.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &t, nil
}

func (r *PGRepo) List(ctx context.Context) ([]Table, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, selectCols+` ORDER BY table_number`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Table
	for rows.Next() {
		var t Table
		if err := rows.Scan(&t.ID, &t.TableNumber, &t.Name, &t.Capacity, &t.Status,
			&t.CurrentOrderID, &t.Location, &t.IsActive, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, t)
	}
	return out, rows.Err()
}

// ReleaseTx frees the table bound to orderID inside the caller's
// transaction, so the order's terminal transition and the release
// commit together. The current_order_id guard makes it idempotent:
// releasing an already-released (or rebound) table matches no row and
// that is not an error.
func ReleaseTx(ctx context.Context, tx pgx.Tx, tableID, orderID string) error {
	_, err := tx.Exec(ctx, `
		UPDATE tables
		SET status = 'free', current_order_id = NULL, updated_at = NOW()
		WHERE id = $1 AND current_order_id = $2
	`, tableID, orderID)
	return err
}
