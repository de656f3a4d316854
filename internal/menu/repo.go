// Package menu is the read side of the menu item store. Item and
// category administration is owned by the back-office service; the
// order flow only ever resolves items by id and lists them.
package menu

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

var ErrNotFound = errors.New("menu item not found")

type Repository interface {
	GetByID(ctx context.Context, id string) (*Item, error)
	List(ctx context.Context, availableOnly bool) ([]Item, error)
}

type PGRepo struct{ db *pgxpool.Pool }

func NewPGRepo(db *pgxpool.Pool) *PGRepo { return &PGRepo{db: db} }

func (r *PGRepo) GetByID(ctx context.Context, id string) (*Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var it Item
	err := r.db.QueryRow(ctx, `
		SELECT id, name, description, price::text, is_available, is_veg, preparation_time, created_at, updated_at
		FROM menu_items WHERE id=$1
	`, id).Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.IsAvailable,
		&it.IsVeg, &it.PreparationTime, &it.CreatedAt, &it.UpdatedAt)
	if err != nil {
		return nil, ErrNotFound
	}
	return &it, nil
}

func (r *PGRepo) List(ctx context.Context, availableOnly bool) ([]Item, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	rows, err := r.db.Query(ctx, `
		SELECT id, name, description, price::text, is_available, is_veg, preparation_time, created_at, updated_at
		FROM menu_items
		WHERE ($1 = FALSE OR is_available)
		ORDER BY name
	`, availableOnly)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []Item
	for rows.Next() {
		var it Item
		if err := rows.Scan(&it.ID, &it.Name, &it.Description, &it.Price, &it.IsAvailable,
			&it.IsVeg, &it.PreparationTime, &it.CreatedAt, &it.UpdatedAt); err != nil {
			return nil, err
		}
		out = append(out, it)
	}
	return out, rows.Err()
}
