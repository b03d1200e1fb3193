package menu

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

const menuColumns = `id::text, name, category, price_cents, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error) {
	const q = `
INSERT INTO menu_items (name, category, price_cents)
VALUES ($1, $2, $3)
RETURNING ` + menuColumns + `
`
	return scanItem(r.pool.QueryRow(ctx, q, item.Name, item.Category, item.PriceCents))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	const q = `SELECT ` + menuColumns + ` FROM menu_items WHERE id = $1 LIMIT 1`
	return scanItem(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByIDs(ctx context.Context, ids []string) (map[string]domain.MenuItem, error) {
	const q = `SELECT ` + menuColumns + ` FROM menu_items WHERE id = ANY($1)`
	rows, err := r.pool.Query(ctx, q, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string]domain.MenuItem, len(ids))
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.PriceCents, &item.CreatedAt); err != nil {
			return nil, err
		}
		out[item.ID] = item
	}
	return out, rows.Err()
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.MenuItem, error) {
	const q = `SELECT ` + menuColumns + ` FROM menu_items ORDER BY category, name`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.MenuItem
	for rows.Next() {
		var item domain.MenuItem
		if err := rows.Scan(&item.ID, &item.Name, &item.Category, &item.PriceCents, &item.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id string, item domain.MenuItem) (*domain.MenuItem, error) {
	const q = `
UPDATE menu_items
SET name = $2, category = $3, price_cents = $4
WHERE id = $1
RETURNING ` + menuColumns + `
`
	return scanItem(r.pool.QueryRow(ctx, q, id, item.Name, item.Category, item.PriceCents))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE id = $1`, id)
	if err != nil {
		// Items referenced by existing order lines cannot be removed.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return domain.ErrAlreadyExists
		}
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanItem(row pgx.Row) (*domain.MenuItem, error) {
	var item domain.MenuItem
	err := row.Scan(&item.ID, &item.Name, &item.Category, &item.PriceCents, &item.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		return nil, err
	}
	return &item, nil
}
