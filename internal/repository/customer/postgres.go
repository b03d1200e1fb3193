package customer

import (
	"context"
	"errors"
	"io"
	"log"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

const customerColumns = `id::text, code, name, phone, address, total_orders, target_orders, rewards_available, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, c domain.Customer) (*domain.Customer, error) {
	const q = `
INSERT INTO customers (code, name, phone, address, total_orders, target_orders, rewards_available)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING ` + customerColumns + `
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q,
		c.Code, c.Name, c.Phone, c.Address, c.TotalOrders, c.TargetOrders, c.RewardsAvailable,
	))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE id = $1 LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) GetByCode(ctx context.Context, code string) (*domain.Customer, error) {
	const q = `SELECT ` + customerColumns + ` FROM customers WHERE code = $1 LIMIT 1`
	return r.scanCustomer(r.pool.QueryRow(ctx, q, code))
}

func (r *postgresRepo) List(ctx context.Context, in ListInput) ([]domain.Customer, error) {
	if in.Sort == SortSpend {
		return r.listBySpend(ctx, in.Query)
	}

	q := `SELECT ` + customerColumns + ` FROM customers`
	args := []interface{}{}
	if in.Query != "" {
		q += ` WHERE name ILIKE '%' || $1 || '%' OR phone ILIKE '%' || $1 || '%' OR code ILIKE '%' || $1 || '%' OR address ILIKE '%' || $1 || '%'`
		args = append(args, in.Query)
	}
	switch in.Sort {
	case SortOrders:
		q += ` ORDER BY total_orders DESC`
	default:
		q += ` ORDER BY created_at DESC`
	}

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanCustomers(rows)
}

func (r *postgresRepo) listBySpend(ctx context.Context, query string) ([]domain.Customer, error) {
	q := `
SELECT c.id::text, c.code, c.name, c.phone, c.address, c.total_orders, c.target_orders, c.rewards_available, c.created_at,
       COALESCE(SUM(o.total_cents), 0) AS total_spent
FROM customers c
LEFT JOIN orders o ON o.customer_id = c.id
`
	args := []interface{}{}
	if query != "" {
		q += `WHERE c.name ILIKE '%' || $1 || '%' OR c.phone ILIKE '%' || $1 || '%' OR c.code ILIKE '%' || $1 || '%' OR c.address ILIKE '%' || $1 || '%'
`
		args = append(args, query)
	}
	q += `GROUP BY c.id
ORDER BY total_spent DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Phone, &c.Address,
			&c.TotalOrders, &c.TargetOrders, &c.RewardsAvailable, &c.CreatedAt,
			&c.TotalSpent,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Customer, error) {
	const q = `
UPDATE customers
SET code = $2,
    name = $3,
    phone = $4,
    address = $5,
    total_orders = COALESCE($6, total_orders),
    target_orders = COALESCE($7, target_orders),
    rewards_available = COALESCE($8, rewards_available)
WHERE id = $1
RETURNING ` + customerColumns + `
`
	return r.scanCustomer(r.pool.QueryRow(ctx, q,
		id, in.Code, in.Name, in.Phone, in.Address,
		in.TotalOrders, in.TargetOrders, in.RewardsAvailable,
	))
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) scanCustomer(row pgx.Row) (*domain.Customer, error) {
	var c domain.Customer
	err := row.Scan(
		&c.ID, &c.Code, &c.Name, &c.Phone, &c.Address,
		&c.TotalOrders, &c.TargetOrders, &c.RewardsAvailable, &c.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return nil, domain.ErrAlreadyExists
		}
		r.logger.Printf("customer repo: scan error=%v", err)
		return nil, err
	}
	return &c, nil
}

func scanCustomers(rows pgx.Rows) ([]domain.Customer, error) {
	var out []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(
			&c.ID, &c.Code, &c.Name, &c.Phone, &c.Address,
			&c.TotalOrders, &c.TargetOrders, &c.RewardsAvailable, &c.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
