package analytics

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) TopItems(ctx context.Context, limit int) ([]TopItem, error) {
	const q = `
SELECT m.id::text, m.name, m.category, SUM(l.quantity) AS qty
FROM order_lines l
JOIN menu_items m ON m.id = l.menu_item_id
GROUP BY m.id
ORDER BY qty DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TopItem
	for rows.Next() {
		var item TopItem
		if err := rows.Scan(&item.MenuItemID, &item.Name, &item.Category, &item.Quantity); err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func (r *postgresRepo) Summary(ctx context.Context) (*Summary, error) {
	const q = `
SELECT
    (SELECT COUNT(*) FROM customers),
    (SELECT COALESCE(SUM(quantity), 0) FROM order_lines),
    (SELECT COALESCE(SUM(total_cents), 0) FROM orders)
`
	var s Summary
	if err := r.pool.QueryRow(ctx, q).Scan(&s.TotalCustomers, &s.TotalItems, &s.TotalRevenue); err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *postgresRepo) SalesDaily(ctx context.Context, days int) ([]DailySales, error) {
	const q = `
SELECT to_char(created_at::date, 'YYYY-MM-DD') AS day,
       COALESCE(SUM(total_cents), 0) AS revenue,
       COUNT(*) AS orders
FROM orders
WHERE created_at >= now()::date - ($1 - 1) * INTERVAL '1 day'
GROUP BY day
ORDER BY day ASC
`
	rows, err := r.pool.Query(ctx, q, days)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []DailySales
	for rows.Next() {
		var d DailySales
		if err := rows.Scan(&d.Day, &d.Revenue, &d.Orders); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (r *postgresRepo) TopCustomers(ctx context.Context, limit int) ([]TopCustomer, error) {
	const q = `
SELECT c.id::text, c.code, c.name, COALESCE(SUM(o.total_cents), 0) AS spent, COUNT(o.id) AS orders
FROM customers c
JOIN orders o ON o.customer_id = c.id
GROUP BY c.id
ORDER BY spent DESC
LIMIT $1
`
	rows, err := r.pool.Query(ctx, q, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []TopCustomer
	for rows.Next() {
		var tc TopCustomer
		if err := rows.Scan(&tc.CustomerID, &tc.Code, &tc.Name, &tc.Spent, &tc.Orders); err != nil {
			return nil, err
		}
		out = append(out, tc)
	}
	return out, rows.Err()
}
