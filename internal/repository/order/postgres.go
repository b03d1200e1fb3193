package order

import (
	"context"
	"errors"
	"io"
	"log"
	"sort"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	"github.com/ritu-rajkumar/Ri-Eat/internal/loyalty"
)

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger *log.Logger
}

// NewPostgres returns a Repository backed by Postgres. Every mutation runs
// the order write and the owning customer's ledger transition in one
// transaction; the customer row is locked for the duration.
func NewPostgres(pool *pgxpool.Pool, logger *log.Logger) Repository {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &postgresRepo{pool: pool, logger: logger}
}

func (r *postgresRepo) Create(ctx context.Context, in CreateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var orderID string
	err = tx.QueryRow(ctx, `
INSERT INTO orders (customer_id, total_cents)
VALUES ($1, $2)
RETURNING id::text
`, in.CustomerID, in.TotalCents).Scan(&orderID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if err := insertLines(ctx, tx, orderID, in.Lines); err != nil {
		return nil, err
	}

	deltaQty := quantitySum(in.Lines)
	if err := r.applyLedger(ctx, tx, in.CustomerID, deltaQty); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, orderID)
}

func (r *postgresRepo) Update(ctx context.Context, id string, in UpdateInput) (*domain.Order, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var oldCustomerID *string
	err = tx.QueryRow(ctx, `SELECT customer_id::text FROM orders WHERE id = $1 FOR UPDATE`, id).Scan(&oldCustomerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var oldQty int
	if err := tx.QueryRow(ctx, `
SELECT COALESCE(SUM(quantity), 0) FROM order_lines WHERE order_id = $1
`, id).Scan(&oldQty); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM order_lines WHERE order_id = $1`, id); err != nil {
		return nil, err
	}
	if err := insertLines(ctx, tx, id, in.Lines); err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
UPDATE orders SET customer_id = $2, total_cents = $3 WHERE id = $1
`, id, in.CustomerID, in.TotalCents); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23503" {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	newQty := quantitySum(in.Lines)
	if err := r.applyOwnershipChange(ctx, tx, oldCustomerID, in.CustomerID, oldQty, newQty); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	var customerID *string
	var qty int
	err = tx.QueryRow(ctx, `
SELECT o.customer_id::text, COALESCE(SUM(l.quantity), 0)
FROM orders o
LEFT JOIN order_lines l ON l.order_id = o.id
WHERE o.id = $1
GROUP BY o.id
`, id).Scan(&customerID, &qty)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		return err
	}

	if _, err := tx.Exec(ctx, `DELETE FROM orders WHERE id = $1`, id); err != nil {
		return err
	}

	if customerID != nil {
		if err := r.applyLedger(ctx, tx, *customerID, -qty); err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

// applyOwnershipChange runs the ledger transitions for an order edit. When the
// owner changed, both customers move in this same transaction; rows are locked
// in id order so two concurrent reassignments cannot deadlock.
func (r *postgresRepo) applyOwnershipChange(ctx context.Context, tx pgx.Tx, oldID *string, newID string, oldQty, newQty int) error {
	if oldID != nil && *oldID == newID {
		if diff := newQty - oldQty; diff != 0 {
			return r.applyLedger(ctx, tx, newID, diff)
		}
		return nil
	}

	deltas := map[string]int{newID: newQty}
	if oldID != nil {
		deltas[*oldID] = -oldQty
	}
	ids := make([]string, 0, len(deltas))
	for id := range deltas {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	for _, id := range ids {
		if err := r.applyLedger(ctx, tx, id, deltas[id]); err != nil {
			return err
		}
	}
	return nil
}

// applyLedger locks the customer row and moves its loyalty counters through
// the ledger. A missing customer is logged and skipped: orders may outlive
// their owner and the order mutation stands on its own.
func (r *postgresRepo) applyLedger(ctx context.Context, tx pgx.Tx, customerID string, deltaQty int) error {
	var s loyalty.State
	err := tx.QueryRow(ctx, `
SELECT total_orders, target_orders, rewards_available
FROM customers
WHERE id = $1
FOR UPDATE
`, customerID).Scan(&s.TotalOrders, &s.TargetOrders, &s.RewardsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Printf("order repo: customer %s missing, ledger update skipped", customerID)
			return nil
		}
		return err
	}

	next := loyalty.ApplyDelta(s, deltaQty)
	_, err = tx.Exec(ctx, `
UPDATE customers
SET total_orders = $2, target_orders = $3, rewards_available = $4
WHERE id = $1
`, customerID, next.TotalOrders, next.TargetOrders, next.RewardsAvailable)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Order, error) {
	const q = `
SELECT o.id::text, o.customer_id::text, c.code, c.name, o.total_cents, o.created_at
FROM orders o
LEFT JOIN customers c ON c.id = o.customer_id
WHERE o.id = $1
`
	ord, err := scanOrder(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		return nil, err
	}

	lines, err := r.fetchLines(ctx, []string{ord.ID})
	if err != nil {
		return nil, err
	}
	ord.Lines = lines[ord.ID]
	return ord, nil
}

func (r *postgresRepo) List(ctx context.Context, customerID string) ([]domain.Order, error) {
	q := `
SELECT o.id::text, o.customer_id::text, c.code, c.name, o.total_cents, o.created_at
FROM orders o
LEFT JOIN customers c ON c.id = o.customer_id
`
	args := []interface{}{}
	if customerID != "" {
		q += `WHERE o.customer_id = $1
`
		args = append(args, customerID)
	}
	q += `ORDER BY o.created_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orders []domain.Order
	var ids []string
	for rows.Next() {
		ord, err := scanOrderRow(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *ord)
		ids = append(ids, ord.ID)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	if len(orders) == 0 {
		return orders, nil
	}

	lines, err := r.fetchLines(ctx, ids)
	if err != nil {
		return nil, err
	}
	for i := range orders {
		orders[i].Lines = lines[orders[i].ID]
	}
	return orders, nil
}

func (r *postgresRepo) fetchLines(ctx context.Context, orderIDs []string) (map[string][]domain.OrderLine, error) {
	const q = `
SELECT l.order_id::text, l.menu_item_id::text, m.name, m.price_cents, l.quantity
FROM order_lines l
JOIN menu_items m ON m.id = l.menu_item_id
WHERE l.order_id = ANY($1)
ORDER BY l.created_at ASC
`
	rows, err := r.pool.Query(ctx, q, orderIDs)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make(map[string][]domain.OrderLine)
	for rows.Next() {
		var orderID string
		var line domain.OrderLine
		if err := rows.Scan(&orderID, &line.MenuItemID, &line.MenuItemName, &line.UnitPriceCents, &line.Quantity); err != nil {
			return nil, err
		}
		out[orderID] = append(out[orderID], line)
	}
	return out, rows.Err()
}

func insertLines(ctx context.Context, tx pgx.Tx, orderID string, lines []domain.OrderLine) error {
	for _, l := range lines {
		if _, err := tx.Exec(ctx, `
INSERT INTO order_lines (order_id, menu_item_id, quantity)
VALUES ($1, $2, $3)
`, orderID, l.MenuItemID, l.Quantity); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == "23503" {
				return domain.ErrNotFound
			}
			return err
		}
	}
	return nil
}

func quantitySum(lines []domain.OrderLine) int {
	total := 0
	for _, l := range lines {
		total += l.Quantity
	}
	return total
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row pgx.Row) (*domain.Order, error) {
	ord, err := scanOrderRow(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return ord, nil
}

func scanOrderRow(row rowScanner) (*domain.Order, error) {
	var ord domain.Order
	var customerID, code, name *string
	if err := row.Scan(&ord.ID, &customerID, &code, &name, &ord.TotalCents, &ord.CreatedAt); err != nil {
		return nil, err
	}
	if customerID != nil {
		ord.CustomerID = *customerID
	}
	if code != nil {
		ord.CustomerCode = *code
	}
	if name != nil {
		ord.CustomerName = *name
	}
	return &ord, nil
}
