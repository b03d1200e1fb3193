package claim

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
	"github.com/ritu-rajkumar/Ri-Eat/internal/loyalty"
)

const claimColumns = `r.id::text, r.customer_id::text, c.code, r.name, r.phone, r.address, r.experience, r.orders_at_claim, r.status, r.created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Submit(ctx context.Context, in SubmitInput) (*domain.RewardClaim, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var totalOrders, rewards int
	err = tx.QueryRow(ctx, `
SELECT total_orders, rewards_available
FROM customers
WHERE id = $1
FOR UPDATE
`, in.CustomerID).Scan(&totalOrders, &rewards)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	if rewards < 1 {
		return nil, domain.ErrNoRewards
	}

	var claimID string
	err = tx.QueryRow(ctx, `
INSERT INTO reward_claims (customer_id, name, phone, address, experience, orders_at_claim)
VALUES ($1, $2, $3, $4, $5, $6)
RETURNING id::text
`, in.CustomerID, in.Name, in.Phone, in.Address, in.Experience, totalOrders).Scan(&claimID)
	if err != nil {
		return nil, err
	}

	if _, err := tx.Exec(ctx, `
UPDATE customers SET rewards_available = rewards_available - 1 WHERE id = $1
`, in.CustomerID); err != nil {
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, claimID)
}

func (r *postgresRepo) Complete(ctx context.Context, id string, nextTargetOrders int) (*domain.RewardClaim, error) {
	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var status string
	var customerID *string
	err = tx.QueryRow(ctx, `
SELECT status, customer_id::text FROM reward_claims WHERE id = $1 FOR UPDATE
`, id).Scan(&status, &customerID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	if status == domain.ClaimCompleted {
		return r.GetByID(ctx, id)
	}

	if _, err := tx.Exec(ctx, `
UPDATE reward_claims SET status = $2 WHERE id = $1
`, id, domain.ClaimCompleted); err != nil {
		return nil, err
	}

	// Fulfilling the reward restarts the customer's progress from zero;
	// a positive next target replaces the old one.
	if customerID != nil {
		if err := r.resetCycle(ctx, tx, *customerID, nextTargetOrders); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}
	return r.GetByID(ctx, id)
}

func (r *postgresRepo) resetCycle(ctx context.Context, tx pgx.Tx, customerID string, nextTarget int) error {
	var s loyalty.State
	err := tx.QueryRow(ctx, `
SELECT total_orders, target_orders, rewards_available
FROM customers
WHERE id = $1
FOR UPDATE
`, customerID).Scan(&s.TotalOrders, &s.TargetOrders, &s.RewardsAvailable)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		return err
	}

	next := loyalty.ResetCycle(s, nextTarget)
	_, err = tx.Exec(ctx, `
UPDATE customers
SET total_orders = $2, target_orders = $3
WHERE id = $1
`, customerID, next.TotalOrders, next.TargetOrders)
	return err
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.RewardClaim, error) {
	const q = `
SELECT ` + claimColumns + `
FROM reward_claims r
LEFT JOIN customers c ON c.id = r.customer_id
WHERE r.id = $1
`
	cl, err := scanClaim(r.pool.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return cl, nil
}

func (r *postgresRepo) List(ctx context.Context, in ListInput) ([]domain.RewardClaim, error) {
	q := `
SELECT ` + claimColumns + `
FROM reward_claims r
LEFT JOIN customers c ON c.id = r.customer_id
`
	var args []interface{}
	var where []string
	if in.Status != "" {
		args = append(args, in.Status)
		where = append(where, `r.status = $1`)
	}
	if in.CustomerID != "" {
		args = append(args, in.CustomerID)
		if len(args) == 2 {
			where = append(where, `r.customer_id = $2`)
		} else {
			where = append(where, `r.customer_id = $1`)
		}
	}
	for i, w := range where {
		if i == 0 {
			q += `WHERE ` + w
		} else {
			q += ` AND ` + w
		}
	}
	q += `
ORDER BY r.created_at DESC`

	rows, err := r.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.RewardClaim
	for rows.Next() {
		cl, err := scanClaim(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, *cl)
	}
	return out, rows.Err()
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanClaim(row rowScanner) (*domain.RewardClaim, error) {
	var cl domain.RewardClaim
	var customerID, code *string
	if err := row.Scan(
		&cl.ID, &customerID, &code, &cl.Name, &cl.Phone, &cl.Address,
		&cl.Experience, &cl.OrdersAtClaim, &cl.Status, &cl.CreatedAt,
	); err != nil {
		return nil, err
	}
	if customerID != nil {
		cl.CustomerID = *customerID
	}
	if code != nil {
		cl.CustomerCode = *code
	}
	return &cl, nil
}
