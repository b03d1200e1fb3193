package seed

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"golang.org/x/crypto/bcrypt"
)

type menuSeed struct {
	Name       string
	Category   string
	PriceCents int64
}

// Apply inserts demo data for manual testing. It is idempotent via ON CONFLICT.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	if err := ensureCustomer(ctx, pool); err != nil {
		return fmt.Errorf("ensure demo customer: %w", err)
	}

	items := []menuSeed{
		{Name: "Chatpata Bhujia Sandwich", Category: "Chatpata", PriceCents: 3900},
		{Name: "Overloaded Chatpata Bhujia Sandwich", Category: "Chatpata", PriceCents: 4900},
		{Name: "Tandoori Veg Grill Sandwich", Category: "Tandoor", PriceCents: 4900},
		{Name: "Overloaded Tandoori Veg Grill Sandwich", Category: "Tandoor", PriceCents: 5900},
		{Name: "Protein Punch Sandwich", Category: "Healthy", PriceCents: 4900},
		{Name: "Overloaded Protein Punch Sandwich", Category: "Healthy", PriceCents: 6900},
	}
	for _, item := range items {
		if err := upsertMenuItem(ctx, pool, item); err != nil {
			return fmt.Errorf("upsert menu item %s: %w", item.Name, err)
		}
	}

	if err := ensureAdmin(ctx, pool, "admin", "admin@rieat.local", "admin123"); err != nil {
		return fmt.Errorf("ensure admin: %w", err)
	}

	return nil
}

func ensureCustomer(ctx context.Context, pool *pgxpool.Pool) error {
	const q = `
INSERT INTO customers (code, name, phone, address, total_orders, target_orders, rewards_available)
VALUES ($1, $2, $3, $4, $5, $6, $7)
ON CONFLICT (code) DO NOTHING
`
	_, err := pool.Exec(ctx, q, "C004", "Sarah Wilson", "111-222-3333", "123 Test St", 25, 30, 0)
	return err
}

func upsertMenuItem(ctx context.Context, pool *pgxpool.Pool, item menuSeed) error {
	const q = `
INSERT INTO menu_items (name, category, price_cents)
VALUES ($1, $2, $3)
ON CONFLICT (name) DO UPDATE
SET category = EXCLUDED.category,
    price_cents = EXCLUDED.price_cents
`
	_, err := pool.Exec(ctx, q, item.Name, item.Category, item.PriceCents)
	return err
}

// ensureAdmin creates the initial back-office account. The default password
// is for local development only and should be changed on first login.
func ensureAdmin(ctx context.Context, pool *pgxpool.Pool, username, email, password string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	const q = `
INSERT INTO admins (username, email, password_hash)
VALUES ($1, $2, $3)
ON CONFLICT (username) DO NOTHING
`
	_, err = pool.Exec(ctx, q, username, email, string(hash))
	return err
}
