package feedback

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) Create(ctx context.Context, f domain.Feedback) (*domain.Feedback, error) {
	const q = `
INSERT INTO feedback (name, phone, customer_code, menu_item, feedback_text)
VALUES ($1, $2, $3, $4, $5)
RETURNING id::text, name, phone, customer_code, menu_item, feedback_text, created_at
`
	var out domain.Feedback
	if err := r.pool.QueryRow(ctx, q, f.Name, f.Phone, f.CustomerCode, f.MenuItem, f.Text).Scan(
		&out.ID, &out.Name, &out.Phone, &out.CustomerCode, &out.MenuItem, &out.Text, &out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

func (r *postgresRepo) List(ctx context.Context) ([]domain.Feedback, error) {
	const q = `
SELECT id::text, name, phone, customer_code, menu_item, feedback_text, created_at
FROM feedback
ORDER BY created_at DESC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var f domain.Feedback
		if err := rows.Scan(&f.ID, &f.Name, &f.Phone, &f.CustomerCode, &f.MenuItem, &f.Text, &f.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, f)
	}
	return out, rows.Err()
}
