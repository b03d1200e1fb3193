package admin

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

const adminColumns = `id::text, username, email, password_hash, reset_token_hash, reset_token_expiry, created_at`

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) GetByUsername(ctx context.Context, username string) (*domain.Admin, error) {
	const q = `SELECT ` + adminColumns + ` FROM admins WHERE username = $1 LIMIT 1`
	return scanAdmin(r.pool.QueryRow(ctx, q, username))
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Admin, error) {
	const q = `SELECT ` + adminColumns + ` FROM admins WHERE id = $1 LIMIT 1`
	return scanAdmin(r.pool.QueryRow(ctx, q, id))
}

func (r *postgresRepo) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	cmd, err := r.pool.Exec(ctx, `UPDATE admins SET password_hash = $2 WHERE id = $1`, id, passwordHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) SetResetToken(ctx context.Context, id, tokenHash string, expiresAt time.Time) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE admins SET reset_token_hash = $2, reset_token_expiry = $3 WHERE id = $1
`, id, tokenHash, expiresAt)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *postgresRepo) GetByResetToken(ctx context.Context, tokenHash string) (*domain.Admin, error) {
	const q = `
SELECT ` + adminColumns + `
FROM admins
WHERE reset_token_hash = $1 AND reset_token_hash <> '' AND reset_token_expiry > now()
LIMIT 1
`
	return scanAdmin(r.pool.QueryRow(ctx, q, tokenHash))
}

func (r *postgresRepo) ResetPassword(ctx context.Context, id, passwordHash string) error {
	cmd, err := r.pool.Exec(ctx, `
UPDATE admins
SET password_hash = $2, reset_token_hash = '', reset_token_expiry = NULL
WHERE id = $1
`, id, passwordHash)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanAdmin(row pgx.Row) (*domain.Admin, error) {
	var a domain.Admin
	err := row.Scan(
		&a.ID, &a.Username, &a.Email, &a.PasswordHash,
		&a.ResetTokenHash, &a.ResetTokenExpiry, &a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return &a, nil
}
