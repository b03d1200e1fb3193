package menu

import (
	"context"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

type Repository interface {
	Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	// GetByIDs returns the items for the given ids keyed by id. Unknown ids
	// are simply absent from the map; the caller decides whether that is an
	// error.
	GetByIDs(ctx context.Context, ids []string) (map[string]domain.MenuItem, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
	Update(ctx context.Context, id string, item domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}
