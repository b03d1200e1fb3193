package menu

import (
	"context"
	"io"
	"log"
	"strings"
	"time"

	"github.com/ritu-rajkumar/Ri-Eat/internal/cache"
	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

const publicCacheKey = "menu:public"

// Service manages menu items. The public listing is cached; any write
// invalidates it.
type Service struct {
	repo     menuRepo
	cache    cache.Cache
	cacheTTL time.Duration
	logger   *log.Logger
}

type menuRepo interface {
	Create(ctx context.Context, item domain.MenuItem) (*domain.MenuItem, error)
	GetByID(ctx context.Context, id string) (*domain.MenuItem, error)
	List(ctx context.Context) ([]domain.MenuItem, error)
	Update(ctx context.Context, id string, item domain.MenuItem) (*domain.MenuItem, error)
	Delete(ctx context.Context, id string) error
}

func New(repo menuRepo, c cache.Cache, cacheTTL time.Duration, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{repo: repo, cache: c, cacheTTL: cacheTTL, logger: logger}
}

// Input is the menu item payload. Price is in cents.
type Input struct {
	Name       string `json:"name"`
	Category   string `json:"category"`
	PriceCents int64  `json:"price"`
}

func (in Input) validate() error {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Category) == "" {
		return domain.Invalid("name and category required")
	}
	if in.PriceCents <= 0 {
		return domain.Invalid("price must be positive")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item, err := s.repo.Create(ctx, domain.MenuItem{
		Name:       in.Name,
		Category:   in.Category,
		PriceCents: in.PriceCents,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.MenuItem, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) List(ctx context.Context) ([]domain.MenuItem, error) {
	return s.repo.List(ctx)
}

// ListPublic serves the customer-facing menu, cached for a short TTL.
func (s *Service) ListPublic(ctx context.Context) ([]domain.MenuItem, error) {
	if s.cache != nil {
		var items []domain.MenuItem
		if err := cache.GetJSON(ctx, s.cache, publicCacheKey, &items); err == nil {
			return items, nil
		}
	}

	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		if err := cache.SetJSON(ctx, s.cache, publicCacheKey, items, s.cacheTTL); err != nil {
			s.logger.Printf("menu service: cache set: %v", err)
		}
	}
	return items, nil
}

func (s *Service) Update(ctx context.Context, id string, in Input) (*domain.MenuItem, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}
	item, err := s.repo.Update(ctx, id, domain.MenuItem{
		Name:       in.Name,
		Category:   in.Category,
		PriceCents: in.PriceCents,
	})
	if err != nil {
		return nil, err
	}
	s.invalidate(ctx)
	return item, nil
}

func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx)
	return nil
}

func (s *Service) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Delete(ctx, publicCacheKey); err != nil {
		s.logger.Printf("menu service: cache delete: %v", err)
	}
}
