package feedback

import (
	"context"
	"strings"

	"github.com/ritu-rajkumar/Ri-Eat/internal/domain"
)

// Service records customer feedback. Feedback never touches loyalty counters.
type Service struct {
	repo feedbackRepo
}

type feedbackRepo interface {
	Create(ctx context.Context, f domain.Feedback) (*domain.Feedback, error)
	List(ctx context.Context) ([]domain.Feedback, error)
}

func New(repo feedbackRepo) *Service {
	return &Service{repo: repo}
}

// Input is the public feedback payload. MenuItem is a free-text item name;
// "General" means the restaurant overall.
type Input struct {
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	CustomerCode string `json:"customerId"`
	MenuItem     string `json:"menuItem"`
	Text         string `json:"feedbackText"`
}

func (s *Service) Create(ctx context.Context, in Input) (*domain.Feedback, error) {
	if strings.TrimSpace(in.Name) == "" || strings.TrimSpace(in.Phone) == "" || strings.TrimSpace(in.Text) == "" {
		return nil, domain.Invalid("name, phone and feedback text required")
	}
	item := strings.TrimSpace(in.MenuItem)
	if item == "" {
		item = "General"
	}
	return s.repo.Create(ctx, domain.Feedback{
		Name:         in.Name,
		Phone:        in.Phone,
		CustomerCode: strings.TrimSpace(in.CustomerCode),
		MenuItem:     item,
		Text:         in.Text,
	})
}

func (s *Service) List(ctx context.Context) ([]domain.Feedback, error) {
	return s.repo.List(ctx)
}
