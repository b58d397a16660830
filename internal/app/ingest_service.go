package app

import (
	"context"

	"github.com/Cloudtechsre/SaaS-platform/internal/clock"
	"github.com/Cloudtechsre/SaaS-platform/internal/domain"
	"github.com/google/uuid"
)

// OrderRepository is the minimal persistence contract the service needs.
type OrderRepository interface {
	CreateOrder(ctx context.Context, order domain.Order) error
}

type IngestService struct {
	repo  OrderRepository
	clock clock.Clock
}

func NewIngestService(repo OrderRepository, clk clock.Clock) *IngestService {
	return &IngestService{
		repo:  repo,
		clock: clk,
	}
}

type IngestInput struct {
	TenantID string
	Amount   float64
	Status   string
}

// IngestOrder assigns a fresh id, stamps the order and persists it with a
// single write. Repository failures are returned unchanged; there are no
// retries.
func (s *IngestService) IngestOrder(ctx context.Context, in IngestInput) (domain.Order, error) {
	order := domain.Order{
		ID:        uuid.NewString(),
		TenantID:  in.TenantID,
		Amount:    in.Amount,
		Status:    in.Status,
		CreatedAt: s.clock.Now(),
	}

	if err := s.repo.CreateOrder(ctx, order); err != nil {
		return domain.Order{}, err
	}
	return order, nil
}
