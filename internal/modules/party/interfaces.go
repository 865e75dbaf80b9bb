package party

import (
	"context"

	"poisepms/internal/domain"
)

// PartyRepository defines the store operations over the four party tables
type PartyRepository interface {
	ListSummaries(ctx context.Context, c domain.Category) ([]domain.PartySummary, error)
	List(ctx context.Context, c domain.Category) ([]domain.Party, error)
	Create(ctx context.Context, c domain.Category, p *domain.Party) error
	GetName(ctx context.Context, c domain.Category, id int64) (string, bool, error)
}
