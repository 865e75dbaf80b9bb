package project

import (
	"context"
	"time"

	"poisepms/internal/domain"
	"poisepms/internal/pkg/sqlset"
)

// ProjectRepository defines the store operations on projects
type ProjectRepository interface {
	Create(ctx context.Context, p *domain.Project) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	List(ctx context.Context) ([]domain.Project, error)
	ListUncompleted(ctx context.Context) ([]domain.Project, error)
	ListOverdue(ctx context.Context, today time.Time) ([]domain.Project, error)
	UpdateFields(ctx context.Context, id int64, set *sqlset.Builder) (int64, error)
	Finalize(ctx context.Context, id int64, completed time.Time) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
}

// PartyNames looks up the stored name of a party
type PartyNames interface {
	Name(ctx context.Context, c domain.Category, id int64) (string, bool, error)
}

// PartyResolver yields a party id for a category, picking or creating one
type PartyResolver interface {
	Resolve(ctx context.Context, c domain.Category) (int64, error)
}
