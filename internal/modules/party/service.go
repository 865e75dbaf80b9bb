package party

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"poisepms/internal/domain"
	"poisepms/internal/logging"
)

type Service struct {
	parties PartyRepository
	log     *zap.Logger
}

func NewService(parties PartyRepository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{parties: parties, log: log}
}

// Summaries returns id and name of every party in the category.
func (s *Service) Summaries(ctx context.Context, c domain.Category) ([]domain.PartySummary, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	rows, err := s.parties.ListSummaries(ctx, c)
	if err != nil {
		logging.For(ctx, s.log).Error("list parties failed", zap.String("category", c.String()), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// All returns the full records of the category.
func (s *Service) All(ctx context.Context, c domain.Category) ([]domain.Party, error) {
	if !c.Valid() {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	rows, err := s.parties.List(ctx, c)
	if err != nil {
		logging.For(ctx, s.log).Error("list parties failed", zap.String("category", c.String()), zap.Error(err))
		return nil, err
	}
	return rows, nil
}

// Create stores a new party and returns its generated id. On any failure
// the id is domain.UnresolvedID.
func (s *Service) Create(ctx context.Context, c domain.Category, req CreatePartyRequest) (int64, error) {
	log := logging.For(ctx, s.log).With(zap.String("category", c.String()))

	p := &domain.Party{
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
	}
	if err := s.parties.Create(ctx, c, p); err != nil {
		log.Error("create party failed", zap.Error(err))
		return domain.UnresolvedID, err
	}
	if p.ID <= 0 {
		log.Error("create party returned no id")
		return domain.UnresolvedID, fmt.Errorf("%w: creating %s failed, no ID obtained", domain.ErrCreation, c.Singular())
	}

	log.Info("party created", zap.Int64("party_id", p.ID))
	return p.ID, nil
}

// Name looks up the stored name of a party.
func (s *Service) Name(ctx context.Context, c domain.Category, id int64) (string, bool, error) {
	return s.parties.GetName(ctx, c, id)
}
