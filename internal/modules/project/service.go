package project

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"poisepms/internal/console"
	"poisepms/internal/domain"
	"poisepms/internal/logging"
	"poisepms/internal/pkg/sqlset"
)

type Service struct {
	projects ProjectRepository
	names    PartyNames
	log      *zap.Logger
	now      func() time.Time
}

func NewService(projects ProjectRepository, names PartyNames, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{
		projects: projects,
		names:    names,
		log:      log,
		now:      time.Now,
	}
}

// DeriveName builds the default project name from the building type and the
// customer's surname.
func (s *Service) DeriveName(ctx context.Context, buildingType string, customerID int64) (string, error) {
	name, ok, err := s.names.Name(ctx, domain.CategoryCustomer, customerID)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrNameDerivation, err)
	}
	if !ok {
		return "", fmt.Errorf("%w: customer %d not found", domain.ErrNameDerivation, customerID)
	}
	return domain.DeriveProjectName(buildingType, name)
}

// Create inserts a new open project. A blank name is derived from the
// customer. Party ids are not checked for existence.
func (s *Service) Create(ctx context.Context, req CreateProjectRequest) (*domain.Project, error) {
	log := logging.For(ctx, s.log)

	for _, id := range []int64{req.CustomerID, req.EngineerID, req.ManagerID, req.ArchitectID} {
		if id <= 0 {
			return nil, fmt.Errorf("%w: id %d", domain.ErrUnresolvedParty, id)
		}
	}

	name := req.Name
	if strings.TrimSpace(name) == "" {
		derived, err := s.DeriveName(ctx, req.BuildingType, req.CustomerID)
		if err != nil {
			return nil, err
		}
		name = derived
	}

	p := &domain.Project{
		Name:         name,
		BuildingType: req.BuildingType,
		Address:      req.Address,
		ERFNumber:    req.ERFNumber,
		TotalFee:     req.TotalFee,
		AmountPaid:   req.AmountPaid,
		Deadline:     domain.DateOf(req.Deadline),
		Description:  req.Description,
		EngineerID:   req.EngineerID,
		ManagerID:    req.ManagerID,
		ArchitectID:  req.ArchitectID,
		CustomerID:   req.CustomerID,
	}

	affected, err := s.projects.Create(ctx, p)
	if err != nil {
		log.Error("create project failed", zap.Error(err))
		return nil, err
	}
	if affected == 0 {
		return nil, fmt.Errorf("%w: project %q, no rows affected", domain.ErrCreation, name)
	}

	log.Info("project created", zap.Int64("project_id", p.ID), zap.String("project_name", p.Name))
	return p, nil
}

func (s *Service) UpdateDeadline(ctx context.Context, id int64, deadline time.Time) error {
	return s.apply(ctx, id, sqlset.New().Set("deadline", domain.DateOf(deadline)))
}

// AssignParty points the project at another party of category c.
func (s *Service) AssignParty(ctx context.Context, id int64, c domain.Category, partyID int64) error {
	if !c.Valid() {
		return fmt.Errorf("%w: %q", domain.ErrUnknownCategory, c)
	}
	if partyID <= 0 {
		return fmt.Errorf("%w: %s id %d", domain.ErrUnresolvedParty, c.Singular(), partyID)
	}
	return s.apply(ctx, id, sqlset.New().Set(c.IDColumn(), partyID))
}

// UpdateDetails changes whichever descriptive fields were answered.
func (s *Service) UpdateDetails(ctx context.Context, id int64, req DetailsRequest) error {
	set, err := BuildDetailsUpdate(req)
	if err != nil {
		return err
	}
	return s.apply(ctx, id, set)
}

// BuildDetailsUpdate turns the raw answers into ordered assignments. A fee
// that does not parse aborts the whole update.
func BuildDetailsUpdate(req DetailsRequest) (*sqlset.Builder, error) {
	set := sqlset.New().
		SetIfNotEmpty("project_name", req.Name).
		SetIfNotEmpty("building_type", req.BuildingType).
		SetIfNotEmpty("project_address", req.Address).
		SetIfNotEmpty("erf_number", req.ERFNumber)

	numeric := []struct {
		column, label, raw string
	}{
		{"total_fee", "total fee", req.TotalFee},
		{"amount_paid", "amount paid", req.AmountPaid},
	}
	for _, f := range numeric {
		if f.raw == "" {
			continue
		}
		v, err := console.ParseFloat(f.raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s %q", domain.ErrNumberFormat, f.label, f.raw)
		}
		set.Set(f.column, v)
	}

	return set.SetIfNotEmpty("description", req.Description), nil
}

func (s *Service) apply(ctx context.Context, id int64, set *sqlset.Builder) error {
	if set.Len() == 0 {
		return domain.ErrNoUpdateFields
	}
	log := logging.For(ctx, s.log).With(zap.Int64("project_id", id))

	affected, err := s.projects.UpdateFields(ctx, id, set)
	if err != nil {
		if errors.Is(err, sqlset.ErrEmpty) {
			return domain.ErrNoUpdateFields
		}
		log.Error("update project failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrProjectNotFound, id)
	}

	log.Info("project updated", zap.Strings("columns", set.Columns()))
	return nil
}

// Finalize marks the project complete on the given date. Finalizing again
// overwrites the date.
func (s *Service) Finalize(ctx context.Context, id int64, completed time.Time) error {
	log := logging.For(ctx, s.log).With(zap.Int64("project_id", id))

	affected, err := s.projects.Finalize(ctx, id, completed)
	if err != nil {
		log.Error("finalize project failed", zap.Error(err))
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: id %d", domain.ErrProjectNotFound, id)
	}

	log.Info("project finalized", zap.String("completion_date", domain.FormatDate(completed)))
	return nil
}

// Delete removes the project and reports whether a row was deleted.
func (s *Service) Delete(ctx context.Context, id int64) (bool, error) {
	log := logging.For(ctx, s.log).With(zap.Int64("project_id", id))

	affected, err := s.projects.Delete(ctx, id)
	if err != nil {
		log.Error("delete project failed", zap.Error(err))
		return false, err
	}
	if affected == 0 {
		return false, nil
	}

	log.Info("project deleted")
	return true, nil
}

func (s *Service) Uncompleted(ctx context.Context) ([]domain.Project, error) {
	return s.projects.ListUncompleted(ctx)
}

// Today is the current UTC calendar date.
func (s *Service) Today() time.Time {
	return domain.DateOf(s.now().UTC())
}

// Overdue lists open projects whose deadline is before today.
func (s *Service) Overdue(ctx context.Context) ([]domain.Project, error) {
	return s.projects.ListOverdue(ctx, s.Today())
}

func (s *Service) All(ctx context.Context) ([]domain.Project, error) {
	return s.projects.List(ctx)
}

// Find treats an integer query as a project id and anything else as an
// exact name.
func (s *Service) Find(ctx context.Context, query string) (*domain.Project, error) {
	if id, err := console.ParseInt(query); err == nil {
		return s.projects.GetByID(ctx, id)
	}
	return s.projects.GetByName(ctx, query)
}
