package project

import (
	"time"

	"poisepms/internal/domain"
)

type CreateProjectRequest struct {
	Name         string
	BuildingType string
	Address      string
	ERFNumber    string
	TotalFee     float64
	AmountPaid   float64
	Deadline     time.Time
	Description  string

	EngineerID  int64
	ManagerID   int64
	ArchitectID int64
	CustomerID  int64
}

// DetailsRequest holds raw answers for the "other details" update. Empty
// strings leave the column untouched; fees are parsed only when present.
type DetailsRequest struct {
	Name         string
	BuildingType string
	Address      string
	ERFNumber    string
	TotalFee     string
	AmountPaid   string
	Description  string
}

// UpdateChoice is the attribute group picked in the update menu.
type UpdateChoice int64

const (
	UpdateDeadline UpdateChoice = iota + 1
	UpdateEngineer
	UpdateManager
	UpdateCustomer
	UpdateArchitect
	UpdateDetails
)

// Category returns the party category a choice reassigns, if any.
func (c UpdateChoice) Category() (domain.Category, bool) {
	switch c {
	case UpdateEngineer:
		return domain.CategoryEngineer, true
	case UpdateManager:
		return domain.CategoryManager, true
	case UpdateCustomer:
		return domain.CategoryCustomer, true
	case UpdateArchitect:
		return domain.CategoryArchitect, true
	}
	return "", false
}
