package domain

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the only accepted calendar date format.
const DateLayout = "2006-01-02"

type Project struct {
	ID             int64      `json:"id"`
	Name           string     `json:"name"`
	BuildingType   string     `json:"building_type"`
	Address        string     `json:"address"`
	ERFNumber      string     `json:"erf_number"`
	TotalFee       float64    `json:"total_fee"`
	AmountPaid     float64    `json:"amount_paid"`
	Deadline       time.Time  `json:"deadline"`
	CompletionDate *time.Time `json:"completion_date,omitempty"`
	IsFinalized    bool       `json:"is_finalized"`
	Description    string     `json:"description"`

	EngineerID  int64 `json:"engineer_id"`
	ManagerID   int64 `json:"manager_id"`
	ArchitectID int64 `json:"architect_id"`
	CustomerID  int64 `json:"customer_id"`
}

// IsOverdue reports whether the deadline is strictly before today and the
// project is still open.
func (p *Project) IsOverdue(today time.Time) bool {
	return !p.IsFinalized && p.Deadline.Before(DateOf(today))
}

// Status is the label used in listings.
func (p *Project) Status() string {
	if p.IsFinalized {
		return "Finalized"
	}
	return "Not Finalized"
}

// ParseDate parses a YYYY-MM-DD string into UTC midnight.
func ParseDate(s string) (time.Time, error) {
	d, err := time.ParseInLocation(DateLayout, strings.TrimSpace(s), time.UTC)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrDateParse, s)
	}
	return d, nil
}

// DateOf drops the clock part of t and returns the same calendar day at UTC midnight.
func DateOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// FormatDate renders a calendar date as YYYY-MM-DD.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// DeriveProjectName builds "<buildingType> <surname>" where the surname is the
// second whitespace-separated token of the customer name.
func DeriveProjectName(buildingType, customerName string) (string, error) {
	tokens := strings.Fields(customerName)
	if len(tokens) < 2 {
		return "", fmt.Errorf("%w: customer name %q has no surname", ErrNameDerivation, customerName)
	}
	return buildingType + " " + tokens[1], nil
}
