package domain

import "errors"

var (
	ErrDateParse       = errors.New("invalid date, expected YYYY-MM-DD")
	ErrStore           = errors.New("store error")
	ErrCreation        = errors.New("creation failed")
	ErrNameDerivation  = errors.New("cannot derive project name")
	ErrNumberFormat    = errors.New("invalid number")
	ErrNoUpdateFields  = errors.New("no fields to update")
	ErrProjectNotFound = errors.New("project not found")
	ErrUnknownCategory = errors.New("unknown party category")
	ErrUnresolvedParty = errors.New("party could not be resolved")
)
