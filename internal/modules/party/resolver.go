package party

import (
	"context"
	"strings"

	"poisepms/internal/console"
	"poisepms/internal/domain"
)

// newKeyword asks the resolver to create a party instead of picking one.
const newKeyword = "new"

// Resolver lets the user pick an existing party or add one on the spot.
type Resolver struct {
	svc *Service
	con *console.Console
}

func NewResolver(svc *Service, con *console.Console) *Resolver {
	return &Resolver{svc: svc, con: con}
}

// Resolve returns the id of a party in category c. An empty table goes
// straight to creation. A typed id is returned as long as it is a positive
// integer; it is not checked against the listed rows. On failure the id is
// domain.UnresolvedID and the error says why.
func (r *Resolver) Resolve(ctx context.Context, c domain.Category) (int64, error) {
	rows, err := r.svc.Summaries(ctx, c)
	if err != nil {
		return domain.UnresolvedID, err
	}

	r.con.Println(c.String() + " available:")
	if len(rows) == 0 {
		r.con.Println("No entries found.")
		return r.CreateInteractive(ctx, c)
	}
	for _, row := range rows {
		r.con.Printf("%d - %s\n", row.ID, row.Name)
	}

	r.con.Println("Enter the ID of the " + c.Singular() + ", or type 'new' to add a new one:")
	for {
		line, err := r.con.ReadLine()
		if err != nil {
			return domain.UnresolvedID, err
		}
		if strings.EqualFold(strings.TrimSpace(line), newKeyword) {
			return r.CreateInteractive(ctx, c)
		}
		if id, err := console.ParseInt(line); err == nil && id > 0 {
			return id, nil
		}
		r.con.Println("Please enter a valid number or 'new' to add an entry.")
	}
}

// CreateInteractive prompts for the contact fields and stores the party.
func (r *Resolver) CreateInteractive(ctx context.Context, c domain.Category) (int64, error) {
	r.con.Println("Adding new " + c.Singular())

	var req CreatePartyRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"Enter name: ", &req.Name},
		{"Enter phone: ", &req.Phone},
		{"Enter email: ", &req.Email},
		{"Enter address: ", &req.Address},
	}
	for _, f := range fields {
		v, err := r.con.Prompt(f.prompt)
		if err != nil {
			return domain.UnresolvedID, err
		}
		*f.dst = v
	}

	return r.svc.Create(ctx, c, req)
}
