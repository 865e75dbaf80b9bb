package party

import (
	"context"

	"poisepms/internal/console"
	"poisepms/internal/domain"
)

type Handler struct {
	svc *Service
	con *console.Console
}

func NewHandler(svc *Service, con *console.Console) *Handler {
	return &Handler{svc: svc, con: con}
}

// ShowAll prints every record of the category with its contact details.
func (h *Handler) ShowAll(ctx context.Context, c domain.Category) error {
	rows, err := h.svc.All(ctx, c)
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		h.con.Println("No " + c.Table() + " found.")
		return nil
	}

	h.con.Println(c.String() + ":")
	for _, p := range rows {
		h.con.Printf("ID: %d, Name: %s, Phone: %s, Email: %s, Address: %s\n",
			p.ID, p.Name, p.Phone, p.Email, p.Address)
	}
	return nil
}
