package project

import (
	"context"
	"errors"
	"strings"
	"time"

	"poisepms/internal/console"
	"poisepms/internal/domain"
)

type Handler struct {
	svc      *Service
	resolver PartyResolver
	con      *console.Console
}

func NewHandler(svc *Service, resolver PartyResolver, con *console.Console) *Handler {
	return &Handler{svc: svc, resolver: resolver, con: con}
}

// Create walks through the new-project questionnaire. Parties created along
// the way stay stored even if a later step fails.
func (h *Handler) Create(ctx context.Context) error {
	h.con.Println("Enter project details. Leave the project name blank to automatically name it based on the building type and customer's surname.")

	var req CreateProjectRequest
	var err error

	if req.CustomerID, err = h.resolver.Resolve(ctx, domain.CategoryCustomer); err != nil {
		return err
	}
	if req.BuildingType, err = h.con.Prompt("Building Type: "); err != nil {
		return err
	}
	if req.Name, err = h.con.Prompt("Project Name (optional, leave blank to auto-generate): "); err != nil {
		return err
	}
	if strings.TrimSpace(req.Name) == "" {
		if req.Name, err = h.svc.DeriveName(ctx, req.BuildingType, req.CustomerID); err != nil {
			return err
		}
	}
	if req.Address, err = h.con.Prompt("Address: "); err != nil {
		return err
	}
	if req.ERFNumber, err = h.con.Prompt("ERF Number: "); err != nil {
		return err
	}
	if req.TotalFee, err = h.con.PromptFloat("Total Fee: "); err != nil {
		return err
	}
	if req.AmountPaid, err = h.con.PromptFloat("Amount Paid: "); err != nil {
		return err
	}
	if req.Deadline, err = h.con.PromptDate("Deadline (YYYY-MM-DD): "); err != nil {
		return err
	}
	if req.EngineerID, err = h.resolver.Resolve(ctx, domain.CategoryEngineer); err != nil {
		return err
	}
	if req.ManagerID, err = h.resolver.Resolve(ctx, domain.CategoryManager); err != nil {
		return err
	}
	if req.ArchitectID, err = h.resolver.Resolve(ctx, domain.CategoryArchitect); err != nil {
		return err
	}
	if req.Description, err = h.con.Prompt("Description: "); err != nil {
		return err
	}

	p, err := h.svc.Create(ctx, req)
	if err != nil {
		if errors.Is(err, domain.ErrCreation) {
			h.con.Println("Failed to add project.")
			return nil
		}
		return err
	}
	h.con.Println("Project added successfully with name: " + p.Name)
	return nil
}

// Update changes one attribute group of a project.
func (h *Handler) Update(ctx context.Context) error {
	id, err := h.con.PromptInt("Enter the Project ID to update: ")
	if err != nil {
		return err
	}

	h.con.Println("Select the attribute to update:")
	h.con.Println("1 - Deadline")
	h.con.Println("2 - Engineer")
	h.con.Println("3 - Manager")
	h.con.Println("4 - Customer")
	h.con.Println("5 - Architect")
	h.con.Println("6 - Other Project Details")
	n, err := h.con.PromptInt("")
	if err != nil {
		return err
	}

	choice := UpdateChoice(n)
	switch {
	case choice == UpdateDeadline:
		d, perr := h.con.PromptDate("New deadline (YYYY-MM-DD): ")
		if perr != nil {
			return perr
		}
		err = h.svc.UpdateDeadline(ctx, id, d)
	case choice == UpdateDetails:
		req, perr := h.promptDetails()
		if perr != nil {
			return perr
		}
		err = h.svc.UpdateDetails(ctx, id, req)
	default:
		c, ok := choice.Category()
		if !ok {
			h.con.Println("Invalid choice.")
			return nil
		}
		partyID, rerr := h.resolver.Resolve(ctx, c)
		if rerr != nil {
			return rerr
		}
		err = h.svc.AssignParty(ctx, id, c, partyID)
	}

	switch {
	case err == nil:
		h.con.Println("Project updated successfully!")
	case errors.Is(err, domain.ErrProjectNotFound):
		h.con.Println("Failed to update project. Ensure the project ID is correct.")
	case errors.Is(err, domain.ErrNoUpdateFields):
		h.con.Println("No fields to update.")
	default:
		return err
	}
	return nil
}

func (h *Handler) promptDetails() (DetailsRequest, error) {
	h.con.Println("Update other project details:")

	var req DetailsRequest
	fields := []struct {
		prompt string
		dst    *string
	}{
		{"New Project Name (press Enter to skip): ", &req.Name},
		{"New Building Type (press Enter to skip): ", &req.BuildingType},
		{"New Address (press Enter to skip): ", &req.Address},
		{"New ERF Number (press Enter to skip): ", &req.ERFNumber},
		{"New Total Fee (press Enter to skip): ", &req.TotalFee},
		{"New Amount Paid (press Enter to skip): ", &req.AmountPaid},
		{"New Description (press Enter to skip): ", &req.Description},
	}
	for _, f := range fields {
		v, err := h.con.Prompt(f.prompt)
		if err != nil {
			return DetailsRequest{}, err
		}
		*f.dst = v
	}
	return req, nil
}

func (h *Handler) Finalize(ctx context.Context) error {
	id, err := h.con.PromptInt("Enter the Project ID to finalize: ")
	if err != nil {
		return err
	}
	completed, err := h.con.PromptDate("Completion date (YYYY-MM-DD): ")
	if err != nil {
		return err
	}

	if err := h.svc.Finalize(ctx, id, completed); err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			h.con.Println("Failed to finalize project.")
			return nil
		}
		return err
	}
	h.con.Println("Project finalized successfully!")
	return nil
}

func (h *Handler) Delete(ctx context.Context) error {
	id, err := h.con.PromptInt("Enter the Project ID to delete: ")
	if err != nil {
		return err
	}

	deleted, err := h.svc.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		h.con.Println("Failed to delete project.")
		return nil
	}
	h.con.Println("Project deleted successfully!")
	return nil
}

func (h *Handler) ListUncompleted(ctx context.Context) error {
	projects, err := h.svc.Uncompleted(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		h.con.Println("No uncompleted projects found.")
		return nil
	}
	h.printDeadlines(projects)
	return nil
}

func (h *Handler) ListOverdue(ctx context.Context) error {
	projects, err := h.svc.Overdue(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		h.con.Println("No overdue projects found.")
		return nil
	}
	h.printDeadlines(projects)
	return nil
}

func (h *Handler) printDeadlines(projects []domain.Project) {
	for _, p := range projects {
		h.con.Printf("Project ID: %d, Name: %s, Deadline: %s\n", p.ID, p.Name, domain.FormatDate(p.Deadline))
	}
}

// Find looks a project up by id or exact name and prints its details.
func (h *Handler) Find(ctx context.Context) error {
	query, err := h.con.Prompt("Enter Project ID or Name: ")
	if err != nil {
		return err
	}

	p, err := h.svc.Find(ctx, query)
	if err != nil {
		if errors.Is(err, domain.ErrProjectNotFound) {
			if id, perr := console.ParseInt(query); perr == nil {
				h.con.Printf("No project found with ID: %d\n", id)
			} else {
				h.con.Println("No project found with name: " + query)
			}
			return nil
		}
		return err
	}
	PrintDetails(h.con, p, h.svc.Today())
	return nil
}

func (h *Handler) ShowAll(ctx context.Context) error {
	projects, err := h.svc.All(ctx)
	if err != nil {
		return err
	}
	if len(projects) == 0 {
		h.con.Println("No projects found.")
		return nil
	}
	for _, p := range projects {
		h.con.Printf("Project ID: %d, Name: %s, Status: %s, Deadline: %s\n",
			p.ID, p.Name, p.Status(), domain.FormatDate(p.Deadline))
	}
	return nil
}

// PrintDetails writes the full project record. Overdue is judged against today.
func PrintDetails(con *console.Console, p *domain.Project, today time.Time) {
	con.Println("\nProject Details:")
	con.Printf("Project ID: %d\n", p.ID)
	con.Println("Name: " + p.Name)
	con.Println("Building Type: " + p.BuildingType)
	con.Println("Address: " + p.Address)
	con.Println("ERF Number: " + p.ERFNumber)
	con.Printf("Total Fee: %.2f\n", p.TotalFee)
	con.Printf("Amount Paid: %.2f\n", p.AmountPaid)
	con.Println("Deadline: " + domain.FormatDate(p.Deadline))
	con.Printf("Engineer ID: %d\n", p.EngineerID)
	con.Printf("Manager ID: %d\n", p.ManagerID)
	con.Printf("Architect ID: %d\n", p.ArchitectID)
	con.Printf("Customer ID: %d\n", p.CustomerID)
	con.Println("Status: " + p.Status())
	if p.IsOverdue(today) {
		con.Println("Overdue: Yes")
	} else {
		con.Println("Overdue: No")
	}
	con.Println("Description: " + p.Description)
	if p.CompletionDate != nil {
		con.Println("Completion Date: " + domain.FormatDate(*p.CompletionDate))
	}
}
