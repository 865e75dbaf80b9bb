package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"poisepms/internal/config"
	"poisepms/internal/database"
	"poisepms/internal/domain"
	"poisepms/internal/logging"
	"poisepms/internal/modules/party"
	"poisepms/internal/modules/project"
	"poisepms/internal/repository"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("config failed:", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatal("logger failed:", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		log.Fatal("DB connection failed:", err)
	}
	defer func() { _ = database.Close(db) }()

	log.Println("Running migrations...")
	if err := repository.Migrate(db); err != nil {
		log.Fatal("migrate failed:", err)
	}

	log.Println("Cleaning old data...")
	for _, table := range []string{"projects", "engineers", "managers", "architects", "customers"} {
		if err := db.Exec("DELETE FROM " + table).Error; err != nil {
			log.Fatalf("cleanup %s failed: %v", table, err)
		}
	}

	ctx := logging.WithOperation(context.Background(), "seed")
	parties := party.NewService(repository.NewPartyRepository(db), logger)
	projects := project.NewService(repository.NewProjectRepository(db), parties, logger)

	// ================== PARTIES ==================
	log.Println("Creating parties...")
	people := map[domain.Category][]party.CreatePartyRequest{
		domain.CategoryEngineer: {
			{Name: "Thandi Nkosi", Phone: "021 555 0101", Email: "thandi@poise.co.za", Address: "14 Loop St, Cape Town"},
			{Name: "Pieter van Wyk", Phone: "021 555 0102", Email: "pieter@poise.co.za", Address: "3 Kloof Rd, Cape Town"},
		},
		domain.CategoryManager: {
			{Name: "Lerato Mokoena", Phone: "011 555 0201", Email: "lerato@poise.co.za", Address: "88 Jan Smuts Ave, Johannesburg"},
		},
		domain.CategoryArchitect: {
			{Name: "Sipho Dlamini", Phone: "031 555 0301", Email: "sipho@studio-d.co.za", Address: "9 Florida Rd, Durban"},
			{Name: "Anika Botha", Phone: "012 555 0302", Email: "anika@botha-arch.co.za", Address: "21 Church St, Pretoria"},
		},
		domain.CategoryCustomer: {
			{Name: "Jane Doe", Phone: "082 555 0401", Email: "jane@example.com", Address: "1 Long St, Cape Town"},
			{Name: "Ahmed Patel", Phone: "083 555 0402", Email: "ahmed@example.com", Address: "5 Beach Rd, Durban"},
			{Name: "Mary Smith", Phone: "084 555 0403", Email: "mary@example.com", Address: "12 Main Rd, Stellenbosch"},
		},
	}

	ids := make(map[domain.Category][]int64)
	for _, c := range domain.Categories() {
		for _, req := range people[c] {
			id, err := parties.Create(ctx, c, req)
			if err != nil {
				log.Fatalf("create %s %q failed: %v", c.Singular(), req.Name, err)
			}
			ids[c] = append(ids[c], id)
		}
		log.Printf("%s created: %d", c, len(ids[c]))
	}

	// ================== PROJECTS ==================
	log.Println("Creating projects...")
	today := domain.DateOf(time.Now().UTC())
	plans := []struct {
		buildingType string
		customer     int
		fee, paid    float64
		deadline     time.Time
		finalized    bool
	}{
		{"Office", 0, 450000, 150000, today.AddDate(0, 3, 0), false},
		{"House", 1, 1200000, 1200000, today.AddDate(0, -2, 0), true},
		{"Warehouse", 2, 800000, 200000, today.AddDate(0, 0, -10), false},
		{"Apartment", 0, 2300000, 500000, today.AddDate(1, 0, 0), false},
	}

	for i, plan := range plans {
		p, err := projects.Create(ctx, project.CreateProjectRequest{
			BuildingType: plan.buildingType,
			Address:      fmt.Sprintf("%d Site Rd", 10+i),
			ERFNumber:    fmt.Sprintf("ERF %d", 4000+i),
			TotalFee:     plan.fee,
			AmountPaid:   plan.paid,
			Deadline:     plan.deadline,
			Description:  fmt.Sprintf("%s build, phase %d", plan.buildingType, i+1),
			CustomerID:   ids[domain.CategoryCustomer][plan.customer],
			EngineerID:   ids[domain.CategoryEngineer][i%len(ids[domain.CategoryEngineer])],
			ManagerID:    ids[domain.CategoryManager][0],
			ArchitectID:  ids[domain.CategoryArchitect][i%len(ids[domain.CategoryArchitect])],
		})
		if err != nil {
			log.Fatalf("create project %d failed: %v", i+1, err)
		}
		if plan.finalized {
			if err := projects.Finalize(ctx, p.ID, plan.deadline.AddDate(0, 0, -7)); err != nil {
				log.Fatalf("finalize %q failed: %v", p.Name, err)
			}
		}
		log.Printf("Project created: %s (id %d)", p.Name, p.ID)
	}

	log.Println("Seed completed.")
}
