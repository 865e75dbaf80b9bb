package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"go.uber.org/zap"

	"poisepms/internal/config"
	"poisepms/internal/database"
	"poisepms/internal/domain"
	"poisepms/internal/logging"
	"poisepms/internal/repository"
)

// overdue_report prints open projects past their deadline and exits. It is
// meant to be run from cron; a store failure exits non-zero.
func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(cfg.Log)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, logger); err != nil {
		logger.Error("overdue report failed", zap.Error(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *zap.Logger) error {
	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() { _ = database.Close(db) }()

	if err := repository.Migrate(db); err != nil {
		return err
	}

	ctx := logging.WithOperation(context.Background(), "overdue-report")
	today := domain.DateOf(time.Now().UTC())

	projects, err := repository.NewProjectRepository(db).ListOverdue(ctx, today)
	if err != nil {
		return err
	}

	if len(projects) == 0 {
		fmt.Println("No overdue projects found.")
	}
	for _, p := range projects {
		fmt.Printf("Project ID: %d, Name: %s, Deadline: %s, Days overdue: %d\n",
			p.ID, p.Name, domain.FormatDate(p.Deadline), int(today.Sub(p.Deadline).Hours()/24))
	}

	logging.For(ctx, logger).Info("overdue report completed",
		zap.String("today", domain.FormatDate(today)),
		zap.Int("overdue", len(projects)),
	)
	return nil
}
