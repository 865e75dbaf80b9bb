package main

import (
	"context"
	"log"
	"os"

	"go.uber.org/zap"

	"poisepms/internal/cli"
	"poisepms/internal/config"
	"poisepms/internal/console"
	"poisepms/internal/database"
	"poisepms/internal/logging"
	"poisepms/internal/modules/party"
	"poisepms/internal/modules/project"
	"poisepms/internal/repository"
)

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

	db, err := database.Open(cfg.Database, logger)
	if err != nil {
		logger.Fatal("db connect failed", zap.Error(err))
	}
	defer func() { _ = database.Close(db) }()

	if err := repository.Migrate(db); err != nil {
		logger.Fatal("migrate failed", zap.Error(err))
	}

	con := console.New(os.Stdin, os.Stdout)

	partyRepo := repository.NewPartyRepository(db)
	projectRepo := repository.NewProjectRepository(db)

	partyService := party.NewService(partyRepo, logger)
	partyHandler := party.NewHandler(partyService, con)
	resolver := party.NewResolver(partyService, con)

	projectService := project.NewService(projectRepo, partyService, logger)
	projectHandler := project.NewHandler(projectService, resolver, con)

	menu := cli.NewMenu(con, projectHandler, partyHandler, logger)
	if err := menu.Run(context.Background()); err != nil {
		logger.Error("input failed", zap.Error(err))
		os.Exit(1)
	}
}
