package main

import (
	"context"
	"fmt"

	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/gateway"
	httphandler "github.com/resumekit/resumekit/internal/handler/http"
	"github.com/resumekit/resumekit/internal/logger"
	"github.com/resumekit/resumekit/internal/mailer"
	"github.com/resumekit/resumekit/internal/server"
	"github.com/resumekit/resumekit/internal/service"
	"github.com/resumekit/resumekit/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("resume-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = cfg.ValidateServer(); err != nil {
		log.Fatal().Err(err).Msg("invalid server configuration")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	mail, err := mailer.New(cfg.Mail, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating mail client")
	}

	services := service.NewServices(storages, mail, gateway.New(cfg.Payment), cfg, log)
	handler := httphandler.NewHandler(services, cfg.Server, log)

	srv, err := server.NewServer(handler, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
