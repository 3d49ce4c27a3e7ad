package main

import (
	"fmt"
	"os"

	"github.com/resumekit/resumekit/internal/client"
	"github.com/resumekit/resumekit/internal/config"
	"github.com/resumekit/resumekit/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("resume-client")

	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Error().Err(err).Msg("error getting configs")
		fmt.Fprintf(os.Stderr, "error getting configs: %v\n", err)
		os.Exit(1)
	}

	app, err := client.NewApp(cfg, log)
	if err != nil {
		log.Error().Err(err).Msg("error creating client app")
		fmt.Fprintf(os.Stderr, "error creating client app: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	if err = app.Run(); err != nil {
		log.Error().Err(err).Msg("client exited with error")
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
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
