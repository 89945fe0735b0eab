package main

import (
	"context"
	"fmt"
	"os"

	"github.com/MKhiriev/go-note-keeper/internal/client"
	"github.com/MKhiriev/go-note-keeper/internal/config"
	"github.com/MKhiriev/go-note-keeper/internal/logger"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("note-keeper-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("server", cfg.ServerAddress).Msg("received configs")

	ctx := context.Background()

	sessions, err := client.NewSessionStore(ctx, cfg.SessionPath, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error opening session store")
	}
	defer func() {
		if err := sessions.Close(); err != nil {
			log.Error().Err(err).Msg("error closing session store")
		}
	}()

	api, err := client.NewServerClient(*cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating api client")
	}

	app := client.NewApp(api, sessions, os.Stdout, log)
	if err := app.Run(ctx, os.Args[1:]); err != nil {
		log.Fatal().Err(err).Msg("command failed")
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
