package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/cryptbox/cryptbox/internal/adapter"
	"github.com/cryptbox/cryptbox/internal/client"
	"github.com/cryptbox/cryptbox/internal/config"
	"github.com/cryptbox/cryptbox/internal/logger"
	"github.com/cryptbox/cryptbox/internal/service"
	"github.com/cryptbox/cryptbox/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewClientLogger("cryptbox-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter, err := adapter.NewHTTPServerAdapter(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create server adapter")
	}

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	// GetClientConfig already consumed the leading flags; the subcommand
	// and its arguments are what remains.
	app := client.NewApp(services, log)
	if err := app.Run(flag.Args()); err != nil {
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
