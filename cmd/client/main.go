package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/pali-search/internal/adapter"
	"github.com/MKhiriev/pali-search/internal/client"
	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/service"
	"github.com/MKhiriev/pali-search/internal/tui"
	"github.com/MKhiriev/pali-search/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewClientLogger("pali-search-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	services := service.NewClientServices(backendAdapter, cfg.UI, buildInfo, log)

	ui, err := tui.New(services, cfg.UI, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(ui)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(context.Background()); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
