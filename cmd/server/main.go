package main

import (
	"fmt"

	"github.com/MKhiriev/pali-search/internal/adapter"
	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/handler"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/metrics"
	"github.com/MKhiriev/pali-search/internal/server"
	"github.com/MKhiriev/pali-search/internal/service"
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

	log := logger.NewLogger("pali-search-frontend")
	cfg, err := config.GetFrontendConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	backendAdapter, err := adapter.NewHTTPBackendAdapter(cfg.Backend, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create backend adapter")
	}

	httpMetrics := metrics.NewHTTPServerMetrics("frontend")
	services := service.NewServices(backendAdapter, cfg, buildInfo, httpMetrics, log)

	handlers, err := handler.NewHandlers(services, cfg, httpMetrics, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version())
	fmt.Printf("Build date: %s\n", info.Date())
	fmt.Printf("Build commit: %s\n", info.Commit())
}
