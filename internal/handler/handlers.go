package handler

import (
	"fmt"

	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/handler/http"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/metrics"
	"github.com/MKhiriev/pali-search/internal/service"
)

type Handlers struct {
	HTTP *http.Handler
}

func NewHandlers(services *service.Services, cfg *config.FrontendConfig, m *metrics.HTTPServerMetrics, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.Server.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	httpHandler, err := http.NewHandler(services, cfg, m, logger)
	if err != nil {
		return nil, fmt.Errorf("create http handler: %w", err)
	}

	return &Handlers{HTTP: httpHandler}, nil
}
