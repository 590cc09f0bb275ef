package http

import (
	"fmt"

	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/metrics"
	"github.com/MKhiriev/pali-search/internal/service"
	"github.com/MKhiriev/pali-search/internal/utils"
)

type Handler struct {
	services *service.Services
	cfg      *config.FrontendConfig

	templates *templateManager
	metrics   *metrics.HTTPServerMetrics
	traceIDs  *utils.TraceIDGenerator

	logger *logger.Logger
}

// NewHandler parses the embedded templates and returns a ready handler.
// metrics may be nil, in which case no instrumentation or /metrics route is
// installed.
func NewHandler(services *service.Services, cfg *config.FrontendConfig, m *metrics.HTTPServerMetrics, logger *logger.Logger) (*Handler, error) {
	templates, err := newTemplateManager()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrTemplateParse, err)
	}

	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		cfg:       cfg,
		templates: templates,
		metrics:   m,
		traceIDs:  utils.NewTraceIDGenerator(),
		logger:    logger,
	}, nil
}
