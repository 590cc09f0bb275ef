package service

import (
	"github.com/MKhiriev/pali-search/internal/adapter"
	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/models"
)

// ClientServices groups the services used by the terminal client.
type ClientServices struct {
	QueryClient QueryClient
	AppInfo     AppInfoService
}

func NewClientServices(backendAdapter adapter.BackendAdapter, cfg config.ClientUI, buildInfo models.AppBuildInfo, logger *logger.Logger) *ClientServices {
	return &ClientServices{
		QueryClient: NewQueryClient(backendAdapter, cfg, nil, logger),
		AppInfo:     NewAppInfoService("", buildInfo, logger),
	}
}

// QueryClientFactory creates a fresh [QueryClient] per web request. The web
// frontend keeps no display state between requests.
type QueryClientFactory func() QueryClient

// Services groups the services used by the web frontend.
type Services struct {
	NewQueryClient QueryClientFactory
	AppInfo        AppInfoService
}

func NewServices(backendAdapter adapter.BackendAdapter, cfg *config.FrontendConfig, buildInfo models.AppBuildInfo, observer QueryObserver, logger *logger.Logger) *Services {
	return &Services{
		NewQueryClient: func() QueryClient {
			return NewQueryClient(backendAdapter, cfg.UI, observer, logger)
		},
		AppInfo: NewAppInfoService(cfg.Version, buildInfo, logger),
	}
}
