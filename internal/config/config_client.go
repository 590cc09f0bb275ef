package config

import (
	"fmt"
	"strings"
	"time"
)

// ClientBackend holds the backend settings used by the query client.
type ClientBackend struct {
	// BaseURL is the backend base URL; empty when not configured.
	BaseURL string
	// RequestTimeout bounds one backend request; zero waits indefinitely.
	RequestTimeout time.Duration
}

// ClientUI holds the initial state of the query controls.
type ClientUI struct {
	DefaultTopK  int
	DefaultAlpha float64
}

// ClientConfig is the configuration view of the terminal client.
type ClientConfig struct {
	Backend ClientBackend
	UI      ClientUI
}

// FrontendServer holds the web frontend listen settings.
type FrontendServer struct {
	HTTPAddress string
}

// FrontendConfig is the configuration view of the web frontend.
type FrontendConfig struct {
	Version string
	Backend ClientBackend
	Server  FrontendServer
	UI      ClientUI
}

// GetClientConfig builds the terminal client config from the merged
// structured configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return newClientConfig(cfg), nil
}

// GetFrontendConfig builds and validates the web frontend config from the
// merged structured configuration.
func GetFrontendConfig() (*FrontendConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	frontendCfg := newFrontendConfig(cfg)
	return frontendCfg, frontendCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		Backend: clientBackend(cfg.Backend),
		UI:      clientUI(cfg.UI),
	}
}

func newFrontendConfig(cfg *StructuredConfig) *FrontendConfig {
	return &FrontendConfig{
		Version: cfg.App.Version,
		Backend: clientBackend(cfg.Backend),
		Server:  FrontendServer{HTTPAddress: cfg.Server.HTTPAddress},
		UI:      clientUI(cfg.UI),
	}
}

func clientBackend(b Backend) ClientBackend {
	return ClientBackend{
		BaseURL:        strings.TrimSpace(b.BaseURL),
		RequestTimeout: b.RequestTimeout,
	}
}

func clientUI(u UI) ClientUI {
	return ClientUI{
		DefaultTopK:  u.DefaultTopK,
		DefaultAlpha: u.Alpha(),
	}
}
