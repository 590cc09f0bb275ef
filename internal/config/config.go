// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// Defaults applied before any other source.
const (
	DefaultTopK        = 10
	DefaultAlpha       = 0.5
	DefaultHTTPAddress = "localhost:8084"
	DefaultDotEnvFile  = ".env"
)

// StructuredConfig is the top-level configuration container. It is populated
// by merging defaults, environment variables, command-line flags, and an
// optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env      : direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// Backend describes the search/answer backend the client talks to.
	// Its variables are not prefixed so that API_BASE keeps the name the
	// deployment already uses.
	Backend Backend

	// Server holds the web frontend listen settings.
	Server Server `envPrefix:"SERVER_"`

	// UI holds the initial values of the query controls.
	UI UI `envPrefix:"UI_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// DotEnvPath is the .env file loaded into the environment before env
	// parsing. Env: DOTENV_FILE. A missing file is ignored.
	DotEnvPath string `env:"DOTENV_FILE"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the application version reported by the frontend.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Backend holds the outbound settings for the retrieval/QA backend.
type Backend struct {
	// BaseURL is the backend base URL (e.g. "http://localhost:8083").
	// It may be empty: the UI still renders and shows "(not set)".
	// Env: API_BASE
	BaseURL string `env:"API_BASE"`

	// RequestTimeout bounds a single backend request. Zero means the
	// client waits until the network resolves or fails.
	// Env: BACKEND_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"BACKEND_REQUEST_TIMEOUT"`
}

// Server holds the web frontend listen address.
type Server struct {
	// HTTPAddress is the TCP address the frontend listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
}

// UI holds the initial values of the query controls.
type UI struct {
	// DefaultTopK is the initially selected result count.
	// Env: UI_DEFAULT_TOP_K
	DefaultTopK int `env:"DEFAULT_TOP_K"`

	// DefaultAlpha is the initial blend factor. A pointer so that an
	// explicit 0 can be told apart from "not provided" while merging.
	// Env: UI_DEFAULT_ALPHA
	DefaultAlpha *float64 `env:"DEFAULT_ALPHA"`
}

// Alpha returns the configured default alpha or [DefaultAlpha].
func (u UI) Alpha() float64 {
	if u.DefaultAlpha == nil {
		return DefaultAlpha
	}
	return *u.DefaultAlpha
}

// GetStructuredConfig loads, merges, and validates the configuration from
// all available sources, using the process arguments for flags.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadStructuredConfig(os.Args[1:])
}

func loadStructuredConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv().
		withEnv().
		withFlags(args).
		withJSON().
		build()
}

func defaultConfig() *StructuredConfig {
	alpha := DefaultAlpha
	return &StructuredConfig{
		Server: Server{HTTPAddress: DefaultHTTPAddress},
		UI: UI{
			DefaultTopK:  DefaultTopK,
			DefaultAlpha: &alpha,
		},
		DotEnvPath: DefaultDotEnvFile,
	}
}
