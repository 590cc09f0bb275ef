// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"math"
	"net/url"
	"strings"
)

// validate checks the merged [StructuredConfig]. An empty backend base URL
// is valid: the client renders and reports it as not set.
func (cfg *StructuredConfig) validate() error {
	if raw := strings.TrimSpace(cfg.Backend.BaseURL); raw != "" {
		if _, err := url.Parse(raw); err != nil {
			return fmt.Errorf("%w: %w", ErrInvalidBackendConfigs, err)
		}
	}
	if cfg.Backend.RequestTimeout < 0 {
		return ErrInvalidBackendConfigs
	}

	if cfg.UI.DefaultTopK < 1 {
		return ErrInvalidUIConfigs
	}
	if alpha := cfg.UI.Alpha(); math.IsNaN(alpha) || alpha < 0 || alpha > 1 {
		return ErrInvalidUIConfigs
	}

	return nil
}

func (cfg *FrontendConfig) validate() error {
	if strings.TrimSpace(cfg.Server.HTTPAddress) == "" {
		return ErrInvalidServerConfigs
	}
	return nil
}
