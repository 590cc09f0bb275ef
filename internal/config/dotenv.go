// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// loadDotEnv loads key=value pairs from path into the process environment.
// Variables that are already set keep their values. A missing file is not
// an error.
func loadDotEnv(path string) error {
	if path == "" {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("error loading .env file %q: %w", path, err)
	}

	return nil
}

func lookupDotEnvPath(configs []*StructuredConfig) string {
	if v, ok := os.LookupEnv("DOTENV_FILE"); ok {
		return v
	}

	var path string
	for _, cfg := range configs {
		if cfg.DotEnvPath != "" {
			path = cfg.DotEnvPath
		}
	}
	return path
}
