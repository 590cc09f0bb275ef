package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/pali-search/internal/tui"
)

// UI is the interactive front end run by [App].
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	ui UI
}

func NewApp(ui UI) (*App, error) {
	if ui == nil {
		return nil, errNoUI
	}
	return &App{ui: ui}, nil
}

// Run blocks until the user leaves the query screen. Quitting on purpose is
// not an error.
func (a *App) Run(ctx context.Context) error {
	err := a.ui.Run(ctx)
	if err == nil || errors.Is(err, tui.ErrUserQuit) {
		return nil
	}
	return fmt.Errorf("run ui: %w", err)
}
