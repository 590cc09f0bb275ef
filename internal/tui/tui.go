// Package tui implements the interactive terminal front end of the query
// client on Bubble Tea.
package tui

import (
	"context"

	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/service"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services *service.ClientServices
	ui       config.ClientUI

	logger *logger.Logger
}

func New(services *service.ClientServices, ui config.ClientUI, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, ui: ui, logger: logger}, nil
}

// Run shows the query screen until the user quits. Leaving with ctrl+c
// returns [ErrUserQuit].
func (t *TUI) Run(ctx context.Context) error {
	query := NewQueryModel(ctx, t.services.QueryClient, t.ui)
	root := NewRootModel(query, t.services.AppInfo.GetBuildInfo())

	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return tea.ErrProgramKilled
	}
	if result.quitByUser {
		t.logger.Info().Msg("user quit")
		return ErrUserQuit
	}

	return nil
}
