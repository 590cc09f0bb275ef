package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/pali-search/models"
)

// RootModel is the top-level TUI model:
// 1) handles global ctrl+c quit
// 2) toggles the build info window
// 3) delegates all other messages to the query screen
type RootModel struct {
	query *QueryModel

	quitByUser bool
	buildInfo  models.AppBuildInfo

	showBuildInfo bool
}

// NewRootModel wraps the query screen.
func NewRootModel(query *QueryModel, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		query:     query,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	return r.query.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, keys.quit):
			r.quitByUser = true
			return r, tea.Quit
		case key.Matches(keyMsg, keys.info):
			// "v" is ordinary text while the query field is focused.
			if r.showBuildInfo || !r.query.acceptsText() {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case key.Matches(keyMsg, keys.esc):
			if r.showBuildInfo {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo {
			return r, nil
		}
	}

	// Completions keep flowing to the query screen while build info is open.
	_, cmd := r.query.Update(msg)
	return r, cmd
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return appStyle.Render(renderBuildInfoWindow(r.buildInfo, r.query.client.Snapshot().APIBase))
	}
	return appStyle.Render(r.query.View())
}
