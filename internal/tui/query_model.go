// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/service"
	"github.com/MKhiriev/pali-search/models"
)

// topKOptions are the result counts offered by the selector.
var topKOptions = []int{5, 10, 20, 50}

const alphaStep = 0.05

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

type focusArea int

const (
	focusQuery focusArea = iota
	focusTopK
	focusAlpha
	focusSearch
	focusAnswer
	focusCount
)

// QueryModel is the Bubble Tea model of the query screen: a query input, a
// result-count selector, a blend-factor slider and the Search and Answer
// buttons above the results, answer and citations regions.
//
// Start steps of the query client run inside Update so the placeholder is
// visible at once. The network part runs in a [tea.Cmd]; its completion
// message only releases the spinner because the client has already applied
// or discarded the response.
type QueryModel struct {
	ctx    context.Context
	client service.QueryClient

	input     textinput.Model
	spinner   spinner.Model
	topKIndex int
	alpha     float64
	focus     focusArea

	searching int
	answering int
	status    string
}

// NewQueryModel creates a [QueryModel] with the query input focused and the
// selector and slider set to the configured defaults.
func NewQueryModel(ctx context.Context, client service.QueryClient, ui config.ClientUI) *QueryModel {
	input := textinput.New()
	input.Placeholder = "query"
	input.CharLimit = 512
	input.Width = 48
	input.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := &QueryModel{
		ctx:       ctx,
		client:    client,
		input:     input,
		spinner:   sp,
		topKIndex: topKIndex(ui.DefaultTopK),
		alpha:     ui.DefaultAlpha,
	}
	m.client.SetAlpha(m.alpha)

	return m
}

// topKIndex returns the option closest to want.
func topKIndex(want int) int {
	best := 0
	for i, v := range topKOptions {
		if absInt(v-want) < absInt(topKOptions[best]-want) {
			best = i
		}
	}
	return best
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// Init implements [tea.Model]. Starts the cursor-blink animation.
func (m *QueryModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements [tea.Model]. Handled messages:
//   - [searchDoneMsg], [answerDoneMsg]: release the in-flight indicator.
//   - [spinner.TickMsg]              : animates while a request is in flight.
//   - tab / shift+tab                : moves focus between controls.
//   - enter                          : searches from the query field or the
//     Search button, answers from the Answer button.
//   - left / right                   : changes top_k or alpha when focused.
//   - ctrl+y                         : copies the answer to the clipboard.
//
// All other key events are forwarded to the query input while it is focused.
func (m *QueryModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case searchDoneMsg:
		if m.searching > 0 {
			m.searching--
		}
		return m, nil
	case answerDoneMsg:
		if m.answering > 0 {
			m.answering--
		}
		return m, nil
	case spinner.TickMsg:
		if !m.busy() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case copiedMsg:
		m.status = "Answer copied"
		return m, cmdClearStatus()
	case copyFailedMsg:
		m.status = fmt.Sprintf("Copy failed: %v", msg.err)
		return m, cmdClearStatus()
	case clearStatusMsg:
		m.status = ""
		return m, nil
	case tea.KeyMsg:
		if cmd, handled := m.handleKey(msg); handled {
			return m, cmd
		}
	}

	if m.focus != focusQuery {
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *QueryModel) handleKey(msg tea.KeyMsg) (tea.Cmd, bool) {
	switch {
	case key.Matches(msg, keys.tab):
		m.setFocus((m.focus + 1) % focusCount)
		return nil, true
	case key.Matches(msg, keys.backtab):
		m.setFocus((m.focus - 1 + focusCount) % focusCount)
		return nil, true
	case key.Matches(msg, keys.copy):
		return m.copyAnswer(), true
	case key.Matches(msg, keys.enter):
		switch m.focus {
		case focusQuery, focusSearch:
			return m.startSearch(), true
		case focusAnswer:
			return m.startAnswer(), true
		}
		return nil, true
	}

	if m.focus == focusQuery {
		return nil, false
	}

	switch {
	case key.Matches(msg, keys.left), key.Matches(msg, keys.decrease):
		m.adjust(-1)
		return nil, true
	case key.Matches(msg, keys.right), key.Matches(msg, keys.increase):
		m.adjust(+1)
		return nil, true
	}

	return nil, false
}

func (m *QueryModel) setFocus(f focusArea) {
	m.focus = f
	if f == focusQuery {
		m.input.Focus()
		return
	}
	m.input.Blur()
}

func (m *QueryModel) adjust(dir int) {
	switch m.focus {
	case focusTopK:
		m.topKIndex = (m.topKIndex + dir + len(topKOptions)) % len(topKOptions)
	case focusAlpha:
		alpha := math.Round((m.alpha+float64(dir)*alphaStep)*100) / 100
		m.alpha = math.Max(0, math.Min(1, alpha))
		m.client.SetAlpha(m.alpha)
	}
}

func (m *QueryModel) params() models.QueryParameters {
	return models.QueryParameters{
		Query: m.input.Value(),
		TopK:  topKOptions[m.topKIndex],
		Alpha: m.alpha,
	}
}

func (m *QueryModel) startSearch() tea.Cmd {
	ticket, ok := m.client.StartSearch(m.params())
	if !ok {
		return nil
	}

	wasBusy := m.busy()
	m.searching++

	ctx := m.ctx
	client := m.client
	finish := func() tea.Msg {
		return searchDoneMsg{ticket: ticket, outcome: client.FinishSearch(ctx, ticket)}
	}

	if wasBusy {
		return finish
	}
	return tea.Batch(m.spinner.Tick, finish)
}

func (m *QueryModel) startAnswer() tea.Cmd {
	ticket, ok := m.client.StartAnswer(m.params())
	if !ok {
		return nil
	}

	wasBusy := m.busy()
	m.answering++

	ctx := m.ctx
	client := m.client
	finish := func() tea.Msg {
		return answerDoneMsg{ticket: ticket, outcome: client.FinishAnswer(ctx, ticket)}
	}

	if wasBusy {
		return finish
	}
	return tea.Batch(m.spinner.Tick, finish)
}

func (m *QueryModel) busy() bool {
	return m.searching > 0 || m.answering > 0
}

func (m *QueryModel) copyAnswer() tea.Cmd {
	text := m.client.Snapshot().Answer.Text
	if strings.TrimSpace(text) == "" {
		m.status = "Nothing to copy"
		return cmdClearStatus()
	}

	return func() tea.Msg {
		if err := writeClipboard(text); err != nil {
			return copyFailedMsg{err: err}
		}
		return copiedMsg{}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(2*time.Second, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

// acceptsText reports whether printable keys go to the query input.
func (m *QueryModel) acceptsText() bool {
	return m.focus == focusQuery
}

// View implements [tea.Model].
func (m *QueryModel) View() string {
	d := m.client.Snapshot()

	var b strings.Builder

	b.WriteString("API: ")
	b.WriteString(d.APIBase)
	if d.Status != "" {
		b.WriteString("   ")
		b.WriteString(d.Status)
	}
	b.WriteString("\n\n")

	b.WriteString("Query  │ ")
	b.WriteString(m.control(focusQuery, "["+m.input.View()+"]"))
	b.WriteString("\n")
	b.WriteString("Top K  │ ")
	b.WriteString(m.control(focusTopK, fmt.Sprintf("< %d >", topKOptions[m.topKIndex])))
	b.WriteString("\n")
	b.WriteString("Alpha  │ ")
	b.WriteString(m.control(focusAlpha, alphaSlider(m.alpha)))
	b.WriteString(" ")
	b.WriteString(d.AlphaLabel)
	b.WriteString("\n\n")
	b.WriteString(m.control(focusSearch, "[Search]"))
	b.WriteString(" ")
	b.WriteString(m.control(focusAnswer, "[Answer]"))
	b.WriteString("\n\n")

	b.WriteString(renderRegion("RESULTS", d.Results, m.pending(m.searching)))
	b.WriteString("\n")

	b.WriteString(titleStyle.Render("ANSWER"))
	if p := m.pending(m.answering); p != "" {
		b.WriteString(" ")
		b.WriteString(p)
	}
	b.WriteString("\n")
	if strings.TrimSpace(d.Answer.Text) == "" {
		b.WriteString("-\n")
	} else {
		b.WriteString(sanitize(d.Answer.Text))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(renderRegion("CITATIONS", d.Citations, ""))

	if m.status != "" {
		b.WriteString("\n")
		b.WriteString(m.status)
		b.WriteString("\n")
	}

	return renderPage("PALI SEARCH", strings.TrimRight(b.String(), "\n"),
		"tab: next control │ enter: search / press button │ ←/→: adjust │ ctrl+y: copy answer │ v: about")
}

func (m *QueryModel) control(area focusArea, s string) string {
	if m.focus == area && area != focusQuery {
		return focusedStyle.Render(s)
	}
	return s
}

func (m *QueryModel) pending(n int) string {
	if n == 0 {
		return ""
	}
	return m.spinner.View()
}

const sliderWidth = 20

func alphaSlider(alpha float64) string {
	pos := int(math.Round(alpha * sliderWidth))
	return strings.Repeat("━", pos) + "●" + strings.Repeat("─", sliderWidth-pos)
}
