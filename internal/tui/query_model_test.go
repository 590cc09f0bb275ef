// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/mock"
	"github.com/MKhiriev/pali-search/internal/render"
	"github.com/MKhiriev/pali-search/internal/service"
	"github.com/MKhiriev/pali-search/models"
)

func strPtr(s string) *string { return &s }

func newTestModel(t *testing.T, baseURL string) (*QueryModel, *mock.MockBackendAdapter) {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockAdapter := mock.NewMockBackendAdapter(ctrl)
	mockAdapter.EXPECT().BaseURL().Return(baseURL).AnyTimes()

	ui := config.ClientUI{DefaultTopK: 10, DefaultAlpha: 0.5}
	client := service.NewQueryClient(mockAdapter, ui, nil, logger.Nop())

	return NewQueryModel(context.Background(), client, ui), mockAdapter
}

func typeText(m *QueryModel, s string) {
	m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
}

func press(m *QueryModel, k tea.KeyType) tea.Cmd {
	_, cmd := m.Update(tea.KeyMsg{Type: k})
	return cmd
}

// drain runs cmd and every command batched into it, feeding the resulting
// messages back into the model. Ticks are not followed.
func drain(m *QueryModel, cmd tea.Cmd) {
	if cmd == nil {
		return
	}
	switch msg := cmd().(type) {
	case tea.BatchMsg:
		for _, c := range msg {
			drain(m, c)
		}
	case searchDoneMsg, answerDoneMsg, copiedMsg, copyFailedMsg:
		m.Update(msg)
	}
}

func TestQueryModel_InitialView(t *testing.T) {
	m, _ := newTestModel(t, "")

	view := m.View()

	assert.Contains(t, view, "API: "+render.LabelNotSet)
	assert.Contains(t, view, "< 10 >")
	assert.Contains(t, view, "0.50")
	assert.Contains(t, view, "[Search]")
	assert.Contains(t, view, "[Answer]")
}

func TestQueryModel_EnterWithEmptyQuery_NoRequest(t *testing.T) {
	m, _ := newTestModel(t, "http://backend")

	typeText(m, "   ")
	cmd := press(m, tea.KeyEnter)

	assert.Nil(t, cmd)
	assert.True(t, m.client.Snapshot().Results.IsEmpty())
}

func TestQueryModel_EnterInQueryField_Searches(t *testing.T) {
	m, mockAdapter := newTestModel(t, "http://backend")

	mockAdapter.EXPECT().
		Search(gomock.Any(), models.QueryParameters{Query: "dukkha", TopK: 10, Alpha: 0.5}).
		Return(models.SearchResponse{
			Results:   []models.SearchResult{{BookID: "DN", ParaID: "1", DocID: "d1", Snippet: "<b>x</b>"}},
			QueryLang: strPtr("pi"),
		}, nil)

	typeText(m, "dukkha")
	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)

	assert.Contains(t, m.View(), render.LabelSearching)
	assert.True(t, m.busy())

	drain(m, cmd)

	assert.False(t, m.busy())
	view := m.View()
	assert.Contains(t, view, "[DN:1] · doc=d1")
	assert.Contains(t, view, "<b>x</b>")
	assert.Contains(t, view, "lang: pi | α=0.5")
	assert.NotContains(t, view, render.LabelSearching)
}

func TestQueryModel_AnswerButton(t *testing.T) {
	m, mockAdapter := newTestModel(t, "http://backend")

	mockAdapter.EXPECT().Answer(gomock.Any(), gomock.Any()).Return(models.AnswerResponse{
		Answer:    strPtr("42"),
		Citations: []models.Citation{{BookID: "MN", ParaID: "2", PaliParagraph: "p", TranslationParagraph: "t"}},
	}, nil)

	typeText(m, "meaning")
	for i := 0; i < int(focusAnswer); i++ {
		press(m, tea.KeyTab)
	}
	require.Equal(t, focusAnswer, m.focus)

	cmd := press(m, tea.KeyEnter)
	require.NotNil(t, cmd)
	assert.Equal(t, render.LabelAnswering, m.client.Snapshot().Answer.Text)

	drain(m, cmd)

	d := m.client.Snapshot()
	assert.Equal(t, "42", d.Answer.Text)
	require.Len(t, d.Citations.Items, 1)
	assert.Contains(t, m.View(), "[MN:2]")
}

func TestQueryModel_SearchButton(t *testing.T) {
	m, mockAdapter := newTestModel(t, "http://backend")

	mockAdapter.EXPECT().Search(gomock.Any(), gomock.Any()).Return(models.SearchResponse{}, nil)

	typeText(m, "q")
	for i := 0; i < int(focusSearch); i++ {
		press(m, tea.KeyTab)
	}

	drain(m, press(m, tea.KeyEnter))

	assert.Contains(t, m.View(), render.LabelNoResults)
}

func TestQueryModel_SearchFailure(t *testing.T) {
	m, mockAdapter := newTestModel(t, "http://backend")

	mockAdapter.EXPECT().Search(gomock.Any(), gomock.Any()).
		Return(models.SearchResponse{}, errors.New("request failed: connection refused"))

	typeText(m, "q")
	drain(m, press(m, tea.KeyEnter))

	view := m.View()
	assert.Contains(t, view, render.LabelError)
	assert.Contains(t, view, "connection refused")
}

func TestQueryModel_FocusCycles(t *testing.T) {
	m, _ := newTestModel(t, "")

	for i := 0; i < int(focusCount); i++ {
		press(m, tea.KeyTab)
	}
	assert.Equal(t, focusQuery, m.focus)
	assert.True(t, m.acceptsText())

	press(m, tea.KeyShiftTab)
	assert.Equal(t, focusAnswer, m.focus)
	assert.False(t, m.acceptsText())
}

func TestQueryModel_TopKSelector(t *testing.T) {
	m, _ := newTestModel(t, "")

	press(m, tea.KeyTab)
	require.Equal(t, focusTopK, m.focus)

	press(m, tea.KeyRight)
	assert.Equal(t, 20, m.params().TopK)
	press(m, tea.KeyRight)
	assert.Equal(t, 50, m.params().TopK)
	press(m, tea.KeyRight)
	assert.Equal(t, 5, m.params().TopK)
	press(m, tea.KeyLeft)
	assert.Equal(t, 50, m.params().TopK)
}

func TestQueryModel_AlphaSlider_UpdatesLabelWithoutRequest(t *testing.T) {
	// The mocked adapter has no Search/Answer expectations: any request fails the test.
	m, _ := newTestModel(t, "")

	press(m, tea.KeyTab)
	press(m, tea.KeyTab)
	require.Equal(t, focusAlpha, m.focus)

	for i := 0; i < 4; i++ {
		assert.Nil(t, press(m, tea.KeyRight))
	}

	assert.Equal(t, 0.7, m.alpha)
	assert.Equal(t, "0.70", m.client.Snapshot().AlphaLabel)
	assert.Contains(t, m.View(), "0.70")
}

func TestQueryModel_AlphaSlider_Clamped(t *testing.T) {
	m, _ := newTestModel(t, "")
	m.setFocus(focusAlpha)

	for i := 0; i < 30; i++ {
		press(m, tea.KeyRight)
	}
	assert.Equal(t, 1.0, m.alpha)

	for i := 0; i < 30; i++ {
		press(m, tea.KeyLeft)
	}
	assert.Equal(t, 0.0, m.alpha)
	assert.Equal(t, "0.00", m.client.Snapshot().AlphaLabel)
}

func TestTopKIndex(t *testing.T) {
	assert.Equal(t, 1, topKIndex(10))
	assert.Equal(t, 0, topKIndex(1))
	assert.Equal(t, 2, topKIndex(18))
	assert.Equal(t, 3, topKIndex(100))
}

func TestQueryModel_CopyAnswer(t *testing.T) {
	m, mockAdapter := newTestModel(t, "http://backend")

	var copied string
	orig := writeClipboard
	writeClipboard = func(text string) error {
		copied = text
		return nil
	}
	t.Cleanup(func() { writeClipboard = orig })

	press(m, tea.KeyCtrlY)
	assert.Equal(t, "Nothing to copy", m.status)

	mockAdapter.EXPECT().Answer(gomock.Any(), gomock.Any()).Return(models.AnswerResponse{Answer: strPtr("42")}, nil)
	typeText(m, "q")
	m.setFocus(focusAnswer)
	drain(m, press(m, tea.KeyEnter))

	drain(m, press(m, tea.KeyCtrlY))

	assert.Equal(t, "42", copied)
	assert.Equal(t, "Answer copied", m.status)
}

func TestRenderRegion_BodyLines(t *testing.T) {
	withoutSnippet := renderRegion("RESULTS", render.Results([]models.SearchResult{
		{BookID: "DN", ParaID: "1", DocID: "d1"},
		{BookID: "DN", ParaID: "2", DocID: "d2", Snippet: "text"},
	}), "")
	assert.Contains(t, withoutSnippet, "doc=d1\n\n\n", "empty body line, then the item separator")
	assert.Contains(t, withoutSnippet, "doc=d2\ntext\n")

	placeholder := renderRegion("RESULTS", render.Results(nil), "")
	assert.True(t, strings.HasSuffix(placeholder, render.LabelNoResults+"\n"))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "line\nnext\tcol", sanitize("line\nnext\tcol"))
	assert.Equal(t, "[31mred", sanitize("\x1b[31mred"))
}

func TestRootModel_BuildInfoToggle(t *testing.T) {
	m, _ := newTestModel(t, "http://backend")
	root := NewRootModel(m, models.NewAppBuildInfo("1.0.0", "2026-01-01", "abc"))

	// 'v' typed into the focused query field is text, not a hotkey.
	updated, _ := root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)
	assert.Equal(t, "v", m.input.Value())

	m.setFocus(focusSearch)
	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("v")})
	root = updated.(RootModel)
	require.True(t, root.showBuildInfo)
	assert.Contains(t, root.View(), "Version: 1.0.0")
	assert.Contains(t, root.View(), "API: http://backend")

	updated, _ = root.Update(tea.KeyMsg{Type: tea.KeyEsc})
	root = updated.(RootModel)
	assert.False(t, root.showBuildInfo)
}

func TestRootModel_CtrlCQuits(t *testing.T) {
	m, _ := newTestModel(t, "")
	root := NewRootModel(m, models.AppBuildInfo{})

	updated, cmd := root.Update(tea.KeyMsg{Type: tea.KeyCtrlC})

	assert.True(t, updated.(RootModel).quitByUser)
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
