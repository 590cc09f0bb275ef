// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"errors"
	"testing"

	"github.com/MKhiriev/pali-search/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEscape(t *testing.T) {
	assert.Equal(t, "&amp;&lt;&gt;&quot;&#039;", Escape(`&<>"'`))
	assert.Equal(t, "&lt;b&gt;x&lt;/b&gt;", Escape("<b>x</b>"))
	assert.Equal(t, "plain text ā", Escape("plain text ā"))
	assert.Equal(t, "&amp;amp;", Escape("&amp;"), "entities in input must be escaped again")
}

func TestResults_Empty(t *testing.T) {
	for _, in := range [][]models.SearchResult{nil, {}} {
		r := Results(in)
		require.Len(t, r.Items, 1)
		assert.Equal(t, LabelNoResults, r.Items[0].Meta)
		assert.Empty(t, r.Items[0].Body)
	}
}

func TestResults_EscapesSnippet(t *testing.T) {
	r := Results([]models.SearchResult{
		{BookID: "DN", ParaID: "1", DocID: "d1", Snippet: "<b>x</b>"},
	})

	require.Len(t, r.Items, 1)
	assert.Equal(t, "[DN:1] · doc=d1", r.Items[0].Meta)
	assert.Equal(t, "<b>x</b>", r.Items[0].Body, "items keep raw text")

	html := string(r.HTML())
	assert.Contains(t, html, `<div class="meta">[DN:1] · doc=d1</div>`)
	assert.Contains(t, html, "&lt;b&gt;x&lt;/b&gt;")
	assert.NotContains(t, html, "<b>x</b>")
}

func TestResults_EscapesMetadata(t *testing.T) {
	r := Results([]models.SearchResult{
		{BookID: `<script>`, ParaID: `"1"`, DocID: "a&b", Snippet: "s"},
	})

	html := string(r.HTML())
	assert.Contains(t, html, "[&lt;script&gt;:&quot;1&quot;] · doc=a&amp;b")
	assert.NotContains(t, html, "<script>")
}

func TestResults_KeepsOrder(t *testing.T) {
	r := Results([]models.SearchResult{
		{BookID: "DN", ParaID: "1", DocID: "a"},
		{BookID: "MN", ParaID: "2", DocID: "b"},
		{BookID: "SN", ParaID: "3", DocID: "c"},
	})

	require.Len(t, r.Items, 3)
	assert.Equal(t, "[DN:1] · doc=a", r.Items[0].Meta)
	assert.Equal(t, "[MN:2] · doc=b", r.Items[1].Meta)
	assert.Equal(t, "[SN:3] · doc=c", r.Items[2].Meta)
}

func TestCitations(t *testing.T) {
	empty := Citations(nil)
	require.Len(t, empty.Items, 1)
	assert.Equal(t, LabelNoCitations, empty.Items[0].Meta)

	r := Citations([]models.Citation{
		{BookID: "MN", ParaID: "2", PaliParagraph: "p", TranslationParagraph: "t"},
	})
	require.Len(t, r.Items, 1)
	assert.Equal(t, "[MN:2]", r.Items[0].Meta)
	assert.Equal(t, "p\nt", r.Items[0].Body)

	hostile := Citations([]models.Citation{
		{BookID: "MN", ParaID: "2", PaliParagraph: "<i>", TranslationParagraph: "it's"},
	})
	assert.Contains(t, string(hostile.HTML()), "&lt;i&gt;\nit&#039;s")
}

func TestRegion_HTML(t *testing.T) {
	assert.Empty(t, string(Region{}.HTML()))
	assert.Equal(t,
		`<div class="item"><div class="meta">Searching…</div></div>`,
		string(Pending(LabelSearching).HTML()))
}

func TestRegion_IsEmpty(t *testing.T) {
	assert.True(t, Region{}.IsEmpty())
	assert.False(t, Pending(LabelSearching).IsEmpty())
}

func TestResults_EmptySnippetKeepsBodyLine(t *testing.T) {
	r := Results([]models.SearchResult{{BookID: "DN", ParaID: "1", DocID: "d1"}})

	require.Len(t, r.Items, 1)
	assert.False(t, r.Items[0].Placeholder)
	assert.Equal(t,
		`<div class="item"><div class="meta">[DN:1] · doc=d1</div><div class="snippet"></div></div>`,
		string(r.HTML()))
}

func TestPlaceholders_HaveNoBodyLine(t *testing.T) {
	for _, r := range []Region{Results(nil), Citations(nil), Pending(LabelSearching)} {
		require.Len(t, r.Items, 1)
		assert.True(t, r.Items[0].Placeholder)
		assert.NotContains(t, string(r.HTML()), `class="snippet"`)
	}
	assert.Contains(t, string(Failure(errors.New("x")).HTML()), `<div class="snippet">x</div>`)
}

func TestFailure(t *testing.T) {
	r := Failure(errors.New("connection refused"))
	require.Len(t, r.Items, 1)
	assert.Equal(t, LabelError, r.Items[0].Meta)
	assert.Equal(t, "connection refused", r.Items[0].Body)

	assert.Equal(t, "Error: boom", FailureAnswer(errors.New("boom")).Text)
	assert.Equal(t, "Error: unknown error", FailureAnswer(nil).Text)
}

func TestStatusLine(t *testing.T) {
	assert.Equal(t, "lang: pi | α=0.5", StatusLine("pi", 0.5))
	assert.Equal(t, "lang: en | α=0.7", StatusLine("en", 0.7))
	assert.Equal(t, "lang: — | α=1", StatusLine("", 1))
	assert.Equal(t, "lang: pi | α=0", StatusLine("pi", 0))
}

func TestAlphaLabel(t *testing.T) {
	assert.Equal(t, "0.70", AlphaLabel(0.7))
	assert.Equal(t, "0.00", AlphaLabel(0))
	assert.Equal(t, "1.00", AlphaLabel(1))
	assert.Equal(t, "0.35", AlphaLabel(0.35))
}

func TestBaseURLLabel(t *testing.T) {
	assert.Equal(t, "(not set)", BaseURLLabel(""))
	assert.Equal(t, "(not set)", BaseURLLabel("   "))
	assert.Equal(t, "http://localhost:8083", BaseURLLabel("http://localhost:8083"))
}
