// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/MKhiriev/pali-search/models"
)

// Display strings shared by every front end.
const (
	LabelSearching   = "Searching…"
	LabelAnswering   = "Answering…"
	LabelNoResults   = "No results"
	LabelNoCitations = "No citations"
	LabelError       = "Error"
	LabelNotSet      = "(not set)"
)

// Results renders a search result set. An empty set yields a single
// "No results" item.
func Results(results []models.SearchResult) Region {
	if len(results) == 0 {
		return Region{Items: []Item{{Meta: LabelNoResults, Placeholder: true}}}
	}

	items := make([]Item, 0, len(results))
	for _, res := range results {
		items = append(items, Item{
			Meta: fmt.Sprintf("[%s:%s] · doc=%s", res.BookID, res.ParaID, res.DocID),
			Body: res.Snippet,
		})
	}
	return Region{Items: items}
}

// Citations renders answer citations. An empty list yields a single
// "No citations" item. The body is the source paragraph, a line break and
// the translation.
func Citations(citations []models.Citation) Region {
	if len(citations) == 0 {
		return Region{Items: []Item{{Meta: LabelNoCitations, Placeholder: true}}}
	}

	items := make([]Item, 0, len(citations))
	for _, c := range citations {
		items = append(items, Item{
			Meta: fmt.Sprintf("[%s:%s]", c.BookID, c.ParaID),
			Body: c.PaliParagraph + "\n" + c.TranslationParagraph,
		})
	}
	return Region{Items: items}
}

// Pending renders the placeholder shown while a request is in flight.
func Pending(label string) Region {
	return Region{Items: []Item{{Meta: label, Placeholder: true}}}
}

// Failure renders a request failure as the sole item of a region.
func Failure(err error) Region {
	return Region{Items: []Item{{Meta: LabelError, Body: describe(err)}}}
}

// FailureAnswer renders a request failure for the answer region.
func FailureAnswer(err error) Answer {
	return Answer{Text: LabelError + ": " + describe(err)}
}

// StatusLine renders the status indicator: detected language and the alpha
// value that was submitted, e.g. "lang: pi | α=0.7".
func StatusLine(lang string, alpha float64) string {
	if strings.TrimSpace(lang) == "" {
		lang = models.UnknownLanguage
	}
	return "lang: " + lang + " | α=" + strconv.FormatFloat(alpha, 'f', -1, 64)
}

// AlphaLabel renders the live blend-factor label with two decimals.
func AlphaLabel(alpha float64) string {
	return strconv.FormatFloat(alpha, 'f', 2, 64)
}

// BaseURLLabel renders the configured backend base URL, or "(not set)".
func BaseURLLabel(baseURL string) string {
	if strings.TrimSpace(baseURL) == "" {
		return LabelNotSet
	}
	return baseURL
}

func describe(err error) string {
	if err == nil {
		return "unknown error"
	}
	return err.Error()
}
