// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// UnknownLanguage is shown when the backend does not report the query
// language.
const UnknownLanguage = "—"

// SearchResult is a single ranked hit returned by the backend /search
// operation. It is immutable once received and lives until the next search
// replaces the displayed set.
type SearchResult struct {
	BookID Identifier `json:"book_id"`
	ParaID Identifier `json:"para_id"`
	DocID  Identifier `json:"doc_id"`

	// Snippet is a short excerpt of the matched text. Untrusted.
	Snippet string `json:"snippet"`
}

// SearchResponse is the body returned by POST /search.
//
// Optional fields are pointers so that an absent field can be told apart from
// an empty one; use the Get* accessors to read them with their defaults.
type SearchResponse struct {
	// Results is the ranked result list. Defaults to an empty sequence.
	Results []SearchResult `json:"results,omitempty"`

	// QueryLang is the language detected for the query. Defaults to
	// [UnknownLanguage].
	QueryLang *string `json:"query_lang,omitempty"`

	// Alpha echoes the blend factor the backend used.
	Alpha *float64 `json:"alpha,omitempty"`

	// Error is set by the backend when it failed to serve the request but
	// still answered with a success status.
	Error *string `json:"error,omitempty"`
}

// GetResults returns the result list, never nil.
func (r SearchResponse) GetResults() []SearchResult {
	if r.Results == nil {
		return []SearchResult{}
	}
	return r.Results
}

// GetQueryLang returns the detected query language or [UnknownLanguage].
func (r SearchResponse) GetQueryLang() string {
	if r.QueryLang == nil || *r.QueryLang == "" {
		return UnknownLanguage
	}
	return *r.QueryLang
}
