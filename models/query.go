// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"math"
	"strings"
)

// Validation errors returned by [QueryParameters.Validate].
var (
	ErrEmptyQuery   = errors.New("query is empty")
	ErrInvalidTopK  = errors.New("top_k must be a positive integer")
	ErrInvalidAlpha = errors.New("alpha must be within [0, 1]")
)

// QueryParameters is the body of both backend operations (/search and
// /answer). A value is built fresh from the current UI state for every request
// and is never cached.
type QueryParameters struct {
	// Query is the user query text. It is sent trimmed.
	Query string `json:"query"`

	// TopK bounds the number of ranked items requested from the backend.
	TopK int `json:"top_k"`

	// Alpha blends lexical and semantic retrieval: 0 is lexical only,
	// 1 is semantic only.
	Alpha float64 `json:"alpha"`
}

// Normalized returns a copy of p with surrounding whitespace removed from
// the query.
func (p QueryParameters) Normalized() QueryParameters {
	p.Query = strings.TrimSpace(p.Query)
	return p
}

// IsEmpty reports whether the query is empty after trimming whitespace.
func (p QueryParameters) IsEmpty() bool {
	return strings.TrimSpace(p.Query) == ""
}

// Validate checks the parameter invariants: non-empty query, positive top_k
// and alpha inside [0, 1].
func (p QueryParameters) Validate() error {
	if p.IsEmpty() {
		return ErrEmptyQuery
	}
	if p.TopK < 1 {
		return ErrInvalidTopK
	}
	if math.IsNaN(p.Alpha) || p.Alpha < 0 || p.Alpha > 1 {
		return ErrInvalidAlpha
	}
	return nil
}

// Outcome labels of a finished backend query, as reported to metrics.
const (
	// QueryOutcomeApplied marks a completion that was rendered.
	QueryOutcomeApplied = "applied"
	// QueryOutcomeStale marks a completion discarded because a newer query
	// of the same kind had been started.
	QueryOutcomeStale = "stale"
	// QueryOutcomeFailed marks a rendered request failure.
	QueryOutcomeFailed = "failed"
)
