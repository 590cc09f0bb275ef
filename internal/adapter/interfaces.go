// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport layer used to reach the hybrid
// search and question-answering backend.
//
// The primary abstraction is [BackendAdapter], which decouples the query
// client from the underlying protocol. The package ships an HTTP/JSON
// implementation ([NewHTTPBackendAdapter]).
//
// Every failure returned by an adapter wraps [ErrRequestFailure], so callers
// handle network errors, non-2xx statuses and undecodable bodies uniformly
// with a single [errors.Is] check.
package adapter

import (
	"context"

	"github.com/MKhiriev/pali-search/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/backend_adapter_mock.go -package=mock

// BackendAdapter defines communication with the retrieval/QA backend.
type BackendAdapter interface {
	// Search sends params to the backend search operation and returns the
	// decoded ranked results. Errors wrap [ErrRequestFailure].
	Search(ctx context.Context, params models.QueryParameters) (models.SearchResponse, error)

	// Answer sends params to the backend answer operation and returns the
	// generated answer with its citations. Errors wrap [ErrRequestFailure].
	Answer(ctx context.Context, params models.QueryParameters) (models.AnswerResponse, error)

	// BaseURL returns the normalised backend base URL, or an empty string
	// when none is configured.
	BaseURL() string
}
