// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/utils"
	"github.com/MKhiriev/pali-search/models"
)

// Backend endpoint paths, relative to the base URL.
const (
	PathSearch = "/search"
	PathAnswer = "/answer"
)

type httpBackendAdapter struct {
	client  *utils.HTTPClient
	baseURL string

	logger *logger.Logger
}

// NewHTTPBackendAdapter constructs an HTTP/JSON implementation of
// [BackendAdapter]. The base URL is normalised (a missing scheme defaults to
// http, trailing slashes are dropped). An empty base URL is accepted: the
// adapter is still usable and every request fails with [ErrBaseURLNotSet].
//
// A zero cfg.RequestTimeout leaves requests without a client-side timeout.
// Requests are never retried.
//
// Returns an error if a non-empty base URL cannot be parsed.
func NewHTTPBackendAdapter(cfg config.ClientBackend, logger *logger.Logger) (BackendAdapter, error) {
	a := &httpBackendAdapter{client: utils.NewHTTPClient(), logger: logger}

	if strings.TrimSpace(cfg.BaseURL) != "" {
		baseURL, err := normalizeBaseURL(cfg.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("invalid backend base url: %w", err)
		}
		a.baseURL = baseURL
		a.client.SetBaseURL(baseURL)
	}

	a.client.SetTimeout(cfg.RequestTimeout)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// BaseURL implements [BackendAdapter].
func (h *httpBackendAdapter) BaseURL() string {
	return h.baseURL
}

// Search implements [BackendAdapter]. It POSTs {query, top_k, alpha} to
// POST /search. A 2xx body that carries an "error" field is a failure.
func (h *httpBackendAdapter) Search(ctx context.Context, params models.QueryParameters) (models.SearchResponse, error) {
	var out models.SearchResponse
	if err := h.post(ctx, PathSearch, params, &out); err != nil {
		return models.SearchResponse{}, err
	}
	if out.Error != nil && *out.Error != "" {
		return models.SearchResponse{}, fmt.Errorf("%w: %w: %s", ErrRequestFailure, ErrBackendReported, *out.Error)
	}

	return out, nil
}

// Answer implements [BackendAdapter]. It POSTs {query, top_k, alpha} to
// POST /answer.
func (h *httpBackendAdapter) Answer(ctx context.Context, params models.QueryParameters) (models.AnswerResponse, error) {
	var out models.AnswerResponse
	if err := h.post(ctx, PathAnswer, params, &out); err != nil {
		return models.AnswerResponse{}, err
	}
	if out.Error != nil && *out.Error != "" {
		return models.AnswerResponse{}, fmt.Errorf("%w: %w: %s", ErrRequestFailure, ErrBackendReported, *out.Error)
	}

	return out, nil
}

func (h *httpBackendAdapter) post(ctx context.Context, path string, params models.QueryParameters, out any) error {
	op := strings.TrimPrefix(path, "/")
	if h.baseURL == "" {
		return requestFailure(op, ErrBaseURLNotSet)
	}

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(params.Normalized()).
		Post(path)
	if err != nil {
		return requestFailure(op+" request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return err
	}

	body := bytes.TrimSpace(resp.Body())
	if len(body) == 0 || body[0] != '{' {
		return requestFailure("decode "+op+" response", fmt.Errorf("%w: body is not a JSON object", ErrInvalidResponse))
	}
	if err = json.Unmarshal(body, out); err != nil {
		return requestFailure("decode "+op+" response", fmt.Errorf("%w: %w", ErrInvalidResponse, err))
	}

	h.logger.Debug().
		Str("op", op).
		Int("status", resp.StatusCode()).
		Dur("duration", resp.Time()).
		Msg("backend request completed")

	return nil
}
