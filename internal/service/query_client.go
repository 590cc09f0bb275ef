// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/pali-search/internal/adapter"
	"github.com/MKhiriev/pali-search/internal/config"
	"github.com/MKhiriev/pali-search/internal/logger"
	"github.com/MKhiriev/pali-search/internal/render"
	"github.com/MKhiriev/pali-search/models"
)

// Kind identifies the operation a ticket belongs to. Sequence numbers are
// kept per kind, so a search never makes an answer stale and vice versa.
type Kind string

const (
	KindSearch Kind = "search"
	KindAnswer Kind = "answer"
)

// Ticket identifies one started operation.
type Ticket struct {
	Kind   Kind
	Seq    uint64
	Params models.QueryParameters
}

// Outcome describes how a finished operation affected the display.
type Outcome struct {
	// Applied is true when the completion was rendered.
	Applied bool
	// Stale is true when a newer operation of the same kind had already been
	// started and the completion was discarded.
	Stale bool
	// Err is the request failure, if any. It is already rendered when
	// Applied is true.
	Err error
}

// Display is the state of the query screen.
type Display struct {
	Results   render.Region
	Answer    render.Answer
	Citations render.Region
	// Status is empty until the first successful search.
	Status     string
	AlphaLabel string
	// APIBase is the backend base URL or the "not set" marker.
	APIBase string
}

type queryClient struct {
	adapter  adapter.BackendAdapter
	observer QueryObserver

	mu      sync.Mutex
	display Display
	seq     map[Kind]uint64

	logger *logger.Logger
}

// NewQueryClient returns a [QueryClient] talking to backendAdapter. ui seeds
// the alpha label. observer may be nil.
func NewQueryClient(backendAdapter adapter.BackendAdapter, ui config.ClientUI, observer QueryObserver, logger *logger.Logger) QueryClient {
	if observer == nil {
		observer = nopObserver{}
	}

	return &queryClient{
		adapter:  backendAdapter,
		observer: observer,
		display: Display{
			AlphaLabel: render.AlphaLabel(ui.DefaultAlpha),
			APIBase:    render.BaseURLLabel(backendAdapter.BaseURL()),
		},
		seq:    make(map[Kind]uint64, 2),
		logger: logger,
	}
}

func (c *queryClient) StartSearch(params models.QueryParameters) (Ticket, bool) {
	params = params.Normalized()
	if params.IsEmpty() {
		return Ticket{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.display.Results = render.Pending(render.LabelSearching)
	c.display.Answer = render.Answer{}
	c.display.Citations = render.Region{}

	return c.issue(KindSearch, params), true
}

func (c *queryClient) FinishSearch(ctx context.Context, t Ticket) Outcome {
	if t.Kind != KindSearch {
		return Outcome{Err: ErrTicketKindMismatch}
	}

	start := time.Now()
	resp, err := c.adapter.Search(ctx, t.Params)
	elapsed := time.Since(start)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isLatest(t) {
		c.discard(t, elapsed, err)
		return Outcome{Stale: true, Err: err}
	}

	if err != nil {
		c.display.Results = render.Failure(err)
		c.fail(t, elapsed, err)
		return Outcome{Applied: true, Err: err}
	}

	results := resp.GetResults()
	c.display.Status = render.StatusLine(resp.GetQueryLang(), t.Params.Alpha)
	c.display.Results = render.Results(results)
	c.apply(t, elapsed, len(results))

	return Outcome{Applied: true}
}

func (c *queryClient) StartAnswer(params models.QueryParameters) (Ticket, bool) {
	params = params.Normalized()
	if params.IsEmpty() {
		return Ticket{}, false
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.display.Answer = render.Answer{Text: render.LabelAnswering}
	c.display.Citations = render.Region{}

	return c.issue(KindAnswer, params), true
}

func (c *queryClient) FinishAnswer(ctx context.Context, t Ticket) Outcome {
	if t.Kind != KindAnswer {
		return Outcome{Err: ErrTicketKindMismatch}
	}

	start := time.Now()
	resp, err := c.adapter.Answer(ctx, t.Params)
	elapsed := time.Since(start)

	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.isLatest(t) {
		c.discard(t, elapsed, err)
		return Outcome{Stale: true, Err: err}
	}

	if err != nil {
		c.display.Answer = render.FailureAnswer(err)
		c.fail(t, elapsed, err)
		return Outcome{Applied: true, Err: err}
	}

	citations := resp.GetCitations()
	c.display.Answer = render.Answer{Text: resp.GetAnswer()}
	c.display.Citations = render.Citations(citations)
	c.apply(t, elapsed, len(citations))

	return Outcome{Applied: true}
}

func (c *queryClient) Search(ctx context.Context, params models.QueryParameters) Outcome {
	t, ok := c.StartSearch(params)
	if !ok {
		return Outcome{}
	}
	return c.FinishSearch(ctx, t)
}

func (c *queryClient) Answer(ctx context.Context, params models.QueryParameters) Outcome {
	t, ok := c.StartAnswer(params)
	if !ok {
		return Outcome{}
	}
	return c.FinishAnswer(ctx, t)
}

func (c *queryClient) SetAlpha(alpha float64) string {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.display.AlphaLabel = render.AlphaLabel(alpha)
	return c.display.AlphaLabel
}

func (c *queryClient) Snapshot() Display {
	c.mu.Lock()
	defer c.mu.Unlock()

	d := c.display
	d.Results.Items = append([]render.Item(nil), c.display.Results.Items...)
	d.Citations.Items = append([]render.Item(nil), c.display.Citations.Items...)

	return d
}

// issue must be called with mu held.
func (c *queryClient) issue(kind Kind, params models.QueryParameters) Ticket {
	c.seq[kind]++
	return Ticket{Kind: kind, Seq: c.seq[kind], Params: params}
}

// isLatest must be called with mu held.
func (c *queryClient) isLatest(t Ticket) bool {
	return c.seq[t.Kind] == t.Seq
}

func (c *queryClient) apply(t Ticket, elapsed time.Duration, items int) {
	c.observer.ObserveQuery(string(t.Kind), models.QueryOutcomeApplied, elapsed, items)
	c.logger.Debug().
		Str("kind", string(t.Kind)).
		Uint64("seq", t.Seq).
		Int("items", items).
		Dur("duration", elapsed).
		Msg("query completed")
}

func (c *queryClient) fail(t Ticket, elapsed time.Duration, err error) {
	c.observer.ObserveQuery(string(t.Kind), models.QueryOutcomeFailed, elapsed, 0)
	c.logger.Err(err).
		Str("kind", string(t.Kind)).
		Uint64("seq", t.Seq).
		Dur("duration", elapsed).
		Msg("query failed")
}

func (c *queryClient) discard(t Ticket, elapsed time.Duration, err error) {
	c.observer.ObserveQuery(string(t.Kind), models.QueryOutcomeStale, elapsed, 0)
	c.logger.Debug().
		Err(err).
		Str("kind", string(t.Kind)).
		Uint64("seq", t.Seq).
		Uint64("latest", c.seq[t.Kind]).
		Msg("stale query completion discarded")
}

type nopObserver struct{}

func (nopObserver) ObserveQuery(string, string, time.Duration, int) {}
