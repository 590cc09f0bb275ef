package service

import (
	"context"
	"time"

	"github.com/MKhiriev/pali-search/models"
)

// QueryClient is the front-end independent core of the query screen. It owns
// the display state (results, answer, citations, status) and mutates it in
// response to search and answer operations.
//
// Each operation is split into a synchronous Start step, which validates the
// parameters and shows the pending placeholder, and a blocking Finish step,
// which calls the backend and renders the outcome. Front ends that must stay
// responsive run Finish on another goroutine.
//
// Errors never escape an operation: failures are rendered into the affected
// region and reported in the returned [Outcome] for logging only.
type QueryClient interface {
	// StartSearch shows the searching placeholder in the results region and
	// clears the answer and citations regions. It returns false, leaving the
	// display untouched, when the query is empty after trimming.
	StartSearch(params models.QueryParameters) (Ticket, bool)

	// FinishSearch sends the search request described by t and, unless a
	// newer search was started meanwhile, renders its results and status.
	FinishSearch(ctx context.Context, t Ticket) Outcome

	// StartAnswer shows the answering placeholder in the answer region and
	// clears the citations region. Results are left as they are. It returns
	// false, leaving the display untouched, when the query is empty.
	StartAnswer(params models.QueryParameters) (Ticket, bool)

	// FinishAnswer sends the answer request described by t and, unless a
	// newer answer was started meanwhile, renders the answer and citations.
	FinishAnswer(ctx context.Context, t Ticket) Outcome

	// Search is StartSearch followed by FinishSearch.
	Search(ctx context.Context, params models.QueryParameters) Outcome

	// Answer is StartAnswer followed by FinishAnswer.
	Answer(ctx context.Context, params models.QueryParameters) Outcome

	// SetAlpha updates the blend factor label and returns it. It never
	// issues a request.
	SetAlpha(alpha float64) string

	// Snapshot returns a copy of the current display state.
	Snapshot() Display
}

// QueryObserver receives one notification per finished backend query.
// items is the number of results or citations received.
type QueryObserver interface {
	ObserveQuery(kind, outcome string, duration time.Duration, items int)
}

// AppInfoService exposes build and version information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
	GetBuildInfo() models.AppBuildInfo
}
