package tui

import (
	"github.com/MKhiriev/pali-search/internal/service"
)

// searchDoneMsg is produced once a search request completes. The outcome has
// already been applied to (or discarded by) the query client.
type searchDoneMsg struct {
	ticket  service.Ticket
	outcome service.Outcome
}

// answerDoneMsg is the answer counterpart of searchDoneMsg.
type answerDoneMsg struct {
	ticket  service.Ticket
	outcome service.Outcome
}

type copiedMsg struct{}

type copyFailedMsg struct {
	err error
}

type clearStatusMsg struct{}
