package service

import "errors"

var (
	// ErrTicketKindMismatch is returned in an [Outcome] when a ticket is
	// finished by the operation of the other kind.
	ErrTicketKindMismatch = errors.New("ticket kind does not match operation")
)
