// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains response messages shared by the web frontend
// handlers.
package app

const (
	// MsgInvalidForm is returned when the partial request body is not a
	// valid form.
	MsgInvalidForm = "invalid form"

	// MsgInternalServerError is returned when a page or partial cannot be
	// rendered.
	MsgInternalServerError = "internal server error"
)
