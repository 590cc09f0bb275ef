// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

var (
	// ErrTemplateParse is returned by [NewHandler] when the embedded
	// templates cannot be parsed.
	ErrTemplateParse = errors.New("cannot parse page templates")
)
