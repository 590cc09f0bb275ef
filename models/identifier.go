// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Identifier is a corpus identifier (book, paragraph or document id).
// The backend may encode identifiers either as JSON strings or as numbers;
// both decode into the same textual form.
type Identifier string

// UnmarshalJSON accepts a JSON string, a JSON number or null.
func (id *Identifier) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}

	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = Identifier(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return fmt.Errorf("identifier must be a string or a number: %w", err)
	}
	*id = Identifier(n.String())
	return nil
}

// String returns the identifier text.
func (id Identifier) String() string {
	return string(id)
}
