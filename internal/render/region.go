// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package render

import (
	"html/template"
	"strings"
)

// Item is one entry of a region: a metadata line and a body line. Both
// fields hold raw text. Placeholder items (pending and empty-set markers)
// consist of the metadata line only.
type Item struct {
	Meta        string
	Body        string
	Placeholder bool
}

// Region is the content of a list display region (results or citations).
// The zero value is an empty region, i.e. a cleared display.
type Region struct {
	Items []Item
}

// IsEmpty reports whether the region has no items at all.
func (r Region) IsEmpty() bool {
	return len(r.Items) == 0
}

// HTML renders the region as markup. Meta and Body are escaped. Every
// non-placeholder item gets a body element, even when the body is empty.
func (r Region) HTML() template.HTML {
	var b strings.Builder
	for _, it := range r.Items {
		b.WriteString(`<div class="item"><div class="meta">`)
		b.WriteString(Escape(it.Meta))
		b.WriteString(`</div>`)
		if !it.Placeholder {
			b.WriteString(`<div class="snippet">`)
			b.WriteString(Escape(it.Body))
			b.WriteString(`</div>`)
		}
		b.WriteString(`</div>`)
	}
	return template.HTML(b.String())
}

// Answer is the answer display region. Text is inserted as plain text
// content and is never converted to markup.
type Answer struct {
	Text string
}
