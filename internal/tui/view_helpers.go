package tui

import (
	"strings"
	"unicode"

	"github.com/MKhiriev/pali-search/internal/render"
)

const uiDivider = "──────────────────────────────────────────────────────"

func renderPage(title, data, hotKeys string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n\n")

	if strings.TrimSpace(data) != "" {
		lines := strings.Split(data, "\n")
		for _, line := range lines {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
	} else {
		b.WriteString("  -\n")
	}

	b.WriteString("\n")
	b.WriteString("  ")
	b.WriteString(uiDivider)
	b.WriteString("\n")

	if strings.TrimSpace(hotKeys) != "" {
		b.WriteString("  ")
		b.WriteString(helpStyle.Render(hotKeys))
		b.WriteString("\n")
	}
	b.WriteString("  ")
	b.WriteString(helpStyle.Render("ctrl+c: quit"))

	return b.String()
}

// sanitize drops control characters other than line breaks and tabs so that
// backend text cannot emit terminal escape sequences.
func sanitize(s string) string {
	return strings.Map(func(r rune) rune {
		if r == '\n' || r == '\t' {
			return r
		}
		if unicode.IsControl(r) {
			return -1
		}
		return r
	}, s)
}

func renderRegion(title string, region render.Region, pending string) string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(title))
	if pending != "" {
		b.WriteString(" ")
		b.WriteString(pending)
	}
	b.WriteString("\n")

	if region.IsEmpty() {
		b.WriteString("-\n")
		return b.String()
	}

	for i, item := range region.Items {
		if i > 0 {
			b.WriteString("\n")
		}
		if item.Meta == render.LabelError {
			b.WriteString(errorStyle.Render(item.Meta))
		} else {
			b.WriteString(metaStyle.Render(sanitize(item.Meta)))
		}
		b.WriteString("\n")
		if !item.Placeholder {
			b.WriteString(sanitize(item.Body))
			b.WriteString("\n")
		}
	}

	return b.String()
}

