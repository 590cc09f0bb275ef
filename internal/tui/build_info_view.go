// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/pali-search/models"
)

func renderBuildInfoWindow(info models.AppBuildInfo, apiBase string) string {
	var b strings.Builder

	b.WriteString("Application: pali-search\n")
	b.WriteString("Version: ")
	b.WriteString(info.Version())
	b.WriteString("\n")
	b.WriteString("Date: ")
	b.WriteString(info.Date())
	b.WriteString("\n")
	b.WriteString("Commit: ")
	b.WriteString(info.Commit())
	b.WriteString("\n")
	b.WriteString("API: ")
	b.WriteString(apiBase)

	return renderPage("ABOUT", overlayBoxStyle.Render(b.String()), "esc: back")
}
