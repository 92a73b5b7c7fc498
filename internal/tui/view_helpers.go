package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-device-keeper/models"
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

	return appStyle.Render(b.String())
}

// renderDeviceTable renders devices as a table with a cursor on row idx.
func renderDeviceTable(devices []models.DeviceInfo, idx int) string {
	nameWidth := lipgloss.Width("Name")
	for _, d := range devices {
		if w := lipgloss.Width(fitText(d.DeviceName, 24)); w > nameWidth {
			nameWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("ID   │ %-*s │ %-16s │ %s\n", nameWidth, "Name", "Device", "Form"))
	b.WriteString("─────┼─" + strings.Repeat("─", nameWidth) + "─┼──────────────────┼──────────\n")
	for i, d := range devices {
		cursor := " "
		if i == idx {
			cursor = ">"
		}
		b.WriteString(fmt.Sprintf(
			"%s %-3d│ %-*s │ %-16s │ %s\n",
			cursor,
			i+1,
			nameWidth,
			fitText(valueOrDash(d.DeviceName), 24),
			fitText(d.DeviceID, 16),
			authFormLabel(d.AuthForm),
		))
	}
	return strings.TrimRight(b.String(), "\n")
}

func authFormLabel(f models.AuthForm) string {
	switch f {
	case models.AuthFormPeerToPeer:
		return "peer"
	case models.AuthFormIdenticalAccount:
		return "account"
	case models.AuthFormAcrossAccount:
		return "across"
	default:
		return "-"
	}
}

func valueOrDash(v string) string {
	if strings.TrimSpace(v) == "" {
		return "-"
	}
	return v
}

func fitText(v string, max int) string {
	if max <= 0 || len(v) <= max {
		return v
	}
	if max <= 3 {
		return v[:max]
	}
	return v[:max-3] + "..."
}

func moveCursor(idx, delta, n int) int {
	idx += delta
	if idx >= n {
		idx = n - 1
	}
	if idx < 0 {
		idx = 0
	}
	return idx
}
