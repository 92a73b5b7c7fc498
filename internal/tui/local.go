package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/models"
)

// LocalModel shows the identity of the node the service runs on.
type LocalModel struct {
	ctx     context.Context
	devices service.ClientDeviceService

	local  models.LocalDeviceInfo
	loaded bool
	status string
	errMsg string
}

func NewLocalModel(ctx context.Context, devices service.ClientDeviceService) *LocalModel {
	return &LocalModel{ctx: ctx, devices: devices}
}

func (m *LocalModel) Init() tea.Cmd {
	ctx, svc := m.ctx, m.devices
	return func() tea.Msg {
		local, err := svc.LocalDevice(ctx)
		return localLoadedMsg{local: local, err: err}
	}
}

func (m *LocalModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case localLoadedMsg:
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.local = msg.local
		m.loaded = true
		return m, nil
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.esc):
			return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
		case key.Matches(msg, keys.refresh):
			return m, m.Init()
		case key.Matches(msg, keys.copy):
			if !m.loaded {
				m.status = "Nothing to copy"
				return m, nil
			}
			if err := writeClipboard(m.local.UDID); err != nil {
				m.errMsg = fmt.Sprintf("Copy failed: %v", err)
				return m, nil
			}
			m.status = "UDID copied"
		}
	}
	return m, nil
}

func (m *LocalModel) View() string {
	var b strings.Builder
	if m.errMsg != "" {
		b.WriteString("Error: " + m.errMsg + "\n\n")
	}
	if m.status != "" {
		b.WriteString("Status: " + m.status + "\n\n")
	}

	if !m.loaded {
		b.WriteString("Loading...")
	} else {
		b.WriteString("Field       │ Value\n")
		b.WriteString("────────────┼──────────────────────────────────────────\n")
		b.WriteString(fmt.Sprintf("Name        │ %s\n", valueOrDash(m.local.DeviceName)))
		b.WriteString(fmt.Sprintf("Device id   │ %s\n", valueOrDash(m.local.DeviceID)))
		b.WriteString(fmt.Sprintf("UDID        │ %s\n", valueOrDash(m.local.UDID)))
		b.WriteString(fmt.Sprintf("Network id  │ %s\n", valueOrDash(m.local.NetworkID)))
		b.WriteString(fmt.Sprintf("Type        │ %d", m.local.DeviceTypeID))
	}

	return renderPage("LOCAL DEVICE", b.String(), "c: copy udid │ r: reload │ esc: back")
}
