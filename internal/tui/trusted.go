package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/models"
)

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

// TrustedModel lists the trusted devices and removes trust on request.
type TrustedModel struct {
	ctx     context.Context
	devices service.ClientDeviceService

	items   []models.DeviceInfo
	idx     int
	loading bool
	spinner spinner.Model
	status  string
	errMsg  string

	showConfirm bool
	confirm     confirmModel
	pending     string
}

func NewTrustedModel(ctx context.Context, devices service.ClientDeviceService) *TrustedModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	return &TrustedModel{ctx: ctx, devices: devices, spinner: s, loading: true}
}

func (m *TrustedModel) Init() tea.Cmd {
	m.loading = true
	return tea.Batch(m.spinner.Tick, m.cmdLoad())
}

func (m *TrustedModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case devicesLoadedMsg:
		m.loading = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.items = msg.devices
		m.idx = moveCursor(m.idx, 0, len(m.items))
		return m, nil
	case eventMsg:
		// any change of a trusted node reloads the list
		if msg.event.DeviceState != nil {
			return m, m.cmdLoad()
		}
		return m, nil
	case actionDoneMsg:
		if msg.page != pageTrusted {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		m.loading = true
		return m, m.cmdLoad()
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	if m.showConfirm {
		switch {
		case key.Matches(keyMsg, keys.yes):
			m.showConfirm = false
			return m, m.cmdUnauthenticate(m.pending)
		case key.Matches(keyMsg, keys.no), key.Matches(keyMsg, keys.esc):
			m.showConfirm = false
			m.pending = ""
		}
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(keyMsg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.items))
	case key.Matches(keyMsg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.items))
	case key.Matches(keyMsg, keys.refresh):
		m.loading = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdLoad())
	case key.Matches(keyMsg, keys.unauth):
		item, ok := m.current()
		if !ok {
			m.status = "Nothing selected"
			return m, nil
		}
		m.pending = item.DeviceID
		m.confirm = confirmModel{message: valueOrDash(item.DeviceName)}
		m.showConfirm = true
	case key.Matches(keyMsg, keys.copy):
		item, ok := m.current()
		if !ok {
			m.status = "Nothing to copy"
			return m, nil
		}
		if err := writeClipboard(item.DeviceID); err != nil {
			m.errMsg = fmt.Sprintf("Copy failed: %v", err)
			return m, nil
		}
		m.status = "Device id copied"
	}
	return m, nil
}

func (m *TrustedModel) View() string {
	if m.showConfirm {
		return m.confirm.View()
	}

	out := ""
	if m.loading {
		out += m.spinner.View() + " Loading devices...\n"
	}
	if m.errMsg != "" {
		out += "Error: " + m.errMsg + "\n"
	}
	if m.status != "" {
		out += "Status: " + m.status + "\n"
	}
	if out != "" {
		out += "\n"
	}

	if len(m.items) == 0 {
		out += "No trusted devices"
	} else {
		out += renderDeviceTable(m.items, m.idx)
	}

	return renderPage("TRUSTED DEVICES", out, "r: reload │ d: remove trust │ c: copy id │ ↑/↓: navigate │ esc: back")
}

func (m *TrustedModel) current() (models.DeviceInfo, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.DeviceInfo{}, false
	}
	return m.items[m.idx], true
}

func (m *TrustedModel) cmdLoad() tea.Cmd {
	ctx, svc := m.ctx, m.devices
	return func() tea.Msg {
		devices, err := svc.TrustedDevices(ctx)
		return devicesLoadedMsg{devices: devices, err: err}
	}
}

func (m *TrustedModel) cmdUnauthenticate(deviceID string) tea.Cmd {
	ctx, svc := m.ctx, m.devices
	return func() tea.Msg {
		err := svc.Unauthenticate(ctx, deviceID)
		return actionDoneMsg{page: pageTrusted, status: "Trust removed", err: err}
	}
}
