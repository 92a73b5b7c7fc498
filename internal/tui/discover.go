package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/models"
)

type authStartedMsg struct {
	device models.DeviceInfo
	err    error
}

// DiscoverModel runs a discovery, lists the devices it finds and starts PIN
// pairing with the selected one.
type DiscoverModel struct {
	ctx     context.Context
	devices service.ClientDeviceService

	found       []models.DeviceInfo
	idx         int
	running     bool
	starting    bool
	pairing     bool
	subscribeID uint16
	spinner     spinner.Model
	status      string
	errMsg      string
}

func NewDiscoverModel(ctx context.Context, devices service.ClientDeviceService) *DiscoverModel {
	s := spinner.New()
	s.Spinner = spinner.Dot
	return &DiscoverModel{ctx: ctx, devices: devices, spinner: s}
}

func (m *DiscoverModel) Init() tea.Cmd {
	if m.running {
		return m.spinner.Tick
	}
	return nil
}

func (m *DiscoverModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		if !m.running && !m.starting {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case discoveryStartedMsg:
		m.starting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		m.running = true
		m.subscribeID = msg.subscribeID
		m.found = nil
		m.idx = 0
		m.status = fmt.Sprintf("Discovery %d started", msg.subscribeID)
		return m, m.spinner.Tick
	case actionDoneMsg:
		if msg.page != pageDiscover {
			return m, nil
		}
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.running = false
		m.status = msg.status
		return m, nil
	case authStartedMsg:
		m.pairing = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			return m, nil
		}
		m.errMsg = ""
		req := pinRequest{DeviceID: msg.device.DeviceID, DeviceName: msg.device.DeviceName}
		return m, func() tea.Msg { return NavigateTo{Page: pagePin, Payload: req} }
	case eventMsg:
		if msg.event.Discovery != nil {
			m.onDiscoveryEvent(*msg.event.Discovery)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		return m, func() tea.Msg { return NavigateTo{Page: pageMenu} }
	case key.Matches(keyMsg, keys.up):
		m.idx = moveCursor(m.idx, -1, len(m.found))
	case key.Matches(keyMsg, keys.down):
		m.idx = moveCursor(m.idx, 1, len(m.found))
	case key.Matches(keyMsg, keys.discover):
		if m.starting {
			return m, nil
		}
		if m.running {
			return m, m.cmdStop()
		}
		m.starting = true
		m.status = ""
		return m, tea.Batch(m.spinner.Tick, m.cmdStart())
	case key.Matches(keyMsg, keys.enter):
		if m.pairing {
			return m, nil
		}
		if m.idx < 0 || m.idx >= len(m.found) {
			m.status = "Nothing selected"
			return m, nil
		}
		m.pairing = true
		m.status = "Opening auth session..."
		return m, m.cmdAuthenticate(m.found[m.idx])
	}
	return m, nil
}

func (m *DiscoverModel) onDiscoveryEvent(ev models.DiscoveryEvent) {
	if ev.SubscribeID != 0 && ev.SubscribeID != m.subscribeID {
		return
	}

	switch ev.Kind {
	case models.EventDeviceFound:
		if ev.Device == nil {
			return
		}
		for i, d := range m.found {
			if d.DeviceID == ev.Device.DeviceID {
				m.found[i] = *ev.Device
				return
			}
		}
		m.found = append(m.found, *ev.Device)
	case models.EventDiscoverySuccess:
		m.status = "Searching..."
	case models.EventDiscoveryFailed:
		m.running = false
		m.errMsg = fmt.Sprintf("Discovery failed (code %d)", ev.Code)
	case models.EventDiscoveryStopped:
		m.running = false
		m.status = "Discovery stopped"
		if ev.Reason != "" {
			m.status += ": " + ev.Reason
		}
	}
}

func (m *DiscoverModel) View() string {
	out := ""
	switch {
	case m.starting:
		out += m.spinner.View() + " Starting discovery...\n"
	case m.running:
		out += m.spinner.View() + " Discovering\n"
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

	if len(m.found) == 0 {
		out += "No devices found yet"
	} else {
		out += renderDeviceTable(m.found, m.idx)
	}

	hotKeys := "s: start discovery │ enter: pair │ ↑/↓: navigate │ esc: back"
	if m.running {
		hotKeys = "s: stop discovery │ enter: pair │ ↑/↓: navigate │ esc: back"
	}
	return renderPage("DISCOVER DEVICES", out, hotKeys)
}

func (m *DiscoverModel) cmdStart() tea.Cmd {
	ctx, svc := m.ctx, m.devices
	return func() tea.Msg {
		id, err := svc.StartDiscovery(ctx, "")
		return discoveryStartedMsg{subscribeID: id, err: err}
	}
}

func (m *DiscoverModel) cmdStop() tea.Cmd {
	ctx, svc := m.ctx, m.devices
	return func() tea.Msg {
		err := svc.StopDiscovery(ctx)
		return actionDoneMsg{page: pageDiscover, status: "Discovery stopped", err: err}
	}
}

func (m *DiscoverModel) cmdAuthenticate(device models.DeviceInfo) tea.Cmd {
	ctx, svc := m.ctx, m.devices
	return func() tea.Msg {
		err := svc.Authenticate(ctx, device.DeviceID)
		return authStartedMsg{device: device, err: err}
	}
}
