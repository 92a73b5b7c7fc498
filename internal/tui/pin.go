package tui

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/models"
)

// PinModel collects the PIN shown on the peer and follows the pairing to its
// end.
type PinModel struct {
	ctx     context.Context
	devices service.ClientDeviceService

	target     pinRequest
	input      textinput.Model
	submitting bool
	finished   bool
	status     string
	errMsg     string
}

func NewPinModel(ctx context.Context, devices service.ClientDeviceService) *PinModel {
	in := textinput.New()
	in.Placeholder = "000000"
	in.CharLimit = 6
	in.Width = 8
	in.Prompt = ""
	return &PinModel{ctx: ctx, devices: devices, input: in}
}

func (m *PinModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *PinModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case pinRequest:
		m.target = msg
		m.input.Reset()
		m.submitting = false
		m.finished = false
		m.errMsg = ""
		m.status = "Enter the PIN shown on the other device"
		return m, m.input.Focus()
	case actionDoneMsg:
		if msg.page != pagePin {
			return m, nil
		}
		m.submitting = false
		if msg.err != nil {
			m.errMsg = humanizeError(msg.err)
			m.input.Reset()
			return m, nil
		}
		m.errMsg = ""
		m.status = msg.status
		return m, nil
	case eventMsg:
		if auth := msg.event.Auth; auth != nil && auth.DeviceID == m.target.DeviceID {
			m.onAuthResult(*auth)
		}
		return m, nil
	}

	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(keyMsg, keys.esc):
		m.input.Blur()
		return m, func() tea.Msg { return NavigateTo{Page: pageDiscover} }
	case key.Matches(keyMsg, keys.enter):
		if m.submitting || m.finished {
			return m, nil
		}
		m.submitting = true
		m.errMsg = ""
		m.status = "Verifying..."
		return m, m.cmdVerify(m.input.Value())
	}

	if m.finished {
		return m, nil
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *PinModel) onAuthResult(res models.AuthResult) {
	if res.State != models.AuthRequestFinish {
		return
	}
	m.finished = true
	m.submitting = false
	m.input.Blur()
	if res.Code != models.CodeOK {
		m.errMsg = fmt.Sprintf("Pairing failed: %s", humanizeError(models.ErrorOf(res.Code)))
		m.status = ""
		return
	}
	m.errMsg = ""
	m.status = "Paired with " + valueOrDash(m.target.DeviceName)
}

func (m *PinModel) View() string {
	out := fmt.Sprintf("Device: %s (%s)\n\n", valueOrDash(m.target.DeviceName), valueOrDash(m.target.DeviceID))
	out += "PIN: [" + m.input.View() + "]\n"
	if m.status != "" {
		out += "\nStatus: " + m.status
	}
	if m.errMsg != "" {
		out += "\nError: " + m.errMsg
	}
	return renderPage("PAIR DEVICE", out, "enter: verify │ esc: back")
}

func (m *PinModel) cmdVerify(pin string) tea.Cmd {
	ctx, svc := m.ctx, m.devices
	return func() tea.Msg {
		err := svc.VerifyPin(ctx, pin)
		return actionDoneMsg{page: pagePin, status: "PIN accepted, joining group...", err: err}
	}
}
