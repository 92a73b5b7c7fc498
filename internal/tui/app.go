package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-device-keeper/internal/service"
	"github.com/MKhiriev/go-device-keeper/models"
)

// streamRetryDelay is how long the console waits before reopening a closed
// event stream.
const streamRetryDelay = 5 * time.Second

type refreshMsg struct {
	update service.DeviceListUpdate
}

type reopenStreamMsg struct{}

// RootModel is a TUI router:
// 1) keeps active page
// 2) handles global Ctrl+C quit
// 3) handles NavigateTo messages
// 4) reads the event stream and the refresh job and hands their results to
// every page
// 5) delegates all other messages to the active page
type RootModel struct {
	ctx      context.Context
	services *service.ClientServices

	pages   map[string]tea.Model
	current string

	buildInfo     models.AppBuildInfo
	showBuildInfo bool
	notice        string
	showError     bool
	errorOverlay  errorOverlayModel
	streamDown    bool

	quitByUser bool
}

// NewRootModel registers all pages and opens startPage.
func NewRootModel(ctx context.Context, services *service.ClientServices, pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		ctx:       ctx,
		services:  services,
		pages:     pages,
		current:   startPage,
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	cmds := []tea.Cmd{r.cmdOpenEvents(), r.cmdWaitRefresh()}
	if page := r.pages[r.current]; page != nil {
		cmds = append(cmds, page.Init())
	}
	return tea.Batch(cmds...)
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	// Global hotkey for every page.
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			r.quitByUser = true
			return r, tea.Quit
		case "v":
			if r.current == pageMenu {
				r.showBuildInfo = !r.showBuildInfo
				return r, nil
			}
		case "esc", "enter":
			if r.showError {
				r.showError = false
				return r, nil
			}
			if r.showBuildInfo && key.String() == "esc" {
				r.showBuildInfo = false
				return r, nil
			}
		}

		if r.showBuildInfo || r.showError {
			return r, nil
		}
	}

	switch msg := msg.(type) {
	case NavigateTo:
		next, exists := r.pages[msg.Page]
		if !exists {
			return r, nil
		}
		r.showBuildInfo = false
		r.current = msg.Page

		cmd := next.Init()
		if msg.Payload != nil {
			payload := msg.Payload
			cmd = tea.Batch(cmd, func() tea.Msg { return payload })
		}
		return r, cmd

	case eventsOpenedMsg:
		if r.streamDown {
			r.streamDown = false
			r.notice = ""
		}
		return r, waitForEvent(msg.events)

	case eventMsg:
		r.noteEvent(msg.event)
		return r, tea.Batch(r.broadcast(msg), waitForEvent(msg.source))

	case streamClosedMsg:
		// the overlay is shown once per outage, retries stay quiet
		if msg.err != nil && !r.streamDown {
			r.errorOverlay = errorOverlayModel{message: humanizeError(msg.err)}
			r.showError = true
		}
		r.streamDown = true
		r.notice = "Event stream closed, reconnecting..."
		return r, tea.Tick(streamRetryDelay, func(time.Time) tea.Msg { return reopenStreamMsg{} })

	case reopenStreamMsg:
		return r, r.cmdOpenEvents()

	case refreshMsg:
		cmd := r.deliver(pageTrusted, devicesLoadedMsg{devices: msg.update.Devices, err: msg.update.Err})
		return r, tea.Batch(cmd, r.cmdWaitRefresh())
	}

	return r, r.deliver(r.current, msg)
}

func (r RootModel) View() string {
	if r.showBuildInfo {
		return renderBuildInfoWindow(r.buildInfo)
	}
	if r.showError {
		return r.errorOverlay.View()
	}

	page := r.pages[r.current]
	if page == nil {
		return renderPage("DEVICE KEEPER", "", "")
	}
	if r.notice == "" {
		return page.View()
	}
	return appStyle.Render(noticeStyle.Render(r.notice)) + "\n" + page.View()
}

// noteEvent keeps the banner for events the user has to act on regardless
// of the open page.
func (r *RootModel) noteEvent(ev service.ClientEvent) {
	switch {
	case ev.Auth != nil && ev.Auth.State == models.AuthResponseShow && ev.Auth.PinCode != 0:
		r.notice = fmt.Sprintf("Pairing request from %s, PIN: %06d", ev.Auth.DeviceID, ev.Auth.PinCode)
	case ev.Auth != nil && ev.Auth.State == models.AuthResponseFinish:
		if ev.Auth.Code == models.CodeOK {
			r.notice = "Paired with " + ev.Auth.DeviceID
		} else {
			r.notice = fmt.Sprintf("Pairing with %s failed (code %d)", ev.Auth.DeviceID, ev.Auth.Code)
		}
	case ev.DeviceState != nil:
		r.notice = fmt.Sprintf("%s is %s", valueOrDash(ev.DeviceState.Device.DeviceName), ev.DeviceState.State)
	case ev.Credential != nil:
		r.notice = fmt.Sprintf("Credential action %d finished", ev.Credential.Action)
	}
}

func (r RootModel) deliver(page string, msg tea.Msg) tea.Cmd {
	model := r.pages[page]
	if model == nil {
		return nil
	}
	updated, cmd := model.Update(msg)
	r.pages[page] = updated
	return cmd
}

func (r RootModel) broadcast(msg tea.Msg) tea.Cmd {
	cmds := make([]tea.Cmd, 0, len(r.pages))
	for name := range r.pages {
		cmds = append(cmds, r.deliver(name, msg))
	}
	return tea.Batch(cmds...)
}

func (r RootModel) cmdOpenEvents() tea.Cmd {
	ctx, svc := r.ctx, r.services.Devices
	return func() tea.Msg {
		events, err := svc.Events(ctx)
		if err != nil {
			return streamClosedMsg{err: err}
		}
		return eventsOpenedMsg{events: events}
	}
}

func waitForEvent(events <-chan service.ClientEvent) tea.Cmd {
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return streamClosedMsg{}
		}
		return eventMsg{event: ev, source: events}
	}
}

func (r RootModel) cmdWaitRefresh() tea.Cmd {
	updates := r.services.RefreshJob.Updates()
	return func() tea.Msg {
		return refreshMsg{update: <-updates}
	}
}
