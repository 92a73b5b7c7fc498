package service

import (
	"sync"

	"github.com/MKhiriev/go-device-keeper/internal/credential"
	"github.com/MKhiriev/go-device-keeper/internal/discovery"
	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/internal/pairing"
	"github.com/MKhiriev/go-device-keeper/internal/presence"
	"github.com/MKhiriev/go-device-keeper/models"
)

// DefaultEventBuffer is the per-subscriber channel capacity.
const DefaultEventBuffer = 64

var (
	_ presence.Notifier             = (*EventHub)(nil)
	_ discovery.Listener            = (*EventHub)(nil)
	_ pairing.AuthListener          = (*EventHub)(nil)
	_ credential.CredentialListener = (*EventHub)(nil)
)

// EventHub turns component callbacks into [models.Event] values and fans
// them out to the subscribers of the event's owner. Delivery never blocks
// the component: an event for a subscriber whose buffer is full is dropped.
type EventHub struct {
	mu     sync.RWMutex
	subs   map[string]map[uint64]chan models.Event
	nextID uint64
	buffer int
	closed bool

	logger *logger.Logger
}

func NewEventHub(buffer int, log *logger.Logger) *EventHub {
	if buffer <= 0 {
		buffer = DefaultEventBuffer
	}
	return &EventHub{
		subs:   make(map[string]map[uint64]chan models.Event),
		buffer: buffer,
		logger: log.WithComponent("event-hub"),
	}
}

// Subscribe returns the event stream of ownerID and the function that ends
// the subscription and closes the stream. The cancel function may be called
// more than once.
func (h *EventHub) Subscribe(ownerID string) (<-chan models.Event, func(), error) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if h.closed {
		return nil, nil, ErrEventHubClosed
	}

	h.nextID++
	id := h.nextID
	ch := make(chan models.Event, h.buffer)
	if h.subs[ownerID] == nil {
		h.subs[ownerID] = make(map[uint64]chan models.Event)
	}
	h.subs[ownerID][id] = ch

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			h.mu.Lock()
			defer h.mu.Unlock()
			if sub, ok := h.subs[ownerID][id]; ok {
				delete(h.subs[ownerID], id)
				if len(h.subs[ownerID]) == 0 {
					delete(h.subs, ownerID)
				}
				close(sub)
			}
		})
	}
	return ch, cancel, nil
}

// Subscribers returns how many streams ownerID has open.
func (h *EventHub) Subscribers(ownerID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subs[ownerID])
}

// Close ends every subscription. Later events are discarded.
func (h *EventHub) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.closed = true
	for owner, subs := range h.subs {
		for _, ch := range subs {
			close(ch)
		}
		delete(h.subs, owner)
	}
}

func (h *EventHub) publish(ev models.Event) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, ch := range h.subs[ev.OwnerID] {
		select {
		case ch <- ev:
		default:
			h.logger.Warn().
				Str("func", "*EventHub.publish").
				Str("owner_id", ev.OwnerID).
				Str("type", ev.Type).
				Msg("subscriber buffer full, event dropped")
		}
	}
}

func (h *EventHub) NotifyDeviceState(ev models.DeviceStateEvent) {
	h.publish(models.Event{Type: models.EventTypeDeviceState, OwnerID: ev.OwnerID, Payload: ev})
}

func (h *EventHub) OnDiscoveryEvent(ev models.DiscoveryEvent) {
	h.publish(models.Event{Type: models.EventTypeDiscovery, OwnerID: ev.OwnerID, Payload: ev})
}

func (h *EventHub) OnAuthResult(res models.AuthResult) {
	h.publish(models.Event{Type: models.EventTypeAuthResult, OwnerID: res.OwnerID, Payload: res})
}

func (h *EventHub) OnCredentialResult(res models.CredentialResult) {
	h.publish(models.Event{Type: models.EventTypeCredential, OwnerID: res.OwnerID, Payload: res})
}
