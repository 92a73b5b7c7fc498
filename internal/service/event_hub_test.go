// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-device-keeper/internal/logger"
	"github.com/MKhiriev/go-device-keeper/models"
)

func TestEventHub_DeliversToOwnerOnly(t *testing.T) {
	hub := NewEventHub(4, logger.Nop())

	a, cancelA, err := hub.Subscribe("owner-a")
	require.NoError(t, err)
	defer cancelA()
	b, cancelB, err := hub.Subscribe("owner-b")
	require.NoError(t, err)
	defer cancelB()

	hub.NotifyDeviceState(models.DeviceStateEvent{OwnerID: "owner-a", State: models.DeviceStateOnline})

	select {
	case ev := <-a:
		assert.Equal(t, models.EventTypeDeviceState, ev.Type)
		assert.Equal(t, "owner-a", ev.OwnerID)
	default:
		t.Fatal("owner-a got no event")
	}
	assert.Len(t, b, 0)
}

func TestEventHub_EventTypes(t *testing.T) {
	hub := NewEventHub(8, logger.Nop())
	ch, cancel, err := hub.Subscribe("owner")
	require.NoError(t, err)
	defer cancel()

	hub.OnDiscoveryEvent(models.DiscoveryEvent{OwnerID: "owner", Kind: models.EventDeviceFound})
	hub.OnAuthResult(models.AuthResult{OwnerID: "owner", DeviceID: "dev"})
	hub.OnCredentialResult(models.CredentialResult{OwnerID: "owner", Action: 1})

	var types []string
	for i := 0; i < 3; i++ {
		types = append(types, (<-ch).Type)
	}
	assert.Equal(t, []string{models.EventTypeDiscovery, models.EventTypeAuthResult, models.EventTypeCredential}, types)
}

func TestEventHub_FullBufferDrops(t *testing.T) {
	hub := NewEventHub(1, logger.Nop())
	ch, cancel, err := hub.Subscribe("owner")
	require.NoError(t, err)
	defer cancel()

	hub.OnAuthResult(models.AuthResult{OwnerID: "owner", Code: 1})
	hub.OnAuthResult(models.AuthResult{OwnerID: "owner", Code: 2})

	ev := <-ch
	assert.Equal(t, 1, ev.Payload.(models.AuthResult).Code)
	assert.Len(t, ch, 0)
}

func TestEventHub_CancelClosesStream(t *testing.T) {
	hub := NewEventHub(1, logger.Nop())
	ch, cancel, err := hub.Subscribe("owner")
	require.NoError(t, err)
	assert.Equal(t, 1, hub.Subscribers("owner"))

	cancel()
	cancel()

	_, open := <-ch
	assert.False(t, open)
	assert.Equal(t, 0, hub.Subscribers("owner"))

	// no subscriber left, publishing is a no-op
	hub.OnAuthResult(models.AuthResult{OwnerID: "owner"})
}

func TestEventHub_Close(t *testing.T) {
	hub := NewEventHub(1, logger.Nop())
	ch, cancel, err := hub.Subscribe("owner")
	require.NoError(t, err)

	hub.Close()
	_, open := <-ch
	assert.False(t, open)

	// cancel after Close must not close the channel twice
	cancel()

	_, _, err = hub.Subscribe("owner")
	assert.ErrorIs(t, err, ErrEventHubClosed)
}
