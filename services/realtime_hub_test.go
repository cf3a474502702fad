package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRealtimeHubRegisterUnregister(t *testing.T) {
	hub := NewRealtimeHub()

	a := &WSClient{UserID: 1}
	b := &WSClient{UserID: 1}
	other := &WSClient{UserID: 2}

	hub.Register(a)
	hub.Register(b)
	hub.Register(other)

	assert.Equal(t, 2, hub.ClientCount(1))
	assert.Equal(t, 1, hub.ClientCount(2))

	hub.Unregister(a)
	assert.Equal(t, 1, hub.ClientCount(1))

	hub.Unregister(b)
	assert.Equal(t, 0, hub.ClientCount(1))
	assert.Equal(t, 1, hub.ClientCount(2))
}

func TestRealtimeHubBroadcastNoClients(t *testing.T) {
	hub := NewRealtimeHub()

	// no sockets for this user; must be a no-op
	hub.Broadcast(42, map[string]any{"type": "score"})
	assert.Equal(t, 0, hub.ClientCount(42))
}
