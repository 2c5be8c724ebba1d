// Package sse fans committed room mutations out to subscribed clients.
package sse

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
)

const (
	// clientBufferSize is the buffer size for subscriber channels
	clientBufferSize = 10

	// sendTimeout bounds how long a publish waits on a slow subscriber
	// before skipping it.
	sendTimeout = time.Second
)

// Broker tracks subscribers per room and re-emits an event on every committed
// mutation of that room. Rooms are independent; a slow client never blocks a
// publish for longer than sendTimeout.
type Broker struct {
	mu   sync.RWMutex
	subs map[string]map[chan Event]struct{} // room id -> subscriber channels
	log  zerolog.Logger
}

// NewBroker creates an empty broker
func NewBroker(log zerolog.Logger) *Broker {
	return &Broker{
		subs: make(map[string]map[chan Event]struct{}),
		log:  log,
	}
}

// Subscribe registers a new client for a room's events
func (b *Broker) Subscribe(roomID string) chan Event {
	ch := make(chan Event, clientBufferSize)
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.subs[roomID] == nil {
		b.subs[roomID] = make(map[chan Event]struct{})
	}
	b.subs[roomID][ch] = struct{}{}
	return ch
}

// Unsubscribe removes a client. The channel is left open since a publish
// may still be in flight; subscribers exit on their own context instead.
func (b *Broker) Unsubscribe(roomID string, ch chan Event) {
	b.mu.Lock()
	defer b.mu.Unlock()
	room, exists := b.subs[roomID]
	if !exists {
		return
	}
	delete(room, ch)
	if len(room) == 0 {
		delete(b.subs, roomID)
	}
}

// Publish sends an event to all of a room's subscribers
func (b *Broker) Publish(roomID string, event Event) {
	b.mu.RLock()
	// Collect all client channels while holding the lock
	clients := make([]chan Event, 0, len(b.subs[roomID]))
	for ch := range b.subs[roomID] {
		clients = append(clients, ch)
	}
	b.mu.RUnlock()

	// Send messages WITHOUT holding the lock
	for _, ch := range clients {
		select {
		case ch <- event:
		case <-time.After(sendTimeout):
			b.log.Warn().Str("room_id", roomID).Msg("dropping event for slow sse client")
		}
	}
}

// RoomUpdated publishes the read-model invalidation event for a room
func (b *Broker) RoomUpdated(roomID string) {
	b.Publish(roomID, Event{Name: EventRoomUpdate, Data: roomID})
}
