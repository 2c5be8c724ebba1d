package sse

// SSE event type constants
const (
	// EventRoomUpdate signals that the room's state changed and clients
	// should re-fetch the read model.
	EventRoomUpdate = "room-update"
)

// Event is one message pushed to subscribed clients
type Event struct {
	Name string
	Data string
}
