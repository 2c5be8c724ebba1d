package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaronzipp/undercover/internal/sse"
)

// StreamEvents streams room updates via Server-Sent Events. One room-update
// event is emitted per committed mutation; clients re-fetch the read model
// when it arrives.
func (a *API) StreamEvents(c *gin.Context) {
	roomID := c.Param("id")

	// Validate the room before subscribing
	if _, err := a.Service.GetRoom(roomID); err != nil {
		a.writeError(c, err)
		return
	}

	c.Header("Content-Type", "text/event-stream")
	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")

	ch := a.Broker.Subscribe(roomID)
	defer a.Broker.Unsubscribe(roomID, ch)

	flusher, ok := c.Writer.(http.Flusher)
	if !ok {
		c.Status(http.StatusInternalServerError)
		return
	}

	// Initial event so clients render current state immediately
	fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", sse.EventRoomUpdate, roomID)
	flusher.Flush()

	ctx := c.Request.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-ch:
			fmt.Fprintf(c.Writer, "event: %s\ndata: %s\n\n", event.Name, event.Data)
			flusher.Flush()
		}
	}
}
