// Package handlers exposes the room service over a JSON HTTP API. All game
// logic lives in internal/game; handlers only translate requests, sessions
// and errors.
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/aaronzipp/undercover/internal/game"
	"github.com/aaronzipp/undercover/internal/sse"
)

// API holds shared handler dependencies
type API struct {
	Service *game.Service
	Broker  *sse.Broker

	// BaseURL is the externally reachable address, used to build join links
	BaseURL string

	Log zerolog.Logger
}

// Register mounts all routes on the router
func (a *API) Register(r *gin.Engine) {
	api := r.Group("/api")
	{
		api.POST("/rooms", a.CreateRoom)
		api.POST("/rooms/join", a.JoinRoom)

		api.GET("/rooms/:id", a.GetRoom)
		api.GET("/rooms/:id/players", a.GetPlayers)
		api.GET("/rooms/:id/round", a.GetCurrentRound)
		api.GET("/rooms/:id/events", a.StreamEvents)
		api.GET("/rooms/:id/qr", a.JoinQR)

		api.PATCH("/rooms/:id/settings", a.UpdateSettings)
		api.POST("/rooms/:id/start", a.StartGame)
		api.POST("/rooms/:id/rounds/:num/descriptions", a.SubmitDescription)
		api.POST("/rooms/:id/rounds/:num/votes", a.SubmitVote)
		api.POST("/rooms/:id/rounds/:num/resolve", a.ResolveRound)
	}
}

// sessionID extracts the opaque client session identity. The client layer
// generates and persists it; the server only requires non-emptiness.
func sessionID(c *gin.Context) string {
	if sid := c.GetHeader("X-Session-Id"); sid != "" {
		return sid
	}
	if cookie, err := c.Cookie("session_id"); err == nil {
		return cookie
	}
	return ""
}
