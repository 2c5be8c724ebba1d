package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaronzipp/undercover/internal/models"
)

// roomView is the client-facing room state. The secret words stay server-side
// until the game is finished; the caller only ever learns its own word.
type roomView struct {
	ID           string            `json:"id"`
	Code         string            `json:"code"`
	Status       models.RoomStatus `json:"status"`
	CurrentRound int               `json:"currentRound"`
	Settings     models.Settings   `json:"settings"`
	Winner       models.Winner     `json:"winner,omitempty"`
	IsHost       bool              `json:"isHost"`

	// Set for the calling player once roles are assigned
	YourRole models.Role `json:"yourRole,omitempty"`
	YourWord string      `json:"yourWord,omitempty"`

	// Revealed once the room is finished
	CivilianWord   string `json:"civilianWord,omitempty"`
	UndercoverWord string `json:"undercoverWord,omitempty"`
}

// playerView redacts roles: visible for the caller's own player immediately,
// for everyone once the game is finished
type playerView struct {
	ID      string      `json:"id"`
	Name    string      `json:"name"`
	Role    models.Role `json:"role,omitempty"`
	IsAlive bool        `json:"isAlive"`
	IsHost  bool        `json:"isHost"`
	IsYou   bool        `json:"isYou"`
}

// GetRoom returns the room read model for the calling session
func (a *API) GetRoom(c *gin.Context) {
	room, err := a.Service.GetRoom(c.Param("id"))
	if err != nil {
		a.writeError(c, err)
		return
	}

	sid := sessionID(c)
	view := roomView{
		ID:           room.ID,
		Code:         room.Code,
		Status:       room.Status,
		CurrentRound: room.CurrentRound,
		Settings:     room.Settings,
		Winner:       room.Winner,
		IsHost:       sid != "" && room.HostSessionID == sid,
	}

	if room.Status == models.StatusFinished {
		view.CivilianWord = room.CivilianWord
		view.UndercoverWord = room.UndercoverWord
	}

	if sid != "" {
		players, err := a.Service.GetPlayers(room.ID)
		if err != nil {
			a.writeError(c, err)
			return
		}
		for _, p := range players {
			if p.SessionID != sid || p.Role == models.RoleUnassigned {
				continue
			}
			view.YourRole = p.Role
			if p.Role == models.RoleUndercover {
				view.YourWord = room.UndercoverWord
			} else {
				view.YourWord = room.CivilianWord
			}
		}
	}

	c.JSON(http.StatusOK, view)
}

// GetPlayers returns the room's players with redacted roles
func (a *API) GetPlayers(c *gin.Context) {
	room, err := a.Service.GetRoom(c.Param("id"))
	if err != nil {
		a.writeError(c, err)
		return
	}
	players, err := a.Service.GetPlayers(room.ID)
	if err != nil {
		a.writeError(c, err)
		return
	}

	sid := sessionID(c)
	finished := room.Status == models.StatusFinished
	views := make([]playerView, 0, len(players))
	for _, p := range players {
		isYou := sid != "" && p.SessionID == sid
		view := playerView{
			ID:      p.ID,
			Name:    p.Name,
			IsAlive: p.IsAlive,
			IsHost:  p.IsHost,
			IsYou:   isYou,
		}
		if finished || isYou {
			view.Role = p.Role
		}
		views = append(views, view)
	}

	c.JSON(http.StatusOK, gin.H{"players": views})
}

// GetCurrentRound returns the active round, or 404 while in the lobby
func (a *API) GetCurrentRound(c *gin.Context) {
	round, err := a.Service.GetCurrentRound(c.Param("id"))
	if err != nil {
		a.writeError(c, err)
		return
	}
	if round == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "no active round"})
		return
	}
	c.JSON(http.StatusOK, round)
}
