package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaronzipp/undercover/internal/game"
)

type createRoomRequest struct {
	HostName string `json:"hostName" binding:"required"`
}

type joinRoomRequest struct {
	Code       string `json:"code" binding:"required"`
	PlayerName string `json:"playerName" binding:"required"`
}

// CreateRoom creates a new room with the caller as host
func (a *API) CreateRoom(c *gin.Context) {
	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session id"})
		return
	}

	var req createRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "hostName is required"})
		return
	}

	result, err := a.Service.CreateRoom(req.HostName, sid)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"roomId":   result.RoomID,
		"code":     result.Code,
		"playerId": result.PlayerID,
	})
}

// JoinRoom joins an existing room by code. Re-joining with the same session
// returns the existing player.
func (a *API) JoinRoom(c *gin.Context) {
	sid := sessionID(c)
	if sid == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing session id"})
		return
	}

	var req joinRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "code and playerName are required"})
		return
	}

	result, err := a.Service.JoinRoom(req.Code, req.PlayerName, sid)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"roomId":   result.RoomID,
		"playerId": result.PlayerID,
	})
}

// UpdateSettings applies a partial settings update (host only, lobby only)
func (a *API) UpdateSettings(c *gin.Context) {
	var patch game.SettingsPatch
	if err := c.ShouldBindJSON(&patch); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid settings payload"})
		return
	}

	if err := a.Service.UpdateSettings(c.Param("id"), sessionID(c), patch); err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// StartGame starts the game (host only)
func (a *API) StartGame(c *gin.Context) {
	if err := a.Service.StartGame(c.Param("id"), sessionID(c)); err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// joinURL builds the link encoded into the QR code
func (a *API) joinURL(code string) string {
	return fmt.Sprintf("%s/join?code=%s", a.BaseURL, code)
}
