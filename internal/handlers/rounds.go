package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

type descriptionRequest struct {
	PlayerID string `json:"playerId" binding:"required"`
	Text     string `json:"text" binding:"required"`
}

type voteRequest struct {
	VoterID  string `json:"voterId" binding:"required"`
	TargetID string `json:"targetId" binding:"required"`
}

// SubmitDescription records a player's clue for the round
func (a *API) SubmitDescription(c *gin.Context) {
	roundNumber, ok := roundParam(c)
	if !ok {
		return
	}

	var req descriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "playerId and text are required"})
		return
	}

	if err := a.Service.SubmitDescription(c.Param("id"), roundNumber, req.PlayerID, req.Text); err != nil {
		a.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// SubmitVote records a player's elimination vote. The response carries
// allVoted so the client can trigger resolution once everyone has voted.
func (a *API) SubmitVote(c *gin.Context) {
	roundNumber, ok := roundParam(c)
	if !ok {
		return
	}

	var req voteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "voterId and targetId are required"})
		return
	}

	allVoted, err := a.Service.SubmitVote(c.Param("id"), roundNumber, req.VoterID, req.TargetID)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"allVoted": allVoted})
}

// ResolveRound tallies the round and advances the game
func (a *API) ResolveRound(c *gin.Context) {
	roundNumber, ok := roundParam(c)
	if !ok {
		return
	}

	if err := a.Service.ResolveRound(c.Param("id"), roundNumber); err != nil {
		a.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func roundParam(c *gin.Context) (int, bool) {
	n, err := strconv.Atoi(c.Param("num"))
	if err != nil || n < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid round number"})
		return 0, false
	}
	return n, true
}
