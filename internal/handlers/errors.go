package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/aaronzipp/undercover/internal/game"
)

// writeError maps the service error taxonomy onto HTTP statuses. Every
// service failure is recoverable by the caller except an exhausted code
// space, which signals a server-side anomaly.
func (a *API) writeError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, game.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, game.ErrInvalidInput), errors.Is(err, game.ErrInvalidSettings):
		status = http.StatusBadRequest
	case errors.Is(err, game.ErrInvalidState),
		errors.Is(err, game.ErrRoomFull),
		errors.Is(err, game.ErrDuplicateSubmission),
		errors.Is(err, game.ErrInsufficientPlayers),
		errors.Is(err, game.ErrNoWordsAvailable):
		status = http.StatusConflict
	case errors.Is(err, game.ErrCodeSpaceExhausted):
		status = http.StatusServiceUnavailable
	}

	if status == http.StatusInternalServerError || status == http.StatusServiceUnavailable {
		a.Log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	} else {
		a.Log.Debug().Err(err).Str("path", c.FullPath()).Msg("request rejected")
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
