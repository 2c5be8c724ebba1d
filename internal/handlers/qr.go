package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	qrcode "github.com/skip2/go-qrcode"
)

// JoinQR serves a QR code PNG of the room's join link
func (a *API) JoinQR(c *gin.Context) {
	room, err := a.Service.GetRoom(c.Param("id"))
	if err != nil {
		a.writeError(c, err)
		return
	}

	png, err := qrcode.Encode(a.joinURL(room.Code), qrcode.Medium, 256)
	if err != nil {
		a.writeError(c, err)
		return
	}
	c.Data(http.StatusOK, "image/png", png)
}
