package controllers

import (
	"errors"
	"net/http"

	"skribbl/services/skribbl"

	"github.com/gin-gonic/gin"
)

// StatusController exposes a read-only view of the session over HTTP for
// whatever is driving the bot. It never mutates room state.
type StatusController struct {
	Session *skribbl.Session
}

// GetHealth reports the session lifecycle state.
func (c *StatusController) GetHealth(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gin.H{
		"status": "ok",
		"state":  c.Session.State().String(),
	})
}

// GetGame returns the full room snapshot, or 503 until the room has
// pushed its initial state.
func (c *StatusController) GetGame(ctx *gin.Context) {
	snapshot, err := c.Session.Game()
	if err != nil {
		if errors.Is(err, skribbl.ErrNotConnected) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "not connected to a lobby yet"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, snapshot)
}

// GetPlayers returns just the roster.
func (c *StatusController) GetPlayers(ctx *gin.Context) {
	snapshot, err := c.Session.Game()
	if err != nil {
		if errors.Is(err, skribbl.ErrNotConnected) {
			ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "not connected to a lobby yet"})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"players": snapshot.Players})
}

// PostChat sends a chat message (i.e. a guess) into the room.
func (c *StatusController) PostChat(ctx *gin.Context) {
	var body struct {
		Message string `json:"message" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&body); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "missing message"})
		return
	}
	if err := c.Session.Say(body.Message); err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"sent": body.Message})
}
