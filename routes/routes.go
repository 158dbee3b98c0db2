package routes

import (
	"skribbl/controllers"
	"skribbl/services/skribbl"

	"github.com/gin-gonic/gin"
)

// SetupRoutes configures the local status API over a running session.
func SetupRoutes(router *gin.Engine, session *skribbl.Session) {
	statusController := &controllers.StatusController{Session: session}

	api := router.Group("/")

	api.GET("/health", statusController.GetHealth)
	api.GET("/game", statusController.GetGame)
	api.GET("/game/players", statusController.GetPlayers)
	api.POST("/chat", statusController.PostChat)
}
