package http

import (
	"github.com/gin-gonic/gin"

	"butler-assistant/internal/middleware"
)

// RegisterRoutes mounts the assistant API under rg (normally /api/v1).
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.Use(mw.RateLimit())

	rg.POST("/commands", h.Command)
	rg.POST("/conversations", h.Conversation)
	rg.DELETE("/conversations/:session", h.ResetConversation)
	rg.POST("/intents/parse", h.ParseIntent)
	rg.GET("/agenda/today", h.TodayAgenda)
	rg.GET("/meetings/:id/ics", h.MeetingICS)

	reminders := rg.Group("/reminders")
	{
		reminders.POST("", h.CreateReminder)
		reminders.DELETE("/:id", h.CancelReminder)
	}
}
