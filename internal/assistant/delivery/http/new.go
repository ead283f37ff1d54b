package http

import (
	"github.com/gin-gonic/gin"

	"butler-assistant/internal/assistant"
	"butler-assistant/pkg/log"
)

// Handler exposes the assistant over the JSON API.
type Handler interface {
	Command(c *gin.Context)
	Conversation(c *gin.Context)
	ResetConversation(c *gin.Context)
	ParseIntent(c *gin.Context)
	TodayAgenda(c *gin.Context)
	MeetingICS(c *gin.Context)
	CreateReminder(c *gin.Context)
	CancelReminder(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc assistant.UseCase
}

var _ Handler = (*handler)(nil)

func New(l log.Logger, uc assistant.UseCase) *handler {
	return &handler{l: l, uc: uc}
}
