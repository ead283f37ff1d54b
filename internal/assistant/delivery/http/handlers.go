package http

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"butler-assistant/internal/notification"
	"butler-assistant/pkg/response"
)

const icsContentType = "text/calendar; charset=utf-8"

// Command godoc
// @Summary     Run a Butler command
// @Description Routes a free-text command to meeting, task, scheduling, itinerary or conversation handling.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body commandReq true "Command"
// @Success     200 {object} assistant.Reply
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/commands [POST]
func (h *handler) Command(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCommandReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	reply, err := h.uc.HandleCommand(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleCommand: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, reply)
}

// Conversation godoc
// @Summary     Talk to Butler
// @Description Sends a message to the language model with the session's recent history.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body conversationReq true "Message"
// @Success     200 {object} assistant.Reply
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/conversations [POST]
func (h *handler) Conversation(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processConversationReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	reply, err := h.uc.HandleConversation(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.HandleConversation: %v", err)
		h.writeError(c, err)
		return
	}

	response.OK(c, reply)
}

// ResetConversation godoc
// @Summary     Forget a conversation
// @Description Clears the message history kept for a session.
// @Tags        Assistant
// @Produce     json
// @Param       session path string true "Session ID"
// @Success     200 {object} response.Resp "OK"
// @Router      /api/v1/conversations/{session} [DELETE]
func (h *handler) ResetConversation(c *gin.Context) {
	h.uc.ResetConversation(c.Request.Context(), c.Param("session"))
	response.OK(c, nil)
}

// ParseIntent godoc
// @Summary     Parse an assistant reply
// @Description Extracts the scheduling, task or itinerary action from assistant prose.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body parseReq true "Reply text"
// @Success     200 {object} parseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/intents/parse [POST]
func (h *handler) ParseIntent(c *gin.Context) {
	req, err := h.processParseReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	response.OK(c, parseResp{Result: h.uc.ParseReply(c.Request.Context(), req.Text)})
}

// TodayAgenda godoc
// @Summary     Today's agenda
// @Description Returns today's appointments, meetings and tasks with the rendered itinerary.
// @Tags        Agenda
// @Produce     json
// @Success     200 {object} agendaResp
// @Router      /api/v1/agenda/today [GET]
func (h *handler) TodayAgenda(c *gin.Context) {
	ctx := c.Request.Context()
	response.OK(c, agendaResp{
		Agenda:    h.uc.Agenda(ctx),
		Itinerary: h.uc.Itinerary(ctx).Content,
	})
}

// MeetingICS godoc
// @Summary     Export a meeting
// @Description Downloads one meeting as an iCalendar file.
// @Tags        Meetings
// @Produce     text/calendar
// @Param       id path int true "Meeting ID"
// @Success     200 {string} string "iCalendar document"
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/meetings/{id}/ics [GET]
func (h *handler) MeetingICS(c *gin.Context) {
	ctx := c.Request.Context()

	id, err := h.processMeetingID(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	data, err := h.uc.MeetingICS(ctx, id)
	if err != nil {
		h.l.Warnf(ctx, "uc.MeetingICS(%d): %v", id, err)
		h.writeError(c, err)
		return
	}

	response.Attachment(c, fmt.Sprintf("meeting-%d.ics", id), icsContentType, data)
}

// CreateReminder godoc
// @Summary     Schedule a reminder
// @Description Queues a reminder now, or defers it until "at".
// @Tags        Reminders
// @Accept      json
// @Produce     json
// @Param       body body reminderReq true "Reminder"
// @Success     200 {object} reminderResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/reminders [POST]
func (h *handler) CreateReminder(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processReminderReq(c)
	if err != nil {
		response.BadRequest(c, err)
		return
	}

	out, err := h.uc.ScheduleReminder(ctx, req.toInput())
	if err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, newReminderResp(out))
}

// CancelReminder godoc
// @Summary     Cancel a reminder
// @Description Cancels a deferred reminder that has not fired yet.
// @Tags        Reminders
// @Produce     json
// @Param       id path string true "Reminder handle"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/reminders/{id} [DELETE]
func (h *handler) CancelReminder(c *gin.Context) {
	ctx := c.Request.Context()

	if err := h.uc.CancelReminder(ctx, notification.Handle(c.Param("id"))); err != nil {
		h.writeError(c, err)
		return
	}

	response.OK(c, nil)
}
