package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"butler-assistant/internal/assistant"
	"butler-assistant/internal/record"
	"butler-assistant/pkg/response"
)

// writeError maps use-case errors to HTTP responses. Unknown errors are 500s
// carrying the Markdown error reply.
func (h *handler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, assistant.ErrEmptyCommand),
		errors.Is(err, assistant.ErrEmptyMessage),
		errors.Is(err, assistant.ErrEmptyReminder),
		errors.Is(err, record.ErrEmptyDescription),
		errors.Is(err, record.ErrInvalidPriority),
		errors.Is(err, errInvalidID):
		response.BadRequest(c, err)
	case errors.Is(err, record.ErrMeetingNotFound),
		errors.Is(err, assistant.ErrReminderNotFound):
		response.NotFound(c, err)
	default:
		response.InternalError(c, assistant.ErrorReply(err))
	}
}
