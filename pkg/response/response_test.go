package response_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"butler-assistant/pkg/response"
)

func record(fn func(c *gin.Context)) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	w := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(w)
	fn(c)
	return w
}

func TestEnvelopes(t *testing.T) {
	tests := []struct {
		name     string
		fn       func(c *gin.Context)
		status   int
		code     int
		message  string
		wantData bool
	}{
		{
			name:     "ok",
			fn:       func(c *gin.Context) { response.OK(c, map[string]string{"foo": "bar"}) },
			status:   http.StatusOK,
			message:  response.MessageSuccess,
			wantData: true,
		},
		{
			name:    "bad request",
			fn:      func(c *gin.Context) { response.BadRequest(c, errors.New("command is required")) },
			status:  http.StatusBadRequest,
			code:    1,
			message: "command is required",
		},
		{
			name:     "internal error",
			fn:       func(c *gin.Context) { response.InternalError(c, map[string]string{"content": "apologies"}) },
			status:   http.StatusInternalServerError,
			code:     http.StatusInternalServerError,
			message:  response.DefaultErrorMessage,
			wantData: true,
		},
		{
			name:    "unauthorized",
			fn:      response.Unauthorized,
			status:  http.StatusUnauthorized,
			code:    http.StatusUnauthorized,
			message: "Unauthorized",
		},
		{
			name:    "not found",
			fn:      func(c *gin.Context) { response.NotFound(c, errors.New("meeting not found")) },
			status:  http.StatusNotFound,
			code:    http.StatusNotFound,
			message: "meeting not found",
		},
		{
			name:    "too many requests",
			fn:      response.TooManyRequests,
			status:  http.StatusTooManyRequests,
			code:    http.StatusTooManyRequests,
			message: "Too Many Requests",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := record(tt.fn)
			require.Equal(t, tt.status, w.Code)

			var resp response.Resp
			require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
			assert.Equal(t, tt.code, resp.ErrorCode)
			assert.Equal(t, tt.message, resp.Message)
			if tt.wantData {
				assert.NotNil(t, resp.Data)
			} else {
				assert.Nil(t, resp.Data)
			}
		})
	}
}

func TestAttachment(t *testing.T) {
	w := record(func(c *gin.Context) {
		response.Attachment(c, "meeting-7.ics", "text/calendar", []byte("BEGIN:VCALENDAR"))
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, `attachment; filename="meeting-7.ics"`, w.Header().Get("Content-Disposition"))
	assert.Equal(t, "text/calendar", w.Header().Get("Content-Type"))
	assert.Equal(t, "BEGIN:VCALENDAR", w.Body.String())
}
