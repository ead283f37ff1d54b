package response

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// OK sends 200 JSON with data.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Resp{Message: MessageSuccess, Data: data})
}

// BadRequest sends 400 with the validation error as the message.
func BadRequest(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, Resp{
		ErrorCode: codeValidation,
		Message:   err.Error(),
	})
}

// InternalError sends 500. The cause stays in the logs; data may carry a
// user-facing explanation.
func InternalError(c *gin.Context, data any) {
	status(c, http.StatusInternalServerError, DefaultErrorMessage, data)
}

// Unauthorized sends 401 response.
func Unauthorized(c *gin.Context) {
	status(c, http.StatusUnauthorized, http.StatusText(http.StatusUnauthorized), nil)
}

// NotFound sends 404 with the error message.
func NotFound(c *gin.Context, err error) {
	status(c, http.StatusNotFound, err.Error(), nil)
}

// TooManyRequests sends 429 response.
func TooManyRequests(c *gin.Context) {
	status(c, http.StatusTooManyRequests, http.StatusText(http.StatusTooManyRequests), nil)
}

// Attachment sends body as a file download named filename.
func Attachment(c *gin.Context, filename, contentType string, body []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}

func status(c *gin.Context, code int, message string, data any) {
	c.JSON(code, Resp{ErrorCode: code, Message: message, Data: data})
}
