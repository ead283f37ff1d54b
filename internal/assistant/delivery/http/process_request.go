package http

import (
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

var errInvalidID = errors.New("invalid id")

func (h *handler) processCommandReq(c *gin.Context) (commandReq, error) {
	var req commandReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processConversationReq(c *gin.Context) (conversationReq, error) {
	var req conversationReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processParseReq(c *gin.Context) (parseReq, error) {
	var req parseReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processReminderReq(c *gin.Context) (reminderReq, error) {
	var req reminderReq
	err := c.ShouldBindJSON(&req)
	return req, err
}

func (h *handler) processMeetingID(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
