package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"isaacdex/service"
)

type ChatController struct {
	chat *service.ChatService
}

func NewChatController(chat *service.ChatService) *ChatController {
	return &ChatController{chat: chat}
}

// Chat proxies a conversation history to the completion provider and relays
// the single assistant reply.
func (ctrl *ChatController) Chat(c *gin.Context) {
	var req struct {
		Messages []service.ChatMessage `json:"messages" binding:"required,dive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warnf("[%s] Invalid chat body, %s", c.GetString("requestId"), err)
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	reply, err := ctrl.chat.Complete(c.Request.Context(), req.Messages)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reply)
}
