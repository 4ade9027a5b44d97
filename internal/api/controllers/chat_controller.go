package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"dasilari/internal/models/request_models"
	"dasilari/internal/services"
	"dasilari/pkg/utils"
)

type ChatController struct {
	chatService services.ChatServiceInterface
}

func NewChatController(chatService services.ChatServiceInterface) *ChatController {
	return &ChatController{
		chatService: chatService,
	}
}

func (ch *ChatController) Chat(c *gin.Context) {
	var request request_models.ChatRequest
	if err := c.ShouldBindJSON(&request); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid chat payload: "+err.Error())
		return
	}

	result, err := ch.chatService.Chat(c.Request.Context(), request)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, result, "Chat response generated successfully")
}
