package http

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"metahub/internal/core/domain"
	"metahub/internal/core/ports"
	apperrors "metahub/pkg/errors"
)

type ChatHandler struct {
	chatService ports.ChatService
}

func NewChatHandler(chatService ports.ChatService) *ChatHandler {
	return &ChatHandler{chatService: chatService}
}

func (h *ChatHandler) SetupRoutes(router *gin.Engine) {
	api := router.Group("/api/v1")
	{
		api.GET("/chat/:room/messages", h.GetMessages)
		api.POST("/chat/:room/messages", h.SendMessage)
		api.DELETE("/chat/:room/messages/:id", h.DeleteMessage)
	}
}

func (h *ChatHandler) GetMessages(c *gin.Context) {
	room := domain.RoomID(c.Param("room"))

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			failWith(c, apperrors.InvalidInput("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	var (
		messages []*domain.ChatMessage
		err      error
	)
	if limit > 0 {
		messages, err = h.chatService.Recent(c.Request.Context(), room, limit)
	} else {
		messages, err = h.chatService.History(c.Request.Context(), room)
	}
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRoom) {
			failWith(c, apperrors.NotFound("room"))
			return
		}
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"messages": messages,
		"count":    len(messages),
	})
}

func (h *ChatHandler) SendMessage(c *gin.Context) {
	room := domain.RoomID(c.Param("room"))

	var req struct {
		Message string `json:"message" binding:"required,max=2000"`
		ReplyTo string `json:"replyTo"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	msg, err := h.chatService.Send(c.Request.Context(), domain.ChatMessage{
		Room:    room,
		Message: req.Message,
		ReplyTo: domain.MessageID(req.ReplyTo),
	})
	if err != nil {
		if errors.Is(err, domain.ErrUnknownRoom) {
			failWith(c, apperrors.NotFound("room"))
			return
		}
		failWith(c, apperrors.InvalidInput(err.Error()))
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": msg})
}

func (h *ChatHandler) DeleteMessage(c *gin.Context) {
	room := domain.RoomID(c.Param("room"))
	id := domain.MessageID(c.Param("id"))

	if err := h.chatService.DeleteMessage(c.Request.Context(), room, id); err != nil {
		failWith(c, apperrors.Internal(err.Error()))
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "deleted"})
}
