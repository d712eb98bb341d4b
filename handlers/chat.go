package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"vetchat/models"
	"vetchat/services/chat"
	ai "vetchat/services/intelligence"
	"vetchat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ChatHandler exposes the conversational endpoints.
type ChatHandler struct {
	Service chat.ChatService
}

func NewChatHandler(svc chat.ChatService) *ChatHandler {
	return &ChatHandler{Service: svc}
}

// PostMessageHandler handles POST /api/messages.
func (h *ChatHandler) PostMessageHandler(c *gin.Context) {
	var req models.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.SessionID == "" || strings.TrimSpace(req.Message) == "" {
		utils.JSONError(c, http.StatusBadRequest, "sessionId and message are required", "")
		return
	}

	result, err := h.Service.HandleMessage(c.Request.Context(), req.SessionID, req.Message, req.Context)
	if err != nil {
		writeChatError(c, req.SessionID, err)
		return
	}

	c.JSON(http.StatusOK, models.ChatResponse{
		SessionID:          req.SessionID,
		Message:            result.Reply,
		AppointmentCreated: result.AppointmentCreated,
		BookingActive:      result.BookingActive,
		Timestamp:          time.Now(),
	})
}

// GetHistoryHandler handles GET /api/history/:sessionId. Unknown sessions
// return an empty transcript, never a 404.
func (h *ChatHandler) GetHistoryHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")

	conv, err := h.Service.GetHistory(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch history",
			zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch history", "")
		return
	}
	if conv == nil {
		c.JSON(http.StatusOK, models.HistoryResponse{
			SessionID: sessionID,
			Messages:  []models.Message{},
		})
		return
	}

	messages := conv.Messages
	if messages == nil {
		messages = []models.Message{}
	}
	c.JSON(http.StatusOK, models.HistoryResponse{
		SessionID:     conv.SessionID,
		Messages:      messages,
		Context:       conv.Context,
		AppointmentID: conv.AppointmentID,
	})
}

// writeChatError maps service errors onto protocol-level responses. Workflow
// validation never reaches here; it is conversational by design.
func writeChatError(c *gin.Context, sessionID string, err error) {
	logger := utils.GetLogger()

	var unavailable *ai.ServiceUnavailableError
	switch {
	case errors.As(err, &unavailable):
		logger.Warn("Completion gateway unavailable",
			zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusServiceUnavailable, unavailable.Error(), "")
	case errors.Is(err, utils.ErrTurnInProgress):
		utils.JSONError(c, http.StatusConflict, err.Error(), "")
	default:
		logger.Error("Message turn failed",
			zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Internal server error", "")
	}
}
