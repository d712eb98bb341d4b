package chat

import (
	"context"

	appointmentRepo "vetchat/database/repository/appointment"
	conversationRepo "vetchat/database/repository/conversation"
	"vetchat/models"
	ai "vetchat/services/intelligence"
	"vetchat/utils"
)

// ChatService defines the interface for handling conversational turns.
type ChatService interface {
	// HandleMessage runs one turn: continue the booking workflow, start one,
	// or delegate to the completion gateway, then persist the conversation.
	HandleMessage(ctx context.Context, sessionID, message string, callerCtx models.SessionContext) (*models.ChatResult, error)
	// GetHistory returns the conversation for a session, or (nil, nil) when
	// the session is unknown.
	GetHistory(ctx context.Context, sessionID string) (*models.Conversation, error)
}

// DefaultChatService implements ChatService.
type DefaultChatService struct {
	ConvRepo      conversationRepo.ConversationRepository
	ApptRepo      appointmentRepo.AppointmentRepository
	Gateway       ai.CompletionGateway
	Locks         utils.SessionLocker
	HistoryWindow int
}
