package chat

import (
	"context"
	"fmt"
	"strings"

	"vetchat/models"
	"vetchat/utils"

	"go.uber.org/zap"
)

// HandleMessage processes one inbound message for a session. Turns for the
// same session are serialized through the session lock; distinct sessions run
// fully independently.
func (s *DefaultChatService) HandleMessage(ctx context.Context, sessionID, message string, callerCtx models.SessionContext) (*models.ChatResult, error) {
	logger := utils.GetLogger()

	release, err := s.Locks.Acquire(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	defer release()

	conv, err := s.ConvRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	if conv == nil {
		conv = &models.Conversation{SessionID: sessionID}
	}
	conv.Context.Merge(callerCtx)

	text := strings.TrimSpace(message)
	conv.AppendMessage(models.RoleUser, text)

	var reply string
	var created *models.AppointmentSummary

	switch {
	case conv.BookingState.Active:
		reply, created, err = s.advanceWorkflow(ctx, conv, text)
		if err != nil {
			return nil, err
		}

	case DetectBookingIntent(text):
		// Detection and the first prompt happen in the same turn.
		conv.BookingState = models.BookingState{Active: true}
		result := advanceBooking("", text, conv.BookingState.Data, conv.Context)
		conv.BookingState.Step = string(result.Next)
		reply = result.Reply

	default:
		reply, err = s.Gateway.Complete(ctx, s.priorHistory(conv), text, conv.Context)
		if err != nil {
			// The user's message stays in the transcript even though no
			// reply was produced; the caller may retry the whole turn.
			if saveErr := s.ConvRepo.Save(ctx, conv); saveErr != nil {
				logger.Error("Failed to persist conversation after gateway failure",
					zap.String("sessionId", sessionID), zap.Error(saveErr))
			}
			return nil, err
		}
	}

	conv.AppendMessage(models.RoleBot, reply)
	if err := s.ConvRepo.Save(ctx, conv); err != nil {
		return nil, fmt.Errorf("persist conversation: %w", err)
	}

	return &models.ChatResult{
		Reply:              reply,
		AppointmentCreated: created,
		BookingActive:      conv.BookingState.Active,
	}, nil
}

// priorHistory returns the bounded window of messages preceding the one just
// appended, as context for the completion gateway.
func (s *DefaultChatService) priorHistory(conv *models.Conversation) []models.Message {
	history := conv.Messages[:len(conv.Messages)-1]
	if s.HistoryWindow > 0 && len(history) > s.HistoryWindow {
		history = history[len(history)-s.HistoryWindow:]
	}
	return history
}

// advanceWorkflow runs one booking transition and applies its effects to the
// conversation. On confirmation the appointment is committed before the
// conversation is linked to it, so a failed conversation write can never
// leave a dangling appointmentId.
func (s *DefaultChatService) advanceWorkflow(ctx context.Context, conv *models.Conversation, text string) (string, *models.AppointmentSummary, error) {
	logger := utils.GetLogger()

	result := advanceBooking(BookingStep(conv.BookingState.Step), text, conv.BookingState.Data, conv.Context)
	if result.Patch != nil {
		conv.BookingState.Data.Apply(*result.Patch)
	}

	switch result.Outcome {
	case outcomeConfirmed:
		data := conv.BookingState.Data
		if data.OwnerName == "" || data.PetName == "" || data.Phone == "" || data.DateTime == "" {
			return "", nil, &IncompleteBookingError{SessionID: conv.SessionID}
		}

		appt := models.Appointment{
			SessionID: conv.SessionID,
			OwnerName: data.OwnerName,
			PetName:   data.PetName,
			Phone:     data.Phone,
			DateTime:  data.DateTime,
			Status:    models.AppointmentStatusConfirmed,
		}
		id, err := s.ApptRepo.Create(ctx, appt)
		if err != nil {
			return "", nil, fmt.Errorf("create appointment: %w", err)
		}
		appt.ID = id

		conv.AppointmentID = id
		conv.BookingState.Reset()
		logger.Info("Appointment booked",
			zap.String("sessionId", conv.SessionID), zap.String("appointmentId", id))

		summary := appt.Summary()
		return confirmationMessage(appt), &summary, nil

	case outcomeCancelled:
		conv.BookingState.Reset()
		return result.Reply, nil, nil

	default:
		conv.BookingState.Step = string(result.Next)
		return result.Reply, nil, nil
	}
}

func confirmationMessage(appt models.Appointment) string {
	return fmt.Sprintf(
		"✅ **Appointment Confirmed!**\n\nYour appointment has been successfully booked:\n\n👤 **Owner:** %s\n🐾 **Pet:** %s\n📞 **Phone:** %s\n📅 **Date/Time:** %s\n\nWe'll see you and %s soon! Is there anything else you'd like to know? 🐾",
		appt.OwnerName, appt.PetName, appt.Phone, appt.DateTime, appt.PetName,
	)
}

// GetHistory returns the conversation for a session, or nil when unknown.
func (s *DefaultChatService) GetHistory(ctx context.Context, sessionID string) (*models.Conversation, error) {
	conv, err := s.ConvRepo.GetBySessionID(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("load conversation: %w", err)
	}
	return conv, nil
}
