package models

import "time"

// ChatRequest is the payload for POST /api/messages.
type ChatRequest struct {
	SessionID string         `json:"sessionId"`
	Message   string         `json:"message"`
	Context   SessionContext `json:"context"`
}

// ChatResponse is what the messages endpoint returns to the widget.
type ChatResponse struct {
	SessionID          string              `json:"sessionId"`
	Message            string              `json:"message"`
	AppointmentCreated *AppointmentSummary `json:"appointmentCreated"`
	BookingActive      bool                `json:"bookingActive"`
	Timestamp          time.Time           `json:"timestamp"`
}

// ChatResult is the orchestrator's outcome for a single turn.
type ChatResult struct {
	Reply              string
	AppointmentCreated *AppointmentSummary
	BookingActive      bool
}

// HistoryResponse is returned by GET /api/history/:sessionId. Unknown
// sessions produce the zero shape with an empty message list, never an error.
type HistoryResponse struct {
	SessionID     string         `json:"sessionId"`
	Messages      []Message      `json:"messages"`
	Context       SessionContext `json:"context"`
	AppointmentID string         `json:"appointmentId,omitempty"`
}

// AppointmentRequest is the payload for direct appointment creation.
type AppointmentRequest struct {
	SessionID string `json:"sessionId"`
	OwnerName string `json:"ownerName"`
	PetName   string `json:"petName"`
	Phone     string `json:"phone"`
	DateTime  string `json:"dateTime"`
}
