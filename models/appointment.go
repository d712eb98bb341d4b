package models

import "time"

// Appointment statuses. Only Status may change after creation.
const (
	AppointmentStatusConfirmed = "confirmed"
	AppointmentStatusCancelled = "cancelled"
	AppointmentStatusCompleted = "completed"
)

// Appointment is the durable record produced by a confirmed booking workflow
// (or by the direct creation endpoint). One record per confirmation.
type Appointment struct {
	ID        string    `bson:"id" json:"id"`
	SessionID string    `bson:"sessionId" json:"sessionId"`
	OwnerName string    `bson:"ownerName" json:"ownerName"`
	PetName   string    `bson:"petName" json:"petName"`
	Phone     string    `bson:"phone" json:"phone"`
	DateTime  string    `bson:"dateTime" json:"dateTime"`
	Status    string    `bson:"status" json:"status"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AppointmentSummary is the subset of an appointment returned inline in chat
// responses.
type AppointmentSummary struct {
	ID        string `json:"id"`
	OwnerName string `json:"ownerName"`
	PetName   string `json:"petName"`
	DateTime  string `json:"dateTime"`
	Status    string `json:"status"`
}

// Summary converts an appointment to its chat-response shape.
func (a Appointment) Summary() AppointmentSummary {
	return AppointmentSummary{
		ID:        a.ID,
		OwnerName: a.OwnerName,
		PetName:   a.PetName,
		DateTime:  a.DateTime,
		Status:    a.Status,
	}
}
