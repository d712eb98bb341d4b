package models

import "time"

// Message roles stored on a conversation.
const (
	RoleUser = "user"
	RoleBot  = "bot"
)

// Message is a single entry in a conversation transcript. Messages are
// append-only; they are never edited or reordered once stored.
type Message struct {
	Role      string    `bson:"role" json:"role"`
	Content   string    `bson:"content" json:"content"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

// SessionContext carries optional identity hints supplied by the caller.
// Non-empty fields overwrite the stored value on each request; empty fields
// leave the stored value untouched.
type SessionContext struct {
	UserID   string `bson:"userId,omitempty" json:"userId,omitempty"`
	UserName string `bson:"userName,omitempty" json:"userName,omitempty"`
	PetName  string `bson:"petName,omitempty" json:"petName,omitempty"`
}

// Merge applies the caller-supplied context on top of the stored one.
func (c *SessionContext) Merge(in SessionContext) {
	if in.UserID != "" {
		c.UserID = in.UserID
	}
	if in.UserName != "" {
		c.UserName = in.UserName
	}
	if in.PetName != "" {
		c.PetName = in.PetName
	}
}

// BookingData holds the fields collected by the booking workflow. All fields
// are optional until their step has been completed.
type BookingData struct {
	OwnerName string `bson:"ownerName,omitempty" json:"ownerName,omitempty"`
	PetName   string `bson:"petName,omitempty" json:"petName,omitempty"`
	Phone     string `bson:"phone,omitempty" json:"phone,omitempty"`
	DateTime  string `bson:"dateTime,omitempty" json:"dateTime,omitempty"`
}

// Apply merges a partial patch into the accumulated data; empty patch fields
// leave existing values in place.
func (d *BookingData) Apply(patch BookingData) {
	if patch.OwnerName != "" {
		d.OwnerName = patch.OwnerName
	}
	if patch.PetName != "" {
		d.PetName = patch.PetName
	}
	if patch.Phone != "" {
		d.Phone = patch.Phone
	}
	if patch.DateTime != "" {
		d.DateTime = patch.DateTime
	}
}

// BookingState tracks the in-flight booking workflow for a session.
// Invariant: when Active is false, Step is empty and Data is zero so a later
// workflow never sees stale fields.
type BookingState struct {
	Active bool        `bson:"active" json:"active"`
	Step   string      `bson:"step,omitempty" json:"step,omitempty"`
	Data   BookingData `bson:"data" json:"data"`
}

// Reset returns the state to its pre-workflow shape.
func (s *BookingState) Reset() {
	s.Active = false
	s.Step = ""
	s.Data = BookingData{}
}

// Conversation is the per-session aggregate: transcript, caller context and
// current booking workflow state, keyed by the opaque session identifier.
type Conversation struct {
	SessionID     string         `bson:"sessionId" json:"sessionId"`
	Messages      []Message      `bson:"messages" json:"messages"`
	Context       SessionContext `bson:"context" json:"context"`
	BookingState  BookingState   `bson:"bookingState" json:"bookingState"`
	AppointmentID string         `bson:"appointmentId,omitempty" json:"appointmentId,omitempty"`
	CreatedAt     time.Time      `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time      `bson:"updatedAt" json:"updatedAt"`
}

// AppendMessage adds a transcript entry stamped with the current time.
func (c *Conversation) AppendMessage(role, content string) {
	c.Messages = append(c.Messages, Message{
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}
