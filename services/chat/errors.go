package chat

import "fmt"

// IncompleteBookingError signals that a workflow reached confirmation with a
// required field missing. Per-step validation makes this unreachable in
// practice; it exists so a storage-level corruption cannot create a partial
// appointment.
type IncompleteBookingError struct {
	SessionID string
}

func (e *IncompleteBookingError) Error() string {
	return fmt.Sprintf("booking data incomplete at confirmation for session %s", e.SessionID)
}
