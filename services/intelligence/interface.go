package ai

import (
	"context"

	"vetchat/models"
)

// CompletionGateway is the boundary to the external language-model service
// used for free-form (non-booking) turns. The returned text is opaque to the
// orchestrator.
type CompletionGateway interface {
	Complete(ctx context.Context, history []models.Message, message string, sessionCtx models.SessionContext) (string, error)
}

// ServiceUnavailableError signals that the completion service failed or timed
// out for this turn. The turn may be retried by the caller as a whole.
type ServiceUnavailableError struct {
	Err error
}

func (e *ServiceUnavailableError) Error() string {
	return "AI service temporarily unavailable. Please try again."
}

func (e *ServiceUnavailableError) Unwrap() error {
	return e.Err
}
