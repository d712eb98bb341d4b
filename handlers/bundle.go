// File: vetchat/handlers/bundle.go
package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Chat endpoints
	PostMessageHandler gin.HandlerFunc
	GetHistoryHandler  gin.HandlerFunc

	// Appointment endpoints
	CreateAppointmentHandler gin.HandlerFunc
	ListAppointmentsHandler  gin.HandlerFunc
}
