package handlers

import (
	"net/http"
	"time"

	appointmentRepo "vetchat/database/repository/appointment"
	"vetchat/models"
	"vetchat/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AppointmentHandler exposes direct appointment endpoints that bypass the
// conversational workflow.
type AppointmentHandler struct {
	Repo appointmentRepo.AppointmentRepository
}

func NewAppointmentHandler(repo appointmentRepo.AppointmentRepository) *AppointmentHandler {
	return &AppointmentHandler{Repo: repo}
}

// CreateAppointmentHandler handles POST /api/appointments.
func (h *AppointmentHandler) CreateAppointmentHandler(c *gin.Context) {
	var req models.AppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if req.SessionID == "" || req.OwnerName == "" || req.PetName == "" || req.Phone == "" || req.DateTime == "" {
		utils.JSONError(c, http.StatusBadRequest, "All fields are required", "")
		return
	}

	appt := models.Appointment{
		SessionID: req.SessionID,
		OwnerName: req.OwnerName,
		PetName:   req.PetName,
		Phone:     req.Phone,
		DateTime:  req.DateTime,
		Status:    models.AppointmentStatusConfirmed,
		CreatedAt: time.Now(),
	}
	id, err := h.Repo.Create(c.Request.Context(), appt)
	if err != nil {
		utils.GetLogger().Error("Failed to create appointment",
			zap.String("sessionId", req.SessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to create appointment", "")
		return
	}
	appt.ID = id

	c.JSON(http.StatusCreated, appt)
}

// ListAppointmentsHandler handles GET /api/appointments/:sessionId.
func (h *AppointmentHandler) ListAppointmentsHandler(c *gin.Context) {
	sessionID := c.Param("sessionId")

	appointments, err := h.Repo.GetBySessionID(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("Failed to fetch appointments",
			zap.String("sessionId", sessionID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "Failed to fetch appointments", "")
		return
	}
	if appointments == nil {
		appointments = []models.Appointment{}
	}
	c.JSON(http.StatusOK, appointments)
}
