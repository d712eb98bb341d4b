package handlers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"vetchat/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type mockAppointmentRepo struct {
	created []models.Appointment
	err     error
}

func (m *mockAppointmentRepo) Create(_ context.Context, appt models.Appointment) (string, error) {
	if m.err != nil {
		return "", m.err
	}
	appt.ID = "appt-1"
	m.created = append(m.created, appt)
	return appt.ID, nil
}

func (m *mockAppointmentRepo) GetBySessionID(_ context.Context, sessionID string) ([]models.Appointment, error) {
	if m.err != nil {
		return nil, m.err
	}
	var out []models.Appointment
	for _, a := range m.created {
		if a.SessionID == sessionID {
			out = append(out, a)
		}
	}
	return out, nil
}

func newAppointmentRouter(repo *mockAppointmentRepo) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := NewAppointmentHandler(repo)
	r.POST("/api/appointments", h.CreateAppointmentHandler)
	r.GET("/api/appointments/:sessionId", h.ListAppointmentsHandler)
	return r
}

func TestCreateAppointmentRequiresAllFields(t *testing.T) {
	valid := map[string]string{
		"sessionId": "s1",
		"ownerName": "Jane Doe",
		"petName":   "Max",
		"phone":     "+15551234567",
		"dateTime":  "June 20th at 2pm",
	}

	for missing := range valid {
		t.Run("missing "+missing, func(t *testing.T) {
			body := map[string]string{}
			for k, v := range valid {
				if k != missing {
					body[k] = v
				}
			}
			repo := &mockAppointmentRepo{}
			w := postJSON(t, newAppointmentRouter(repo), "/api/appointments", body)
			require.Equal(t, http.StatusBadRequest, w.Code)
			require.Empty(t, repo.created)
		})
	}
}

func TestCreateAppointmentSuccess(t *testing.T) {
	repo := &mockAppointmentRepo{}
	w := postJSON(t, newAppointmentRouter(repo), "/api/appointments", map[string]string{
		"sessionId": "s1",
		"ownerName": "Jane Doe",
		"petName":   "Max",
		"phone":     "+15551234567",
		"dateTime":  "June 20th at 2pm",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var resp models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Equal(t, "appt-1", resp.ID)
	require.Equal(t, models.AppointmentStatusConfirmed, resp.Status)
	require.Len(t, repo.created, 1)
}

func TestListAppointmentsEmpty(t *testing.T) {
	r := newAppointmentRouter(&mockAppointmentRepo{})

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	require.JSONEq(t, "[]", w.Body.String())
}

func TestListAppointmentsForSession(t *testing.T) {
	repo := &mockAppointmentRepo{created: []models.Appointment{
		{ID: "a1", SessionID: "s1", OwnerName: "Jane"},
		{ID: "a2", SessionID: "s2", OwnerName: "Bob"},
	}}
	r := newAppointmentRouter(repo)

	req := httptest.NewRequest(http.MethodGet, "/api/appointments/s1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	var resp []models.Appointment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp, 1)
	require.Equal(t, "a1", resp[0].ID)
}
