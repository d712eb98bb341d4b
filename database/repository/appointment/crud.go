package appointmentRepo

import (
	"context"
	"time"

	"vetchat/models"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
)

// Create inserts a new appointment and returns its ID.
func (r *mongoAppointmentRepo) Create(ctx context.Context, appt models.Appointment) (string, error) {
	if appt.ID == "" {
		appt.ID = uuid.New().String()
	}
	if appt.Status == "" {
		appt.Status = models.AppointmentStatusConfirmed
	}
	appt.CreatedAt = time.Now()

	_, err := r.coll.InsertOne(ctx, appt)
	if err != nil {
		return "", err
	}
	return appt.ID, nil
}

// GetBySessionID fetches all appointments booked under a session.
func (r *mongoAppointmentRepo) GetBySessionID(ctx context.Context, sessionID string) ([]models.Appointment, error) {
	cursor, err := r.coll.Find(ctx, bson.M{"sessionId": sessionID})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var appointments []models.Appointment
	if err := cursor.All(ctx, &appointments); err != nil {
		return nil, err
	}
	return appointments, nil
}
