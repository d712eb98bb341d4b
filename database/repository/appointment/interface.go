package appointmentRepo

import (
	"context"

	"vetchat/config"
	"vetchat/database"
	"vetchat/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// AppointmentRepository owns the appointment ledger.
type AppointmentRepository interface {
	Create(ctx context.Context, appt models.Appointment) (string, error)
	GetBySessionID(ctx context.Context, sessionID string) ([]models.Appointment, error)
}

type mongoAppointmentRepo struct {
	coll *mongo.Collection
}

// NewMongoAppointmentRepo returns an AppointmentRepository backed by MongoDB.
func NewMongoAppointmentRepo() AppointmentRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDBName)
	return &mongoAppointmentRepo{
		coll: db.Collection("appointments"),
	}
}
