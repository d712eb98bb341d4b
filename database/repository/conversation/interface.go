package conversationRepo

import (
	"context"

	"vetchat/config"
	"vetchat/database"
	"vetchat/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ConversationRepository owns the per-session conversation aggregate.
type ConversationRepository interface {
	// GetBySessionID returns the conversation for a session, or (nil, nil)
	// when the session is unknown.
	GetBySessionID(ctx context.Context, sessionID string) (*models.Conversation, error)
	// Save upserts the conversation keyed by its sessionId.
	Save(ctx context.Context, conv *models.Conversation) error
	// EnsureIndexes creates the unique sessionId index.
	EnsureIndexes(ctx context.Context) error
}

type mongoConversationRepo struct {
	coll *mongo.Collection
}

// NewMongoConversationRepo returns a ConversationRepository backed by MongoDB.
func NewMongoConversationRepo() ConversationRepository {
	db := database.MongoClient.Database(config.AppConfig.MongoDBName)
	return &mongoConversationRepo{
		coll: db.Collection("conversations"),
	}
}
