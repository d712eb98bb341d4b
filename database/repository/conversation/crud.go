package conversationRepo

import (
	"context"
	"time"

	"vetchat/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// GetBySessionID returns the conversation for a session, or nil when absent.
func (r *mongoConversationRepo) GetBySessionID(ctx context.Context, sessionID string) (*models.Conversation, error) {
	var conv models.Conversation
	err := r.coll.FindOne(ctx, bson.M{"sessionId": sessionID}).Decode(&conv)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &conv, nil
}

// Save upserts the conversation. A fresh conversation gets its createdAt set;
// updatedAt is bumped on every write.
func (r *mongoConversationRepo) Save(ctx context.Context, conv *models.Conversation) error {
	now := time.Now()
	if conv.CreatedAt.IsZero() {
		conv.CreatedAt = now
	}
	conv.UpdatedAt = now

	opts := options.Replace().SetUpsert(true)
	_, err := r.coll.ReplaceOne(ctx, bson.M{"sessionId": conv.SessionID}, conv, opts)
	return err
}

// EnsureIndexes creates the unique sessionId index.
func (r *mongoConversationRepo) EnsureIndexes(ctx context.Context) error {
	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "sessionId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}
