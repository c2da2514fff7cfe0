package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

type Messages struct {
	coll *mongo.Collection
}

func NewMessages(db *mongo.Database) *Messages {
	return &Messages{coll: db.Collection("messages")}
}

func (s *Messages) Insert(ctx context.Context, m *models.Message) error {
	if m.Id.IsZero() {
		m.Id = primitive.NewObjectID()
	}
	if m.Timestamp.IsZero() {
		m.Timestamp = time.Now()
	}
	_, err := s.coll.InsertOne(ctx, m)
	return err
}

// Thread matches both directions of the pair, so retrieval is symmetric no
// matter which side asks.
func (s *Messages) Thread(ctx context.Context, a, b string) ([]models.Message, error) {
	filter := bson.M{"$or": []bson.M{
		{"sender": a, "recipient": b},
		{"sender": b, "recipient": a},
	}}
	opts := options.Find().SetSort(bson.M{"timestamp": 1})

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var messages []models.Message
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, err
	}
	return messages, nil
}
