package mongostore

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ctrl-alt-elite/alumni-backend/src/core"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

type Notifications struct {
	coll *mongo.Collection
}

func NewNotifications(db *mongo.Database) *Notifications {
	return &Notifications{coll: db.Collection("notifications")}
}

func (s *Notifications) Insert(ctx context.Context, n *models.Notification) error {
	if n.Id.IsZero() {
		n.Id = primitive.NewObjectID()
	}
	if n.CreatedAt.IsZero() {
		n.CreatedAt = time.Now()
	}
	_, err := s.coll.InsertOne(ctx, n)
	return err
}

func (s *Notifications) ListByRecipient(ctx context.Context, recipient string) ([]models.Notification, error) {
	opts := options.Find().SetSort(bson.M{"createdAt": -1})
	cursor, err := s.coll.Find(ctx, bson.M{"recipient": recipient}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var notifications []models.Notification
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}

// Transition is a conditional update: the filter requires status pending, so
// a concurrent or repeated response can never overwrite a terminal status.
func (s *Notifications) Transition(ctx context.Context, id primitive.ObjectID, to models.NotificationStatus) (*models.Notification, error) {
	filter := bson.M{
		"_id":    id,
		"status": models.NotificationStatusPending,
	}
	update := bson.M{"$set": bson.M{"status": to}}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated models.Notification
	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&updated)
	if err == nil {
		return &updated, nil
	}
	if err != mongo.ErrNoDocuments {
		return nil, err
	}

	// Pending match failed: distinguish a resolved notification from a
	// missing one.
	var existing models.Notification
	err = s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&existing)
	if err == mongo.ErrNoDocuments {
		return nil, core.NotFoundf("notification %s not found", id.Hex())
	}
	if err != nil {
		return nil, err
	}
	return nil, core.InvalidStatef("notification %s is already %s", id.Hex(), existing.Status)
}

func (s *Notifications) ResolvePendingRequest(ctx context.Context, sender, recipient string, to models.NotificationStatus) error {
	filter := bson.M{
		"sender":    sender,
		"recipient": recipient,
		"type":      models.NotificationTypeConnectionRequest,
		"status":    models.NotificationStatusPending,
	}
	update := bson.M{"$set": bson.M{"status": to}}
	opts := options.FindOneAndUpdate().SetSort(bson.M{"createdAt": -1})

	err := s.coll.FindOneAndUpdate(ctx, filter, update, opts).Err()
	if err == mongo.ErrNoDocuments {
		return nil
	}
	return err
}
