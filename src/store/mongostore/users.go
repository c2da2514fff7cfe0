// Package mongostore implements the core store interfaces over MongoDB.
// Relationship sets live as arrays on the user document and are only ever
// touched with $addToSet and $pull, so every mutation is idempotent and
// serialized by Mongo's per-document write atomicity.
package mongostore

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/ctrl-alt-elite/alumni-backend/src/core"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

type Users struct {
	coll *mongo.Collection
}

func NewUsers(db *mongo.Database) *Users {
	return &Users{coll: db.Collection("users")}
}

func (s *Users) Get(ctx context.Context, username string) (*models.User, error) {
	var user models.User
	err := s.coll.FindOne(ctx, bson.M{"username": username}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, core.NotFoundf("user %q not found", username)
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *Users) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *Users) AddToSet(ctx context.Context, username string, field core.SetField, member string) error {
	result, err := s.coll.UpdateOne(
		ctx,
		bson.M{"username": username},
		bson.M{"$addToSet": bson.M{string(field): member}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return core.NotFoundf("user %q not found", username)
	}
	return nil
}

func (s *Users) Pull(ctx context.Context, username string, field core.SetField, member string) error {
	result, err := s.coll.UpdateOne(
		ctx,
		bson.M{"username": username},
		bson.M{"$pull": bson.M{string(field): member}},
	)
	if err != nil {
		return err
	}
	if result.MatchedCount == 0 {
		return core.NotFoundf("user %q not found", username)
	}
	return nil
}
