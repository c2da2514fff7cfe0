package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Event struct {
	Id          primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Title       string             `json:"title" bson:"title"`
	Date        string             `json:"date" bson:"date"`
	Location    string             `json:"location" bson:"location"`
	Fee         string             `json:"fee" bson:"fee"`
	Category    string             `json:"category" bson:"category"`
	Description string             `json:"description" bson:"description"`
}
