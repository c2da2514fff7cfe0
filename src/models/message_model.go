package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Message is a single chat line between two users. Messages are immutable
// once stored; a thread is owned by the unordered (sender, recipient) pair.
type Message struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Sender    string             `json:"sender" bson:"sender"`
	Recipient string             `json:"recipient" bson:"recipient"`
	Text      string             `json:"text" bson:"text"`
	Timestamp time.Time          `json:"timestamp" bson:"timestamp"`
}
