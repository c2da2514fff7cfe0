package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Notification struct {
	Id        primitive.ObjectID `json:"_id" bson:"_id,omitempty"`
	Recipient string             `json:"recipient" bson:"recipient"`
	Sender    string             `json:"sender" bson:"sender"`
	Message   string             `json:"message" bson:"message"`
	Type      NotificationType   `json:"type" bson:"type"`
	Slot      string             `json:"slot,omitempty" bson:"slot,omitempty"`
	Status    NotificationStatus `json:"status" bson:"status"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
}

type NotificationType string

const (
	NotificationTypeConnectionRequest  NotificationType = "connection_request"
	NotificationTypeConnectionAccepted NotificationType = "connection_accepted"
	NotificationTypeMentorshipRequest  NotificationType = "mentorship_request"
	NotificationTypeMeetRequest        NotificationType = "meet_request"
)

type NotificationStatus string

const (
	NotificationStatusPending  NotificationStatus = "pending"
	NotificationStatusAccepted NotificationStatus = "accepted"
	NotificationStatusRejected NotificationStatus = "rejected"
)

// Resolved reports whether the notification has reached a terminal status.
// Terminal notifications are immutable.
func (n *Notification) Resolved() bool {
	return n.Status != NotificationStatusPending
}
