package core

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

// SetField names one of the three relationship sets on a user document.
type SetField string

const (
	FieldConnections      SetField = "connections"
	FieldSentRequests     SetField = "sentRequests"
	FieldReceivedRequests SetField = "receivedRequests"
)

// UserStore provides the user reads and the idempotent set mutations the
// core relies on. AddToSet must be a no-op when the member is already
// present, and Pull a no-op when it is absent, so every mutation is safe
// to retry after a partial failure.
type UserStore interface {
	Get(ctx context.Context, username string) (*models.User, error)
	All(ctx context.Context) ([]models.User, error)
	AddToSet(ctx context.Context, username string, field SetField, member string) error
	Pull(ctx context.Context, username string, field SetField, member string) error
}

// NotificationStore persists notification records. Records are never deleted.
type NotificationStore interface {
	Insert(ctx context.Context, n *models.Notification) error
	// ListByRecipient returns the recipient's notifications newest first.
	ListByRecipient(ctx context.Context, recipient string) ([]models.Notification, error)
	// Transition moves a notification from pending to the given terminal
	// status. It fails with an invalid_state error when the notification is
	// already resolved and not_found when it does not exist.
	Transition(ctx context.Context, id primitive.ObjectID, to models.NotificationStatus) (*models.Notification, error)
	// ResolvePendingRequest resolves the newest pending connection_request
	// notification from sender to recipient, if one exists. Resolving
	// nothing is not an error.
	ResolvePendingRequest(ctx context.Context, sender, recipient string, to models.NotificationStatus) error
}

// MessageStore persists chat messages. Thread must return the same rows for
// (a, b) and (b, a), sorted ascending by timestamp.
type MessageStore interface {
	Insert(ctx context.Context, m *models.Message) error
	Thread(ctx context.Context, a, b string) ([]models.Message, error)
}
