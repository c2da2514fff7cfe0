package memstore

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctrl-alt-elite/alumni-backend/src/core"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

func TestUsersSetSemantics(t *testing.T) {
	ctx := context.Background()
	s := NewUsers()
	s.Add(models.User{Username: "alice"})

	require.NoError(t, s.AddToSet(ctx, "alice", core.FieldConnections, "bob"))
	require.NoError(t, s.AddToSet(ctx, "alice", core.FieldConnections, "bob"))

	u, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, u.Connections)

	require.NoError(t, s.Pull(ctx, "alice", core.FieldConnections, "bob"))
	// Pulling an absent member is a no-op, not an error.
	require.NoError(t, s.Pull(ctx, "alice", core.FieldConnections, "bob"))

	u, err = s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Empty(t, u.Connections)
}

func TestUsersNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewUsers()

	_, err := s.Get(ctx, "ghost")
	assert.True(t, core.IsNotFound(err))
	assert.True(t, core.IsNotFound(s.AddToSet(ctx, "ghost", core.FieldConnections, "x")))
	assert.True(t, core.IsNotFound(s.Pull(ctx, "ghost", core.FieldConnections, "x")))
}

func TestUsersGetReturnsCopy(t *testing.T) {
	ctx := context.Background()
	s := NewUsers()
	s.Add(models.User{Username: "alice", Connections: []string{"bob"}})

	u, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	u.Connections[0] = "mallory"

	again, err := s.Get(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, []string{"bob"}, again.Connections)
}

func TestNotificationTransitionGuard(t *testing.T) {
	ctx := context.Background()
	s := NewNotifications()

	n := &models.Notification{
		Recipient: "bob",
		Sender:    "alice",
		Type:      models.NotificationTypeConnectionRequest,
		Status:    models.NotificationStatusPending,
	}
	require.NoError(t, s.Insert(ctx, n))
	require.False(t, n.Id.IsZero())

	updated, err := s.Transition(ctx, n.Id, models.NotificationStatusRejected)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationStatusRejected, updated.Status)

	_, err = s.Transition(ctx, n.Id, models.NotificationStatusAccepted)
	assert.True(t, core.IsInvalidState(err))

	list, err := s.ListByRecipient(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationStatusRejected, list[0].Status)
}

func TestResolvePendingRequestPicksNewest(t *testing.T) {
	ctx := context.Background()
	s := NewNotifications()

	older := &models.Notification{
		Recipient: "bob", Sender: "alice",
		Type:   models.NotificationTypeConnectionRequest,
		Status: models.NotificationStatusPending,
	}
	newer := &models.Notification{
		Recipient: "bob", Sender: "alice",
		Type:   models.NotificationTypeConnectionRequest,
		Status: models.NotificationStatusPending,
	}
	require.NoError(t, s.Insert(ctx, older))
	require.NoError(t, s.Insert(ctx, newer))

	require.NoError(t, s.ResolvePendingRequest(ctx, "alice", "bob", models.NotificationStatusAccepted))

	list, err := s.ListByRecipient(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, list, 2)
	// Newest first in the listing; only the newest was resolved.
	assert.Equal(t, models.NotificationStatusAccepted, list[0].Status)
	assert.Equal(t, models.NotificationStatusPending, list[1].Status)

	// Resolving when nothing is pending for the pair is not an error.
	require.NoError(t, s.ResolvePendingRequest(ctx, "nobody", "bob", models.NotificationStatusAccepted))
}

func TestMessagesThread(t *testing.T) {
	ctx := context.Background()
	s := NewMessages()

	base := time.Now()
	require.NoError(t, s.Insert(ctx, &models.Message{Sender: "a", Recipient: "b", Text: "2", Timestamp: base.Add(2 * time.Second)}))
	require.NoError(t, s.Insert(ctx, &models.Message{Sender: "b", Recipient: "a", Text: "1", Timestamp: base.Add(time.Second)}))
	require.NoError(t, s.Insert(ctx, &models.Message{Sender: "a", Recipient: "c", Text: "x", Timestamp: base}))

	thread, err := s.Thread(ctx, "a", "b")
	require.NoError(t, err)
	require.Len(t, thread, 2)
	assert.Equal(t, "1", thread[0].Text)
	assert.Equal(t, "2", thread[1].Text)

	reverse, err := s.Thread(ctx, "b", "a")
	require.NoError(t, err)
	assert.Equal(t, thread, reverse)
}
