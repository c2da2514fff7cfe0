package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ctrl-alt-elite/alumni-backend/src/core"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
	"github.com/ctrl-alt-elite/alumni-backend/src/store/memstore"
)

type fixture struct {
	svc           *core.Service
	users         *memstore.Users
	notifications *memstore.Notifications
	messages      *memstore.Messages
}

func newFixture(usernames ...string) *fixture {
	f := &fixture{
		users:         memstore.NewUsers(),
		notifications: memstore.NewNotifications(),
		messages:      memstore.NewMessages(),
	}
	f.svc = core.NewService(f.users, f.notifications, f.messages)
	for _, name := range usernames {
		f.users.Add(models.User{Username: name, UserType: models.UserTypeStudent})
	}
	return f
}

func (f *fixture) user(t *testing.T, username string) *models.User {
	t.Helper()
	u, err := f.users.Get(context.Background(), username)
	require.NoError(t, err)
	return u
}

func (f *fixture) status(t *testing.T, viewer, target string) core.ConnectionStatus {
	t.Helper()
	return core.ResolveStatus(f.user(t, viewer), target)
}

func TestRequestConnection(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice", "bob")

	require.NoError(t, f.svc.RequestConnection(ctx, "alice", "bob"))

	assert.Equal(t, core.StatusPending, f.status(t, "alice", "bob"))
	assert.Equal(t, core.StatusReceived, f.status(t, "bob", "alice"))

	count, list, err := f.svc.ListNotifications(ctx, "bob")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationTypeConnectionRequest, list[0].Type)
	assert.Equal(t, "alice", list[0].Sender)
}

func TestRequestConnectionIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice", "bob")

	require.NoError(t, f.svc.RequestConnection(ctx, "alice", "bob"))
	require.NoError(t, f.svc.RequestConnection(ctx, "alice", "bob"))

	assert.Equal(t, []string{"bob"}, f.user(t, "alice").SentRequests)
	assert.Equal(t, []string{"alice"}, f.user(t, "bob").ReceivedRequests)
}

func TestRequestConnectionValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice")

	err := f.svc.RequestConnection(ctx, "alice", "alice")
	assert.True(t, core.IsValidation(err))

	err = f.svc.RequestConnection(ctx, "alice", "ghost")
	assert.True(t, core.IsNotFound(err))

	err = f.svc.RequestConnection(ctx, "ghost", "alice")
	assert.True(t, core.IsNotFound(err))
}

func TestAcceptConnection(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice", "bob")

	require.NoError(t, f.svc.RequestConnection(ctx, "alice", "bob"))
	require.NoError(t, f.svc.AcceptConnection(ctx, "alice", "bob"))

	assert.Equal(t, core.StatusConnected, f.status(t, "alice", "bob"))
	assert.Equal(t, core.StatusConnected, f.status(t, "bob", "alice"))

	// Request entries are gone on both sides.
	assert.Empty(t, f.user(t, "alice").SentRequests)
	assert.Empty(t, f.user(t, "bob").ReceivedRequests)

	// The original sender was notified of the accept.
	_, list, err := f.svc.ListNotifications(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationTypeConnectionAccepted, list[0].Type)

	// The originating request notification was resolved in the same flow.
	_, list, err = f.svc.ListNotifications(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationStatusAccepted, list[0].Status)
}

func TestAcceptConnectionIdempotent(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice", "bob")

	require.NoError(t, f.svc.RequestConnection(ctx, "alice", "bob"))
	require.NoError(t, f.svc.AcceptConnection(ctx, "alice", "bob"))
	require.NoError(t, f.svc.AcceptConnection(ctx, "alice", "bob"))

	assert.Equal(t, []string{"bob"}, f.user(t, "alice").Connections)
	assert.Equal(t, []string{"alice"}, f.user(t, "bob").Connections)

	// The repeated accept did not emit a second notification.
	_, list, err := f.svc.ListNotifications(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, list, 1)
}

func TestAcceptConnectionWithoutRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice", "bob")

	err := f.svc.AcceptConnection(ctx, "alice", "bob")
	assert.True(t, core.IsInvalidState(err))
}

func TestRejectConnection(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice", "bob")

	require.NoError(t, f.svc.RequestConnection(ctx, "alice", "bob"))
	require.NoError(t, f.svc.RejectConnection(ctx, "alice", "bob"))

	assert.Equal(t, core.StatusConnect, f.status(t, "alice", "bob"))
	assert.Equal(t, core.StatusConnect, f.status(t, "bob", "alice"))

	_, list, err := f.svc.ListNotifications(ctx, "bob")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationStatusRejected, list[0].Status)
}

func TestCrossedRequestsResolveToConnection(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice", "bob")

	require.NoError(t, f.svc.RequestConnection(ctx, "alice", "bob"))
	require.NoError(t, f.svc.RequestConnection(ctx, "bob", "alice"))

	assert.Equal(t, core.StatusConnected, f.status(t, "alice", "bob"))
	assert.Equal(t, core.StatusConnected, f.status(t, "bob", "alice"))
	assert.Empty(t, f.user(t, "alice").SentRequests)
	assert.Empty(t, f.user(t, "bob").ReceivedRequests)
}

// After any accept, a connection entry and a request entry for the same pair
// must never coexist.
func TestMutualExclusivityInvariant(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice", "bob")

	require.NoError(t, f.svc.RequestConnection(ctx, "alice", "bob"))
	require.NoError(t, f.svc.AcceptConnection(ctx, "alice", "bob"))

	alice := f.user(t, "alice")
	bob := f.user(t, "bob")
	assert.Contains(t, bob.Connections, "alice")
	assert.NotContains(t, alice.SentRequests, "bob")
	assert.NotContains(t, alice.ReceivedRequests, "bob")
	assert.NotContains(t, bob.SentRequests, "alice")
	assert.NotContains(t, bob.ReceivedRequests, "alice")
}

func TestResolveStatusPrecedence(t *testing.T) {
	u := &models.User{
		Username:         "viewer",
		Connections:      []string{"carol"},
		SentRequests:     []string{"dave"},
		ReceivedRequests: []string{"erin"},
	}

	assert.Equal(t, core.StatusConnected, core.ResolveStatus(u, "carol"))
	assert.Equal(t, core.StatusPending, core.ResolveStatus(u, "dave"))
	assert.Equal(t, core.StatusReceived, core.ResolveStatus(u, "erin"))
	assert.Equal(t, core.StatusConnect, core.ResolveStatus(u, "frank"))
}

func TestConnectionStatusOf(t *testing.T) {
	ctx := context.Background()
	f := newFixture("alice", "bob")

	status, err := f.svc.ConnectionStatusOf(ctx, "alice", "bob")
	require.NoError(t, err)
	assert.Equal(t, core.StatusConnect, status)

	_, err = f.svc.ConnectionStatusOf(ctx, "alice", "alice")
	assert.True(t, core.IsValidation(err))

	_, err = f.svc.ConnectionStatusOf(ctx, "alice", "ghost")
	assert.True(t, core.IsNotFound(err))
}

func TestSubmitMentorshipRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture("mentor", "student")

	require.NoError(t, f.svc.SubmitMentorshipRequest(ctx, "mentor", "student", "Requested mentorship for: Intro to Go"))

	count, list, err := f.svc.ListNotifications(ctx, "mentor")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationTypeMentorshipRequest, list[0].Type)

	// No relationship-set side effects.
	assert.Empty(t, f.user(t, "student").SentRequests)
	assert.Empty(t, f.user(t, "mentor").ReceivedRequests)

	err = f.svc.SubmitMentorshipRequest(ctx, "ghost", "student", "hi")
	assert.True(t, core.IsNotFound(err))
}

func TestSubmitMeetingRequest(t *testing.T) {
	ctx := context.Background()
	f := newFixture("mentor", "student")

	err := f.svc.SubmitMeetingRequest(ctx, "mentor", "student", "Career chat", "")
	assert.True(t, core.IsValidation(err))

	require.NoError(t, f.svc.SubmitMeetingRequest(ctx, "mentor", "student", "Career chat", "2024-04-01T10:00"))

	_, list, err := f.svc.ListNotifications(ctx, "mentor")
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, models.NotificationTypeMeetRequest, list[0].Type)
	assert.Equal(t, "2024-04-01T10:00", list[0].Slot)
}

func TestRespondToNotification(t *testing.T) {
	ctx := context.Background()
	f := newFixture("mentor", "student")

	require.NoError(t, f.svc.SubmitMentorshipRequest(ctx, "mentor", "student", "hi"))
	_, list, err := f.svc.ListNotifications(ctx, "mentor")
	require.NoError(t, err)
	require.Len(t, list, 1)
	id := list[0].Id

	updated, err := f.svc.RespondToNotification(ctx, id, models.NotificationStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, models.NotificationStatusAccepted, updated.Status)

	// Terminal states are immutable: a second response of either decision
	// fails and leaves the stored status unchanged.
	_, err = f.svc.RespondToNotification(ctx, id, models.NotificationStatusRejected)
	assert.True(t, core.IsInvalidState(err))
	_, err = f.svc.RespondToNotification(ctx, id, models.NotificationStatusAccepted)
	assert.True(t, core.IsInvalidState(err))

	count, list, err := f.svc.ListNotifications(ctx, "mentor")
	require.NoError(t, err)
	assert.Equal(t, 0, count)
	assert.Equal(t, models.NotificationStatusAccepted, list[0].Status)
}

func TestRespondToNotificationValidation(t *testing.T) {
	ctx := context.Background()
	f := newFixture("mentor", "student")

	require.NoError(t, f.svc.SubmitMentorshipRequest(ctx, "mentor", "student", "hi"))
	_, list, err := f.svc.ListNotifications(ctx, "mentor")
	require.NoError(t, err)
	id := list[0].Id

	_, err = f.svc.RespondToNotification(ctx, id, models.NotificationStatusPending)
	assert.True(t, core.IsValidation(err))

	_, err = f.svc.RespondToNotification(ctx, id, "maybe")
	assert.True(t, core.IsValidation(err))
}

func TestListNotificationsOrderAndCount(t *testing.T) {
	ctx := context.Background()
	f := newFixture("mentor", "s1", "s2", "s3")

	require.NoError(t, f.svc.SubmitMentorshipRequest(ctx, "mentor", "s1", "first"))
	require.NoError(t, f.svc.SubmitMentorshipRequest(ctx, "mentor", "s2", "second"))
	require.NoError(t, f.svc.SubmitMeetingRequest(ctx, "mentor", "s3", "third", "2024-05-01T09:00"))

	count, list, err := f.svc.ListNotifications(ctx, "mentor")
	require.NoError(t, err)
	assert.Equal(t, 3, count)
	require.Len(t, list, 3)
	// Newest first.
	assert.Equal(t, "third", list[0].Message)
	assert.Equal(t, "second", list[1].Message)
	assert.Equal(t, "first", list[2].Message)

	_, err = f.svc.RespondToNotification(ctx, list[1].Id, models.NotificationStatusRejected)
	require.NoError(t, err)

	count, _, err = f.svc.ListNotifications(ctx, "mentor")
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}
