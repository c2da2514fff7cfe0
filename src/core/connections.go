package core

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

// ConnectionStatus is the viewer-relative relationship state the directory
// uses to pick the action to offer ("Connect", "Pending", "Accept", "Chat").
type ConnectionStatus string

const (
	StatusConnected ConnectionStatus = "connected"
	StatusPending   ConnectionStatus = "pending"
	StatusReceived  ConnectionStatus = "received"
	StatusConnect   ConnectionStatus = "connect"
)

// ResolveStatus computes the viewer-relative status of target from the
// viewer's relationship sets, in precedence order. It is the single source
// of truth for directory affordances and must be recomputed per fetch.
func ResolveStatus(viewer *models.User, target string) ConnectionStatus {
	switch {
	case contains(viewer.Connections, target):
		return StatusConnected
	case contains(viewer.SentRequests, target):
		return StatusPending
	case contains(viewer.ReceivedRequests, target):
		return StatusReceived
	default:
		return StatusConnect
	}
}

// ConnectionStatusOf loads the viewer and resolves their status toward
// target. The target must exist.
func (s *Service) ConnectionStatusOf(ctx context.Context, viewer, target string) (ConnectionStatus, error) {
	if viewer == target {
		return "", Validationf("cannot check connection status with yourself")
	}
	viewerUser, err := s.users.Get(ctx, viewer)
	if err != nil {
		return "", err
	}
	if _, err := s.users.Get(ctx, target); err != nil {
		return "", err
	}
	return ResolveStatus(viewerUser, target), nil
}

// RequestConnection records an outstanding request from sender to recipient
// and notifies the recipient. Both set additions are idempotent, so calling
// it twice leaves the same relationship state as calling it once.
//
// A crossed request (the recipient already has an outstanding request to the
// sender) is resolved into a mutual connection instead of leaving two
// opposite pending entries that neither side can accept cleanly.
func (s *Service) RequestConnection(ctx context.Context, sender, recipient string) error {
	if sender == recipient {
		return Validationf("cannot send a connection request to yourself")
	}
	senderUser, err := s.users.Get(ctx, sender)
	if err != nil {
		return err
	}
	if _, err := s.users.Get(ctx, recipient); err != nil {
		return err
	}

	if contains(senderUser.ReceivedRequests, recipient) {
		// Crossed request: the other side asked first, treat ours as an accept.
		return s.AcceptConnection(ctx, recipient, sender)
	}

	if err := s.users.AddToSet(ctx, sender, FieldSentRequests, recipient); err != nil {
		return err
	}
	if err := s.users.AddToSet(ctx, recipient, FieldReceivedRequests, sender); err != nil {
		return err
	}
	return s.notifications.Insert(ctx, &models.Notification{
		Recipient: recipient,
		Sender:    sender,
		Message:   fmt.Sprintf("%s wants to connect with you.", sender),
		Type:      models.NotificationTypeConnectionRequest,
		Status:    models.NotificationStatusPending,
		CreatedAt: time.Now(),
	})
}

// AcceptConnection establishes the mutual connection for a request that
// originalSender previously sent to accepter. The originating
// connection_request notification, when still pending, is resolved to
// accepted in the same flow, and the original sender is notified.
//
// Accepting an already established connection is a no-op; accepting without
// an outstanding request fails with an invalid_state error.
func (s *Service) AcceptConnection(ctx context.Context, originalSender, accepter string) error {
	if _, err := s.users.Get(ctx, originalSender); err != nil {
		return err
	}
	accepterUser, err := s.users.Get(ctx, accepter)
	if err != nil {
		return err
	}
	if contains(accepterUser.Connections, originalSender) {
		return nil
	}
	if !contains(accepterUser.ReceivedRequests, originalSender) {
		return InvalidStatef("no pending connection request from %s", originalSender)
	}

	if err := s.users.AddToSet(ctx, accepter, FieldConnections, originalSender); err != nil {
		return err
	}
	if err := s.users.AddToSet(ctx, originalSender, FieldConnections, accepter); err != nil {
		return err
	}
	if err := s.users.Pull(ctx, originalSender, FieldSentRequests, accepter); err != nil {
		return err
	}
	if err := s.users.Pull(ctx, accepter, FieldReceivedRequests, originalSender); err != nil {
		return err
	}
	if err := s.notifications.ResolvePendingRequest(ctx, originalSender, accepter, models.NotificationStatusAccepted); err != nil {
		return err
	}
	return s.notifications.Insert(ctx, &models.Notification{
		Recipient: originalSender,
		Sender:    accepter,
		Message:   fmt.Sprintf("%s accepted your connection request.", accepter),
		Type:      models.NotificationTypeConnectionAccepted,
		Status:    models.NotificationStatusPending,
		CreatedAt: time.Now(),
	})
}

// RejectConnection withdraws the request originalSender sent to rejecter and
// resolves the originating notification to rejected. No connection is made.
func (s *Service) RejectConnection(ctx context.Context, originalSender, rejecter string) error {
	if _, err := s.users.Get(ctx, originalSender); err != nil {
		return err
	}
	rejecterUser, err := s.users.Get(ctx, rejecter)
	if err != nil {
		return err
	}
	if !contains(rejecterUser.ReceivedRequests, originalSender) {
		return InvalidStatef("no pending connection request from %s", originalSender)
	}

	if err := s.users.Pull(ctx, originalSender, FieldSentRequests, rejecter); err != nil {
		return err
	}
	if err := s.users.Pull(ctx, rejecter, FieldReceivedRequests, originalSender); err != nil {
		return err
	}
	return s.notifications.ResolvePendingRequest(ctx, originalSender, rejecter, models.NotificationStatusRejected)
}

// SubmitMentorshipRequest appends a mentorship_request notification for the
// mentor. It has no relationship-set side effects.
func (s *Service) SubmitMentorshipRequest(ctx context.Context, mentor, student, message string) error {
	if _, err := s.users.Get(ctx, mentor); err != nil {
		return err
	}
	if _, err := s.users.Get(ctx, student); err != nil {
		return err
	}
	return s.notifications.Insert(ctx, &models.Notification{
		Recipient: mentor,
		Sender:    student,
		Message:   message,
		Type:      models.NotificationTypeMentorshipRequest,
		Status:    models.NotificationStatusPending,
		CreatedAt: time.Now(),
	})
}

// SubmitMeetingRequest appends a meet_request notification carrying the
// requested slot. The slot is required.
func (s *Service) SubmitMeetingRequest(ctx context.Context, mentor, student, message, slot string) error {
	if slot == "" {
		return Validationf("a meeting slot is required")
	}
	if _, err := s.users.Get(ctx, mentor); err != nil {
		return err
	}
	if _, err := s.users.Get(ctx, student); err != nil {
		return err
	}
	return s.notifications.Insert(ctx, &models.Notification{
		Recipient: mentor,
		Sender:    student,
		Message:   message,
		Type:      models.NotificationTypeMeetRequest,
		Slot:      slot,
		Status:    models.NotificationStatusPending,
		CreatedAt: time.Now(),
	})
}

// RespondToNotification transitions a pending notification to accepted or
// rejected. Terminal notifications are immutable: a second response fails
// with an invalid_state error and leaves the record untouched.
func (s *Service) RespondToNotification(ctx context.Context, id primitive.ObjectID, decision models.NotificationStatus) (*models.Notification, error) {
	if decision != models.NotificationStatusAccepted && decision != models.NotificationStatusRejected {
		return nil, Validationf("decision must be %q or %q", models.NotificationStatusAccepted, models.NotificationStatusRejected)
	}
	return s.notifications.Transition(ctx, id, decision)
}

// ListNotifications returns the recipient's notifications newest first along
// with the number still pending (the badge count). Read-only.
func (s *Service) ListNotifications(ctx context.Context, recipient string) (int, []models.Notification, error) {
	list, err := s.notifications.ListByRecipient(ctx, recipient)
	if err != nil {
		return 0, nil, err
	}
	pending := 0
	for i := range list {
		if list[i].Status == models.NotificationStatusPending {
			pending++
		}
	}
	return pending, list, nil
}

func contains(set []string, member string) bool {
	for _, m := range set {
		if m == member {
			return true
		}
	}
	return false
}
