// Package core owns the connection-request/notification lifecycle and the
// viewer-relative directory and chat reads. It is transport-agnostic: every
// operation takes the acting usernames explicitly and reports failures as
// (kind, message) errors.
package core

type Service struct {
	users         UserStore
	notifications NotificationStore
	messages      MessageStore
}

func NewService(users UserStore, notifications NotificationStore, messages MessageStore) *Service {
	return &Service{
		users:         users,
		notifications: notifications,
		messages:      messages,
	}
}
