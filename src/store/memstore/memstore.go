// Package memstore is an in-memory implementation of the core store
// interfaces. It backs the test suite and local runs without a MongoDB
// instance, and mirrors mongostore's semantics: set mutations are
// idempotent, notification transitions are conditional on pending status.
package memstore

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ctrl-alt-elite/alumni-backend/src/core"
	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

type Users struct {
	mu    sync.Mutex
	users map[string]*models.User
}

func NewUsers() *Users {
	return &Users{users: make(map[string]*models.User)}
}

// Add seeds a user. Tests and local bootstrapping only.
func (s *Users) Add(u models.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if u.Id.IsZero() {
		u.Id = primitive.NewObjectID()
	}
	s.users[u.Username] = &u
}

// Remove deletes a user outright, the way the admin panel does.
func (s *Users) Remove(username string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.users, username)
}

func (s *Users) Get(ctx context.Context, username string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return nil, core.NotFoundf("user %q not found", username)
	}
	cp := *u
	cp.Connections = append([]string(nil), u.Connections...)
	cp.SentRequests = append([]string(nil), u.SentRequests...)
	cp.ReceivedRequests = append([]string(nil), u.ReceivedRequests...)
	return &cp, nil
}

func (s *Users) All(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		out = append(out, *u)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Username < out[j].Username })
	return out, nil
}

func (s *Users) AddToSet(ctx context.Context, username string, field core.SetField, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return core.NotFoundf("user %q not found", username)
	}
	set := setOf(u, field)
	for _, m := range *set {
		if m == member {
			return nil
		}
	}
	*set = append(*set, member)
	return nil
}

func (s *Users) Pull(ctx context.Context, username string, field core.SetField, member string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	if !ok {
		return core.NotFoundf("user %q not found", username)
	}
	set := setOf(u, field)
	for i, m := range *set {
		if m == member {
			*set = append((*set)[:i], (*set)[i+1:]...)
			return nil
		}
	}
	return nil
}

func setOf(u *models.User, field core.SetField) *[]string {
	switch field {
	case core.FieldConnections:
		return &u.Connections
	case core.FieldSentRequests:
		return &u.SentRequests
	default:
		return &u.ReceivedRequests
	}
}

type Notifications struct {
	mu   sync.Mutex
	list []*models.Notification
}

func NewNotifications() *Notifications {
	return &Notifications{}
}

func (s *Notifications) Insert(ctx context.Context, n *models.Notification) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if n.Id.IsZero() {
		n.Id = primitive.NewObjectID()
	}
	cp := *n
	s.list = append(s.list, &cp)
	return nil
}

func (s *Notifications) ListByRecipient(ctx context.Context, recipient string) ([]models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Notification
	// Stored oldest first, returned newest first.
	for i := len(s.list) - 1; i >= 0; i-- {
		if s.list[i].Recipient == recipient {
			out = append(out, *s.list[i])
		}
	}
	return out, nil
}

func (s *Notifications) Transition(ctx context.Context, id primitive.ObjectID, to models.NotificationStatus) (*models.Notification, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, n := range s.list {
		if n.Id != id {
			continue
		}
		if n.Resolved() {
			return nil, core.InvalidStatef("notification %s is already %s", id.Hex(), n.Status)
		}
		n.Status = to
		cp := *n
		return &cp, nil
	}
	return nil, core.NotFoundf("notification %s not found", id.Hex())
}

func (s *Notifications) ResolvePendingRequest(ctx context.Context, sender, recipient string, to models.NotificationStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := len(s.list) - 1; i >= 0; i-- {
		n := s.list[i]
		if n.Sender == sender && n.Recipient == recipient &&
			n.Type == models.NotificationTypeConnectionRequest &&
			n.Status == models.NotificationStatusPending {
			n.Status = to
			return nil
		}
	}
	return nil
}

type Messages struct {
	mu   sync.Mutex
	list []*models.Message
}

func NewMessages() *Messages {
	return &Messages{}
}

func (s *Messages) Insert(ctx context.Context, m *models.Message) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m.Id.IsZero() {
		m.Id = primitive.NewObjectID()
	}
	cp := *m
	s.list = append(s.list, &cp)
	return nil
}

func (s *Messages) Thread(ctx context.Context, a, b string) ([]models.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []models.Message
	for _, m := range s.list {
		if (m.Sender == a && m.Recipient == b) || (m.Sender == b && m.Recipient == a) {
			out = append(out, *m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Timestamp.Before(out[j].Timestamp) })
	return out, nil
}
