package core

import (
	"context"
	"strings"
	"time"

	"github.com/ctrl-alt-elite/alumni-backend/src/models"
)

// UserSummary is a directory entry annotated with the viewer-relative
// connection status. It never carries credentials.
type UserSummary struct {
	Username       string           `json:"username"`
	FullName       string           `json:"fullName"`
	UserType       models.UserType  `json:"userType"`
	Year           int              `json:"year,omitempty"`
	Department     string           `json:"department"`
	CollegeName    string           `json:"collegeName"`
	CurrentJobRole string           `json:"currentJobRole"`
	Location       string           `json:"location"`
	ProfilePic     string           `json:"profilePic"`
	Status         ConnectionStatus `json:"status"`
}

// ListDirectory returns every user except the viewer, filtered by a
// case-insensitive substring match against display name, job role and
// department. An empty term matches all. Each entry carries the status
// resolved fresh from the viewer's current relationship sets.
func (s *Service) ListDirectory(ctx context.Context, viewer, searchTerm string) ([]UserSummary, error) {
	viewerUser, err := s.users.Get(ctx, viewer)
	if err != nil {
		return nil, err
	}
	all, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}

	term := strings.ToLower(strings.TrimSpace(searchTerm))
	out := make([]UserSummary, 0, len(all))
	for i := range all {
		u := &all[i]
		if u.Username == viewer {
			continue
		}
		if term != "" && !matches(u, term) {
			continue
		}
		out = append(out, summarize(u, ResolveStatus(viewerUser, u.Username)))
	}
	return out, nil
}

// ListConnections returns only the users in the viewer's connections set.
// This is the chat sidebar source: users without an established connection
// never appear here, even when messages exist between the pair.
func (s *Service) ListConnections(ctx context.Context, viewer string) ([]UserSummary, error) {
	viewerUser, err := s.users.Get(ctx, viewer)
	if err != nil {
		return nil, err
	}
	all, err := s.users.All(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]UserSummary, 0, len(viewerUser.Connections))
	for i := range all {
		u := &all[i]
		if u.Username == viewer || !contains(viewerUser.Connections, u.Username) {
			continue
		}
		out = append(out, summarize(u, StatusConnected))
	}
	return out, nil
}

// SendMessage appends a message to the pair's thread. Empty or
// whitespace-only text is rejected before any storage call. Messaging does
// not require an established connection; the sidebar visibility rule in
// ListConnections is the only gate.
func (s *Service) SendMessage(ctx context.Context, sender, recipient, text string) error {
	if strings.TrimSpace(text) == "" {
		return Validationf("message text is required")
	}
	if _, err := s.users.Get(ctx, sender); err != nil {
		return err
	}
	if _, err := s.users.Get(ctx, recipient); err != nil {
		return err
	}
	return s.messages.Insert(ctx, &models.Message{
		Sender:    sender,
		Recipient: recipient,
		Text:      text,
		Timestamp: time.Now(),
	})
}

// FetchThread returns every message between the unordered pair, ascending by
// timestamp. FetchThread(a, b) and FetchThread(b, a) are identical. Chat
// clients re-invoke this on a fixed 3-second interval while a thread is open;
// there is no push transport.
func (s *Service) FetchThread(ctx context.Context, userA, userB string) ([]models.Message, error) {
	return s.messages.Thread(ctx, userA, userB)
}

func matches(u *models.User, term string) bool {
	return strings.Contains(strings.ToLower(u.DisplayName()), term) ||
		strings.Contains(strings.ToLower(u.CurrentJobRole), term) ||
		strings.Contains(strings.ToLower(u.Department), term)
}

func summarize(u *models.User, status ConnectionStatus) UserSummary {
	return UserSummary{
		Username:       u.Username,
		FullName:       u.FullName,
		UserType:       u.UserType,
		Year:           u.Year,
		Department:     u.Department,
		CollegeName:    u.CollegeName,
		CurrentJobRole: u.CurrentJobRole,
		Location:       u.Location,
		ProfilePic:     u.ProfilePic,
		Status:         status,
	}
}
