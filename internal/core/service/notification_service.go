package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog"

	"github.com/eduline/eduline-client/internal/core/domain"
	"github.com/eduline/eduline-client/internal/core/ports"
)

const pathNotifications = "/notifications"

// NotificationService mirrors the user's notification list. Every
// mutation is sent to the server first and applied locally only after
// the acknowledgment; the unread count is always recomputed from the
// list itself, so the two can never drift apart.
type NotificationService struct {
	api ports.API
	log zerolog.Logger

	mu    sync.RWMutex
	items []domain.Notification
}

var _ ports.NotificationService = (*NotificationService)(nil)

func NewNotificationService(api ports.API, log zerolog.Logger) *NotificationService {
	return &NotificationService{api: api, log: log}
}

// Fetch replaces the entire local list with the server's current page.
func (s *NotificationService) Fetch(ctx context.Context) error {
	var res domain.Paginated[domain.Notification]
	if err := s.api.Get(ctx, pathNotifications, &res); err != nil {
		return err
	}

	s.mu.Lock()
	s.items = res.Data
	s.mu.Unlock()

	s.log.Debug().Int("count", len(res.Data)).Msg("notifications fetched")
	return nil
}

// MarkAsRead flags one notification as read. Locally a no-op when the
// item is already read or absent.
func (s *NotificationService) MarkAsRead(ctx context.Context, id int) error {
	if err := s.api.Put(ctx, fmt.Sprintf("%s/%d/read", pathNotifications, id), nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items[i].IsRead = true
			break
		}
	}
	return nil
}

// MarkAllAsRead flags every notification as read.
func (s *NotificationService) MarkAllAsRead(ctx context.Context) error {
	if err := s.api.Put(ctx, pathNotifications+"/read-all", nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		s.items[i].IsRead = true
	}
	return nil
}

// Remove deletes one notification server-side and drops it locally.
func (s *NotificationService) Remove(ctx context.Context, id int) error {
	if err := s.api.Delete(ctx, fmt.Sprintf("%s/%d", pathNotifications, id), nil); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.items {
		if s.items[i].ID == id {
			s.items = append(s.items[:i], s.items[i+1:]...)
			break
		}
	}
	return nil
}

// Items returns a copy of the current list.
func (s *NotificationService) Items() []domain.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Notification, len(s.items))
	copy(out, s.items)
	return out
}

// UnreadCount is derived from the list on every call.
func (s *NotificationService) UnreadCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n := 0
	for i := range s.items {
		if !s.items[i].IsRead {
			n++
		}
	}
	return n
}
