package ports

import (
	"context"

	"github.com/eduline/eduline-client/internal/core/domain"
)

// NotificationService mirrors the user's notification list locally,
// applying mutations only after the server has acknowledged them.
type NotificationService interface {
	Fetch(ctx context.Context) error
	MarkAsRead(ctx context.Context, id int) error
	MarkAllAsRead(ctx context.Context) error
	Remove(ctx context.Context, id int) error

	Items() []domain.Notification
	UnreadCount() int
}
