package domain

// NotificationKind categorises a notification for display purposes.
type NotificationKind string

const (
	NotificationInfo       NotificationKind = "info"
	NotificationSuccess    NotificationKind = "success"
	NotificationWarning    NotificationKind = "warning"
	NotificationError      NotificationKind = "error"
	NotificationEnrollment NotificationKind = "enrollment"
	NotificationCompletion NotificationKind = "completion"
	NotificationReminder   NotificationKind = "reminder"
)

// Notification is a server-originated message surfaced to the user.
// Only IsRead is mutable, and only through the mark-read and delete
// endpoints; the local copy is updated after the server acknowledges.
type Notification struct {
	ID          int              `json:"id"`
	Title       string           `json:"title"`
	Message     string           `json:"message"`
	Type        NotificationKind `json:"type"`
	IsRead      bool             `json:"is_read"`
	RelatedID   *int             `json:"related_id"`
	RelatedType *string          `json:"related_type"`
	CreatedAt   string           `json:"created_at"`
}
