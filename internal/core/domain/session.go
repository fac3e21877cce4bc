package domain

// SessionRecordKey is the fixed namespace under which the persisted
// session record is stored, regardless of backend.
const SessionRecordKey = "auth"

// Client navigation destinations used by the session lifecycle.
const (
	RouteHome  = "/"
	RouteLogin = "/login"
)

// SessionRecord is the durable serialization of the client's
// authentication state: written through on every successful session
// mutation, read once at startup, deleted on logout or invalidation.
type SessionRecord struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
