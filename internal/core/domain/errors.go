package domain

import (
	"encoding/json"
	"errors"
	"fmt"
)

var ErrRecordMalformed = errors.New("persisted session record malformed")
var ErrNotAuthenticated = errors.New("not authenticated")

// FieldMessages holds the error messages for one field of an API error
// envelope. The server emits either a single string or an array of
// strings per field; both decode into the same slice.
type FieldMessages []string

func (m *FieldMessages) UnmarshalJSON(data []byte) error {
	var many []string
	if err := json.Unmarshal(data, &many); err == nil {
		*m = many
		return nil
	}
	var one string
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*m = FieldMessages{one}
	return nil
}

// APIError is the decoded form of a non-2xx API response:
// {success: false, message, errors?: {field: [...]}}. It is the only
// place the client extracts error payloads from responses; callers
// needing a display mapping go through validation.ParseAPIErrors.
type APIError struct {
	Status  int                      `json:"-"`
	Message string                   `json:"message"`
	Errors  map[string]FieldMessages `json:"errors,omitempty"`
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("api error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("api error (status %d)", e.Status)
}
