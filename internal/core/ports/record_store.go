package ports

import (
	"context"

	"github.com/eduline/eduline-client/internal/core/domain"
)

// RecordStore persists the session record across process restarts.
//
// Load returns (nil, nil) when no record exists and wraps
// domain.ErrRecordMalformed when the stored content cannot be decoded;
// it never deletes anything itself. Save overwrites unconditionally
// (last write wins). Delete is a no-op when nothing is stored.
type RecordStore interface {
	Load(ctx context.Context) (*domain.SessionRecord, error)
	Save(ctx context.Context, rec *domain.SessionRecord) error
	Delete(ctx context.Context) error
}
