package ports

import (
	"context"

	"github.com/eduline/eduline-client/internal/core/domain"
)

// API is the authenticated request pipeline every outbound call goes
// through. Implementations attach the standard headers and the bearer
// credential, decode the response envelope into out (when non-nil), and
// run the registered unauthorized hook before returning a 401 error.
type API interface {
	Get(ctx context.Context, path string, out any) error
	Post(ctx context.Context, path string, body, out any) error
	Put(ctx context.Context, path string, body, out any) error
	Delete(ctx context.Context, path string, out any) error
	PostMultipart(ctx context.Context, path string, fields map[string]string, files map[string]*domain.FileUpload, out any) error
	PutMultipart(ctx context.Context, path string, fields map[string]string, files map[string]*domain.FileUpload, out any) error

	// OnUnauthorized registers the single hook invoked synchronously on
	// every 401 response, before the error propagates to the caller.
	OnUnauthorized(fn func())
}
