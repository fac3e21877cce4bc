package ports

import (
	"context"

	"github.com/eduline/eduline-client/internal/core/domain"
)

// SessionService owns the client's authentication lifecycle.
type SessionService interface {
	Restore(ctx context.Context)
	Login(ctx context.Context, req domain.LoginRequest) error
	Register(ctx context.Context, req domain.RegisterRequest) error
	RefreshProfile(ctx context.Context) error
	UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) error
	ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error
	ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error
	ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error
	Logout(ctx context.Context)
	ClearAuth()

	IsAuthenticated() bool
	CurrentUser() *domain.User
}
