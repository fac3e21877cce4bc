package service

import (
	"context"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/eduline/eduline-client/internal/core/domain"
	"github.com/eduline/eduline-client/internal/core/ports"
	"github.com/eduline/eduline-client/internal/core/session"
)

const (
	pathLogin          = "/auth/login"
	pathRegister       = "/auth/register"
	pathProfile        = "/auth/profile"
	pathLogout         = "/auth/logout"
	pathChangePassword = "/auth/change-password"
	pathForgotPassword = "/auth/forgot-password"
	pathResetPassword  = "/auth/reset-password"
)

// SessionService is the single source of truth for "is this client
// authenticated, and as whom". All credential acquisition, persistence
// and invalidation goes through it.
type SessionService struct {
	api   ports.API
	sess  *session.Session
	store ports.RecordStore
	nav   ports.Navigator
	log   zerolog.Logger
}

var _ ports.SessionService = (*SessionService)(nil)

func NewSessionService(
	api ports.API,
	sess *session.Session,
	store ports.RecordStore,
	nav ports.Navigator,
	log zerolog.Logger,
) *SessionService {
	return &SessionService{api: api, sess: sess, store: store, nav: nav, log: log}
}

// HandleUnauthorized is the pipeline's 401 hook: unconditional local
// teardown followed by a redirect to the login destination. Register
// it with ports.API.OnUnauthorized at wiring time so that a session
// the server has invalidated is torn down on the very next call that
// discovers it.
func (s *SessionService) HandleUnauthorized() {
	s.ClearAuth()
	s.nav.NavigateTo(domain.RouteLogin)
}

// Restore loads the persisted session record at startup. A missing
// record leaves the session empty; a malformed one is discarded and
// deleted. Restore never fails to the caller.
func (s *SessionService) Restore(ctx context.Context) {
	rec, err := s.store.Load(ctx)
	if err != nil {
		if errors.Is(err, domain.ErrRecordMalformed) {
			s.log.Warn().Err(err).Msg("discarding malformed session record")
			if delErr := s.store.Delete(ctx); delErr != nil {
				s.log.Warn().Err(delErr).Msg("failed to delete malformed session record")
			}
		} else {
			s.log.Warn().Err(err).Msg("session restore failed, starting unauthenticated")
		}
		return
	}
	if rec == nil || rec.Token == "" {
		return
	}

	s.sess.Set(rec.Token, rec.User)
	s.log.Debug().Msg("session restored")

	// Informational only: the server remains the authority on token
	// validity and will answer 401 if it disagrees.
	if exp, ok := s.TokenExpiresAt(); ok && exp.Before(time.Now()) {
		s.log.Info().Time("expired_at", exp).Msg("restored token is already expired")
	}
}

// Login exchanges credentials for a token and profile. The session is
// mutated only after the call succeeds; on failure it is untouched and
// the error is surfaced as-is.
func (s *SessionService) Login(ctx context.Context, req domain.LoginRequest) error {
	var res domain.Response[domain.AuthResponse]
	if err := s.api.Post(ctx, pathLogin, req, &res); err != nil {
		return err
	}

	s.sess.Set(res.Data.Token, res.Data.User)
	s.persist(ctx)
	s.log.Info().Str("login", req.Login).Msg("logged in")
	return nil
}

// Register creates an account via a multipart payload (the profile
// picture, when present, rides along as a binary part). Success and
// failure semantics are identical to Login.
func (s *SessionService) Register(ctx context.Context, req domain.RegisterRequest) error {
	fields := map[string]string{
		"username":              req.Username,
		"email":                 req.Email,
		"password":              req.Password,
		"password_confirmation": req.PasswordConfirmation,
		"full_name":             req.FullName,
	}
	putIfSet(fields, "phone", req.Phone)
	putIfSet(fields, "date_of_birth", req.DateOfBirth)
	putIfSet(fields, "gender", req.Gender)

	var files map[string]*domain.FileUpload
	if req.ProfilePicture != nil {
		files = map[string]*domain.FileUpload{"profile_picture": req.ProfilePicture}
	}

	var res domain.Response[domain.AuthResponse]
	if err := s.api.PostMultipart(ctx, pathRegister, fields, files, &res); err != nil {
		return err
	}

	s.sess.Set(res.Data.Token, res.Data.User)
	s.persist(ctx)
	s.log.Info().Str("username", req.Username).Msg("registered")
	return nil
}

// RefreshProfile re-fetches the current user's profile, overwriting
// the local copy but leaving the token untouched. Calling it without a
// token is not guarded locally; the server answers 401 and the normal
// teardown applies.
func (s *SessionService) RefreshProfile(ctx context.Context) error {
	var res domain.Response[domain.User]
	if err := s.api.Get(ctx, pathProfile, &res); err != nil {
		return err
	}

	s.sess.SetUser(&res.Data)
	s.persist(ctx)
	return nil
}

// UpdateProfile submits profile changes (multipart, optional picture)
// and mirrors the server's updated profile locally.
func (s *SessionService) UpdateProfile(ctx context.Context, req domain.UpdateProfileRequest) error {
	fields := map[string]string{}
	putIfSet(fields, "full_name", req.FullName)
	putIfSet(fields, "phone", req.Phone)
	putIfSet(fields, "date_of_birth", req.DateOfBirth)
	putIfSet(fields, "gender", req.Gender)
	putIfSet(fields, "address", req.Address)

	var files map[string]*domain.FileUpload
	if req.ProfilePicture != nil {
		files = map[string]*domain.FileUpload{"profile_picture": req.ProfilePicture}
	}

	var res domain.Response[domain.User]
	if err := s.api.PutMultipart(ctx, pathProfile, fields, files, &res); err != nil {
		return err
	}

	s.sess.SetUser(&res.Data)
	s.persist(ctx)
	s.log.Info().Msg("profile updated")
	return nil
}

// ChangePassword rotates the password of the authenticated user. The
// session itself is unchanged; the server keeps the token valid.
func (s *SessionService) ChangePassword(ctx context.Context, req domain.ChangePasswordRequest) error {
	return s.api.Put(ctx, pathChangePassword, req, nil)
}

// ForgotPassword requests a reset email. No session state involved.
func (s *SessionService) ForgotPassword(ctx context.Context, req domain.ForgotPasswordRequest) error {
	return s.api.Post(ctx, pathForgotPassword, req, nil)
}

// ResetPassword completes a reset flow started by ForgotPassword.
func (s *SessionService) ResetPassword(ctx context.Context, req domain.ResetPasswordRequest) error {
	return s.api.Post(ctx, pathResetPassword, req, nil)
}

// Logout tells the server best-effort, then always clears local state
// and navigates home. A network failure cannot keep the user logged in.
func (s *SessionService) Logout(ctx context.Context) {
	if err := s.api.Post(ctx, pathLogout, nil, nil); err != nil {
		s.log.Debug().Err(err).Msg("server logout failed, clearing locally anyway")
	}
	s.ClearAuth()
	s.nav.NavigateTo(domain.RouteHome)
	s.log.Info().Msg("logged out")
}

// ClearAuth is the one invalidation primitive: empty the session and
// delete the persisted record. Idempotent, performs no network I/O,
// and is the only path by which the session transitions to empty
// outside of startup — Logout and the 401 hook both route through it.
func (s *SessionService) ClearAuth() {
	s.sess.Clear()
	if err := s.store.Delete(context.Background()); err != nil {
		s.log.Warn().Err(err).Msg("failed to delete session record")
	}
}

func (s *SessionService) IsAuthenticated() bool {
	return s.sess.IsAuthenticated()
}

func (s *SessionService) CurrentUser() *domain.User {
	return s.sess.User()
}

// TokenExpiresAt decodes the bearer token without verifying its
// signature and reports its expiry claim, when one is present.
func (s *SessionService) TokenExpiresAt() (time.Time, bool) {
	token := s.sess.Token()
	if token == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}

// persist writes the current session through to durable storage.
// Write failures are logged, not surfaced: the in-memory session is
// already correct and the next successful mutation writes again.
func (s *SessionService) persist(ctx context.Context) {
	if err := s.store.Save(ctx, s.sess.Snapshot()); err != nil {
		s.log.Warn().Err(err).Msg("failed to persist session record")
	}
}

func putIfSet(fields map[string]string, key, value string) {
	if value != "" {
		fields[key] = value
	}
}
