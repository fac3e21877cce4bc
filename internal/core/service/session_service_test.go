package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eduline/eduline-client/internal/core/domain"
	"github.com/eduline/eduline-client/internal/core/session"
	"github.com/eduline/eduline-client/internal/infrastructure/httpclient"
)

type stubRecordStore struct {
	rec       *domain.SessionRecord
	malformed bool
	saves     int
	deletes   int
}

func (s *stubRecordStore) Load(_ context.Context) (*domain.SessionRecord, error) {
	if s.malformed {
		return nil, fmt.Errorf("%w: unexpected end of JSON input", domain.ErrRecordMalformed)
	}
	return s.rec, nil
}

func (s *stubRecordStore) Save(_ context.Context, rec *domain.SessionRecord) error {
	s.rec = rec
	s.saves++
	return nil
}

func (s *stubRecordStore) Delete(_ context.Context) error {
	s.rec = nil
	s.malformed = false
	s.deletes++
	return nil
}

type recordingNavigator struct {
	paths []string
}

func (n *recordingNavigator) NavigateTo(path string) {
	n.paths = append(n.paths, path)
}

// newTestSession wires a real pipeline against a test server, the way
// the CLI wires them, including the 401 hook.
func newTestSession(t *testing.T, handler http.Handler) (*SessionService, *stubRecordStore, *recordingNavigator, *session.Session) {
	t.Helper()

	baseURL := "http://127.0.0.1:1" // unroutable unless a server is given
	if handler != nil {
		srv := httptest.NewServer(handler)
		t.Cleanup(srv.Close)
		baseURL = srv.URL
	}

	sess := session.New()
	store := &stubRecordStore{}
	nav := &recordingNavigator{}
	api := httpclient.New(baseURL, sess, zerolog.Nop())
	svc := NewSessionService(api, sess, store, nav, zerolog.Nop())
	api.OnUnauthorized(svc.HandleUnauthorized)
	return svc, store, nav, sess
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func authEnvelope(token string, userID int) map[string]any {
	return map[string]any{
		"success": true,
		"data": map[string]any{
			"token": token,
			"user": map[string]any{
				"id":        userID,
				"username":  "bob",
				"email":     "bob@example.com",
				"full_name": "Bob Example",
				"user_type": "student",
				"status":    "active",
			},
		},
	}
}

func TestSessionService_Restore_NoRecord(t *testing.T) {
	svc, _, _, _ := newTestSession(t, nil)

	svc.Restore(context.Background())

	if svc.IsAuthenticated() {
		t.Fatalf("expected unauthenticated session after empty restore")
	}
}

func TestSessionService_Restore_ValidRecord(t *testing.T) {
	svc, store, _, _ := newTestSession(t, nil)
	store.rec = &domain.SessionRecord{
		Token: "abc",
		User:  &domain.User{ID: 1, Username: "bob"},
	}

	svc.Restore(context.Background())

	if !svc.IsAuthenticated() {
		t.Fatalf("expected authenticated session")
	}
	if u := svc.CurrentUser(); u == nil || u.ID != 1 {
		t.Fatalf("unexpected user: %+v", u)
	}
}

func TestSessionService_Restore_MalformedRecord(t *testing.T) {
	svc, store, _, _ := newTestSession(t, nil)
	store.malformed = true

	svc.Restore(context.Background())

	if svc.IsAuthenticated() {
		t.Fatalf("expected unauthenticated session after malformed restore")
	}
	if store.deletes != 1 {
		t.Fatalf("expected malformed record to be deleted once, got %d deletes", store.deletes)
	}
}

func TestSessionService_Login_Success(t *testing.T) {
	var sawAuth bool
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("Authorization") != "" {
			sawAuth = true
		}
		writeJSON(w, http.StatusOK, authEnvelope("tok123", 7))
	})
	svc, store, _, sess := newTestSession(t, handler)

	err := svc.Login(context.Background(), domain.LoginRequest{Login: "bob", Password: "s3cret!!"})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if sawAuth {
		t.Fatalf("login request must not carry a bearer header")
	}
	if sess.Token() != "tok123" {
		t.Fatalf("unexpected token: %q", sess.Token())
	}
	if store.saves != 1 || store.rec == nil || store.rec.Token != "tok123" {
		t.Fatalf("expected session persisted once, got saves=%d rec=%+v", store.saves, store.rec)
	}
}

func TestSessionService_Login_ValidationError(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"success": false,
			"message": "The given data was invalid.",
			"errors":  map[string]any{"password": []string{"invalid"}},
		})
	})
	svc, store, _, _ := newTestSession(t, handler)

	err := svc.Login(context.Background(), domain.LoginRequest{Login: "bob", Password: "wrong"})
	if err == nil {
		t.Fatalf("expected login error")
	}

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *domain.APIError, got %T", err)
	}
	if got := apiErr.Errors["password"]; len(got) != 1 || got[0] != "invalid" {
		t.Fatalf("unexpected field errors: %+v", apiErr.Errors)
	}
	if svc.IsAuthenticated() {
		t.Fatalf("session must stay empty after a failed login")
	}
	if store.saves != 0 {
		t.Fatalf("no persistence expected on failure, got %d saves", store.saves)
	}
}

func TestSessionService_Register_Multipart(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("expected multipart payload: %v", err)
			writeJSON(w, http.StatusBadRequest, map[string]any{"success": false})
			return
		}
		if got := r.FormValue("username"); got != "carol" {
			t.Errorf("unexpected username field: %q", got)
		}
		if _, hdr, err := r.FormFile("profile_picture"); err != nil || hdr.Filename != "avatar.png" {
			t.Errorf("expected profile_picture part, got %v", err)
		}
		writeJSON(w, http.StatusCreated, authEnvelope("tok456", 9))
	})
	svc, store, _, sess := newTestSession(t, handler)

	err := svc.Register(context.Background(), domain.RegisterRequest{
		Username:             "carol",
		Email:                "carol@example.com",
		Password:             "longenough",
		PasswordConfirmation: "longenough",
		FullName:             "Carol Example",
		ProfilePicture: &domain.FileUpload{
			FileName:    "avatar.png",
			ContentType: "image/png",
			Content:     []byte{0x89, 'P', 'N', 'G'},
		},
	})
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if sess.Token() != "tok456" {
		t.Fatalf("unexpected token: %q", sess.Token())
	}
	if store.saves != 1 {
		t.Fatalf("expected one persistence write, got %d", store.saves)
	}
}

func TestSessionService_RefreshProfile_KeepsToken(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("Authorization"); got != "Bearer abc" {
			t.Errorf("unexpected authorization header: %q", got)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"data": map[string]any{
				"id": 1, "username": "bob", "email": "bob@new.example.com",
				"full_name": "Bob Renamed", "user_type": "student", "status": "active",
			},
		})
	})
	svc, store, _, sess := newTestSession(t, handler)
	sess.Set("abc", &domain.User{ID: 1, Username: "bob"})

	if err := svc.RefreshProfile(context.Background()); err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if sess.Token() != "abc" {
		t.Fatalf("token must be untouched, got %q", sess.Token())
	}
	if u := svc.CurrentUser(); u == nil || u.FullName != "Bob Renamed" {
		t.Fatalf("profile not overwritten: %+v", u)
	}
	if store.saves != 1 {
		t.Fatalf("expected persistence after refresh, got %d saves", store.saves)
	}
}

func TestSessionService_Logout_NetworkFailure(t *testing.T) {
	// No server: the logout call cannot reach anything.
	svc, store, nav, sess := newTestSession(t, nil)
	sess.Set("abc", &domain.User{ID: 1})
	store.rec = &domain.SessionRecord{Token: "abc"}

	svc.Logout(context.Background())

	if sess.IsAuthenticated() {
		t.Fatalf("logout must clear the session regardless of network state")
	}
	if store.rec != nil {
		t.Fatalf("logout must delete the persisted record")
	}
	if len(nav.paths) != 1 || nav.paths[0] != domain.RouteHome {
		t.Fatalf("expected one navigation home, got %v", nav.paths)
	}
}

func TestSessionService_ClearAuth_Idempotent(t *testing.T) {
	svc, store, _, sess := newTestSession(t, nil)
	sess.Set("abc", &domain.User{ID: 1})
	store.rec = &domain.SessionRecord{Token: "abc"}

	svc.ClearAuth()
	svc.ClearAuth()

	if sess.IsAuthenticated() || sess.User() != nil {
		t.Fatalf("session not empty after double clear")
	}
	if store.rec != nil {
		t.Fatalf("record not deleted")
	}
}

func TestSessionService_UnauthorizedTeardown(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			writeJSON(w, http.StatusOK, authEnvelope("tok123", 7))
		default:
			writeJSON(w, http.StatusUnauthorized, map[string]any{
				"success": false,
				"message": "Unauthenticated.",
			})
		}
	})
	svc, store, nav, sess := newTestSession(t, handler)

	if err := svc.Login(context.Background(), domain.LoginRequest{Login: "bob", Password: "pw"}); err != nil {
		t.Fatalf("login failed: %v", err)
	}

	err := svc.RefreshProfile(context.Background())
	if err == nil {
		t.Fatalf("expected error from rejected call")
	}
	if sess.IsAuthenticated() {
		t.Fatalf("session must be empty after a 401")
	}
	if store.rec != nil {
		t.Fatalf("persisted record must be deleted after a 401")
	}
	logins := 0
	for _, p := range nav.paths {
		if p == domain.RouteLogin {
			logins++
		}
	}
	if logins != 1 {
		t.Fatalf("expected exactly one redirect to login, got %v", nav.paths)
	}
}

func TestSessionService_TokenExpiresAt(t *testing.T) {
	svc, _, _, sess := newTestSession(t, nil)

	if _, ok := svc.TokenExpiresAt(); ok {
		t.Fatalf("no expiry expected without a token")
	}

	// Unsigned JWT with exp=4102444800 (2100-01-01); the claim is read
	// without signature verification.
	sess.Set("eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9.eyJleHAiOjQxMDI0NDQ4MDB9.x", nil)
	exp, ok := svc.TokenExpiresAt()
	if !ok {
		t.Fatalf("expected an expiry claim")
	}
	if exp.Year() != 2100 {
		t.Fatalf("unexpected expiry: %v", exp)
	}

	// Opaque tokens simply report no expiry.
	sess.Set("not-a-jwt", nil)
	if _, ok := svc.TokenExpiresAt(); ok {
		t.Fatalf("opaque token must not report an expiry")
	}
}
