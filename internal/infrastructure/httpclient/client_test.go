package httpclient

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"

	"github.com/eduline/eduline-client/internal/core/domain"
	"github.com/eduline/eduline-client/internal/core/session"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *session.Session) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	sess := session.New()
	return New(srv.URL, sess, zerolog.Nop()), sess
}

func TestClient_StandardHeaders(t *testing.T) {
	var accept, auth, requestID string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		accept = r.Header.Get("Accept")
		auth = r.Header.Get("Authorization")
		requestID = r.Header.Get("X-Request-ID")
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	})

	if err := c.Get(context.Background(), "/courses", nil); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if accept != "application/json" {
		t.Fatalf("unexpected Accept header: %q", accept)
	}
	if auth != "" {
		t.Fatalf("no Authorization header expected without a token, got %q", auth)
	}
	if requestID == "" {
		t.Fatalf("expected an X-Request-ID header")
	}
}

func TestClient_BearerAttachedPerRequest(t *testing.T) {
	var auths []string
	c, sess := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		auths = append(auths, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	})

	// The header decision is taken at build time of each request, not
	// cached: token set between calls changes the very next request.
	_ = c.Get(context.Background(), "/a", nil)
	sess.Set("abc", nil)
	_ = c.Get(context.Background(), "/b", nil)
	sess.Clear()
	_ = c.Get(context.Background(), "/c", nil)

	want := []string{"", "Bearer abc", ""}
	if len(auths) != 3 {
		t.Fatalf("expected 3 requests, got %d", len(auths))
	}
	for i := range want {
		if auths[i] != want[i] {
			t.Fatalf("request %d: expected authorization %q, got %q", i, want[i], auths[i])
		}
	}
}

func TestClient_UnauthorizedHookFiresBeforeReturn(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"success":false,"message":"Unauthenticated."}`))
	})

	hookCalls := 0
	c.OnUnauthorized(func() { hookCalls++ })

	err := c.Get(context.Background(), "/auth/profile", nil)
	if err == nil {
		t.Fatalf("expected error")
	}
	if hookCalls != 1 {
		t.Fatalf("expected hook to fire exactly once, got %d", hookCalls)
	}

	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) || apiErr.Status != http.StatusUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}

	// A second rejected call fires the hook again: once per call.
	_ = c.Get(context.Background(), "/notifications", nil)
	if hookCalls != 2 {
		t.Fatalf("expected hook per call, got %d", hookCalls)
	}
}

func TestClient_OtherErrorsPassThrough(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"success":false,"message":"server exploded"}`))
	})

	hookCalls := 0
	c.OnUnauthorized(func() { hookCalls++ })

	err := c.Get(context.Background(), "/courses", nil)
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *domain.APIError, got %v", err)
	}
	if apiErr.Status != http.StatusInternalServerError || apiErr.Message != "server exploded" {
		t.Fatalf("unexpected error payload: %+v", apiErr)
	}
	if hookCalls != 0 {
		t.Fatalf("hook must not fire for non-401 statuses")
	}
}

func TestClient_FieldErrorShapes(t *testing.T) {
	// The server emits either a string or an array per field; both
	// decode into the same slice form.
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnprocessableEntity)
		_, _ = w.Write([]byte(`{
			"success": false,
			"message": "The given data was invalid.",
			"errors": {"email": ["taken", "invalid"], "username": "required"}
		}`))
	})

	err := c.Post(context.Background(), "/auth/register", map[string]string{}, nil)
	var apiErr *domain.APIError
	if !errors.As(err, &apiErr) {
		t.Fatalf("expected *domain.APIError, got %v", err)
	}
	if got := apiErr.Errors["email"]; len(got) != 2 || got[0] != "taken" {
		t.Fatalf("unexpected email errors: %v", got)
	}
	if got := apiErr.Errors["username"]; len(got) != 1 || got[0] != "required" {
		t.Fatalf("unexpected username errors: %v", got)
	}
}

func TestClient_DecodesEnvelope(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"success": true,
			"data": [{"id": 4, "title": "Welcome", "is_read": false}],
			"pagination": {"current_page": 1, "per_page": 10, "total": 1, "total_pages": 1},
			"links": {"first": "x", "last": "x", "prev": null, "next": null}
		}`))
	})

	var out domain.Paginated[domain.Notification]
	if err := c.Get(context.Background(), "/notifications", &out); err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if len(out.Data) != 1 || out.Data[0].ID != 4 || out.Data[0].IsRead {
		t.Fatalf("unexpected payload: %+v", out.Data)
	}
	if out.Pagination.Total != 1 || out.Links.Prev != nil {
		t.Fatalf("unexpected envelope: %+v", out)
	}
}

func TestClient_Multipart(t *testing.T) {
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseMultipartForm(1 << 20); err != nil {
			t.Errorf("parse multipart: %v", err)
		}
		if got := r.FormValue("full_name"); got != "Bob Example" {
			t.Errorf("unexpected field: %q", got)
		}
		f, hdr, err := r.FormFile("profile_picture")
		if err != nil {
			t.Errorf("missing file part: %v", err)
		} else {
			defer f.Close()
			if hdr.Filename != "me.png" {
				t.Errorf("unexpected filename: %q", hdr.Filename)
			}
			if got := hdr.Header.Get("Content-Type"); got != "image/png" {
				t.Errorf("unexpected part content type: %q", got)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"success":true,"data":null}`))
	})

	err := c.PostMultipart(context.Background(), "/auth/register",
		map[string]string{"full_name": "Bob Example"},
		map[string]*domain.FileUpload{"profile_picture": {
			FileName:    "me.png",
			ContentType: "image/png",
			Content:     []byte("fake image bytes"),
		}},
		nil,
	)
	if err != nil {
		t.Fatalf("multipart post failed: %v", err)
	}
}

func TestClient_TransportErrorNoHook(t *testing.T) {
	sess := session.New()
	c := New("http://127.0.0.1:1", sess, zerolog.Nop())

	hookCalls := 0
	c.OnUnauthorized(func() { hookCalls++ })

	err := c.Get(context.Background(), "/courses", nil)
	if err == nil {
		t.Fatalf("expected transport error")
	}
	var apiErr *domain.APIError
	if errors.As(err, &apiErr) {
		t.Fatalf("transport failures are not API errors: %v", err)
	}
	if hookCalls != 0 {
		t.Fatalf("hook must not fire on transport errors")
	}
}
