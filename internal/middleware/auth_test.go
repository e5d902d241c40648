package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"fintrack/internal/auth"
)

func protectedHandler(t *testing.T, wantUserID string, called *bool) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if got := GetUserID(r.Context()); got != wantUserID {
			t.Errorf("expected user id %q in context, got %q", wantUserID, got)
		}
		w.WriteHeader(http.StatusOK)
	}
}

func TestRequireAuth_ValidToken(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	mw := NewAuthMiddleware(jwtManager)

	token, _, err := jwtManager.GenerateToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	called := false
	handler := mw.RequireAuth(protectedHandler(t, "user-123", &called))

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if !called {
		t.Error("expected downstream handler to run")
	}
	if rec.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rec.Code)
	}
}

func TestRequireAuth_MissingHeader(t *testing.T) {
	mw := NewAuthMiddleware(auth.NewJWTManager("test-secret", time.Hour))

	called := false
	handler := mw.RequireAuth(protectedHandler(t, "", &called))

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if called {
		t.Error("downstream handler must not run without a token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireAuth_MalformedToken(t *testing.T) {
	mw := NewAuthMiddleware(auth.NewJWTManager("test-secret", time.Hour))

	called := false
	handler := mw.RequireAuth(protectedHandler(t, "", &called))

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	rec := httptest.NewRecorder()

	handler(rec, req)

	if called {
		t.Error("downstream handler must not run with a malformed token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

func TestRequireAuth_ExpiredToken(t *testing.T) {
	expired := auth.NewJWTManager("test-secret", -time.Hour)
	token, _, err := expired.GenerateToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	mw := NewAuthMiddleware(auth.NewJWTManager("test-secret", time.Hour))

	called := false
	handler := mw.RequireAuth(protectedHandler(t, "", &called))

	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	handler(rec, req)

	if called {
		t.Error("downstream handler must not run with an expired token")
	}
	if rec.Code != http.StatusUnauthorized {
		t.Errorf("expected status 401, got %d", rec.Code)
	}
}

// The 401 body must not reveal why the token was rejected.
func TestRequireAuth_UniformRejectionBody(t *testing.T) {
	jwtManager := auth.NewJWTManager("test-secret", time.Hour)
	mw := NewAuthMiddleware(jwtManager)

	expired := auth.NewJWTManager("test-secret", -time.Hour)
	expiredToken, _, err := expired.GenerateToken("user-123", "test@example.com")
	if err != nil {
		t.Fatalf("failed to generate token: %v", err)
	}

	handler := mw.RequireAuth(func(w http.ResponseWriter, r *http.Request) {})

	var bodies []string
	for _, header := range []string{"", "Bearer garbage", "Bearer " + expiredToken} {
		req := httptest.NewRequest(http.MethodGet, "/entries", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		rec := httptest.NewRecorder()
		handler(rec, req)
		bodies = append(bodies, rec.Body.String())
	}

	for i := 1; i < len(bodies); i++ {
		if bodies[i] != bodies[0] {
			t.Errorf("expected identical 401 bodies, got %q and %q", bodies[0], bodies[i])
		}
	}
}

func TestGetUserID_Missing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/entries", nil)
	if got := GetUserID(req.Context()); got != "" {
		t.Errorf("expected empty user id, got %q", got)
	}
}
