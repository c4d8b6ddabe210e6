package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/majlis/majlis-api/internal/pkg/jwt"
)

func newTestJWT() *jwt.Service {
	return jwt.NewService("test-secret", 15*time.Minute, time.Hour)
}

func protectedHandler(gotUserID *uuid.UUID, gotRole *string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*gotUserID = GetUserID(r.Context())
		*gotRole = GetRole(r.Context())
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthValidToken(t *testing.T) {
	svc := newTestJWT()
	userID := uuid.New()
	token, err := svc.GenerateAccessToken(userID, "member", false)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	var gotUserID uuid.UUID
	var gotRole string
	handler := Auth(svc)(protectedHandler(&gotUserID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d, want 200", rec.Code)
	}
	if gotUserID != userID {
		t.Errorf("user ID %s, want %s", gotUserID, userID)
	}
	if gotRole != "member" {
		t.Errorf("role %q, want member", gotRole)
	}
}

func TestAuthMissingHeader(t *testing.T) {
	var gotUserID uuid.UUID
	var gotRole string
	handler := Auth(newTestJWT())(protectedHandler(&gotUserID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", rec.Code)
	}
}

func TestAuthMalformedHeader(t *testing.T) {
	var gotUserID uuid.UUID
	var gotRole string
	handler := Auth(newTestJWT())(protectedHandler(&gotUserID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", rec.Code)
	}
}

func TestAuthInvalidToken(t *testing.T) {
	var gotUserID uuid.UUID
	var gotRole string
	handler := Auth(newTestJWT())(protectedHandler(&gotUserID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-jwt")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Errorf("status %d, want 401", rec.Code)
	}
}

func TestAuthBannedUser(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateAccessToken(uuid.New(), "member", true)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	var gotUserID uuid.UUID
	var gotRole string
	handler := Auth(svc)(protectedHandler(&gotUserID, &gotRole))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("status %d, want 403", rec.Code)
	}
}

func TestRequireRole(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateAccessToken(uuid.New(), "member", false)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	var gotUserID uuid.UUID
	var gotRole string
	handler := Auth(svc)(RequireAdmin()(protectedHandler(&gotUserID, &gotRole)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Errorf("member passing RequireAdmin: status %d, want 403", rec.Code)
	}

	adminToken, err := svc.GenerateAccessToken(uuid.New(), "admin", false)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+adminToken)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("admin blocked by RequireAdmin: status %d, want 200", rec.Code)
	}
}

func TestRequireStaffAllowsModerator(t *testing.T) {
	svc := newTestJWT()
	token, err := svc.GenerateAccessToken(uuid.New(), "moderator", false)
	if err != nil {
		t.Fatalf("GenerateAccessToken: %v", err)
	}

	var gotUserID uuid.UUID
	var gotRole string
	handler := Auth(svc)(RequireStaff()(protectedHandler(&gotUserID, &gotRole)))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("moderator blocked by RequireStaff: status %d, want 200", rec.Code)
	}
}
