package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hrportal/internal/auth"
)

const testSecret = "test-secret"

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
	})
}

func TestAuthAttachesUser(t *testing.T) {
	token, err := auth.GenerateToken(testSecret, auth.Claims{EmployeeID: "emp-1", Role: auth.RoleAdmin}, time.Hour)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var user auth.UserContext
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if !ok {
		t.Fatal("expected a user in context")
	}
	if user.EmployeeID != "emp-1" || user.Role != auth.RoleAdmin {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestAuthIgnoresBadToken(t *testing.T) {
	var ok bool
	handler := Auth(testSecret)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, ok = GetUser(r.Context())
	}))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	handler.ServeHTTP(httptest.NewRecorder(), req)

	if ok {
		t.Fatal("expected no user for an invalid token")
	}
}

func TestRequireAuth(t *testing.T) {
	var called bool
	handler := RequireAuth(okHandler(&called))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))
	if rec.Code != http.StatusUnauthorized || called {
		t.Fatalf("expected 401 without user, got %d called=%v", rec.Code, called)
	}

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUser(req.Context(), auth.UserContext{EmployeeID: "emp-1", Role: auth.RoleEmployee}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !called {
		t.Fatalf("expected pass-through with user, got %d called=%v", rec.Code, called)
	}
}

func TestRequireAdmin(t *testing.T) {
	var called bool
	handler := RequireAdmin(okHandler(&called))

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUser(req.Context(), auth.UserContext{EmployeeID: "emp-1", Role: auth.RoleEmployee}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusForbidden || called {
		t.Fatalf("expected 403 for employee role, got %d called=%v", rec.Code, called)
	}

	req = httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithUser(req.Context(), auth.UserContext{EmployeeID: "emp-2", Role: auth.RoleAdmin}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK || !called {
		t.Fatalf("expected pass-through for admin, got %d called=%v", rec.Code, called)
	}
}
