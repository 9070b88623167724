package handler_test

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/handler"
	"github.com/ehihameneromosele/fullblog2c/handler/payload"
	"github.com/ehihameneromosele/fullblog2c/pkg/auth"
)

func makeAuthHandler(t *testing.T, conn *database.Connection) handler.AuthHandler {
	t.Helper()

	jwt, err := auth.MakeJWTHandler([]byte("0123456789abcdef"), 15*time.Minute, 24*time.Hour)
	if err != nil {
		t.Fatalf("make jwt handler: %v", err)
	}

	return handler.MakeAuthHandler(&repository.Users{DB: conn}, jwt)
}

func TestRegisterCreatesRegularUser(t *testing.T) {
	conn := newSQLiteConnection(t)
	h := makeAuthHandler(t, conn)

	req := newRequest(t, "POST", "/register", payload.RegisterRequest{
		Username:  "alice",
		Email:     "alice@example.com",
		Password:  "super-secret",
		FirstName: "Alice",
	})

	rec := httptest.NewRecorder()

	if apiErr := h.Register(rec, req); apiErr != nil {
		t.Fatalf("register: %+v", apiErr)
	}

	if rec.Code != 201 {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	resp := decodeBody[payload.UserResponse](t, rec.Body)

	if resp.Username != "alice" || resp.Role != database.RoleUser || resp.IsBlogAdmin {
		t.Fatalf("unexpected response: %+v", resp)
	}
}

func TestRegisterIgnoresRoleInjection(t *testing.T) {
	conn := newSQLiteConnection(t)
	h := makeAuthHandler(t, conn)

	// Extra fields in the body must not grant privileges.
	req := rawRequest(t, "POST", "/register", `{
		"username": "mallory",
		"email": "mallory@example.com",
		"password": "super-secret",
		"role": "admin",
		"is_blog_admin": true
	}`)

	rec := httptest.NewRecorder()

	if apiErr := h.Register(rec, req); apiErr != nil {
		t.Fatalf("register: %+v", apiErr)
	}

	resp := decodeBody[payload.UserResponse](t, rec.Body)

	if resp.Role != database.RoleUser || resp.IsBlogAdmin {
		t.Fatalf("expected a plain user, got %+v", resp)
	}
}

func TestRegisterValidation(t *testing.T) {
	conn := newSQLiteConnection(t)
	h := makeAuthHandler(t, conn)

	req := newRequest(t, "POST", "/register", payload.RegisterRequest{
		Username: "",
		Email:    "not-an-email",
		Password: "short",
	})

	rec := httptest.NewRecorder()
	apiErr := h.Register(rec, req)

	if apiErr == nil || apiErr.Status != 400 {
		t.Fatalf("expected a 400, got %+v", apiErr)
	}

	data, ok := apiErr.Data.(map[string]any)
	if !ok {
		t.Fatalf("expected field errors, got %+v", apiErr.Data)
	}

	for _, field := range []string{"username", "email", "password"} {
		if _, ok := data[field]; !ok {
			t.Fatalf("expected a field error for %q, got %+v", field, data)
		}
	}
}

func TestRegisterDuplicateUsername(t *testing.T) {
	conn := newSQLiteConnection(t)
	h := makeAuthHandler(t, conn)

	seedUser(t, conn, "alice", "")

	req := newRequest(t, "POST", "/register", payload.RegisterRequest{
		Username: "alice",
		Email:    "fresh@example.com",
		Password: "super-secret",
	})

	rec := httptest.NewRecorder()
	apiErr := h.Register(rec, req)

	if apiErr == nil || apiErr.Status != 409 {
		t.Fatalf("expected a 409, got %+v", apiErr)
	}
}

func TestLoginReturnsTokenPair(t *testing.T) {
	conn := newSQLiteConnection(t)
	h := makeAuthHandler(t, conn)

	seedUser(t, conn, "alice", "")

	req := newRequest(t, "POST", "/login", payload.LoginRequest{
		Username: "alice",
		Password: "super-secret",
	})

	rec := httptest.NewRecorder()

	if apiErr := h.Login(rec, req); apiErr != nil {
		t.Fatalf("login: %+v", apiErr)
	}

	resp := decodeBody[payload.LoginResponse](t, rec.Body)

	if resp.Access == "" || resp.Refresh == "" {
		t.Fatalf("expected both tokens, got %+v", resp)
	}

	if resp.User.Username != "alice" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}

	claims, err := h.JWT.ValidateAccess(resp.Access)
	if err != nil {
		t.Fatalf("validate access token: %v", err)
	}

	if claims.Username != "alice" {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	conn := newSQLiteConnection(t)
	h := makeAuthHandler(t, conn)

	seedUser(t, conn, "alice", "")

	cases := []payload.LoginRequest{
		{Username: "alice", Password: "wrong-password"},
		{Username: "ghost", Password: "super-secret"},
	}

	for _, body := range cases {
		rec := httptest.NewRecorder()
		apiErr := h.Login(rec, newRequest(t, "POST", "/login", body))

		if apiErr == nil || apiErr.Status != 401 {
			t.Fatalf("expected a 401 for %+v, got %+v", body, apiErr)
		}
	}
}

func TestRefreshMintsNewAccessToken(t *testing.T) {
	conn := newSQLiteConnection(t)
	h := makeAuthHandler(t, conn)

	user := seedUser(t, conn, "alice", "")

	pair, err := h.JWT.GeneratePair(user.ID, user.Username)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	rec := httptest.NewRecorder()
	req := newRequest(t, "POST", "/token/refresh", payload.RefreshRequest{Refresh: pair.Refresh})

	if apiErr := h.Refresh(rec, req); apiErr != nil {
		t.Fatalf("refresh: %+v", apiErr)
	}

	resp := decodeBody[payload.RefreshResponse](t, rec.Body)

	if _, err := h.JWT.ValidateAccess(resp.Access); err != nil {
		t.Fatalf("expected a valid access token: %v", err)
	}
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	conn := newSQLiteConnection(t)
	h := makeAuthHandler(t, conn)

	user := seedUser(t, conn, "alice", "")

	pair, err := h.JWT.GeneratePair(user.ID, user.Username)
	if err != nil {
		t.Fatalf("generate pair: %v", err)
	}

	rec := httptest.NewRecorder()
	req := newRequest(t, "POST", "/token/refresh", payload.RefreshRequest{Refresh: pair.Access})

	apiErr := h.Refresh(rec, req)

	if apiErr == nil || apiErr.Status != 401 {
		t.Fatalf("expected a 401, got %+v", apiErr)
	}
}
