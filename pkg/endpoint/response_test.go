package endpoint

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseRespondOkSetsCacheHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	r := NewResponseFrom("salt", rec, req)

	if err := r.RespondOk(map[string]string{"a": "b"}); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	if rec.Header().Get("ETag") == "" || rec.Header().Get("Cache-Control") == "" {
		t.Fatalf("expected etag and cache-control headers")
	}

	req.Header.Set("If-None-Match", r.etag)

	if !r.HasCache() {
		t.Fatalf("expected a cache hit on matching etag")
	}
}

func TestNoCacheResponse(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	r := NewNoCacheResponse(rec, req)

	if err := r.RespondOk(map[string]string{"a": "b"}); err != nil {
		t.Fatalf("respond: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("status %d", rec.Code)
	}

	if got := rec.Header().Get("Cache-Control"); got != "no-store" {
		t.Fatalf("unexpected cache-control: %s", got)
	}

	if rec.Header().Get("ETag") != "" {
		t.Fatalf("no-cache responses must not carry an etag")
	}

	if r.HasCache() {
		t.Fatalf("no-cache responses never hit the cache")
	}
}

func TestResponseWithHeaders(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	called := false

	NewResponseFrom("salt", rec, req).WithHeaders(func(w http.ResponseWriter) {
		called = true
	})

	if !called {
		t.Fatalf("header callback not invoked")
	}
}

func TestResponseNotModified(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	rec := httptest.NewRecorder()

	NewResponseFrom("salt", rec, req).RespondWithNotModified()

	if rec.Code != http.StatusNotModified {
		t.Fatalf("status %d", rec.Code)
	}
}

func TestApiErrorConstructors(t *testing.T) {
	cases := []struct {
		apiErr *ApiError
		status int
	}{
		{InternalError("x"), http.StatusInternalServerError},
		{BadRequestError("x"), http.StatusBadRequest},
		{NotFound("x"), http.StatusNotFound},
		{ForbiddenError("x"), http.StatusForbidden},
		{UnauthorisedError("x"), http.StatusUnauthorized},
		{ConflictError("x"), http.StatusConflict},
	}

	for _, c := range cases {
		if c.apiErr.Status != c.status {
			t.Fatalf("expected status %d, got %d", c.status, c.apiErr.Status)
		}
	}
}

func TestValidationFailedCarriesFieldErrors(t *testing.T) {
	apiErr := ValidationFailed(map[string]any{"email": "A valid email address is required"})

	if apiErr.Status != http.StatusBadRequest {
		t.Fatalf("status %d", apiErr.Status)
	}

	data, ok := apiErr.Data.(map[string]any)

	if !ok || data["email"] == nil {
		t.Fatalf("expected field errors in data, got %+v", apiErr.Data)
	}
}
