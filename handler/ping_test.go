package handler_test

import (
	"net/http/httptest"
	"testing"

	"github.com/ehihameneromosele/fullblog2c/handler"
)

func TestPingRespondsPong(t *testing.T) {
	conn := newSQLiteConnection(t)
	h := handler.MakePingHandler(conn)

	rec := httptest.NewRecorder()

	if apiErr := h.Handle(rec, newRequest(t, "GET", "/ping", nil)); apiErr != nil {
		t.Fatalf("ping: %+v", apiErr)
	}

	if rec.Code != 200 {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	resp := decodeBody[map[string]string](t, rec.Body)

	if resp["message"] != "pong" {
		t.Fatalf("unexpected body: %+v", resp)
	}

	if resp["date_time"] == "" {
		t.Fatalf("expected a timestamp")
	}
}
