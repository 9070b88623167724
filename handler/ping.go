package handler

import (
	baseHttp "net/http"
	"time"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

type PingHandler struct {
	db *database.Connection
}

func MakePingHandler(db *database.Connection) PingHandler {
	return PingHandler{db: db}
}

// Handle reports liveness, including a database round trip.
func (h PingHandler) Handle(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	if err := h.db.Ping(); err != nil {
		return endpoint.LogInternalError("database ping failed", err)
	}

	resp := endpoint.NewNoCacheResponse(w, r)

	data := map[string]string{
		"message":   "pong",
		"date_time": time.Now().UTC().Format(portal.DatesLayout),
	}

	if err := resp.RespondOk(data); err != nil {
		return endpoint.LogInternalError("could not encode ping response", err)
	}

	return nil
}
