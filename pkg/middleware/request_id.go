package middleware

import (
	"context"
	baseHttp "net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

// RequestIDMiddleware tags every request with an identifier so errors can be
// correlated across logs and Sentry. An inbound X-Request-ID is honoured,
// otherwise a fresh UUID is minted.
type RequestIDMiddleware struct{}

func (m RequestIDMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		id := strings.TrimSpace(r.Header.Get(portal.RequestIDHeader))

		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set(portal.RequestIDHeader, id)

		ctx := context.WithValue(r.Context(), portal.RequestIDKey, id)

		return next(w, r.WithContext(ctx))
	}
}
