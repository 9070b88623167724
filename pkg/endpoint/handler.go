package endpoint

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/getsentry/sentry-go"
)

// NewApiHandler adapts an ApiHandler to http.HandlerFunc. A returned ApiError
// is logged, forwarded to Sentry and rendered as the JSON error envelope; a
// nil return means the handler already wrote its response.
func NewApiHandler(fn ApiHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		apiErr := fn(w, r)

		if apiErr == nil {
			return
		}

		slog.Error("api error", "message", apiErr.Message, "status", apiErr.Status)

		captureApiError(r, apiErr)

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(apiErr.Status)

		envelope := ErrorResponse{
			Error:  apiErr.Message,
			Status: apiErr.Status,
			Data:   apiErr.Data,
		}

		if err := json.NewEncoder(w).Encode(envelope); err != nil {
			slog.Error("could not encode error response", "error", err)
		}
	}
}

func captureApiError(r *http.Request, apiErr *ApiError) {
	if apiErr == nil {
		return
	}

	cause := error(apiErr)

	if apiErr.Err != nil {
		cause = apiErr.Err
	}

	hub := sentry.GetHubFromContext(r.Context())

	if hub == nil {
		hub = sentry.CurrentHub()
	}

	hub.WithScope(func(scope *sentry.Scope) {
		NewScopeApiError(scope, r, apiErr).Enrich()

		scope.SetLevel(sentryLevelFor(apiErr.Status))

		hub.CaptureException(cause)
	})
}

// Expected client failures (bad credentials, denied actions, missing rows,
// throttling) go to Sentry as info so they never page anyone.
func sentryLevelFor(status int) sentry.Level {
	switch status {
	case http.StatusUnauthorized,
		http.StatusForbidden,
		http.StatusNotFound,
		http.StatusTooManyRequests:
		return sentry.LevelInfo
	default:
		return sentry.LevelError
	}
}
