package handler

import (
	"errors"
	"log/slog"
	baseHttp "net/http"
	"strconv"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
	"github.com/ehihameneromosele/fullblog2c/pkg/middleware"
)

func parsePathID(r *baseHttp.Request, name string) (uint64, *endpoint.ApiError) {
	raw := r.PathValue(name)

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, endpoint.BadRequestError("invalid " + name)
	}

	return id, nil
}

// currentUser resolves the authenticated account from the JWT claims the
// middleware stashed in the context.
func currentUser(r *baseHttp.Request, users *repository.Users) (*database.User, *endpoint.ApiError) {
	claims, ok := middleware.GetJWTClaims(r.Context())

	if !ok {
		return nil, endpoint.UnauthorisedError("authentication required")
	}

	user := users.FindByID(claims.UserID)

	if user == nil {
		return nil, endpoint.UnauthorisedError("unknown account")
	}

	return user, nil
}

// translateRepoError maps repository failures onto the API error taxonomy
// without leaking store internals.
func translateRepoError(action string, err error) *endpoint.ApiError {
	var validation *repository.ValidationError

	switch {
	case errors.As(err, &validation):
		return endpoint.ValidationFailed(map[string]any{
			validation.Field: validation.Message,
		})
	case errors.Is(err, repository.ErrConflict):
		return endpoint.ConflictError(action)
	case errors.Is(err, repository.ErrNotFound):
		return endpoint.NotFound(action)
	default:
		slog.Error("unexpected repository failure", "action", action, "err", err)

		return endpoint.InternalError(action)
	}
}
