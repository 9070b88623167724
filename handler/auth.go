package handler

import (
	"encoding/json"
	"log/slog"
	baseHttp "net/http"
	"strings"

	"github.com/ehihameneromosele/fullblog2c/database"
	"github.com/ehihameneromosele/fullblog2c/database/repository"
	"github.com/ehihameneromosele/fullblog2c/handler/payload"
	"github.com/ehihameneromosele/fullblog2c/pkg/auth"
	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

// AuthHandler owns registration, login and token refresh. Accounts created
// here always start as plain users; admin roles are granted through the
// operator CLI, never through the public surface.
type AuthHandler struct {
	Users *repository.Users
	JWT   auth.JWTHandler
}

func MakeAuthHandler(users *repository.Users, jwt auth.JWTHandler) AuthHandler {
	return AuthHandler{Users: users, JWT: jwt}
}

func (h *AuthHandler) Register(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	req, err := endpoint.ParseRequestBody[payload.RegisterRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if errs := validateRegister(req); len(errs) > 0 {
		return endpoint.ValidationFailed(errs)
	}

	user, err := h.Users.Create(database.UsersAttrs{
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Role:      database.RoleUser,
	})

	if err != nil {
		return translateRepoError("could not register the account", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(baseHttp.StatusCreated)

	if err := json.NewEncoder(w).Encode(payload.GetUserResponse(*user)); err != nil {
		slog.Error("failed to encode response", "err", err)
		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *AuthHandler) Login(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	req, err := endpoint.ParseRequestBody[payload.LoginRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if req.Username == "" || req.Password == "" {
		return endpoint.BadRequestError("username and password are required")
	}

	user := h.Users.FindBy(req.Username)

	if user == nil || !portal.PasswordFromHash(user.PasswordHash).Is(req.Password) {
		return endpoint.UnauthorisedError("invalid credentials")
	}

	pair, err := h.JWT.GeneratePair(user.ID, user.Username)
	if err != nil {
		slog.Error("failed to generate tokens", "err", err)
		return endpoint.InternalError("could not generate tokens")
	}

	resp := payload.LoginResponse{
		Access:  pair.Access,
		Refresh: pair.Refresh,
		User:    payload.GetUserResponse(*user),
	}

	if err := json.NewEncoder(w).Encode(resp); err != nil {
		slog.Error("failed to encode response", "err", err)
		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func (h *AuthHandler) Refresh(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
	defer portal.CloseWithLog(r.Body)

	req, err := endpoint.ParseRequestBody[payload.RefreshRequest](r)
	if err != nil {
		return endpoint.LogBadRequestError("invalid request body", err)
	}

	if req.Refresh == "" {
		return endpoint.BadRequestError("refresh token is required")
	}

	access, err := h.JWT.Refresh(req.Refresh)
	if err != nil {
		return endpoint.LogUnauthorisedError("invalid refresh token", err)
	}

	if err := json.NewEncoder(w).Encode(payload.RefreshResponse{Access: access}); err != nil {
		slog.Error("failed to encode response", "err", err)
		return endpoint.InternalError("There was an issue processing the response. Please, try later.")
	}

	return nil
}

func validateRegister(req payload.RegisterRequest) map[string]any {
	errs := map[string]any{}

	if strings.TrimSpace(req.Username) == "" {
		errs["username"] = "This field is required"
	}

	if strings.TrimSpace(req.Email) == "" || !strings.Contains(req.Email, "@") {
		errs["email"] = "A valid email address is required"
	}

	if len(req.Password) < 8 {
		errs["password"] = "Passwords must have at least 8 characters"
	}

	return errs
}
