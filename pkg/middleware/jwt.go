package middleware

import (
	"context"
	baseHttp "net/http"
	"strings"

	"github.com/ehihameneromosele/fullblog2c/pkg/auth"
	"github.com/ehihameneromosele/fullblog2c/pkg/endpoint"
	"github.com/ehihameneromosele/fullblog2c/pkg/portal"
)

type jwtContextKey string

const JWTClaimsKey jwtContextKey = "jwt.claims"

// JWTMiddleware validates Authorization Bearer tokens and injects claims into the request context.
type JWTMiddleware struct {
	Handler auth.JWTHandler
}

// Handle checks the Authorization header for a valid access token. Refresh
// tokens are rejected here, they only work against the refresh endpoint.
func (m JWTMiddleware) Handle(next endpoint.ApiHandler) endpoint.ApiHandler {
	return func(w baseHttp.ResponseWriter, r *baseHttp.Request) *endpoint.ApiError {
		header := strings.TrimSpace(r.Header.Get("Authorization"))
		if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
			return &endpoint.ApiError{Message: "missing or invalid authorization header", Status: baseHttp.StatusUnauthorized}
		}

		tokenStr := strings.TrimSpace(header[len("bearer "):])
		claims, err := m.Handler.ValidateAccess(tokenStr)
		if err != nil {
			return &endpoint.ApiError{Message: "invalid token", Status: baseHttp.StatusUnauthorized}
		}

		ctx := context.WithValue(r.Context(), JWTClaimsKey, claims)
		ctx = context.WithValue(ctx, portal.AuthAccountNameKey, claims.Username)

		return next(w, r.WithContext(ctx))
	}
}

// GetJWTClaims extracts JWT claims from the context.
func GetJWTClaims(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(JWTClaimsKey).(*auth.Claims)
	return claims, ok
}
