package auth

import (
	"errors"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

const TokenTypeAccess = "access"
const TokenTypeRefresh = "refresh"

// JWTHandler manages creation and validation of the access/refresh token
// pair guarding the API.
type JWTHandler struct {
	// SecretKey is used to sign tokens.
	SecretKey []byte
	// AccessTTL defines how long access tokens remain valid.
	AccessTTL time.Duration
	// RefreshTTL defines how long refresh tokens remain valid.
	RefreshTTL time.Duration
}

// Claims represents application specific JWT claims.
type Claims struct {
	UserID    uint64 `json:"user_id"`
	Username  string `json:"username"`
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// TokenPair bundles the two tokens handed out on login.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// MakeJWTHandler validates the provided secret and returns a configured handler.
func MakeJWTHandler(secret []byte, accessTTL, refreshTTL time.Duration) (JWTHandler, error) {
	if len(secret) < 16 {
		return JWTHandler{}, errors.New("secret key too short")
	}

	return JWTHandler{
		SecretKey:  secret,
		AccessTTL:  accessTTL,
		RefreshTTL: refreshTTL,
	}, nil
}

// GeneratePair creates a signed access/refresh token pair for the given user.
func (j JWTHandler) GeneratePair(userID uint64, username string) (TokenPair, error) {
	access, err := j.generate(userID, username, TokenTypeAccess, j.AccessTTL)

	if err != nil {
		return TokenPair{}, err
	}

	refresh, err := j.generate(userID, username, TokenTypeRefresh, j.RefreshTTL)

	if err != nil {
		return TokenPair{}, err
	}

	return TokenPair{Access: access, Refresh: refresh}, nil
}

// Refresh validates a refresh token and mints a fresh access token for its
// subject.
func (j JWTHandler) Refresh(refreshToken string) (string, error) {
	claims, err := j.Validate(refreshToken)

	if err != nil {
		return "", err
	}

	if claims.TokenType != TokenTypeRefresh {
		return "", errors.New("token is not a refresh token")
	}

	return j.generate(claims.UserID, claims.Username, TokenTypeAccess, j.AccessTTL)
}

func (j JWTHandler) generate(userID uint64, username, tokenType string, ttl time.Duration) (string, error) {
	claims := Claims{
		UserID:    userID,
		Username:  username,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(j.SecretKey)
}

// Validate parses the token string and returns the Claims if valid.
func (j JWTHandler) Validate(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}

		return j.SecretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}

// ValidateAccess parses the token and additionally rejects refresh tokens
// presented on the access path.
func (j JWTHandler) ValidateAccess(tokenString string) (*Claims, error) {
	claims, err := j.Validate(tokenString)

	if err != nil {
		return nil, err
	}

	if claims.TokenType != TokenTypeAccess {
		return nil, errors.New("token is not an access token")
	}

	return claims, nil
}
