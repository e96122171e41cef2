package types

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenCookie is the cookie that carries the session credential.
// Its absence means the request is unauthenticated.
const AccessTokenCookie = "accessToken"

// TokenClaims represents the claims in a session token
type TokenClaims struct {
	jwt.RegisteredClaims
	UserID   uuid.UUID  `json:"user_id"`
	CoupleID *uuid.UUID `json:"couple_id,omitempty"`
}
