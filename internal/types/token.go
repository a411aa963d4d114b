package types

import "github.com/google/uuid"

// TokenClaims holds the claims extracted from a validated bearer token.
type TokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
}
