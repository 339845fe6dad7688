package accounts

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims are the claims carried by access tokens: subject is the
// stable user id, Name is the username/email login handle, Roles carries one
// entry per role, and ID (jti) is unique per token.
type SessionClaims struct {
	jwt.RegisteredClaims
	Name  string   `json:"name,omitempty"`
	Roles []string `json:"roles,omitempty"`
}

// Username returns the login handle the token was issued for.
func (c *SessionClaims) Username() string {
	return c.Name
}

// UserID returns the subject claim.
func (c *SessionClaims) UserID() string {
	return c.RegisteredClaims.Subject
}

// HasRole reports whether the token carries the given role.
func (c *SessionClaims) HasRole(role string) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}

// ensureTokenID populates the jti claim when absent so every issued token is
// individually identifiable.
func ensureTokenID(claims *jwt.RegisteredClaims) {
	if claims.ID == "" {
		claims.ID = uuid.NewString()
	}
}
