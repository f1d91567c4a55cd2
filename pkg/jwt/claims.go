package jwt

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims represents JWT custom claims. The subject carries the user's
// email; the role claim is informational for clients and is never used
// for authorization decisions in this service.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}
