package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"
)

// Claims mirrors the token claims the service issues. The signature is the
// service's to verify; the client only reads identity and expiry.
type Claims struct {
	Email string `json:"email"`
	jwt.StandardClaims
}

// ParseIdentity extracts the identity from a bearer token without verifying
// the signature, rejecting expired tokens.
func ParseIdentity(token string) (Identity, error) {
	claims := &Claims{}
	parser := new(jwt.Parser)

	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Identity{}, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims.ExpiresAt != 0 && time.Now().Unix() >= claims.ExpiresAt {
		return Identity{}, fmt.Errorf("token is expired")
	}

	if claims.Email == "" {
		return Identity{}, fmt.Errorf("token carries no email claim")
	}

	return Identity{Email: claims.Email}, nil
}
