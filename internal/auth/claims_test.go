package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt"
)

func signedToken(t *testing.T, claims Claims) string {
	t.Helper()

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("failed to sign token: %v", err)
	}
	return token
}

func TestParseIdentity(t *testing.T) {
	t.Parallel()

	token := signedToken(t, Claims{
		Email: "me@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})

	id, err := ParseIdentity(token)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if id.Email != "me@example.com" {
		t.Fatalf("email: got %q, want %q", id.Email, "me@example.com")
	}
}

func TestParseIdentityNoExpiry(t *testing.T) {
	t.Parallel()

	token := signedToken(t, Claims{Email: "me@example.com"})

	if _, err := ParseIdentity(token); err != nil {
		t.Fatalf("parse failed: %v", err)
	}
}

func TestParseIdentityExpired(t *testing.T) {
	t.Parallel()

	token := signedToken(t, Claims{
		Email: "me@example.com",
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(-time.Hour).Unix(),
		},
	})

	if _, err := ParseIdentity(token); err == nil {
		t.Fatal("expected an error for an expired token")
	}
}

func TestParseIdentityMissingEmail(t *testing.T) {
	t.Parallel()

	token := signedToken(t, Claims{
		StandardClaims: jwt.StandardClaims{
			ExpiresAt: time.Now().Add(time.Hour).Unix(),
		},
	})

	if _, err := ParseIdentity(token); err == nil {
		t.Fatal("expected an error for a token without email")
	}
}

func TestParseIdentityMalformed(t *testing.T) {
	t.Parallel()

	if _, err := ParseIdentity("not.a.token"); err == nil {
		t.Fatal("expected an error")
	}
}
