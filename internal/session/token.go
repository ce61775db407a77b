// Package session mints and checks the signed token that carries a logged-in
// user's email and role between CLI commands.
package session

import (
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/checkmygrade/internal/common"
	"github.com/dmitrijs2005/checkmygrade/internal/models"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims are the registered claims plus the role. Subject holds the email.
type Claims struct {
	jwt.RegisteredClaims
	Role models.Role `json:"role"`
}

// Identity is what a valid token vouches for.
type Identity struct {
	ID    string
	Email string
	Role  models.Role
}

// Issue signs a token for email and role that expires after ttl.
func Issue(email string, role models.Role, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	})

	s, err := token.SignedString(secret)
	if err != nil {
		return "", fmt.Errorf("sign session token: %w", err)
	}
	return s, nil
}

// Parse verifies the signature and expiry. Expired tokens yield
// common.ErrTokenExpired; any other defect yields common.ErrInvalidToken.
func Parse(tokenString string, secret []byte) (Identity, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithExpirationRequired())
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return Identity{}, common.ErrTokenExpired
	case err != nil, !token.Valid:
		return Identity{}, common.ErrInvalidToken
	}

	role, err := models.ParseRole(string(claims.Role))
	if err != nil || claims.Subject == "" {
		return Identity{}, common.ErrInvalidToken
	}
	return Identity{ID: claims.ID, Email: claims.Subject, Role: role}, nil
}

// NewSecret returns a random signing key for when none is configured.
func NewSecret() []byte {
	return common.GenerateRandByteArray(32)
}
