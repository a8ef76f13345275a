package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	authDomain "github.com/allisson/notes/internal/auth/domain"
	apperrors "github.com/allisson/notes/internal/errors"
)

// authClaims is the JWT claim set for identity tokens.
// Subject carries the user id, Role the privilege level.
type authClaims struct {
	jwt.RegisteredClaims
	Role string `json:"role"`
}

// jwtTokenCodec implements TokenCodec using HMAC-SHA256 signed JWTs.
type jwtTokenCodec struct {
	signingKey []byte
	maxAge     time.Duration
}

// NewTokenCodec creates a TokenCodec signing with the given symmetric key.
// maxAge bounds the lifetime of issued tokens; zero disables expiration.
func NewTokenCodec(signingKey []byte, maxAge time.Duration) TokenCodec {
	return &jwtTokenCodec{
		signingKey: signingKey,
		maxAge:     maxAge,
	}
}

// Issue encodes the identity into a signed JWT.
func (c *jwtTokenCodec) Issue(identity authDomain.Identity) (string, error) {
	now := time.Now()

	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  identity.ID.String(),
			IssuedAt: jwt.NewNumericDate(now),
		},
		Role: string(identity.Role),
	}
	if c.maxAge > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(c.maxAge))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.signingKey)
	if err != nil {
		return "", apperrors.Wrap(err, "failed to sign auth token")
	}

	return signed, nil
}

// Verify validates the signature and reconstructs the identity.
// Every failure collapses into authDomain.ErrInvalidToken.
func (c *jwtTokenCodec) Verify(tokenStr string) (authDomain.Identity, error) {
	var claims authClaims

	token, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, authDomain.ErrInvalidToken
		}
		return c.signingKey, nil
	})
	if err != nil || !token.Valid {
		return authDomain.Identity{}, authDomain.ErrInvalidToken
	}

	id, err := uuid.Parse(claims.Subject)
	if err != nil {
		return authDomain.Identity{}, authDomain.ErrInvalidToken
	}

	role := authDomain.Role(claims.Role)
	if !role.Valid() {
		return authDomain.Identity{}, authDomain.ErrInvalidToken
	}

	return authDomain.Identity{ID: id, Role: role}, nil
}
