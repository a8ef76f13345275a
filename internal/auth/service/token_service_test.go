package service

import (
	"strings"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	authDomain "github.com/allisson/notes/internal/auth/domain"
)

var testSigningKey = []byte("test-signing-key-for-unit-tests")

func TestTokenCodec_RoundTrip(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, time.Hour)

	identities := []authDomain.Identity{
		{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleUser},
		{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleAdmin},
	}

	for _, identity := range identities {
		token, err := codec.Issue(identity)
		require.NoError(t, err)
		require.NotEmpty(t, token)

		decoded, err := codec.Verify(token)
		require.NoError(t, err)
		assert.Equal(t, identity, decoded)
	}
}

func TestTokenCodec_Verify_EmptyToken(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, time.Hour)

	_, err := codec.Verify("")
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Verify_TamperedSignature(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, time.Hour)

	identity := authDomain.Identity{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleUser}
	token, err := codec.Issue(identity)
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	// Flip one bit in the signature segment
	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = codec.Verify(tampered)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Verify_TrailingGarbage(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, time.Hour)

	identity := authDomain.Identity{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleUser}
	token, err := codec.Issue(identity)
	require.NoError(t, err)

	_, err = codec.Verify(token + "x")
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Verify_Malformed(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, time.Hour)

	for _, token := range []string{"a", "a.b", "a.b.c", "not a token at all"} {
		_, err := codec.Verify(token)
		assert.ErrorIs(t, err, authDomain.ErrInvalidToken, "token %q", token)
	}
}

func TestTokenCodec_Verify_WrongKey(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, time.Hour)
	otherCodec := NewTokenCodec([]byte("a-different-signing-key"), time.Hour)

	identity := authDomain.Identity{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleUser}
	token, err := otherCodec.Issue(identity)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Verify_WrongAlgorithm(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, time.Hour)

	// Token signed with HS512 must be rejected even with the right key
	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject: uuid.Must(uuid.NewV7()).String(),
		},
		Role: string(authDomain.RoleUser),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS512, claims).SignedString(testSigningKey)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Verify_UnknownRole(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, time.Hour)

	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  uuid.Must(uuid.NewV7()).String(),
			IssuedAt: jwt.NewNumericDate(time.Now()),
		},
		Role: "superuser",
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_Verify_Expired(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, time.Hour)

	claims := authClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uuid.Must(uuid.NewV7()).String(),
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-1 * time.Hour)),
		},
		Role: string(authDomain.RoleUser),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(testSigningKey)
	require.NoError(t, err)

	_, err = codec.Verify(token)
	assert.ErrorIs(t, err, authDomain.ErrInvalidToken)
}

func TestTokenCodec_ZeroMaxAge_NoExpiry(t *testing.T) {
	codec := NewTokenCodec(testSigningKey, 0)

	identity := authDomain.Identity{ID: uuid.Must(uuid.NewV7()), Role: authDomain.RoleUser}
	token, err := codec.Issue(identity)
	require.NoError(t, err)

	var claims authClaims
	_, err = jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return testSigningKey, nil
	})
	require.NoError(t, err)
	assert.Nil(t, claims.ExpiresAt)
	assert.NotNil(t, claims.IssuedAt)

	_, err = codec.Verify(token)
	assert.NoError(t, err)
}
