package domain

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/allisson/notes/internal/errors"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RoleUser.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("superuser").Valid())
	assert.False(t, Role("").Valid())
}

func TestIdentity_IsAdmin(t *testing.T) {
	admin := Identity{ID: uuid.Must(uuid.NewV7()), Role: RoleAdmin}
	user := Identity{ID: uuid.Must(uuid.NewV7()), Role: RoleUser}

	assert.True(t, admin.IsAdmin())
	assert.False(t, user.IsAdmin())
}

func TestErrInvalidToken(t *testing.T) {
	assert.True(t, errors.Is(ErrInvalidToken, errors.ErrMalformedCredential))
}
