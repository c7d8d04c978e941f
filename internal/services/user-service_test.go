package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
)

func TestCreateUserDuplicateEmailConflicts(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	_, err := svc.Create(dto.CreateUserRequest{Email: "a@example.com", DisplayName: "A"})
	require.NoError(t, err)

	before := len(repo.users)
	_, err = svc.Create(dto.CreateUserRequest{Email: "a@example.com", DisplayName: "A again"})
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.Equal(t, before, len(repo.users))
}

func TestCreateUserNormalizesEmailAndDefaultsRole(t *testing.T) {
	repo := newStubUserRepo()
	svc := NewUserService(repo)

	user, err := svc.Create(dto.CreateUserRequest{Email: "  Mixed@Example.COM "})
	require.NoError(t, err)
	assert.Equal(t, "mixed@example.com", user.Email)
	assert.Equal(t, domain.RoleStudent, user.Role)
}

func TestSetRoleAcceptsOnlySettableRoles(t *testing.T) {
	repo := newStubUserRepo(domain.User{ID: 1, Email: "u@example.com", Role: domain.RoleStudent})
	svc := NewUserService(repo)

	require.NoError(t, svc.SetRole("1", domain.RoleModerator))
	assert.Equal(t, domain.RoleModerator, repo.users["u@example.com"].Role)

	// Admin is not assignable through this path
	assert.ErrorIs(t, svc.SetRole("1", domain.RoleAdmin), domain.ErrInvalidRole)
	assert.ErrorIs(t, svc.SetRole("1", "Superuser"), domain.ErrInvalidRole)

	assert.ErrorIs(t, svc.SetRole("not-a-number", domain.RoleStudent), domain.ErrInvalidID)
	assert.ErrorIs(t, svc.SetRole("42", domain.RoleStudent), domain.ErrNotFound)
}

func TestGetByEmailRequiresParameter(t *testing.T) {
	svc := NewUserService(newStubUserRepo())

	_, err := svc.GetByEmail("")
	assert.ErrorIs(t, err, domain.ErrMissingParameter)
}
