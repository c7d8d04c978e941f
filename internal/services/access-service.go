package services

import (
	"errors"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/repository"
)

// Capability is the access level a route demands.
type Capability int

const (
	CapabilityNone Capability = iota
	CapabilityAuthenticated
	CapabilityModeratorOrAdmin
	CapabilityAdminOnly
)

// AccessService decides allow/deny for an already-authenticated caller
// identity. Read-only; every mutating or ownership-scoped route goes
// through it before the handler body runs.
type AccessService interface {
	Authorize(email string, cap Capability) error
	RoleOf(email string) (string, error)
}

type accessService struct {
	repo repository.UserRepository
}

func NewAccessService(repo repository.UserRepository) AccessService {
	return &accessService{repo: repo}
}

func (s *accessService) Authorize(email string, cap Capability) error {
	switch cap {
	case CapabilityNone:
		return nil
	case CapabilityAuthenticated:
		// token presence only, no role lookup
		if email == "" {
			return domain.ErrUnauthenticated
		}
		return nil
	}

	if email == "" {
		return domain.ErrUnauthenticated
	}

	role, err := s.RoleOf(email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrForbidden
		}
		return err
	}

	switch cap {
	case CapabilityModeratorOrAdmin:
		if role == domain.RoleModerator || role == domain.RoleAdmin {
			return nil
		}
	case CapabilityAdminOnly:
		if role == domain.RoleAdmin {
			return nil
		}
	}
	return domain.ErrForbidden
}

func (s *accessService) RoleOf(email string) (string, error) {
	user, err := s.repo.FindUserByEmail(email)
	if err != nil {
		return "", err
	}
	if user.Role == "" {
		return "", domain.ErrNotFound
	}
	return user.Role, nil
}
