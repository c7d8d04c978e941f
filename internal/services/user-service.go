package services

import (
	"errors"
	"strconv"
	"strings"

	"scholarstream/server/internal/domain"
	"scholarstream/server/internal/dto"
	"scholarstream/server/internal/repository"
)

type UserService interface {
	List() ([]domain.User, error)
	GetByEmail(email string) (*domain.User, error)
	Create(req dto.CreateUserRequest) (*domain.User, error)
	SetRole(userID, role string) error
}

type userService struct {
	repo repository.UserRepository
}

func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) List() ([]domain.User, error) {
	return s.repo.ListUsers()
}

func (s *userService) GetByEmail(email string) (*domain.User, error) {
	if email == "" {
		return nil, domain.ErrMissingParameter
	}
	return s.repo.FindUserByEmail(email)
}

func (s *userService) Create(req dto.CreateUserRequest) (*domain.User, error) {
	email := strings.TrimSpace(strings.ToLower(req.Email))
	if email == "" {
		return nil, domain.ErrMissingFields
	}

	existing, err := s.repo.FindUserByEmail(email)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}
	if existing != nil && existing.ID != 0 {
		return nil, domain.ErrConflict
	}

	role := req.Role
	if role == "" {
		role = domain.RoleStudent
	}

	newUser := &domain.User{
		Email:        email,
		DisplayName:  req.DisplayName,
		PhotoURL:     req.PhotoURL,
		Role:         role,
		ModeratorFor: req.ModeratorFor,
	}

	return s.repo.CreateUser(newUser)
}

// SetRole assigns Student or Moderator. Admin is not assignable
// through this path.
func (s *userService) SetRole(userID, role string) error {
	if !domain.SettableRole(role) {
		return domain.ErrInvalidRole
	}

	id, err := strconv.ParseUint(userID, 10, 64)
	if err != nil {
		return domain.ErrInvalidID
	}

	return s.repo.UpdateRole(uint(id), role)
}
