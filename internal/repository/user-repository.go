package repository

import (
	"errors"
	"log"

	"gorm.io/gorm"

	"scholarstream/server/internal/domain"
)

type UserRepository interface {
	CreateUser(user *domain.User) (*domain.User, error)
	FindUserByEmail(email string) (*domain.User, error)
	FindUserByID(userID uint) (*domain.User, error)
	ListUsers() ([]domain.User, error)
	UpdateRole(userID uint, role string) error
	CountUsers() (int64, error)
}

type userRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) CreateUser(user *domain.User) (*domain.User, error) {
	if user == nil {
		return nil, errors.New("nil user")
	}

	if err := r.db.Create(user).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrConflict
		}
		log.Printf("create user error: %v", err)
		return nil, domain.ErrStore
	}

	return user, nil
}

func (r *userRepository) FindUserByEmail(email string) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, "email = ?", email).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		log.Printf("find user by email error: %v", err)
		return nil, domain.ErrStore
	}

	return user, nil
}

func (r *userRepository) FindUserByID(userID uint) (*domain.User, error) {
	user := &domain.User{}

	if err := r.db.First(user, userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrNotFound
		}
		log.Printf("find user by id error: %v", err)
		return nil, domain.ErrStore
	}

	return user, nil
}

func (r *userRepository) ListUsers() ([]domain.User, error) {
	var users []domain.User

	if err := r.db.Order("id").Find(&users).Error; err != nil {
		log.Printf("list users error: %v", err)
		return nil, domain.ErrStore
	}

	return users, nil
}

func (r *userRepository) UpdateRole(userID uint, role string) error {
	res := r.db.Model(&domain.User{}).Where("id = ?", userID).Update("role", role)
	if res.Error != nil {
		log.Printf("update role error: %v", res.Error)
		return domain.ErrStore
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *userRepository) CountUsers() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.User{}).Count(&count).Error; err != nil {
		log.Printf("count users error: %v", err)
		return 0, domain.ErrStore
	}
	return count, nil
}
