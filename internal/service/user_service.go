package service

import (
	"context"
	"time"

	"github.com/google/uuid"

	"wishlist/internal/domain"
)

// UserService handles the read-mostly user surface.
type UserService struct {
	userRepo domain.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(userRepo domain.UserRepository) *UserService {
	return &UserService{userRepo: userRepo}
}

// GetUsers retrieves all users.
func (s *UserService) GetUsers(ctx context.Context) ([]domain.User, error) {
	return s.userRepo.FindAll(ctx)
}

// GetUserByID retrieves a user by id.
func (s *UserService) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

// CreateUser registers a user with a generated id.
func (s *UserService) CreateUser(ctx context.Context, email, name string) (*domain.User, error) {
	user := domain.User{
		ID:        uuid.NewString(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now(),
	}
	saved, err := s.userRepo.Save(ctx, user)
	if err != nil {
		return nil, err
	}
	return &saved, nil
}
