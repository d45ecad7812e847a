package service

import (
	"context"

	"github.com/bagdasarian/team-roster/internal/domain"
	"github.com/bagdasarian/team-roster/internal/repository"
)

type userService struct {
	userRepo repository.UserRepository
}

// NewUserService создает новый экземпляр UserService
func NewUserService(userRepo repository.UserRepository) UserService {
	return &userService{
		userRepo: userRepo,
	}
}

// CreateUser регистрирует пользователя с заданным id
func (s *userService) CreateUser(ctx context.Context, user *domain.User) (*domain.User, error) {
	if !user.Role.Valid() {
		return nil, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "role must be one of: admin, lead, member",
		}
	}

	existingUser, err := s.userRepo.GetByID(ctx, user.ID)
	if err == nil && existingUser != nil {
		return nil, domain.ErrUserExists
	}
	if err != nil && err.Error() != "user not found" {
		return nil, err
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return s.GetUser(ctx, user.ID)
}

// GetUser получает пользователя по id
func (s *userService) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err.Error() == "user not found" {
			return nil, domain.NewNotFoundError("user with id " + userID)
		}
		return nil, err
	}

	return user, nil
}

// SetIsActive меняет флаг активности пользователя
func (s *userService) SetIsActive(ctx context.Context, userID string, isActive bool) (*domain.User, error) {
	if _, err := s.GetUser(ctx, userID); err != nil {
		return nil, err
	}

	if err := s.userRepo.SetIsActive(ctx, userID, isActive); err != nil {
		if err.Error() == "user not found" {
			return nil, domain.NewNotFoundError("user with id " + userID)
		}
		return nil, err
	}

	return s.GetUser(ctx, userID)
}
