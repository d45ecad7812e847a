package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/team-roster/internal/domain"
)

func TestUserService_CreateUser(t *testing.T) {
	t.Run("успешное создание пользователя", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		user := &domain.User{ID: "u1", Username: "Alice", Role: domain.RoleMember, IsActive: true}

		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(nil, errors.New("user not found")).Once()
		mockUserRepo.On("Create", mock.Anything, user).Return(nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(user, nil).Once()

		result, err := service.CreateUser(context.Background(), user)

		require.NoError(t, err)
		assert.Equal(t, "u1", result.ID)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка: неизвестная роль", func(t *testing.T) {
		service := NewUserService(new(MockUserRepository))

		user := &domain.User{ID: "u1", Username: "Alice", Role: "superuser"}
		_, err := service.CreateUser(context.Background(), user)

		require.Error(t, err)
		var domainErr *domain.DomainError
		require.True(t, errors.As(err, &domainErr))
		assert.Equal(t, "BAD_REQUEST", domainErr.Code)
	})

	t.Run("ошибка: пользователь уже существует", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		existing := &domain.User{ID: "u1", Username: "Alice", Role: domain.RoleMember}
		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(existing, nil).Once()

		_, err := service.CreateUser(context.Background(), &domain.User{ID: "u1", Username: "Alice", Role: domain.RoleMember})

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrUserExists))
	})
}

func TestUserService_SetIsActive(t *testing.T) {
	t.Run("успешная смена активности", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		active := &domain.User{ID: "u1", Username: "Alice", Role: domain.RoleMember, IsActive: true}
		deactivated := &domain.User{ID: "u1", Username: "Alice", Role: domain.RoleMember, IsActive: false}

		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(active, nil).Once()
		mockUserRepo.On("SetIsActive", mock.Anything, "u1", false).Return(nil).Once()
		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(deactivated, nil).Once()

		result, err := service.SetIsActive(context.Background(), "u1", false)

		require.NoError(t, err)
		assert.False(t, result.IsActive)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		mockUserRepo := new(MockUserRepository)
		service := NewUserService(mockUserRepo)

		mockUserRepo.On("GetByID", mock.Anything, "ghost").Return(nil, errors.New("user not found")).Once()

		_, err := service.SetIsActive(context.Background(), "ghost", true)

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
