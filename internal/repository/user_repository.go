package repository

import (
	"context"

	"github.com/bagdasarian/team-roster/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByTeamID(ctx context.Context, teamID int) ([]*domain.User, error)
	SetIsActive(ctx context.Context, userID string, isActive bool) error
	// SetTeam обновляет ссылку пользователя на команду (nil - открепить)
	SetTeam(ctx context.Context, userID string, teamID *int) error
	// DetachTeam откручивает всех пользователей от команды (при удалении команды)
	DetachTeam(ctx context.Context, teamID int) error
}
