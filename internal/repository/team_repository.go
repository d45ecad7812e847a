package repository

import (
	"context"

	"github.com/bagdasarian/team-roster/internal/domain"
)

type TeamRepository interface {
	Create(ctx context.Context, team *domain.Team) error
	GetByID(ctx context.Context, id int) (*domain.Team, error)
	GetByName(ctx context.Context, name string) (*domain.Team, error)
	// SaveSlots сохраняет слоты и истории команды; возвращает ошибку
	// конфликта версий, если команда была изменена конкурентно
	SaveSlots(ctx context.Context, team *domain.Team) error
	// GetTeamsByUser возвращает все команды, в которых пользователь
	// когда-либо занимал слот (включая закрытые интервалы)
	GetTeamsByUser(ctx context.Context, userID string) ([]*domain.Team, error)
	Delete(ctx context.Context, id int) error
}
