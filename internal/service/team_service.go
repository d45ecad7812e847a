package service

import (
	"context"

	"github.com/bagdasarian/team-roster/internal/domain"
	"github.com/bagdasarian/team-roster/internal/slots"
)

// SlotOperationResult - результат операции над слотами.
// SlotID заполняется только для AddMemberOp (id созданного слота).
type SlotOperationResult struct {
	Team   *domain.Team
	SlotID string
}

type TeamService interface {
	CreateTeam(ctx context.Context, actor domain.Actor, team *domain.Team) (*domain.Team, error)
	GetTeam(ctx context.Context, name string) (*domain.Team, error)
	GetTeamByID(ctx context.Context, id int) (*domain.Team, error)
	ApplySlotOperation(ctx context.Context, actor domain.Actor, teamID int, op domain.SlotOperation) (*SlotOperationResult, error)
	DeleteTeam(ctx context.Context, actor domain.Actor, teamID int) error
	GetTeamHistory(ctx context.Context, teamID int) (*slots.TeamHistory, error)
	GetSlotHistory(ctx context.Context, teamID int, slotID string) ([]slots.HistoryEntry, error)
}
