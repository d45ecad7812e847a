package service

import (
	"context"
	"database/sql"
	"strconv"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"

	"github.com/bagdasarian/team-roster/internal/domain"
	"github.com/bagdasarian/team-roster/internal/repository"
	"github.com/bagdasarian/team-roster/internal/repository/postgres"
	"github.com/bagdasarian/team-roster/internal/slots"
)

// maxConflictRetries - сколько раз повторять load-mutate-save при конфликте версий
const maxConflictRetries = 3

type teamService struct {
	db       *sql.DB
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	clock    clockwork.Clock
}

// NewTeamService создает новый экземпляр TeamService
func NewTeamService(db *sql.DB, teamRepo repository.TeamRepository, userRepo repository.UserRepository, clock clockwork.Clock) TeamService {
	return &teamService{
		db:       db,
		teamRepo: teamRepo,
		userRepo: userRepo,
		clock:    clock,
	}
}

// CreateTeam создает команду с пустым слотом лидера и без слотов участников
func (s *teamService) CreateTeam(ctx context.Context, actor domain.Actor, team *domain.Team) (*domain.Team, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	existingTeam, err := s.teamRepo.GetByName(ctx, team.Name)
	if err == nil && existingTeam != nil {
		return nil, domain.ErrTeamExists
	}
	if err != nil && err.Error() != "team not found" {
		return nil, err
	}

	team.LeaderSlot = domain.LeaderSlot{}
	team.MemberSlots = nil
	team.CreatedAt = s.clock.Now()
	team.UpdatedAt = nil

	if err := s.teamRepo.Create(ctx, team); err != nil {
		return nil, err
	}

	createdTeam, err := s.teamRepo.GetByName(ctx, team.Name)
	if err != nil {
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team with name " + team.Name)
		}
		return nil, err
	}

	return createdTeam, nil
}

// GetTeam получает команду по имени
func (s *teamService) GetTeam(ctx context.Context, name string) (*domain.Team, error) {
	team, err := s.teamRepo.GetByName(ctx, name)
	if err != nil {
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team with name " + name)
		}
		return nil, err
	}

	return team, nil
}

// GetTeamByID получает команду по id
func (s *teamService) GetTeamByID(ctx context.Context, id int) (*domain.Team, error) {
	team, err := s.teamRepo.GetByID(ctx, id)
	if err != nil {
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team with id " + strconv.Itoa(id))
		}
		return nil, err
	}

	return team, nil
}

// ApplySlotOperation выполняет операцию над слотами команды.
// Последовательность load-mutate-save выполняется в транзакции с
// оптимистической блокировкой; при конфликте версий операция повторяется
// заново от свежего состояния команды.
func (s *teamService) ApplySlotOperation(ctx context.Context, actor domain.Actor, teamID int, op domain.SlotOperation) (*SlotOperationResult, error) {
	if actor.Role != domain.RoleAdmin {
		return nil, domain.ErrForbidden
	}

	for attempt := 1; attempt <= maxConflictRetries; attempt++ {
		result, err := s.applySlotOperationOnce(ctx, actor, teamID, op)
		if err != nil && err.Error() == "version conflict" {
			log.Debug().
				Int("team_id", teamID).
				Int("attempt", attempt).
				Msg("team version conflict, retrying slot operation")
			continue
		}
		return result, err
	}

	return nil, domain.ErrVersionConflict
}

func (s *teamService) applySlotOperationOnce(ctx context.Context, actor domain.Actor, teamID int, op domain.SlotOperation) (*SlotOperationResult, error) {
	team, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		if err.Error() == "team not found" {
			return nil, domain.NewNotFoundError("team with id " + strconv.Itoa(teamID))
		}
		return nil, err
	}

	now := s.clock.Now()
	result := &SlotOperationResult{}

	// обновление ссылки user.team_id, выполняемое в той же транзакции
	var teamRefUserID string
	var teamRef *int

	switch op := op.(type) {
	case domain.AssignLeaderOp:
		if err := s.checkAssignable(ctx, op.UserID); err != nil {
			return nil, err
		}
		slots.AssignLeader(team, op.UserID, actor.UserID, now)

	case domain.RemoveLeaderOp:
		slots.RemoveLeader(team, actor.UserID, now)

	case domain.AddMemberOp:
		if err := s.checkAssignable(ctx, op.UserID); err != nil {
			return nil, err
		}
		if slots.BelongsToTeam(team, op.UserID) {
			return nil, domain.ErrAlreadyMember
		}
		result.SlotID = slots.AddMember(team, op.UserID, actor.UserID, now)
		teamRefUserID = op.UserID
		teamRef = &teamID

	case domain.RemoveMemberOp:
		if !slots.IsTeamMember(team, op.UserID) {
			return nil, domain.ErrNotMember
		}
		slots.RemoveMember(team, op.UserID, actor.UserID, now)
		teamRefUserID = op.UserID
		teamRef = nil

	default:
		return nil, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "unknown slot operation",
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	if err := postgres.NewTeamRepositoryWithTx(tx).SaveSlots(ctx, team); err != nil {
		return nil, err
	}

	if teamRefUserID != "" {
		if err := postgres.NewUserRepositoryWithTx(tx).SetTeam(ctx, teamRefUserID, teamRef); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	result.Team = team
	return result, nil
}

// checkAssignable - валидация уровня вызывающего кода: пользователь
// существует и активен. Сам менеджер слотов бизнес-правил не проверяет.
func (s *teamService) checkAssignable(ctx context.Context, userID string) error {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err.Error() == "user not found" {
			return domain.NewNotFoundError("user with id " + userID)
		}
		return err
	}
	if !user.IsActive {
		return domain.ErrUserInactive
	}
	return nil
}

// DeleteTeam удаляет команду и открепляет ее пользователей в одной транзакции
func (s *teamService) DeleteTeam(ctx context.Context, actor domain.Actor, teamID int) error {
	if actor.Role != domain.RoleAdmin {
		return domain.ErrForbidden
	}

	if _, err := s.GetTeamByID(ctx, teamID); err != nil {
		return err
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := postgres.NewUserRepositoryWithTx(tx).DetachTeam(ctx, teamID); err != nil {
		return err
	}
	if err := postgres.NewTeamRepositoryWithTx(tx).Delete(ctx, teamID); err != nil {
		return err
	}

	return tx.Commit()
}

// GetTeamHistory возвращает сводную историю лидера и всех слотов команды
func (s *teamService) GetTeamHistory(ctx context.Context, teamID int) (*slots.TeamHistory, error) {
	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	history := slots.BuildTeamHistory(team)
	return &history, nil
}

// GetSlotHistory возвращает историю одного слота участника
func (s *teamService) GetSlotHistory(ctx context.Context, teamID int, slotID string) ([]slots.HistoryEntry, error) {
	team, err := s.GetTeamByID(ctx, teamID)
	if err != nil {
		return nil, err
	}

	history, ok := slots.MemberSlotHistory(team, slotID)
	if !ok {
		return nil, domain.NewNotFoundError("slot with id " + slotID)
	}

	return history, nil
}
