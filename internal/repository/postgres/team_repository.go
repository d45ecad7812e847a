package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/team-roster/internal/domain"
)

type teamRepository struct {
	executor DBExecutor
}

func NewTeamRepository(db *sql.DB) *teamRepository {
	return &teamRepository{executor: db}
}

func NewTeamRepositoryWithTx(tx *sql.Tx) *teamRepository {
	return &teamRepository{executor: tx}
}

func (r *teamRepository) Create(ctx context.Context, team *domain.Team) error {
	query := `
		INSERT INTO teams (name, description, legacy_leader_id, version, created_at)
		VALUES ($1, $2, $3, 1, $4)
		RETURNING id, version, created_at
	`

	err := r.executor.QueryRowContext(
		ctx,
		query,
		team.Name,
		team.Description,
		team.LegacyLeaderID,
		team.CreatedAt,
	).Scan(&team.ID, &team.Version, &team.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *teamRepository) GetByID(ctx context.Context, id int) (*domain.Team, error) {
	query := `
		SELECT id, name, description, leader_id, legacy_leader_id, version, created_at, updated_at
		FROM teams
		WHERE id = $1
	`
	return r.scanTeam(ctx, r.executor.QueryRowContext(ctx, query, id))
}

func (r *teamRepository) GetByName(ctx context.Context, name string) (*domain.Team, error) {
	query := `
		SELECT id, name, description, leader_id, legacy_leader_id, version, created_at, updated_at
		FROM teams
		WHERE name = $1
	`
	return r.scanTeam(ctx, r.executor.QueryRowContext(ctx, query, name))
}

func (r *teamRepository) scanTeam(ctx context.Context, row *sql.Row) (*domain.Team, error) {
	team := &domain.Team{}
	var leaderID, legacyLeaderID sql.NullString
	var updatedAt sql.NullTime

	err := row.Scan(
		&team.ID,
		&team.Name,
		&team.Description,
		&leaderID,
		&legacyLeaderID,
		&team.Version,
		&team.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("team not found")
		}
		return nil, err
	}

	if leaderID.Valid {
		team.LeaderSlot.CurrentHolder = &leaderID.String
	}
	if legacyLeaderID.Valid {
		team.LegacyLeaderID = &legacyLeaderID.String
	}
	if updatedAt.Valid {
		team.UpdatedAt = &updatedAt.Time
	}

	if err := r.loadLeaderHistory(ctx, team); err != nil {
		return nil, err
	}
	if err := r.loadMemberSlots(ctx, team); err != nil {
		return nil, err
	}

	return team, nil
}

func (r *teamRepository) loadLeaderHistory(ctx context.Context, team *domain.Team) error {
	query := `
		SELECT user_id, assigned_at, unassigned_at, assigned_by
		FROM leader_history
		WHERE team_id = $1
		ORDER BY id
	`

	rows, err := r.executor.QueryContext(ctx, query, team.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		entry, err := scanEntry(rows)
		if err != nil {
			return err
		}
		team.LeaderSlot.History = append(team.LeaderSlot.History, entry)
	}

	return rows.Err()
}

func (r *teamRepository) loadMemberSlots(ctx context.Context, team *domain.Team) error {
	query := `
		SELECT id, holder_id
		FROM member_slots
		WHERE team_id = $1
		ORDER BY position
	`

	rows, err := r.executor.QueryContext(ctx, query, team.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	slotIndex := make(map[string]int)
	for rows.Next() {
		var slotID string
		var holderID sql.NullString
		if err := rows.Scan(&slotID, &holderID); err != nil {
			return err
		}
		slot := domain.MemberSlot{SlotID: slotID}
		if holderID.Valid {
			slot.CurrentHolder = &holderID.String
		}
		slotIndex[slotID] = len(team.MemberSlots)
		team.MemberSlots = append(team.MemberSlots, slot)
	}
	if err := rows.Err(); err != nil {
		return err
	}

	historyQuery := `
		SELECT h.slot_id, h.user_id, h.assigned_at, h.unassigned_at, h.assigned_by
		FROM member_slot_history h
		JOIN member_slots s ON h.slot_id = s.id
		WHERE s.team_id = $1
		ORDER BY h.id
	`

	historyRows, err := r.executor.QueryContext(ctx, historyQuery, team.ID)
	if err != nil {
		return err
	}
	defer historyRows.Close()

	for historyRows.Next() {
		var slotID string
		var entry domain.AssignmentEntry
		var unassignedAt sql.NullTime
		err := historyRows.Scan(&slotID, &entry.UserID, &entry.AssignedAt, &unassignedAt, &entry.AssignedBy)
		if err != nil {
			return err
		}
		if unassignedAt.Valid {
			entry.UnassignedAt = &unassignedAt.Time
		}
		if i, ok := slotIndex[slotID]; ok {
			team.MemberSlots[i].History = append(team.MemberSlots[i].History, entry)
		}
	}

	return historyRows.Err()
}

// SaveSlots сохраняет слоты и истории с оптимистической блокировкой:
// UPDATE teams проходит только при совпадении версии, иначе конкурентный
// запрос уже перезаписал состояние и операция должна быть повторена.
// История пишется upsert-ом по (slot, user_id, assigned_at): новая запись
// вставляется, закрытие интервала проставляет unassigned_at, прочие поля
// записей никогда не меняются.
func (r *teamRepository) SaveSlots(ctx context.Context, team *domain.Team) error {
	query := `
		UPDATE teams
		SET leader_id = $2, version = version + 1, updated_at = $3
		WHERE id = $1 AND version = $4
	`

	now := time.Now()
	var leaderID any
	if team.LeaderSlot.CurrentHolder != nil {
		leaderID = *team.LeaderSlot.CurrentHolder
	}

	result, err := r.executor.ExecContext(ctx, query, team.ID, leaderID, now, team.Version)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("version conflict")
	}
	team.Version++
	team.UpdatedAt = &now

	leaderEntryQuery := `
		INSERT INTO leader_history (team_id, user_id, assigned_at, unassigned_at, assigned_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (team_id, user_id, assigned_at) DO UPDATE
		SET unassigned_at = EXCLUDED.unassigned_at
	`
	for _, entry := range team.LeaderSlot.History {
		_, err := r.executor.ExecContext(ctx, leaderEntryQuery,
			team.ID, entry.UserID, entry.AssignedAt, entry.UnassignedAt, entry.AssignedBy)
		if err != nil {
			return err
		}
	}

	slotQuery := `
		INSERT INTO member_slots (id, team_id, position, holder_id)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET holder_id = EXCLUDED.holder_id
	`
	slotEntryQuery := `
		INSERT INTO member_slot_history (slot_id, user_id, assigned_at, unassigned_at, assigned_by)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (slot_id, user_id, assigned_at) DO UPDATE
		SET unassigned_at = EXCLUDED.unassigned_at
	`
	for position := range team.MemberSlots {
		slot := &team.MemberSlots[position]

		var holderID any
		if slot.CurrentHolder != nil {
			holderID = *slot.CurrentHolder
		}
		_, err := r.executor.ExecContext(ctx, slotQuery, slot.SlotID, team.ID, position, holderID)
		if err != nil {
			return err
		}

		for _, entry := range slot.History {
			_, err := r.executor.ExecContext(ctx, slotEntryQuery,
				slot.SlotID, entry.UserID, entry.AssignedAt, entry.UnassignedAt, entry.AssignedBy)
			if err != nil {
				return err
			}
		}
	}

	return nil
}

func (r *teamRepository) GetTeamsByUser(ctx context.Context, userID string) ([]*domain.Team, error) {
	query := `
		SELECT DISTINCT t.id
		FROM teams t
		LEFT JOIN leader_history lh ON lh.team_id = t.id
		LEFT JOIN member_slots ms ON ms.team_id = t.id
		LEFT JOIN member_slot_history mh ON mh.slot_id = ms.id
		WHERE lh.user_id = $1 OR mh.user_id = $1 OR t.leader_id = $1 OR ms.holder_id = $1
		ORDER BY t.id
	`

	rows, err := r.executor.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var ids []int
	for rows.Next() {
		var id int
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	teams := make([]*domain.Team, 0, len(ids))
	for _, id := range ids {
		team, err := r.GetByID(ctx, id)
		if err != nil {
			return nil, err
		}
		teams = append(teams, team)
	}

	return teams, nil
}

// Delete удаляет команду; истории и слоты уходят по ON DELETE CASCADE
func (r *teamRepository) Delete(ctx context.Context, id int) error {
	result, err := r.executor.ExecContext(ctx, `DELETE FROM teams WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("team not found")
	}

	return nil
}

func scanEntry(rows *sql.Rows) (domain.AssignmentEntry, error) {
	var entry domain.AssignmentEntry
	var unassignedAt sql.NullTime
	err := rows.Scan(&entry.UserID, &entry.AssignedAt, &unassignedAt, &entry.AssignedBy)
	if err != nil {
		return entry, err
	}
	if unassignedAt.Valid {
		entry.UnassignedAt = &unassignedAt.Time
	}
	return entry, nil
}
