package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/bagdasarian/team-roster/internal/domain"
)

type userRepository struct {
	executor DBExecutor
}

func NewUserRepository(db *sql.DB) *userRepository {
	return &userRepository{executor: db}
}

func NewUserRepositoryWithTx(tx *sql.Tx) *userRepository {
	return &userRepository{executor: tx}
}

func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	query := `
		INSERT INTO users (id, name, role, is_active, team_id, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING created_at
	`

	now := time.Now()
	err := r.executor.QueryRowContext(
		ctx,
		query,
		user.ID,
		user.Username,
		string(user.Role),
		user.IsActive,
		user.TeamID,
		now,
	).Scan(&user.CreatedAt)
	if err != nil {
		return err
	}

	return nil
}

func (r *userRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	query := `
		SELECT id, name, role, is_active, team_id, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	user := &domain.User{}
	var role string
	var teamID sql.NullInt64
	var updatedAt sql.NullTime
	err := r.executor.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Username,
		&role,
		&user.IsActive,
		&teamID,
		&user.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, err
	}

	user.Role = domain.Role(role)
	if teamID.Valid {
		id := int(teamID.Int64)
		user.TeamID = &id
	}
	if updatedAt.Valid {
		user.UpdatedAt = &updatedAt.Time
	}

	return user, nil
}

func (r *userRepository) GetByTeamID(ctx context.Context, teamID int) ([]*domain.User, error) {
	query := `
		SELECT id, name, role, is_active, team_id, created_at, updated_at
		FROM users
		WHERE team_id = $1
		ORDER BY created_at
	`

	rows, err := r.executor.QueryContext(ctx, query, teamID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var users []*domain.User
	for rows.Next() {
		user := &domain.User{}
		var role string
		var dbTeamID sql.NullInt64
		var updatedAt sql.NullTime
		err := rows.Scan(
			&user.ID,
			&user.Username,
			&role,
			&user.IsActive,
			&dbTeamID,
			&user.CreatedAt,
			&updatedAt,
		)
		if err != nil {
			return nil, err
		}
		user.Role = domain.Role(role)
		if dbTeamID.Valid {
			id := int(dbTeamID.Int64)
			user.TeamID = &id
		}
		if updatedAt.Valid {
			user.UpdatedAt = &updatedAt.Time
		}
		users = append(users, user)
	}

	return users, rows.Err()
}

func (r *userRepository) SetIsActive(ctx context.Context, userID string, isActive bool) error {
	query := `
		UPDATE users
		SET is_active = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, userID, isActive, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}

func (r *userRepository) SetTeam(ctx context.Context, userID string, teamID *int) error {
	query := `
		UPDATE users
		SET team_id = $2, updated_at = $3
		WHERE id = $1
	`

	result, err := r.executor.ExecContext(ctx, query, userID, teamID, time.Now())
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return errors.New("user not found")
	}

	return nil
}

func (r *userRepository) DetachTeam(ctx context.Context, teamID int) error {
	query := `
		UPDATE users
		SET team_id = NULL, updated_at = $2
		WHERE team_id = $1
	`

	_, err := r.executor.ExecContext(ctx, query, teamID, time.Now())
	return err
}
