package domain

import "time"

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleLead   Role = "lead"
	RoleMember Role = "member"
)

func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleLead, RoleMember:
		return true
	}
	return false
}

type User struct {
	ID        string
	Username  string
	Role      Role
	IsActive  bool
	TeamID    *int
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// Actor - идентичность администратора, выполняющего операцию.
// Используется для штампа assignedBy/removedBy и проверки прав на уровне вызывающего кода.
type Actor struct {
	UserID string
	Role   Role
}
