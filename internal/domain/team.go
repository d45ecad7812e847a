package domain

import "time"

type Team struct {
	ID          int
	Name        string
	Description string
	LeaderSlot  LeaderSlot
	MemberSlots []MemberSlot
	// LegacyLeaderID хранит лидера для записей, созданных до слотовой модели
	LegacyLeaderID *string
	Version        int
	CreatedAt      time.Time
	UpdatedAt      *time.Time
}

// LeaderSlot - единственный слот лидера команды с историей назначений
type LeaderSlot struct {
	CurrentHolder *string
	History       []AssignmentEntry
}

// MemberSlot - слот участника; идентичность слота не зависит от того, кто его занимает
type MemberSlot struct {
	SlotID        string
	CurrentHolder *string
	History       []AssignmentEntry
}

// AssignmentEntry - один интервал занятости слота.
// UnassignedAt == nil означает открытый (текущий) интервал.
// Записи append-only: после создания меняется только UnassignedAt при закрытии.
type AssignmentEntry struct {
	UserID       string
	AssignedAt   time.Time
	UnassignedAt *time.Time
	AssignedBy   string
}
