package slots

import (
	"time"

	"github.com/bagdasarian/team-roster/internal/domain"
)

// HistoryEntry - запись истории для отдачи наружу.
// IsCurrent вычисляется по отсутствию unassignedAt, а не по указателю
// currentHolder: открытый интервал - авторитетный признак активной записи.
type HistoryEntry struct {
	UserID       string
	AssignedAt   time.Time
	UnassignedAt *time.Time
	AssignedBy   string
	IsCurrent    bool
}

// SlotHistory - история одного слота участника
type SlotHistory struct {
	SlotID  string
	History []HistoryEntry
}

// TeamHistory - сводная история команды для отчетов
type TeamHistory struct {
	Leaders     []HistoryEntry
	MemberSlots []SlotHistory
}

// LeaderHistory возвращает историю слота лидера в порядке записи (без пересортировки)
func LeaderHistory(t *domain.Team) []HistoryEntry {
	return mapEntries(t.LeaderSlot.History)
}

// MemberSlotHistory возвращает историю одного слота участника.
// Второй результат false, если слот с таким id в команде не существует.
func MemberSlotHistory(t *domain.Team, slotID string) ([]HistoryEntry, bool) {
	for i := range t.MemberSlots {
		if t.MemberSlots[i].SlotID == slotID {
			return mapEntries(t.MemberSlots[i].History), true
		}
	}
	return nil, false
}

// BuildTeamHistory собирает историю лидера и всех слотов участников
func BuildTeamHistory(t *domain.Team) TeamHistory {
	memberSlots := make([]SlotHistory, 0, len(t.MemberSlots))
	for i := range t.MemberSlots {
		memberSlots = append(memberSlots, SlotHistory{
			SlotID:  t.MemberSlots[i].SlotID,
			History: mapEntries(t.MemberSlots[i].History),
		})
	}

	return TeamHistory{
		Leaders:     LeaderHistory(t),
		MemberSlots: memberSlots,
	}
}

func mapEntries(history []domain.AssignmentEntry) []HistoryEntry {
	entries := make([]HistoryEntry, 0, len(history))
	for _, e := range history {
		entries = append(entries, HistoryEntry{
			UserID:       e.UserID,
			AssignedAt:   e.AssignedAt,
			UnassignedAt: e.UnassignedAt,
			AssignedBy:   e.AssignedBy,
			IsCurrent:    e.UnassignedAt == nil,
		})
	}
	return entries
}
