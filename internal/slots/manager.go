// Package slots реализует логику слотов команды: кто сейчас занимает
// позицию лидера и позиции участников, с полной историей назначений.
// Все функции работают с Team в памяти и не делают I/O; сохранение
// результата - ответственность вызывающего кода.
package slots

import (
	"time"

	"github.com/google/uuid"

	"github.com/bagdasarian/team-roster/internal/domain"
)

// CurrentLeader возвращает текущего лидера команды.
// Для записей, созданных до слотовой модели (пустая история лидера),
// используется legacy-поле.
func CurrentLeader(t *domain.Team) *string {
	if t.LeaderSlot.CurrentHolder != nil {
		return t.LeaderSlot.CurrentHolder
	}
	if len(t.LeaderSlot.History) == 0 && t.LegacyLeaderID != nil {
		return t.LegacyLeaderID
	}
	return nil
}

// CurrentMembers возвращает пользователей, занимающих слоты участников,
// без дубликатов, в порядке слотов. Слот считается занятым, только если
// последний интервал его держателя открыт. Слот с держателем, но без
// истории считается занятым - защитный вариант для legacy-данных.
func CurrentMembers(t *domain.Team) []string {
	seen := make(map[string]bool)
	members := make([]string, 0, len(t.MemberSlots))

	for i := range t.MemberSlots {
		slot := &t.MemberSlots[i]
		if slot.CurrentHolder == nil {
			continue
		}
		holder := *slot.CurrentHolder
		if !holderIntervalOpen(slot.History, holder) {
			continue
		}
		if !seen[holder] {
			seen[holder] = true
			members = append(members, holder)
		}
	}

	return members
}

// holderIntervalOpen проверяет, открыт ли последний (по assignedAt) интервал
// держателя. Отсутствие записей держателя трактуется как занятый слот.
func holderIntervalOpen(history []domain.AssignmentEntry, holder string) bool {
	var latest *domain.AssignmentEntry
	for i := range history {
		entry := &history[i]
		if entry.UserID != holder {
			continue
		}
		if latest == nil || entry.AssignedAt.After(latest.AssignedAt) || entry.AssignedAt.Equal(latest.AssignedAt) {
			latest = entry
		}
	}
	if latest == nil {
		return true
	}
	return latest.UnassignedAt == nil
}

// AssignLeader назначает нового лидера: закрывает открытый интервал
// предыдущего лидера (молча пропускает шаг, если такой записи нет),
// ставит нового держателя и добавляет открытую запись в историю.
// Повторное назначение того же пользователя тоже моделируется как переход.
func AssignLeader(t *domain.Team, newLeaderID, assignedBy string, now time.Time) {
	if t.LeaderSlot.CurrentHolder != nil {
		closeOpenEntry(t.LeaderSlot.History, *t.LeaderSlot.CurrentHolder, now)
	}

	holder := newLeaderID
	t.LeaderSlot.CurrentHolder = &holder
	t.LeaderSlot.History = append(t.LeaderSlot.History, domain.AssignmentEntry{
		UserID:     newLeaderID,
		AssignedAt: now,
		AssignedBy: assignedBy,
	})
}

// RemoveLeader освобождает слот лидера. Если слот уже пуст - ничего не делает.
func RemoveLeader(t *domain.Team, removedBy string, now time.Time) {
	if t.LeaderSlot.CurrentHolder == nil {
		return
	}
	closeOpenEntry(t.LeaderSlot.History, *t.LeaderSlot.CurrentHolder, now)
	t.LeaderSlot.CurrentHolder = nil
}

// AddMember всегда создает новый слот с новым SlotID, занимает его
// пользователем и добавляет открытую запись в историю слота.
// Проверка дублирующего членства - ответственность вызывающего кода.
func AddMember(t *domain.Team, userID, assignedBy string, now time.Time) string {
	holder := userID
	slot := domain.MemberSlot{
		SlotID:        uuid.NewString(),
		CurrentHolder: &holder,
		History: []domain.AssignmentEntry{{
			UserID:     userID,
			AssignedAt: now,
			AssignedBy: assignedBy,
		}},
	}
	t.MemberSlots = append(t.MemberSlots, slot)
	return slot.SlotID
}

// RemoveMember находит первый слот, занятый пользователем, закрывает его
// открытый интервал и освобождает держателя. Сам слот остается в списке
// навсегда: "добавить" всегда создает новый слот, а не переиспользует
// освободившийся. Если пользователь не занимает ни одного слота - no-op.
func RemoveMember(t *domain.Team, userID, removedBy string, now time.Time) {
	for i := range t.MemberSlots {
		slot := &t.MemberSlots[i]
		if slot.CurrentHolder == nil || *slot.CurrentHolder != userID {
			continue
		}
		closeOpenEntry(slot.History, userID, now)
		slot.CurrentHolder = nil
		return
	}
}

// IsTeamLeader проверяет, является ли пользователь текущим лидером
func IsTeamLeader(t *domain.Team, userID string) bool {
	leader := CurrentLeader(t)
	return leader != nil && *leader == userID
}

// IsTeamMember проверяет, занимает ли пользователь слот участника
func IsTeamMember(t *domain.Team, userID string) bool {
	for _, member := range CurrentMembers(t) {
		if member == userID {
			return true
		}
	}
	return false
}

// BelongsToTeam - лидер или участник
func BelongsToTeam(t *domain.Team, userID string) bool {
	return IsTeamLeader(t, userID) || IsTeamMember(t, userID)
}

// closeOpenEntry ставит unassignedAt в открытый интервал пользователя.
// Идем с конца: открытая запись по инварианту не более одной и лежит ближе
// к хвосту. Если записи нет - молча выходим, состояние считаем legacy.
func closeOpenEntry(history []domain.AssignmentEntry, userID string, now time.Time) {
	for i := len(history) - 1; i >= 0; i-- {
		entry := &history[i]
		if entry.UserID == userID && entry.UnassignedAt == nil {
			closedAt := now
			entry.UnassignedAt = &closedAt
			return
		}
	}
}
