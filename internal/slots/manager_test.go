package slots

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/team-roster/internal/domain"
)

var (
	t0 = time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	t1 = t0.Add(24 * time.Hour)
	t2 = t0.Add(48 * time.Hour)
)

func newTeam() *domain.Team {
	return &domain.Team{ID: 1, Name: "backend"}
}

// openEntries возвращает открытые интервалы истории
func openEntries(history []domain.AssignmentEntry) []domain.AssignmentEntry {
	var open []domain.AssignmentEntry
	for _, e := range history {
		if e.UnassignedAt == nil {
			open = append(open, e)
		}
	}
	return open
}

// checkSlotInvariant: не более одного открытого интервала, и он совпадает с держателем
func checkSlotInvariant(t *testing.T, holder *string, history []domain.AssignmentEntry) {
	t.Helper()
	open := openEntries(history)
	require.LessOrEqual(t, len(open), 1)
	if holder == nil {
		assert.Empty(t, open)
		return
	}
	require.Len(t, open, 1)
	assert.Equal(t, *holder, open[0].UserID)
}

func TestAssignLeader(t *testing.T) {
	t.Run("смена лидера закрывает старый интервал и открывает новый", func(t *testing.T) {
		team := newTeam()

		AssignLeader(team, "u1", "admin", t0)
		AssignLeader(team, "u2", "admin", t1)

		require.Len(t, team.LeaderSlot.History, 2)

		first := team.LeaderSlot.History[0]
		assert.Equal(t, "u1", first.UserID)
		assert.Equal(t, t0, first.AssignedAt)
		require.NotNil(t, first.UnassignedAt)
		assert.Equal(t, t1, *first.UnassignedAt)
		assert.Equal(t, "admin", first.AssignedBy)

		second := team.LeaderSlot.History[1]
		assert.Equal(t, "u2", second.UserID)
		assert.Equal(t, t1, second.AssignedAt)
		assert.Nil(t, second.UnassignedAt)

		leader := CurrentLeader(team)
		require.NotNil(t, leader)
		assert.Equal(t, "u2", *leader)
		checkSlotInvariant(t, team.LeaderSlot.CurrentHolder, team.LeaderSlot.History)
	})

	t.Run("история растет ровно на одну запись за вызов", func(t *testing.T) {
		team := newTeam()

		for i, userID := range []string{"u1", "u2", "u1", "u3"} {
			AssignLeader(team, userID, "admin", t0.Add(time.Duration(i)*time.Hour))
			assert.Len(t, LeaderHistory(team), i+1)
		}
	})

	t.Run("повторное назначение того же лидера - тоже переход", func(t *testing.T) {
		team := newTeam()

		AssignLeader(team, "u1", "admin", t0)
		AssignLeader(team, "u1", "admin", t1)

		require.Len(t, team.LeaderSlot.History, 2)
		require.NotNil(t, team.LeaderSlot.History[0].UnassignedAt)
		assert.Equal(t, t1, *team.LeaderSlot.History[0].UnassignedAt)
		assert.Nil(t, team.LeaderSlot.History[1].UnassignedAt)
		checkSlotInvariant(t, team.LeaderSlot.CurrentHolder, team.LeaderSlot.History)
	})

	t.Run("отсутствие открытой записи у уходящего лидера не ломает назначение", func(t *testing.T) {
		team := newTeam()
		holder := "u1"
		// рассогласованное legacy-состояние: держатель есть, открытой записи нет
		team.LeaderSlot.CurrentHolder = &holder

		AssignLeader(team, "u2", "admin", t1)

		require.Len(t, team.LeaderSlot.History, 1)
		assert.Equal(t, "u2", team.LeaderSlot.History[0].UserID)
		checkSlotInvariant(t, team.LeaderSlot.CurrentHolder, team.LeaderSlot.History)
	})
}

func TestRemoveLeader(t *testing.T) {
	t.Run("закрывает интервал и освобождает слот", func(t *testing.T) {
		team := newTeam()
		AssignLeader(team, "u1", "admin", t0)

		RemoveLeader(team, "admin", t1)

		assert.Nil(t, team.LeaderSlot.CurrentHolder)
		assert.Nil(t, CurrentLeader(team))
		require.Len(t, team.LeaderSlot.History, 1)
		require.NotNil(t, team.LeaderSlot.History[0].UnassignedAt)
		assert.Equal(t, t1, *team.LeaderSlot.History[0].UnassignedAt)
	})

	t.Run("повторный вызов эквивалентен одному", func(t *testing.T) {
		team := newTeam()
		AssignLeader(team, "u1", "admin", t0)

		RemoveLeader(team, "admin", t1)
		after := *team

		RemoveLeader(team, "admin", t2)

		assert.Equal(t, after.LeaderSlot, team.LeaderSlot)
	})

	t.Run("no-op на пустом слоте", func(t *testing.T) {
		team := newTeam()

		RemoveLeader(team, "admin", t0)

		assert.Nil(t, team.LeaderSlot.CurrentHolder)
		assert.Empty(t, team.LeaderSlot.History)
	})
}

func TestAddMember(t *testing.T) {
	t.Run("создает новый слот с открытой записью", func(t *testing.T) {
		team := newTeam()

		slotID := AddMember(team, "u1", "admin", t0)

		require.Len(t, team.MemberSlots, 1)
		slot := team.MemberSlots[0]
		assert.Equal(t, slotID, slot.SlotID)
		require.NotNil(t, slot.CurrentHolder)
		assert.Equal(t, "u1", *slot.CurrentHolder)
		require.Len(t, slot.History, 1)
		assert.Nil(t, slot.History[0].UnassignedAt)
		assert.Equal(t, "admin", slot.History[0].AssignedBy)
	})

	t.Run("каждый вызов возвращает ранее не существовавший slot id", func(t *testing.T) {
		team := newTeam()
		seen := make(map[string]bool)

		for i := 0; i < 10; i++ {
			slotID := AddMember(team, "u1", "admin", t0)
			assert.False(t, seen[slotID])
			seen[slotID] = true
		}
		assert.Len(t, team.MemberSlots, 10)
	})
}

func TestRemoveMember(t *testing.T) {
	t.Run("освобожденный слот остается в списке навсегда", func(t *testing.T) {
		team := newTeam()
		s1 := AddMember(team, "u1", "admin", t0)

		RemoveMember(team, "u1", "admin", t1)
		s2 := AddMember(team, "u2", "admin", t2)

		assert.NotEqual(t, s1, s2)
		assert.Equal(t, []string{"u2"}, CurrentMembers(team))

		require.Len(t, team.MemberSlots, 2)
		vacated := team.MemberSlots[0]
		assert.Equal(t, s1, vacated.SlotID)
		assert.Nil(t, vacated.CurrentHolder)
		require.Len(t, vacated.History, 1)
		require.NotNil(t, vacated.History[0].UnassignedAt)
		assert.Equal(t, t1, *vacated.History[0].UnassignedAt)
	})

	t.Run("удаленный пользователь сразу пропадает из текущих участников", func(t *testing.T) {
		team := newTeam()
		AddMember(team, "u1", "admin", t0)
		AddMember(team, "u2", "admin", t0)

		RemoveMember(team, "u1", "admin", t1)

		assert.NotContains(t, CurrentMembers(team), "u1")
		assert.Contains(t, CurrentMembers(team), "u2")
	})

	t.Run("no-op если пользователь не занимает слот", func(t *testing.T) {
		team := newTeam()
		AddMember(team, "u1", "admin", t0)

		RemoveMember(team, "u2", "admin", t1)

		assert.Equal(t, []string{"u1"}, CurrentMembers(team))
		checkSlotInvariant(t, team.MemberSlots[0].CurrentHolder, team.MemberSlots[0].History)
	})
}

func TestCurrentLeader(t *testing.T) {
	t.Run("legacy-поле используется только при пустой истории", func(t *testing.T) {
		legacy := "u9"

		team := newTeam()
		team.LegacyLeaderID = &legacy
		leader := CurrentLeader(team)
		require.NotNil(t, leader)
		assert.Equal(t, "u9", *leader)

		// после появления истории legacy-поле игнорируется
		AssignLeader(team, "u1", "admin", t0)
		RemoveLeader(team, "admin", t1)
		assert.Nil(t, CurrentLeader(team))
	})
}

func TestCurrentMembers(t *testing.T) {
	t.Run("слот с держателем без истории считается занятым", func(t *testing.T) {
		team := newTeam()
		holder := "u1"
		team.MemberSlots = append(team.MemberSlots, domain.MemberSlot{
			SlotID:        "legacy-slot",
			CurrentHolder: &holder,
		})

		assert.Equal(t, []string{"u1"}, CurrentMembers(team))
	})

	t.Run("держатель с закрытым последним интервалом не считается", func(t *testing.T) {
		team := newTeam()
		holder := "u1"
		closed := t1
		team.MemberSlots = append(team.MemberSlots, domain.MemberSlot{
			SlotID:        "drifted-slot",
			CurrentHolder: &holder,
			History: []domain.AssignmentEntry{{
				UserID:       "u1",
				AssignedAt:   t0,
				UnassignedAt: &closed,
				AssignedBy:   "admin",
			}},
		})

		assert.Empty(t, CurrentMembers(team))
	})

	t.Run("дубликаты схлопываются, порядок следует порядку слотов", func(t *testing.T) {
		team := newTeam()
		AddMember(team, "u2", "admin", t0)
		AddMember(team, "u1", "admin", t0)
		AddMember(team, "u2", "admin", t0)

		assert.Equal(t, []string{"u2", "u1"}, CurrentMembers(team))
	})
}

func TestMembershipChecks(t *testing.T) {
	team := newTeam()
	AssignLeader(team, "lead1", "admin", t0)
	AddMember(team, "u1", "admin", t0)

	assert.True(t, IsTeamLeader(team, "lead1"))
	assert.False(t, IsTeamLeader(team, "u1"))
	assert.True(t, IsTeamMember(team, "u1"))
	assert.False(t, IsTeamMember(team, "lead1"))
	assert.True(t, BelongsToTeam(team, "lead1"))
	assert.True(t, BelongsToTeam(team, "u1"))
	assert.False(t, BelongsToTeam(team, "u2"))
}

func TestSlotInvariantUnderOperationSequence(t *testing.T) {
	team := newTeam()
	now := t0

	step := func(f func()) {
		f()
		now = now.Add(time.Hour)
		checkSlotInvariant(t, team.LeaderSlot.CurrentHolder, team.LeaderSlot.History)
		for i := range team.MemberSlots {
			checkSlotInvariant(t, team.MemberSlots[i].CurrentHolder, team.MemberSlots[i].History)
		}
	}

	step(func() { AssignLeader(team, "u1", "admin", now) })
	step(func() { AddMember(team, "u2", "admin", now) })
	step(func() { AssignLeader(team, "u2", "admin", now) })
	step(func() { AddMember(team, "u3", "admin", now) })
	step(func() { RemoveMember(team, "u2", "admin", now) })
	step(func() { RemoveLeader(team, "admin", now) })
	step(func() { RemoveLeader(team, "admin", now) })
	step(func() { AssignLeader(team, "u3", "admin", now) })
	step(func() { RemoveMember(team, "u3", "admin", now) })
}
