package slots

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLeaderHistory(t *testing.T) {
	t.Run("порядок записей - порядок добавления, is_current по unassignedAt", func(t *testing.T) {
		team := newTeam()
		AssignLeader(team, "u1", "admin", t0)
		AssignLeader(team, "u2", "admin", t1)

		history := LeaderHistory(team)

		require.Len(t, history, 2)
		assert.Equal(t, "u1", history[0].UserID)
		assert.False(t, history[0].IsCurrent)
		assert.Equal(t, "u2", history[1].UserID)
		assert.True(t, history[1].IsCurrent)
	})
}

func TestMemberSlotHistory(t *testing.T) {
	t.Run("история скоупится к одному слоту", func(t *testing.T) {
		team := newTeam()
		s1 := AddMember(team, "u1", "admin", t0)
		AddMember(team, "u2", "admin", t0)
		RemoveMember(team, "u1", "admin", t1)

		history, ok := MemberSlotHistory(team, s1)

		require.True(t, ok)
		require.Len(t, history, 1)
		assert.Equal(t, "u1", history[0].UserID)
		assert.False(t, history[0].IsCurrent)
	})

	t.Run("неизвестный слот", func(t *testing.T) {
		team := newTeam()

		_, ok := MemberSlotHistory(team, "missing")

		assert.False(t, ok)
	})
}

func TestBuildTeamHistory(t *testing.T) {
	team := newTeam()
	AssignLeader(team, "u1", "admin", t0)
	s1 := AddMember(team, "u2", "admin", t0)
	s2 := AddMember(team, "u3", "admin", t1)
	RemoveMember(team, "u2", "admin", t2)

	history := BuildTeamHistory(team)

	require.Len(t, history.Leaders, 1)
	assert.True(t, history.Leaders[0].IsCurrent)

	require.Len(t, history.MemberSlots, 2)
	assert.Equal(t, s1, history.MemberSlots[0].SlotID)
	assert.Equal(t, s2, history.MemberSlots[1].SlotID)
	require.Len(t, history.MemberSlots[0].History, 1)
	assert.False(t, history.MemberSlots[0].History[0].IsCurrent)
	assert.True(t, history.MemberSlots[1].History[0].IsCurrent)
}
