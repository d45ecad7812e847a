package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bagdasarian/team-roster/internal/domain"
	"github.com/bagdasarian/team-roster/internal/slots"
)

func TestReportService_GetUserHistory(t *testing.T) {
	t.Run("хронология собирается по всем командам пользователя", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockUserRepo := new(MockUserRepository)

		service := NewReportService(mockTeamRepo, mockUserRepo, clockwork.NewFakeClockAt(fixedNow))

		start := fixedNow.Add(-72 * time.Hour)
		teamA := &domain.Team{ID: 1, Name: "backend"}
		slots.AssignLeader(teamA, "u1", "adm1", start)
		slots.RemoveLeader(teamA, "adm1", start.Add(48*time.Hour))
		teamB := &domain.Team{ID: 2, Name: "frontend"}
		slots.AddMember(teamB, "u1", "adm1", start.Add(48*time.Hour))

		mockUserRepo.On("GetByID", mock.Anything, "u1").Return(&domain.User{ID: "u1", Role: domain.RoleMember, IsActive: true}, nil).Once()
		mockTeamRepo.On("GetTeamsByUser", mock.Anything, "u1").Return([]*domain.Team{teamA, teamB}, nil).Once()

		report, err := service.GetUserHistory(context.Background(), "u1")

		require.NoError(t, err)
		require.Len(t, report.Timeline, 2)
		assert.Equal(t, 2, report.Stats.TotalTeams)
		assert.Equal(t, 1, report.Stats.LeadershipIntervals)
		assert.Equal(t, 1, report.Stats.MembershipIntervals)
		assert.InDelta(t, 2.0, report.Stats.TotalTenureDays, 1e-9)
		// открытый интервал в frontend длится сутки к моменту отчета
		assert.True(t, report.Timeline[1].IsCurrent)
		assert.InDelta(t, 1.0, report.Timeline[1].TenureDays, 1e-9)
		mockTeamRepo.AssertExpectations(t)
		mockUserRepo.AssertExpectations(t)
	})

	t.Run("ошибка: пользователь не найден", func(t *testing.T) {
		mockTeamRepo := new(MockTeamRepository)
		mockUserRepo := new(MockUserRepository)

		service := NewReportService(mockTeamRepo, mockUserRepo, clockwork.NewFakeClockAt(fixedNow))

		mockUserRepo.On("GetByID", mock.Anything, "ghost").Return(nil, errors.New("user not found")).Once()

		_, err := service.GetUserHistory(context.Background(), "ghost")

		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})
}
