package slots

import (
	"sort"
	"time"

	"github.com/bagdasarian/team-roster/internal/domain"
)

const hoursPerDay = 24

// PositionLeader и PositionMember маркируют тип интервала в карьерном отчете
const (
	PositionLeader = "leader"
	PositionMember = "member"
)

// ReportInterval - один интервал карьеры пользователя в какой-то команде.
// TenureDays для закрытого интервала - его длительность, для открытого -
// время от назначения до момента построения отчета.
type ReportInterval struct {
	TeamID       int
	TeamName     string
	Position     string
	SlotID       string
	AssignedAt   time.Time
	UnassignedAt *time.Time
	AssignedBy   string
	IsCurrent    bool
	TenureDays   float64
}

// ReportStats - агрегаты по карьере пользователя.
// TotalTenureDays и AvgIntervalDays считаются только по закрытым интервалам.
type ReportStats struct {
	TotalTeams          int
	LeadershipIntervals int
	MembershipIntervals int
	TotalTenureDays     float64
	AvgIntervalDays     float64
}

// UserReport - карьерная хронология пользователя по всем командам
type UserReport struct {
	UserID   string
	Timeline []ReportInterval
	Stats    ReportStats
}

// BuildUserReport сворачивает истории всех переданных команд в хронологию
// одного пользователя, отсортированную по assignedAt по возрастанию.
// Чистая read-side свертка: команды не мутируются.
func BuildUserReport(teams []*domain.Team, userID string, now time.Time) UserReport {
	report := UserReport{UserID: userID, Timeline: []ReportInterval{}}
	teamsSeen := make(map[int]bool)

	for _, t := range teams {
		touched := false

		for _, e := range t.LeaderSlot.History {
			if e.UserID != userID {
				continue
			}
			report.Timeline = append(report.Timeline, newInterval(t, PositionLeader, "", e, now))
			report.Stats.LeadershipIntervals++
			touched = true
		}

		for i := range t.MemberSlots {
			slot := &t.MemberSlots[i]
			for _, e := range slot.History {
				if e.UserID != userID {
					continue
				}
				report.Timeline = append(report.Timeline, newInterval(t, PositionMember, slot.SlotID, e, now))
				report.Stats.MembershipIntervals++
				touched = true
			}
		}

		if touched && !teamsSeen[t.ID] {
			teamsSeen[t.ID] = true
			report.Stats.TotalTeams++
		}
	}

	sort.SliceStable(report.Timeline, func(i, j int) bool {
		return report.Timeline[i].AssignedAt.Before(report.Timeline[j].AssignedAt)
	})

	closed := 0
	for _, iv := range report.Timeline {
		if iv.UnassignedAt == nil {
			continue
		}
		report.Stats.TotalTenureDays += iv.TenureDays
		closed++
	}
	if closed > 0 {
		report.Stats.AvgIntervalDays = report.Stats.TotalTenureDays / float64(closed)
	}

	return report
}

func newInterval(t *domain.Team, position, slotID string, e domain.AssignmentEntry, now time.Time) ReportInterval {
	end := now
	if e.UnassignedAt != nil {
		end = *e.UnassignedAt
	}

	return ReportInterval{
		TeamID:       t.ID,
		TeamName:     t.Name,
		Position:     position,
		SlotID:       slotID,
		AssignedAt:   e.AssignedAt,
		UnassignedAt: e.UnassignedAt,
		AssignedBy:   e.AssignedBy,
		IsCurrent:    e.UnassignedAt == nil,
		TenureDays:   end.Sub(e.AssignedAt).Hours() / hoursPerDay,
	}
}
