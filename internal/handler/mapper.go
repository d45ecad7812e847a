package handler

import (
	"time"

	"github.com/bagdasarian/team-roster/internal/domain"
	"github.com/bagdasarian/team-roster/internal/slots"
)

func domainTeamToHTTP(team *domain.Team) TeamResponse {
	memberSlots := make([]MemberSlotResponse, 0, len(team.MemberSlots))
	for i := range team.MemberSlots {
		slot := &team.MemberSlots[i]
		memberSlots = append(memberSlots, MemberSlotResponse{
			SlotID:   slot.SlotID,
			HolderID: slot.CurrentHolder,
		})
	}

	return TeamResponse{
		TeamID:      team.ID,
		TeamName:    team.Name,
		Description: team.Description,
		LeaderID:    slots.CurrentLeader(team),
		Members:     slots.CurrentMembers(team),
		MemberSlots: memberSlots,
	}
}

func historyEntryToHTTP(entry slots.HistoryEntry) HistoryEntryResponse {
	return HistoryEntryResponse{
		UserID:       entry.UserID,
		AssignedAt:   entry.AssignedAt.Format(time.RFC3339),
		UnassignedAt: optionalTime(entry.UnassignedAt),
		AssignedBy:   entry.AssignedBy,
		IsCurrent:    entry.IsCurrent,
	}
}

func historyEntriesToHTTP(entries []slots.HistoryEntry) []HistoryEntryResponse {
	result := make([]HistoryEntryResponse, 0, len(entries))
	for _, entry := range entries {
		result = append(result, historyEntryToHTTP(entry))
	}
	return result
}

func teamHistoryToHTTP(teamID int, history *slots.TeamHistory) TeamHistoryResponse {
	memberSlots := make([]SlotHistoryResponse, 0, len(history.MemberSlots))
	for _, slot := range history.MemberSlots {
		memberSlots = append(memberSlots, SlotHistoryResponse{
			SlotID:  slot.SlotID,
			History: historyEntriesToHTTP(slot.History),
		})
	}

	return TeamHistoryResponse{
		TeamID:      teamID,
		Leaders:     historyEntriesToHTTP(history.Leaders),
		MemberSlots: memberSlots,
	}
}

func domainUserToHTTP(user *domain.User) UserResponse {
	return UserResponse{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		IsActive: user.IsActive,
		TeamID:   user.TeamID,
	}
}

func userReportToHTTP(report *slots.UserReport) UserHistoryResponse {
	timeline := make([]ReportIntervalResponse, 0, len(report.Timeline))
	for _, interval := range report.Timeline {
		timeline = append(timeline, ReportIntervalResponse{
			TeamID:       interval.TeamID,
			TeamName:     interval.TeamName,
			Position:     interval.Position,
			SlotID:       interval.SlotID,
			AssignedAt:   interval.AssignedAt.Format(time.RFC3339),
			UnassignedAt: optionalTime(interval.UnassignedAt),
			AssignedBy:   interval.AssignedBy,
			IsCurrent:    interval.IsCurrent,
			TenureDays:   interval.TenureDays,
		})
	}

	return UserHistoryResponse{
		UserID:   report.UserID,
		Timeline: timeline,
		Stats: ReportStatsResponse{
			TotalTeams:          report.Stats.TotalTeams,
			LeadershipIntervals: report.Stats.LeadershipIntervals,
			MembershipIntervals: report.Stats.MembershipIntervals,
			TotalTenureDays:     report.Stats.TotalTenureDays,
			AvgIntervalDays:     report.Stats.AvgIntervalDays,
		},
	}
}

func optionalTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(time.RFC3339)
	return &formatted
}
