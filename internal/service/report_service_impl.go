package service

import (
	"context"

	"github.com/jonboulle/clockwork"

	"github.com/bagdasarian/team-roster/internal/domain"
	"github.com/bagdasarian/team-roster/internal/repository"
	"github.com/bagdasarian/team-roster/internal/slots"
)

type reportService struct {
	teamRepo repository.TeamRepository
	userRepo repository.UserRepository
	clock    clockwork.Clock
}

// NewReportService создает новый экземпляр ReportService
func NewReportService(teamRepo repository.TeamRepository, userRepo repository.UserRepository, clock clockwork.Clock) ReportService {
	return &reportService{
		teamRepo: teamRepo,
		userRepo: userRepo,
		clock:    clock,
	}
}

func (s *reportService) GetUserHistory(ctx context.Context, userID string) (*slots.UserReport, error) {
	_, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		if err.Error() == "user not found" {
			return nil, domain.NewNotFoundError("user with id " + userID)
		}
		return nil, err
	}

	teams, err := s.teamRepo.GetTeamsByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	report := slots.BuildUserReport(teams, userID, s.clock.Now())
	return &report, nil
}
