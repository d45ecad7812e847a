package service

import (
	"context"

	"github.com/bagdasarian/team-roster/internal/slots"
)

type ReportService interface {
	// GetUserHistory строит карьерную хронологию пользователя по всем
	// командам, в которых он когда-либо занимал слот
	GetUserHistory(ctx context.Context, userID string) (*slots.UserReport, error)
}
