package handler

import (
	"net/http"

	"github.com/bagdasarian/team-roster/internal/domain"
	"github.com/bagdasarian/team-roster/internal/service"
)

type Handler struct {
	teamService   service.TeamService
	userService   service.UserService
	reportService service.ReportService
}

func NewHandler(
	teamService service.TeamService,
	userService service.UserService,
	reportService service.ReportService,
) *Handler {
	return &Handler{
		teamService:   teamService,
		userService:   userService,
		reportService: reportService,
	}
}

// actorFromRequest достает идентичность актора из заголовков.
// Выпуск и проверка токенов - ответственность внешнего шлюза,
// сюда приходят уже проверенные X-User-Id / X-User-Role.
func actorFromRequest(r *http.Request) (domain.Actor, error) {
	userID := r.Header.Get("X-User-Id")
	role := r.Header.Get("X-User-Role")
	if userID == "" || role == "" {
		return domain.Actor{}, domain.ErrUnauthorized
	}

	return domain.Actor{
		UserID: userID,
		Role:   domain.Role(role),
	}, nil
}
