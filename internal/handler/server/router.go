package server

import (
	"net/http"

	"github.com/bagdasarian/team-roster/internal/handler"
)

func SetupRoutes(mux *http.ServeMux, h *handler.Handler) {
	mux.HandleFunc("POST /team/create", h.CreateTeam)
	mux.HandleFunc("GET /team/get", h.GetTeam)
	mux.HandleFunc("POST /team/assignLeader", h.AssignLeader)
	mux.HandleFunc("POST /team/removeLeader", h.RemoveLeader)
	mux.HandleFunc("POST /team/addMember", h.AddMember)
	mux.HandleFunc("POST /team/removeMember", h.RemoveMember)
	mux.HandleFunc("POST /team/delete", h.DeleteTeam)
	mux.HandleFunc("GET /team/history", h.GetTeamHistory)
	mux.HandleFunc("GET /team/slotHistory", h.GetSlotHistory)
	mux.HandleFunc("POST /users/create", h.CreateUser)
	mux.HandleFunc("GET /users/get", h.GetUser)
	mux.HandleFunc("POST /users/setIsActive", h.SetIsActive)
	mux.HandleFunc("GET /users/history", h.GetUserHistory)
}
