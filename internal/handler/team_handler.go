package handler

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/bagdasarian/team-roster/internal/domain"
)

func (h *Handler) CreateTeam(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req CreateTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.TeamName == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_name is required",
		})
		return
	}

	team := &domain.Team{
		Name:        req.TeamName,
		Description: req.Description,
	}
	createdTeam, err := h.teamService.CreateTeam(r.Context(), actor, team)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateTeamResponse{
		Team: domainTeamToHTTP(createdTeam),
	})
}

func (h *Handler) GetTeam(w http.ResponseWriter, r *http.Request) {
	teamName := r.URL.Query().Get("team_name")
	if teamName == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_name parameter is required",
		})
		return
	}

	team, err := h.teamService.GetTeam(r.Context(), teamName)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainTeamToHTTP(team))
}

func (h *Handler) AssignLeader(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req AssignLeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.UserID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id is required",
		})
		return
	}

	result, err := h.teamService.ApplySlotOperation(r.Context(), actor, req.TeamID, domain.AssignLeaderOp{UserID: req.UserID})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeSlotOperationResponse(w, result.Team)
}

func (h *Handler) RemoveLeader(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req RemoveLeaderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	result, err := h.teamService.ApplySlotOperation(r.Context(), actor, req.TeamID, domain.RemoveLeaderOp{})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeSlotOperationResponse(w, result.Team)
}

func (h *Handler) AddMember(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req AddMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.UserID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id is required",
		})
		return
	}

	result, err := h.teamService.ApplySlotOperation(r.Context(), actor, req.TeamID, domain.AddMemberOp{UserID: req.UserID})
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(AddMemberResponse{
		Team:   domainTeamToHTTP(result.Team),
		SlotID: result.SlotID,
	})
}

func (h *Handler) RemoveMember(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req RemoveMemberRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.UserID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id is required",
		})
		return
	}

	result, err := h.teamService.ApplySlotOperation(r.Context(), actor, req.TeamID, domain.RemoveMemberOp{UserID: req.UserID})
	if err != nil {
		h.handleError(w, err)
		return
	}

	h.writeSlotOperationResponse(w, result.Team)
}

func (h *Handler) DeleteTeam(w http.ResponseWriter, r *http.Request) {
	actor, err := actorFromRequest(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	var req DeleteTeamRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}

	if err := h.teamService.DeleteTeam(r.Context(), actor, req.TeamID); err != nil {
		h.handleError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) writeSlotOperationResponse(w http.ResponseWriter, team *domain.Team) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SlotOperationResponse{
		Team: domainTeamToHTTP(team),
	})
}

func teamIDFromQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get("team_id")
	if raw == "" {
		return 0, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_id parameter is required",
		}
	}

	teamID, err := strconv.Atoi(raw)
	if err != nil {
		return 0, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "team_id must be an integer",
		}
	}

	return teamID, nil
}
