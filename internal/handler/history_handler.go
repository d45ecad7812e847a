package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-roster/internal/domain"
)

func (h *Handler) GetTeamHistory(w http.ResponseWriter, r *http.Request) {
	teamID, err := teamIDFromQuery(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	history, err := h.teamService.GetTeamHistory(r.Context(), teamID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(teamHistoryToHTTP(teamID, history))
}

func (h *Handler) GetSlotHistory(w http.ResponseWriter, r *http.Request) {
	teamID, err := teamIDFromQuery(r)
	if err != nil {
		h.handleError(w, err)
		return
	}

	slotID := r.URL.Query().Get("slot_id")
	if slotID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "slot_id parameter is required",
		})
		return
	}

	history, err := h.teamService.GetSlotHistory(r.Context(), teamID, slotID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SlotHistoryResponse{
		SlotID:  slotID,
		History: historyEntriesToHTTP(history),
	})
}

func (h *Handler) GetUserHistory(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id parameter is required",
		})
		return
	}

	report, err := h.reportService.GetUserHistory(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(userReportToHTTP(report))
}
