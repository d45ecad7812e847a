package handler

import (
	"encoding/json"
	"net/http"

	"github.com/bagdasarian/team-roster/internal/domain"
)

func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req CreateUserRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.handleError(w, err)
		return
	}
	if req.UserID == "" || req.Username == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id and username are required",
		})
		return
	}

	user := &domain.User{
		ID:       req.UserID,
		Username: req.Username,
		Role:     domain.Role(req.Role),
		IsActive: req.IsActive,
	}
	createdUser, err := h.userService.CreateUser(r.Context(), user)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(CreateUserResponse{
		User: domainUserToHTTP(createdUser),
	})
}

func (h *Handler) GetUser(w http.ResponseWriter, r *http.Request) {
	userID := r.URL.Query().Get("user_id")
	if userID == "" {
		h.handleError(w, &domain.DomainError{
			Code:    "BAD_REQUEST",
			Message: "user_id parameter is required",
		})
		return
	}

	user, err := h.userService.GetUser(r.Context(), userID)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(domainUserToHTTP(user))
}

func (h *Handler) SetIsActive(w http.ResponseWriter, r *http.Request) {
	var req SetIsActiveRequest
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

	user, err := h.userService.SetIsActive(r.Context(), req.UserID, req.IsActive)
	if err != nil {
		h.handleError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(SetIsActiveResponse{
		User: domainUserToHTTP(user),
	})
}
