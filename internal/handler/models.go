package handler

type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CreateTeamRequest struct {
	TeamName    string `json:"team_name"`
	Description string `json:"description"`
}

type MemberSlotResponse struct {
	SlotID   string  `json:"slot_id"`
	HolderID *string `json:"holder_id,omitempty"`
}

type TeamResponse struct {
	TeamID      int                  `json:"team_id"`
	TeamName    string               `json:"team_name"`
	Description string               `json:"description"`
	LeaderID    *string              `json:"leader_id,omitempty"`
	Members     []string             `json:"members"`
	MemberSlots []MemberSlotResponse `json:"member_slots"`
}

type CreateTeamResponse struct {
	Team TeamResponse `json:"team"`
}

type AssignLeaderRequest struct {
	TeamID int    `json:"team_id"`
	UserID string `json:"user_id"`
}

type RemoveLeaderRequest struct {
	TeamID int `json:"team_id"`
}

type AddMemberRequest struct {
	TeamID int    `json:"team_id"`
	UserID string `json:"user_id"`
}

type AddMemberResponse struct {
	Team   TeamResponse `json:"team"`
	SlotID string       `json:"slot_id"`
}

type RemoveMemberRequest struct {
	TeamID int    `json:"team_id"`
	UserID string `json:"user_id"`
}

type DeleteTeamRequest struct {
	TeamID int `json:"team_id"`
}

type SlotOperationResponse struct {
	Team TeamResponse `json:"team"`
}

type HistoryEntryResponse struct {
	UserID       string  `json:"user_id"`
	AssignedAt   string  `json:"assigned_at"`
	UnassignedAt *string `json:"unassigned_at,omitempty"`
	AssignedBy   string  `json:"assigned_by"`
	IsCurrent    bool    `json:"is_current"`
}

type SlotHistoryResponse struct {
	SlotID  string                 `json:"slot_id"`
	History []HistoryEntryResponse `json:"history"`
}

type TeamHistoryResponse struct {
	TeamID      int                    `json:"team_id"`
	Leaders     []HistoryEntryResponse `json:"leaders"`
	MemberSlots []SlotHistoryResponse  `json:"member_slots"`
}

type CreateUserRequest struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
}

type UserResponse struct {
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	IsActive bool   `json:"is_active"`
	TeamID   *int   `json:"team_id,omitempty"`
}

type CreateUserResponse struct {
	User UserResponse `json:"user"`
}

type SetIsActiveRequest struct {
	UserID   string `json:"user_id"`
	IsActive bool   `json:"is_active"`
}

type SetIsActiveResponse struct {
	User UserResponse `json:"user"`
}

type ReportIntervalResponse struct {
	TeamID       int     `json:"team_id"`
	TeamName     string  `json:"team_name"`
	Position     string  `json:"position"`
	SlotID       string  `json:"slot_id,omitempty"`
	AssignedAt   string  `json:"assigned_at"`
	UnassignedAt *string `json:"unassigned_at,omitempty"`
	AssignedBy   string  `json:"assigned_by"`
	IsCurrent    bool    `json:"is_current"`
	TenureDays   float64 `json:"tenure_days"`
}

type ReportStatsResponse struct {
	TotalTeams          int     `json:"total_teams"`
	LeadershipIntervals int     `json:"leadership_intervals"`
	MembershipIntervals int     `json:"membership_intervals"`
	TotalTenureDays     float64 `json:"total_tenure_days"`
	AvgIntervalDays     float64 `json:"avg_interval_days"`
}

type UserHistoryResponse struct {
	UserID   string                   `json:"user_id"`
	Timeline []ReportIntervalResponse `json:"timeline"`
	Stats    ReportStatsResponse      `json:"stats"`
}
