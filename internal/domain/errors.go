package domain

import "fmt"

type DomainError struct {
	Code    string
	Message string
}

func (e *DomainError) Error() string {
	return e.Message
}

// Это позволяет использовать errors.Is()
func (e *DomainError) Is(target error) bool {
	if t, ok := target.(*DomainError); ok {
		return e.Code == t.Code
	}
	return false
}

var (
	// ErrTeamExists - команда уже существует
	ErrTeamExists = &DomainError{
		Code:    "TEAM_EXISTS",
		Message: "team_name already exists",
	}

	// ErrUserExists - пользователь с таким id уже существует
	ErrUserExists = &DomainError{
		Code:    "USER_EXISTS",
		Message: "user_id already exists",
	}

	// ErrAlreadyMember - пользователь уже занимает слот в этой команде
	ErrAlreadyMember = &DomainError{
		Code:    "ALREADY_MEMBER",
		Message: "user already belongs to this team",
	}

	// ErrNotMember - пользователь не занимает ни одного слота в команде
	ErrNotMember = &DomainError{
		Code:    "NOT_MEMBER",
		Message: "user does not hold a slot in this team",
	}

	// ErrUserInactive - нельзя назначать неактивного пользователя
	ErrUserInactive = &DomainError{
		Code:    "USER_INACTIVE",
		Message: "user is not active",
	}

	// ErrForbidden - у актора недостаточно прав на операцию
	ErrForbidden = &DomainError{
		Code:    "FORBIDDEN",
		Message: "operation requires admin role",
	}

	// ErrUnauthorized - запрос без идентификации актора
	ErrUnauthorized = &DomainError{
		Code:    "UNAUTHORIZED",
		Message: "acting user identity is required",
	}

	// ErrVersionConflict - конкурентное изменение команды, версия устарела
	ErrVersionConflict = &DomainError{
		Code:    "VERSION_CONFLICT",
		Message: "team was modified concurrently, try again",
	}

	// ErrNotFound - ресурс не найден
	ErrNotFound = &DomainError{
		Code:    "NOT_FOUND",
		Message: "resource not found",
	}
)

// NewNotFoundError создает ошибку NOT_FOUND с дополнительным контекстом
func NewNotFoundError(resource string) *DomainError {
	return &DomainError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
	}
}
