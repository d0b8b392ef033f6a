package dto

import (
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
)

// CreateUserRequest is the body of POST /users. Required fields are checked by
// the service so that any gap is reported as VALIDATION_ERROR.
type CreateUserRequest struct {
	Name     string   `json:"name"`
	Phone    *string  `json:"phone"`
	Email    string   `json:"email" binding:"omitempty,email"`
	Password string   `json:"password"`
	Roles    []string `json:"roles" binding:"omitempty,dive,role"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Email string `form:"email"`
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUserResponse converts a slice of domain.User to ListUsersResponse DTO
func ToListUserResponse(users []domain.User) ListUsersResponse {
	userResponses := make([]UserResponse, len(users))
	for i := range users {
		userResponses[i] = ToUserResponse(&users[i])
	}
	return ListUsersResponse{
		Users: userResponses,
	}
}
