package dto

import (
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
)

// UserResponse never exposes the password hash.
type UserResponse struct {
	UserID    string        `json:"id"`
	Name      string        `json:"name"`
	Phone     *string       `json:"phone"`
	Email     string        `json:"email"`
	Roles     []domain.Role `json:"roles"`
	CreatedAt time.Time     `json:"createdAt"`
	UpdatedAt time.Time     `json:"updatedAt"`
}

func ToUserResponse(u *domain.User) UserResponse {
	roles := u.Roles
	if roles == nil {
		roles = []domain.Role{}
	}
	return UserResponse{
		UserID:    u.UserID,
		Name:      u.Name,
		Phone:     u.Phone,
		Email:     u.Email,
		Roles:     roles,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}
