package mapping

import (
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	roles := make([]string, len(d.Roles))
	for i, r := range d.Roles {
		roles[i] = string(r)
	}
	return models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Phone:        d.Phone,
		Email:        d.Email,
		PasswordHash: d.PasswordHash,
		Roles:        roles,
		Timestamps:   ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainUser converts a model User to a domain User.
// Unknown role strings left over in storage are dropped.
func ToDomainUser(m models.User) domain.User {
	roles := make([]domain.Role, 0, len(m.Roles))
	for _, r := range m.Roles {
		if role := domain.Role(r); role.IsValid() {
			roles = append(roles, role)
		}
	}
	return domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Phone:        m.Phone,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Roles:        roles,
		Timestamps:   ToDomainTimestamps(m.Timestamps),
	}
}

// ToDomainUserSlice converts a slice of model Users to a slice of domain Users
func ToDomainUserSlice(ms []models.User) []domain.User {
	ds := make([]domain.User, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainUser(m)
	}
	return ds
}
