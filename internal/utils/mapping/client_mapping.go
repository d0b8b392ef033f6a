package mapping

import (
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/models"
)

// ToModelClient converts a domain Client to a model Client
func ToModelClient(d domain.Client) models.Client {
	return models.Client{
		ClientID:   d.ClientID,
		Name:       d.Name,
		Phone:      d.Phone,
		Email:      d.Email,
		Address:    d.Address,
		TotalDebt:  d.TotalDebt,
		Timestamps: ToModelTimestamps(d.Timestamps),
	}
}

// ToDomainClient converts a model Client to a domain Client
func ToDomainClient(m models.Client) domain.Client {
	return domain.Client{
		ClientID:   m.ClientID,
		Name:       m.Name,
		Phone:      m.Phone,
		Email:      m.Email,
		Address:    m.Address,
		TotalDebt:  m.TotalDebt,
		Timestamps: ToDomainTimestamps(m.Timestamps),
	}
}

func ToDomainClientSlice(ms []models.Client) []domain.Client {
	ds := make([]domain.Client, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainClient(m)
	}
	return ds
}
