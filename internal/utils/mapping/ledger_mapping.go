package mapping

import (
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/models"
)

func ToModelDebt(d domain.Debt) models.Debt {
	return models.Debt{
		DebtID:      d.DebtID,
		ClientID:    d.ClientID,
		Title:       d.Title,
		Amount:      d.Amount,
		Description: d.Description,
		CreatedBy:   d.CreatedBy,
		CreatedAt:   d.CreatedAt,
		IsPaid:      d.IsPaid,
	}
}

func ToDomainDebt(m models.Debt) domain.Debt {
	return domain.Debt{
		DebtID:      m.DebtID,
		ClientID:    m.ClientID,
		Title:       m.Title,
		Amount:      m.Amount,
		Description: m.Description,
		CreatedBy:   m.CreatedBy,
		CreatedAt:   m.CreatedAt,
		IsPaid:      m.IsPaid,
	}
}

func ToDomainDebtSlice(ms []models.Debt) []domain.Debt {
	ds := make([]domain.Debt, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainDebt(m)
	}
	return ds
}

func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		ClientID:    d.ClientID,
		Amount:      d.Amount,
		Description: d.Description,
		ReceivedBy:  d.ReceivedBy,
		CreatedAt:   d.CreatedAt,
	}
}

func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		ClientID:    m.ClientID,
		Amount:      m.Amount,
		Description: m.Description,
		ReceivedBy:  m.ReceivedBy,
		CreatedAt:   m.CreatedAt,
	}
}

func ToDomainPaymentSlice(ms []models.Payment) []domain.Payment {
	ds := make([]domain.Payment, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainPayment(m)
	}
	return ds
}
