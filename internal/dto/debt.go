package dto

import (
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateDebtRequest is the body of POST /debts.
type CreateDebtRequest struct {
	ClientID    string  `json:"clientId"`
	CreatedBy   string  `json:"createdBy"`
	Amount      Amount  `json:"amount" swaggertype:"number"`
	Title       *string `json:"title"`
	Description *string `json:"description"`
}

type DebtResponse struct {
	DebtID      string          `json:"id"`
	ClientID    string          `json:"clientId"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	IsPaid      bool            `json:"isPaid"`
}

func ToDebtResponse(d *domain.Debt) DebtResponse {
	return DebtResponse{
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

// ListDebtsParams filters GET /debts.
type ListDebtsParams struct {
	ClientID string `form:"clientId"`
}

type ListDebtsResponse struct {
	Debts []DebtResponse `json:"debts"`
}

func ToListDebtsResponse(debts []domain.Debt) ListDebtsResponse {
	out := make([]DebtResponse, len(debts))
	for i := range debts {
		out[i] = ToDebtResponse(&debts[i])
	}
	return ListDebtsResponse{Debts: out}
}
