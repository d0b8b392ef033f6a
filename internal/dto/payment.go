package dto

import (
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreatePaymentRequest is the body of POST /payments.
// Notes and Description are aliases; Notes wins when both are sent.
type CreatePaymentRequest struct {
	ClientID    string  `json:"clientId"`
	ReceivedBy  string  `json:"receivedBy"`
	Amount      Amount  `json:"amount" swaggertype:"number"`
	Notes       *string `json:"notes"`
	Description *string `json:"description"`
}

type PaymentResponse struct {
	PaymentID   string          `json:"id"`
	ClientID    string          `json:"clientId"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description"`
	ReceivedBy  string          `json:"receivedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		ClientID:    p.ClientID,
		Amount:      p.Amount,
		Description: p.Description,
		ReceivedBy:  p.ReceivedBy,
		CreatedAt:   p.CreatedAt,
	}
}

// ListPaymentsParams filters GET /payments. A zero Limit returns every payment.
type ListPaymentsParams struct {
	ClientID  string `form:"clientId"`
	Limit     int    `form:"limit" binding:"omitempty,min=1,max=500"`
	NextToken string `form:"nextToken"`
}

type ListPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	NextToken *string           `json:"nextToken,omitempty"`
}

func ToListPaymentsResponse(payments []domain.Payment, nextToken *string) ListPaymentsResponse {
	out := make([]PaymentResponse, len(payments))
	for i := range payments {
		out[i] = ToPaymentResponse(&payments[i])
	}
	return ListPaymentsResponse{Payments: out, NextToken: nextToken}
}
