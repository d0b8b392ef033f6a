package dto

import (
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateClientRequest is the body of POST /clients. Name is checked by the service
// so that a blank name is reported as NAME_REQUIRED.
type CreateClientRequest struct {
	Name    string  `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

// UpdateClientRequest carries the editable fields of a client. Omitted fields are left unchanged.
// The running balance is intentionally absent: it only moves through debts and payments.
type UpdateClientRequest struct {
	Name    *string `json:"name"`
	Phone   *string `json:"phone"`
	Email   *string `json:"email" binding:"omitempty,email"`
	Address *string `json:"address"`
}

type ClientResponse struct {
	ClientID  string          `json:"id"`
	Name      string          `json:"name"`
	Phone     *string         `json:"phone"`
	Email     *string         `json:"email"`
	Address   *string         `json:"address"`
	TotalDebt decimal.Decimal `json:"totalDebt"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

func ToClientResponse(c *domain.Client) ClientResponse {
	return ClientResponse{
		ClientID:  c.ClientID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Address:   c.Address,
		TotalDebt: c.TotalDebt,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}

type ListClientsResponse struct {
	Clients []ClientResponse `json:"clients"`
}

func ToListClientsResponse(clients []domain.Client) ListClientsResponse {
	out := make([]ClientResponse, len(clients))
	for i := range clients {
		out[i] = ToClientResponse(&clients[i])
	}
	return ListClientsResponse{Clients: out}
}
