package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is an append-only record of money received from a client.
type Payment struct {
	PaymentID   string          `json:"id"`
	ClientID    string          `json:"clientId"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	ReceivedBy  string          `json:"receivedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// PaymentFilter narrows a payment listing. A zero Limit means no limit.
type PaymentFilter struct {
	ClientID string
	Limit    int
	// Cursor fields of the last row of the previous page.
	AfterCreatedAt *time.Time
	AfterID        string
}
