package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// DefaultDebtTitle is used when a debt is recorded without a title.
const DefaultDebtTitle = "Deuda"

// Debt is an append-only record of money lent to a client.
// IsPaid is kept for schema compatibility and is never transitioned.
type Debt struct {
	DebtID      string          `json:"id"`
	ClientID    string          `json:"clientId"`
	Title       string          `json:"title"`
	Amount      decimal.Decimal `json:"amount"`
	Description *string         `json:"description,omitempty"`
	CreatedBy   string          `json:"createdBy"`
	CreatedAt   time.Time       `json:"createdAt"`
	IsPaid      bool            `json:"isPaid"`
}
