package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Payment struct {
	PaymentID   string          `db:"payment_id"`
	ClientID    string          `db:"client_id"`
	Amount      decimal.Decimal `db:"amount"`
	Description *string         `db:"description"`
	ReceivedBy  string          `db:"received_by"`
	CreatedAt   time.Time       `db:"created_at"`
}
