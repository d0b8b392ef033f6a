package models

import (
	"time"

	"github.com/shopspring/decimal"
)

type Debt struct {
	DebtID      string          `db:"debt_id"`
	ClientID    string          `db:"client_id"`
	Title       string          `db:"title"`
	Amount      decimal.Decimal `db:"amount"`
	Description *string         `db:"description"`
	CreatedBy   string          `db:"created_by"`
	CreatedAt   time.Time       `db:"created_at"`
	IsPaid      bool            `db:"is_paid"`
}
