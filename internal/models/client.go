package models

import "github.com/shopspring/decimal"

// Client is the row shape of the clients table.
type Client struct {
	ClientID  string          `db:"client_id"`
	Name      string          `db:"name"`
	Phone     *string         `db:"phone"`   // Nullable
	Email     *string         `db:"email"`   // Nullable
	Address   *string         `db:"address"` // Nullable
	TotalDebt decimal.Decimal `db:"total_debt"`
	Timestamps
}
