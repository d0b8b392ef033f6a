package domain

import "github.com/shopspring/decimal"

// Client is a person or business that owes money.
// TotalDebt is the running balance maintained by the ledger and never goes below zero.
type Client struct {
	ClientID  string          `json:"id"`
	Name      string          `json:"name"`
	Phone     *string         `json:"phone,omitempty"`
	Email     *string         `json:"email,omitempty"`
	Address   *string         `json:"address,omitempty"`
	TotalDebt decimal.Decimal `json:"totalDebt"`
	Timestamps
}

// HasOutstandingBalance reports whether the client currently owes anything.
func (c Client) HasOutstandingBalance() bool {
	return c.TotalDebt.IsPositive()
}
