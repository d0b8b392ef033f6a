package template

import (
	"time"

	"github.com/shopspring/decimal"
)

// Mode selects the conditional block that survives rendering.
type Mode string

const (
	ModeGeneral Mode = "general"
	ModeClient  Mode = "client"
)

// blockTag is the suffix used by the {{#IF_<TAG>}} delimiters of a mode.
func (m Mode) blockTag() string {
	switch m {
	case ModeGeneral:
		return "GENERAL"
	case ModeClient:
		return "CLIENT"
	default:
		return ""
	}
}

// Data is everything a template may reference. Zero values render as empty text.
type Data struct {
	CompanyName string
	UserName    string
	ReportDate  time.Time
	GeneratedAt time.Time

	General GeneralSection
	Client  ClientSection
}

// GeneralSection feeds the tokens of the general report.
type GeneralSection struct {
	TotalClients int
	TotalDebt    decimal.Decimal
	TotalPaid    decimal.Decimal
	Rows         []GeneralRow
}

// GeneralRow is one client line of the general report.
type GeneralRow struct {
	ClientName string
	Debt       decimal.Decimal
	Paid       decimal.Decimal
	Balance    decimal.Decimal
}

// ClientSection feeds the tokens of a single-client report.
type ClientSection struct {
	Name      string
	DebtTotal decimal.Decimal
	PaidTotal decimal.Decimal
	Balance   decimal.Decimal
	Debts     []DebtRow
	Payments  []PaymentRow
}

type DebtRow struct {
	Title     string
	Amount    decimal.Decimal
	CreatedAt time.Time
}

type PaymentRow struct {
	Description string
	Amount      decimal.Decimal
	CreatedAt   time.Time
}
