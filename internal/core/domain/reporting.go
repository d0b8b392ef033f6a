package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecentPayment is a payment enriched with the names of its client and recording user.
type RecentPayment struct {
	PaymentID  string          `json:"id"`
	Amount     decimal.Decimal `json:"amount"`
	CreatedAt  time.Time       `json:"createdAt"`
	Notes      *string         `json:"notes,omitempty"`
	ClientName string          `json:"clientName"`
	UserName   string          `json:"userName"`
}

// DashboardSummary holds the headline figures of the back office.
type DashboardSummary struct {
	TotalClients   int             `json:"totalClients"`
	TotalDebt      decimal.Decimal `json:"totalDebt"`
	TotalPaid      decimal.Decimal `json:"totalPaid"`
	PaymentsToday  decimal.Decimal `json:"paymentsToday"`
	RecentPayments []RecentPayment `json:"recentPayments"`
}

// ChartPoint is one day of the payments chart.
type ChartPoint struct {
	Date          string          `json:"date"`
	Label         string          `json:"label"`
	PaymentCount  int             `json:"paymentCount"`
	PaymentAmount decimal.Decimal `json:"paymentAmount"`
}

// DistributionSlice is one client's share of the outstanding balance.
type DistributionSlice struct {
	Name  string          `json:"name"`
	Value decimal.Decimal `json:"value"`
}

// ClientReport aggregates a single client's history.
// GrossDebtIssued is the sum of all recorded debts, which differs from the
// client's clamped running balance once over-payments have occurred.
type ClientReport struct {
	Client          Client          `json:"client"`
	GrossDebtIssued decimal.Decimal `json:"grossDebtIssued"`
	Paid            decimal.Decimal `json:"paid"`
	Balance         decimal.Decimal `json:"balance"`
	Debts           []Debt          `json:"debts"`
	Payments        []Payment       `json:"payments"`
}

// GeneralReportRow is the per-client line of the general report.
type GeneralReportRow struct {
	Client         Client          `json:"client"`
	CurrentBalance decimal.Decimal `json:"currentBalance"`
	Paid           decimal.Decimal `json:"paid"`
	Balance        decimal.Decimal `json:"balance"`
}

// GeneralReport aggregates every client.
type GeneralReport struct {
	TotalClients int                `json:"totalClients"`
	TotalDebt    decimal.Decimal    `json:"totalDebt"`
	TotalPaid    decimal.Decimal    `json:"totalPaid"`
	Rows         []GeneralReportRow `json:"perClient"`
}

// RenderedReport is the output of rendering a template against live data.
type RenderedReport struct {
	HTML     string `json:"html"`
	FileName string `json:"fileName"`
}
