package accounting

import (
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ApplyDebt returns the running balance after a debt of amount is recorded.
func ApplyDebt(balance, amount decimal.Decimal) decimal.Decimal {
	return balance.Add(amount)
}

// ApplyPayment returns the running balance after a payment of amount is received.
// The balance is clamped at zero; any excess is discarded.
func ApplyPayment(balance, amount decimal.Decimal) decimal.Decimal {
	next := balance.Sub(amount)
	if next.IsNegative() {
		return decimal.Zero
	}
	return next
}

// SumDebts adds up the amounts of debts.
func SumDebts(debts []domain.Debt) decimal.Decimal {
	total := decimal.Zero
	for _, d := range debts {
		total = total.Add(d.Amount)
	}
	return total
}

// SumPayments adds up the amounts of payments.
func SumPayments(payments []domain.Payment) decimal.Decimal {
	total := decimal.Zero
	for _, p := range payments {
		total = total.Add(p.Amount)
	}
	return total
}

// SumBalances adds up the running balances of clients.
func SumBalances(clients []domain.Client) decimal.Decimal {
	total := decimal.Zero
	for _, c := range clients {
		total = total.Add(c.TotalDebt)
	}
	return total
}

// PaidByClient groups payment totals by client id.
func PaidByClient(payments []domain.Payment) map[string]decimal.Decimal {
	paid := make(map[string]decimal.Decimal)
	for _, p := range payments {
		paid[p.ClientID] = paid[p.ClientID].Add(p.Amount)
	}
	return paid
}
