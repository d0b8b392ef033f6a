package accounting

import (
	"testing"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestApplyPayment_ClampsAtZero(t *testing.T) {
	tests := []struct {
		name    string
		balance string
		amount  string
		want    string
	}{
		{name: "partial payment", balance: "100", amount: "40", want: "60"},
		{name: "exact payment", balance: "100", amount: "100", want: "0"},
		{name: "over payment", balance: "30", amount: "100", want: "0"},
		{name: "payment on zero balance", balance: "0", amount: "10", want: "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ApplyPayment(dec(tt.balance), dec(tt.amount))
			assert.True(t, dec(tt.want).Equal(got), "got %s", got)
		})
	}
}

func TestApplyDebt(t *testing.T) {
	assert.True(t, dec("150.25").Equal(ApplyDebt(dec("100"), dec("50.25"))))
}

func TestSums(t *testing.T) {
	debts := []domain.Debt{{Amount: dec("0.1")}, {Amount: dec("0.2")}}
	assert.Equal(t, "0.3", SumDebts(debts).String())

	payments := []domain.Payment{
		{ClientID: "a", Amount: dec("10")},
		{ClientID: "b", Amount: dec("5")},
		{ClientID: "a", Amount: dec("2.5")},
	}
	assert.True(t, dec("17.5").Equal(SumPayments(payments)))

	byClient := PaidByClient(payments)
	assert.True(t, dec("12.5").Equal(byClient["a"]))
	assert.True(t, dec("5").Equal(byClient["b"]))
	assert.True(t, byClient["missing"].IsZero())

	clients := []domain.Client{{TotalDebt: dec("3")}, {TotalDebt: dec("0")}, {TotalDebt: dec("4.5")}}
	assert.True(t, dec("7.5").Equal(SumBalances(clients)))
	assert.True(t, SumDebts(nil).IsZero())
}
