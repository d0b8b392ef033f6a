package repositories

import (
	"context"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type DebtReader interface {
	// ListDebts returns debts newest first. An empty clientID lists every debt.
	ListDebts(ctx context.Context, clientID string) ([]domain.Debt, error)
}

type DebtWriter interface {
	// SaveDebt inserts the debt and raises the client's balance by its amount in one transaction.
	// It returns the client's balance after the debt.
	SaveDebt(ctx context.Context, debt domain.Debt) (decimal.Decimal, error)
}

type DebtRepositoryFacade interface {
	DebtReader
	DebtWriter
}
