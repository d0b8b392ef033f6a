package repositories

import (
	"context"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

type PaymentReader interface {
	// ListPayments returns payments newest first, honouring the filter's client, limit and cursor.
	// The returned token is non-nil when more rows follow the page.
	ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, *string, error)
}

type PaymentWriter interface {
	// SavePayment inserts the payment and lowers the client's balance, never below zero, in one transaction.
	// It returns the client's balance after the payment.
	SavePayment(ctx context.Context, payment domain.Payment) (decimal.Decimal, error)
}

type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentWriter
}
