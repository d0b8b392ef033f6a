package services

import (
	"context"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
)

// LedgerWriterSvc records the append-only events that move a client's balance.
type LedgerWriterSvc interface {
	RecordDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error)
	RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error)
}

type LedgerReaderSvc interface {
	ListDebts(ctx context.Context, clientID string) ([]domain.Debt, error)

	// ListPayments returns a page of payments and the token for the next page, if any.
	ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, *string, error)
}

type LedgerSvcFacade interface {
	LedgerWriterSvc
	LedgerReaderSvc
}
