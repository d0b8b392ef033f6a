package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/SscSPs/debt_tracker_app/internal/platform/metrics"
	"github.com/SscSPs/debt_tracker_app/internal/utils"
	"github.com/SscSPs/debt_tracker_app/internal/utils/pagination"
	"github.com/google/uuid"
)

// ledgerService records debts and payments. The repositories apply the
// balance change in the same transaction as the insert.
type ledgerService struct {
	BaseService
	debtRepo    portsrepo.DebtRepositoryFacade
	paymentRepo portsrepo.PaymentRepositoryFacade
	now         func() time.Time
}

// LedgerOption configures the ledger service.
type LedgerOption func(*ledgerService)

// WithLedgerClock overrides the time source used to stamp new records.
func WithLedgerClock(now func() time.Time) LedgerOption {
	return func(s *ledgerService) {
		s.now = now
	}
}

func NewLedgerService(debtRepo portsrepo.DebtRepositoryFacade, paymentRepo portsrepo.PaymentRepositoryFacade, opts ...LedgerOption) portssvc.LedgerSvcFacade {
	s := &ledgerService{
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
		now:         systemClock,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

func invalidAmount() *apperrors.AppError {
	return apperrors.NewValidationError(apperrors.CodeInvalidAmount, "amount must be a positive number", "amount")
}

func (s *ledgerService) RecordDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	clientID := strings.TrimSpace(req.ClientID)
	createdBy := strings.TrimSpace(req.CreatedBy)
	if clientID == "" || createdBy == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingFields, "clientId and createdBy are required", "clientId", "createdBy")
	}

	amount, err := utils.ParseAmount(req.Amount.String())
	if err != nil {
		return nil, invalidAmount()
	}

	title := domain.DefaultDebtTitle
	if t := trimmedOrNil(req.Title); t != nil {
		title = *t
	}

	debt := domain.Debt{
		DebtID:      uuid.NewString(),
		ClientID:    clientID,
		Title:       title,
		Amount:      amount,
		Description: trimmedOrNil(req.Description),
		CreatedBy:   createdBy,
		CreatedAt:   s.now(),
		IsPaid:      false,
	}

	balance, err := s.debtRepo.SaveDebt(ctx, debt)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to record debt", slog.String("client_id", clientID))
		return nil, err
	}

	metrics.RecordLedgerEvent(metrics.KindDebt, amount)
	s.LogInfo(ctx, "Debt recorded",
		slog.String("debt_id", debt.DebtID),
		slog.String("client_id", clientID),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("balance", balance.StringFixed(2)))
	return &debt, nil
}

// RecordPayment validates clientId, then amount, then receivedBy, reporting the first failure.
func (s *ledgerService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	clientID := strings.TrimSpace(req.ClientID)
	if clientID == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingField, "clientId is required", "clientId")
	}

	amount, err := utils.ParseAmount(req.Amount.String())
	if err != nil {
		return nil, invalidAmount()
	}

	receivedBy := strings.TrimSpace(req.ReceivedBy)
	if receivedBy == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingField, "receivedBy is required", "receivedBy")
	}

	note := req.Notes
	if note == nil {
		note = req.Description
	}

	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		ClientID:    clientID,
		Amount:      amount,
		Description: trimmedOrNil(note),
		ReceivedBy:  receivedBy,
		CreatedAt:   s.now(),
	}

	balance, err := s.paymentRepo.SavePayment(ctx, payment)
	if err != nil {
		s.logUnexpected(ctx, err, "Failed to record payment", slog.String("client_id", clientID))
		return nil, err
	}

	metrics.RecordLedgerEvent(metrics.KindPayment, amount)
	s.LogInfo(ctx, "Payment recorded",
		slog.String("payment_id", payment.PaymentID),
		slog.String("client_id", clientID),
		slog.String("amount", amount.StringFixed(2)),
		slog.String("balance", balance.StringFixed(2)))
	return &payment, nil
}

func (s *ledgerService) ListDebts(ctx context.Context, clientID string) ([]domain.Debt, error) {
	debts, err := s.debtRepo.ListDebts(ctx, strings.TrimSpace(clientID))
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts from repository")
		return nil, err
	}
	return debts, nil
}

func (s *ledgerService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	filter := domain.PaymentFilter{
		ClientID: strings.TrimSpace(params.ClientID),
		Limit:    params.Limit,
	}
	if params.NextToken != "" {
		if params.Limit <= 0 {
			return nil, nil, apperrors.NewValidationError(apperrors.CodeInvalidCursor, "nextToken requires limit", "limit")
		}
		createdAt, id, err := pagination.DecodeCursor(params.NextToken)
		if err != nil {
			return nil, nil, apperrors.NewValidationError(apperrors.CodeInvalidCursor, "invalid nextToken", "nextToken")
		}
		filter.AfterCreatedAt = &createdAt
		filter.AfterID = id
	}

	payments, nextToken, err := s.paymentRepo.ListPayments(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments from repository")
		return nil, nil, err
	}
	return payments, nextToken, nil
}
