package pgsql

import (
	"context"
	"fmt"
	"strconv"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_tracker_app/internal/models"
	"github.com/SscSPs/debt_tracker_app/internal/utils"
	"github.com/SscSPs/debt_tracker_app/internal/utils/accounting"
	"github.com/SscSPs/debt_tracker_app/internal/utils/mapping"
	"github.com/SscSPs/debt_tracker_app/internal/utils/pagination"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxPaymentRepository struct {
	BaseRepository
	clientRepo portsrepo.ClientBalanceManager
}

func newPgxPaymentRepository(pool *pgxpool.Pool, clientRepo portsrepo.ClientBalanceManager) portsrepo.PaymentRepositoryFacade {
	return &PgxPaymentRepository{
		BaseRepository: BaseRepository{Pool: pool},
		clientRepo:     clientRepo,
	}
}

var _ portsrepo.PaymentRepositoryFacade = (*PgxPaymentRepository)(nil)

// SavePayment locks the client row, inserts the payment and lowers the balance in one transaction.
// Any excess over the current balance is discarded by the floor at zero.
func (r *PgxPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	client, err := r.clientRepo.LockClientForUpdate(ctx, tx, payment.ClientID)
	if err != nil {
		return decimal.Zero, err
	}

	m := mapping.ToModelPayment(payment)
	balance := accounting.ApplyPayment(client.TotalDebt, m.Amount)
	if m.Amount.GreaterThan(utils.MaxAmount) || balance.GreaterThan(utils.MaxAmount) {
		return decimal.Zero, errAmountOutOfRange()
	}

	query := `
		INSERT INTO payments (payment_id, client_id, amount, description, received_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6);
	`
	_, err = tx.Exec(ctx, query,
		m.PaymentID,
		m.ClientID,
		m.Amount,
		m.Description,
		m.ReceivedBy,
		m.CreatedAt,
	)
	if err != nil {
		if rangeErr := amountRangeError(err); rangeErr != nil {
			return decimal.Zero, rangeErr
		}
		if code, constraint := pgErrorCode(err); code == pgForeignKeyViolation && constraint == "fk_payments_received_by" {
			return decimal.Zero, apperrors.NewNotFoundError(apperrors.CodeUserNotFound, "user not found")
		}
		return decimal.Zero, fmt.Errorf("failed to insert payment %s: %w", m.PaymentID, err)
	}

	if err := r.clientRepo.SetBalanceInTx(ctx, tx, m.ClientID, balance, m.CreatedAt); err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

// ListPayments pages newest first on (created_at, payment_id).
// One extra row is fetched to tell whether another page exists.
func (r *PgxPaymentRepository) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, *string, error) {
	query := `
		SELECT payment_id, client_id, amount, description, received_by, created_at
		FROM payments
		WHERE ($1::text = '' OR client_id = $1)
	`
	args := []any{filter.ClientID}

	if filter.AfterCreatedAt != nil {
		args = append(args, *filter.AfterCreatedAt, filter.AfterID)
		query += ` AND (created_at, payment_id) < ($2, $3)`
	}
	query += ` ORDER BY created_at DESC, payment_id DESC`
	if filter.Limit > 0 {
		args = append(args, filter.Limit+1)
		query += ` LIMIT $` + strconv.Itoa(len(args))
	}

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	modelPayments := []models.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(
			&m.PaymentID,
			&m.ClientID,
			&m.Amount,
			&m.Description,
			&m.ReceivedBy,
			&m.CreatedAt,
		); err != nil {
			return nil, nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		modelPayments = append(modelPayments, m)
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("error iterating payment rows: %w", err)
	}

	var nextToken *string
	if filter.Limit > 0 && len(modelPayments) > filter.Limit {
		modelPayments = modelPayments[:filter.Limit]
		last := modelPayments[filter.Limit-1]
		token := pagination.EncodeCursor(last.CreatedAt, last.PaymentID)
		nextToken = &token
	}

	return mapping.ToDomainPaymentSlice(modelPayments), nextToken, nil
}
