package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_tracker_app/internal/models"
	"github.com/SscSPs/debt_tracker_app/internal/utils"
	"github.com/SscSPs/debt_tracker_app/internal/utils/accounting"
	"github.com/SscSPs/debt_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type PgxDebtRepository struct {
	BaseRepository
	clientRepo portsrepo.ClientBalanceManager
}

// newPgxDebtRepository creates a repository for debts. Balance changes go through clientRepo.
func newPgxDebtRepository(pool *pgxpool.Pool, clientRepo portsrepo.ClientBalanceManager) portsrepo.DebtRepositoryFacade {
	return &PgxDebtRepository{
		BaseRepository: BaseRepository{Pool: pool},
		clientRepo:     clientRepo,
	}
}

var _ portsrepo.DebtRepositoryFacade = (*PgxDebtRepository)(nil)

// SaveDebt locks the client row, inserts the debt and raises the balance, all in one transaction.
func (r *PgxDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) (decimal.Decimal, error) {
	tx, err := r.Begin(ctx)
	if err != nil {
		return decimal.Zero, err
	}
	defer r.Rollback(ctx, tx)

	client, err := r.clientRepo.LockClientForUpdate(ctx, tx, debt.ClientID)
	if err != nil {
		return decimal.Zero, err
	}

	m := mapping.ToModelDebt(debt)
	balance := accounting.ApplyDebt(client.TotalDebt, m.Amount)
	if m.Amount.GreaterThan(utils.MaxAmount) || balance.GreaterThan(utils.MaxAmount) {
		return decimal.Zero, errAmountOutOfRange()
	}

	query := `
		INSERT INTO debts (debt_id, client_id, title, amount, description, created_by, created_at, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, query,
		m.DebtID,
		m.ClientID,
		m.Title,
		m.Amount,
		m.Description,
		m.CreatedBy,
		m.CreatedAt,
		m.IsPaid,
	)
	if err != nil {
		if rangeErr := amountRangeError(err); rangeErr != nil {
			return decimal.Zero, rangeErr
		}
		if code, constraint := pgErrorCode(err); code == pgForeignKeyViolation && constraint == "fk_debts_created_by" {
			return decimal.Zero, apperrors.NewNotFoundError(apperrors.CodeUserNotFound, "user not found")
		}
		return decimal.Zero, fmt.Errorf("failed to insert debt %s: %w", m.DebtID, err)
	}

	if err := r.clientRepo.SetBalanceInTx(ctx, tx, m.ClientID, balance, m.CreatedAt); err != nil {
		return decimal.Zero, err
	}

	if err := r.Commit(ctx, tx); err != nil {
		return decimal.Zero, err
	}
	return balance, nil
}

func (r *PgxDebtRepository) ListDebts(ctx context.Context, clientID string) ([]domain.Debt, error) {
	query := `
		SELECT debt_id, client_id, title, amount, description, created_by, created_at, is_paid
		FROM debts
		WHERE ($1::text = '' OR client_id = $1)
		ORDER BY created_at DESC, debt_id DESC;
	`
	rows, err := r.Pool.Query(ctx, query, clientID)
	if err != nil {
		return nil, fmt.Errorf("failed to query debts: %w", err)
	}
	defer rows.Close()

	modelDebts := []models.Debt{}
	for rows.Next() {
		var m models.Debt
		if err := rows.Scan(
			&m.DebtID,
			&m.ClientID,
			&m.Title,
			&m.Amount,
			&m.Description,
			&m.CreatedBy,
			&m.CreatedAt,
			&m.IsPaid,
		); err != nil {
			return nil, fmt.Errorf("failed to scan debt row: %w", err)
		}
		modelDebts = append(modelDebts, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating debt rows: %w", err)
	}
	return mapping.ToDomainDebtSlice(modelDebts), nil
}
