package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_tracker_app/internal/models"
	"github.com/SscSPs/debt_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const clientColumns = `client_id, name, phone, email, address, total_debt, created_at, updated_at`

type PgxClientRepository struct {
	BaseRepository
}

func newPgxClientRepository(pool *pgxpool.Pool) portsrepo.ClientRepositoryFacade {
	return &PgxClientRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ClientRepositoryFacade = (*PgxClientRepository)(nil)

func scanClient(row pgx.Row) (models.Client, error) {
	var m models.Client
	err := row.Scan(
		&m.ClientID,
		&m.Name,
		&m.Phone,
		&m.Email,
		&m.Address,
		&m.TotalDebt,
		&m.CreatedAt,
		&m.UpdatedAt,
	)
	return m, err
}

func (r *PgxClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		INSERT INTO clients (` + clientColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.ClientID,
		m.Name,
		m.Phone,
		m.Email,
		m.Address,
		m.TotalDebt,
		m.CreatedAt,
		m.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to save client %s: %w", m.ClientID, err)
	}
	return nil
}

func (r *PgxClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1;`
	m, err := scanClient(r.Pool.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find client by ID %s: %w", clientID, err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}

func (r *PgxClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY created_at DESC, client_id DESC;`
	rows, err := r.Pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query clients: %w", err)
	}
	defer rows.Close()

	modelClients := []models.Client{}
	for rows.Next() {
		m, err := scanClient(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan client row: %w", err)
		}
		modelClients = append(modelClients, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating client rows: %w", err)
	}
	return mapping.ToDomainClientSlice(modelClients), nil
}

func (r *PgxClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	m := mapping.ToModelClient(client)
	query := `
		UPDATE clients
		SET name = $1, phone = $2, email = $3, address = $4, updated_at = $5
		WHERE client_id = $6;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.Name, m.Phone, m.Email, m.Address, m.UpdatedAt, m.ClientID)
	if err != nil {
		return fmt.Errorf("failed to execute update client query: %w", err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("client %s: %w", m.ClientID, apperrors.ErrNotFound)
	}
	return nil
}

// LockClientForUpdate reports a missing client as a CLIENT_NOT_FOUND error so the ledger writes nothing.
func (r *PgxClientRepository) LockClientForUpdate(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE client_id = $1 FOR UPDATE;`
	m, err := scanClient(tx.QueryRow(ctx, query, clientID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeClientNotFound, "client not found")
		}
		return nil, fmt.Errorf("failed to lock client %s: %w", clientID, err)
	}
	client := mapping.ToDomainClient(m)
	return &client, nil
}

func (r *PgxClientRepository) SetBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string, balance decimal.Decimal, at time.Time) error {
	query := `UPDATE clients SET total_debt = $1, updated_at = $2 WHERE client_id = $3;`
	cmdTag, err := tx.Exec(ctx, query, balance, at, clientID)
	if err != nil {
		if rangeErr := amountRangeError(err); rangeErr != nil {
			return rangeErr
		}
		return fmt.Errorf("failed to update balance of client %s: %w", clientID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.NewNotFoundError(apperrors.CodeClientNotFound, "client not found")
	}
	return nil
}
