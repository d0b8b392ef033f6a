package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// ClientReader defines read operations for client data
type ClientReader interface {
	// FindClientByID returns apperrors.ErrNotFound when the client does not exist.
	FindClientByID(ctx context.Context, clientID string) (*domain.Client, error)

	// ListClients returns every client, newest first.
	ListClients(ctx context.Context) ([]domain.Client, error)
}

// ClientWriter defines write operations for client data
type ClientWriter interface {
	SaveClient(ctx context.Context, client domain.Client) error

	// UpdateClient writes the contact fields only; the balance column is never touched.
	UpdateClient(ctx context.Context, client domain.Client) error
}

// ClientBalanceManager moves the persisted running balance inside a caller-owned transaction.
type ClientBalanceManager interface {
	// LockClientForUpdate takes a row lock on the client for the life of tx.
	LockClientForUpdate(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error)

	// SetBalanceInTx stores the balance computed while the row lock was held.
	SetBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string, balance decimal.Decimal, at time.Time) error
}

type ClientRepositoryFacade interface {
	ClientReader
	ClientWriter
	ClientBalanceManager
}
