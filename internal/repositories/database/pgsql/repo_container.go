package pgsql

import (
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	clientRepo := newPgxClientRepository(dbPool)
	debtRepo := newPgxDebtRepository(dbPool, clientRepo)
	paymentRepo := newPgxPaymentRepository(dbPool, clientRepo)
	userRepo := newPgxUserRepository(dbPool)
	templateRepo := newPgxReportTemplateRepository(dbPool)

	return portsrepo.RepositoryProvider{
		ClientRepo:   clientRepo,
		DebtRepo:     debtRepo,
		PaymentRepo:  paymentRepo,
		UserRepo:     userRepo,
		TemplateRepo: templateRepo,
	}
}
