package services

import (
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies.
// pdf may be nil when PDF export is unavailable.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, pdf PDFGenerator) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	container.Client = NewClientService(repos.ClientRepo)
	container.User = NewUserService(repos.UserRepo)
	container.Ledger = NewLedgerService(repos.DebtRepo, repos.PaymentRepo)
	container.ReportTemplate = NewReportTemplateService(repos.TemplateRepo)

	container.Aggregation = NewAggregationService(
		repos.ClientRepo,
		repos.DebtRepo,
		repos.PaymentRepo,
		repos.UserRepo,
		WithLocation(cfg.Location),
	)

	container.Reporting = NewReportingService(
		container.Aggregation,
		container.ReportTemplate,
		repos.UserRepo,
		pdf,
		cfg.CompanyName,
		WithReportLocation(cfg.Location),
	)

	container.TokenService = NewTokenService(cfg)
	container.GoogleOAuthHandler = NewGoogleOAuthHandlerService(cfg)

	return container
}
