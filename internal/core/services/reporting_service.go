package services

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/SscSPs/debt_tracker_app/internal/platform/metrics"
	"github.com/SscSPs/debt_tracker_app/internal/report/document"
	"github.com/SscSPs/debt_tracker_app/internal/report/template"
)

// PDFGenerator turns rendered report HTML into a paginated PDF.
type PDFGenerator interface {
	GeneratePDF(ctx context.Context, html string) ([]byte, error)
}

type reportingService struct {
	BaseService
	totals      portssvc.ReportTotalsSvc
	templates   portssvc.ReportTemplateReaderSvc
	userRepo    portsrepo.UserReader
	pdf         PDFGenerator
	companyName string
	now         func() time.Time
	loc         *time.Location
}

// ReportingOption configures the reporting service.
type ReportingOption func(*reportingService)

func WithReportingClock(now func() time.Time) ReportingOption {
	return func(s *reportingService) {
		s.now = now
	}
}

// WithReportLocation sets the time zone dates are printed in.
func WithReportLocation(loc *time.Location) ReportingOption {
	return func(s *reportingService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewReportingService(
	totals portssvc.ReportTotalsSvc,
	templates portssvc.ReportTemplateReaderSvc,
	userRepo portsrepo.UserReader,
	pdf PDFGenerator,
	companyName string,
	opts ...ReportingOption,
) portssvc.ReportingSvcFacade {
	s := &reportingService{
		totals:      totals,
		templates:   templates,
		userRepo:    userRepo,
		pdf:         pdf,
		companyName: companyName,
		now:         systemClock,
		loc:         time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

func (s *reportingService) RenderHTML(ctx context.Context, req dto.RenderReportRequest, userID string) (*domain.RenderedReport, error) {
	rendered, err := s.render(ctx, req, userID)
	if err != nil {
		return nil, err
	}
	metrics.RecordReport("html", string(req.Mode))
	return rendered, nil
}

func (s *reportingService) RenderPDF(ctx context.Context, req dto.RenderReportRequest, userID string) ([]byte, string, error) {
	rendered, err := s.render(ctx, req, userID)
	if err != nil {
		return nil, "", err
	}
	if s.pdf == nil {
		return nil, "", apperrors.NewRenderError("pdf rendering is not available", nil)
	}

	pdf, err := s.pdf.GeneratePDF(ctx, rendered.HTML)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate report PDF", slog.String("mode", string(req.Mode)))
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, "", apperrors.NewGatewayTimeoutError("report rendering timed out")
		}
		return nil, "", apperrors.NewRenderError("failed to generate report", err)
	}

	metrics.RecordReport("pdf", string(req.Mode))
	s.LogInfo(ctx, "Report PDF generated",
		slog.String("file_name", rendered.FileName),
		slog.Int("bytes", len(pdf)))
	return pdf, rendered.FileName, nil
}

func (s *reportingService) render(ctx context.Context, req dto.RenderReportRequest, userID string) (*domain.RenderedReport, error) {
	if !req.Mode.IsValid() {
		return nil, apperrors.NewValidationError(apperrors.CodeInvalidMode, "mode must be general or client", "mode")
	}
	if req.Mode == domain.ReportModeClient && req.ClientID == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeMissingField, "clientId is required", "clientId")
	}

	tmpl, err := s.templates.GetTemplate(ctx, req.TemplateID)
	if err != nil {
		return nil, err
	}

	now := s.now().In(s.loc)
	data := template.Data{
		CompanyName: s.companyName,
		UserName:    s.userName(ctx, userID),
		ReportDate:  now,
		GeneratedAt: now,
	}

	clientName := ""
	switch req.Mode {
	case domain.ReportModeGeneral:
		report, err := s.totals.GeneralReportTotals(ctx)
		if err != nil {
			return nil, err
		}
		data.General = s.generalSection(report)
	case domain.ReportModeClient:
		report, err := s.totals.ClientReportTotals(ctx, req.ClientID)
		if err != nil {
			return nil, err
		}
		data.Client = s.clientSection(report)
		clientName = report.Client.Name
	}

	return &domain.RenderedReport{
		HTML:     template.Render(tmpl.Content, template.Mode(req.Mode), data),
		FileName: document.FileName(clientName, now),
	}, nil
}

// userName falls back to an empty name; a report is still useful without it.
func (s *reportingService) userName(ctx context.Context, userID string) string {
	if userID == "" {
		return ""
	}
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.GetLogger(ctx).Warn("Failed to resolve report author", slog.String("error", err.Error()))
		}
		return ""
	}
	return user.Name
}

func (s *reportingService) generalSection(r *domain.GeneralReport) template.GeneralSection {
	rows := make([]template.GeneralRow, len(r.Rows))
	for i, row := range r.Rows {
		rows[i] = template.GeneralRow{
			ClientName: row.Client.Name,
			Debt:       row.CurrentBalance,
			Paid:       row.Paid,
			Balance:    row.Balance,
		}
	}
	return template.GeneralSection{
		TotalClients: r.TotalClients,
		TotalDebt:    r.TotalDebt,
		TotalPaid:    r.TotalPaid,
		Rows:         rows,
	}
}

func (s *reportingService) clientSection(r *domain.ClientReport) template.ClientSection {
	debts := make([]template.DebtRow, len(r.Debts))
	for i, d := range r.Debts {
		debts[i] = template.DebtRow{Title: d.Title, Amount: d.Amount, CreatedAt: d.CreatedAt.In(s.loc)}
	}
	payments := make([]template.PaymentRow, len(r.Payments))
	for i, p := range r.Payments {
		description := ""
		if p.Description != nil {
			description = *p.Description
		}
		payments[i] = template.PaymentRow{Description: description, Amount: p.Amount, CreatedAt: p.CreatedAt.In(s.loc)}
	}
	return template.ClientSection{
		Name:      r.Client.Name,
		DebtTotal: r.GrossDebtIssued,
		PaidTotal: r.Paid,
		Balance:   r.Balance,
		Debts:     debts,
		Payments:  payments,
	}
}
