package services_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/core/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type MockReportTotals struct {
	mock.Mock
}

func (m *MockReportTotals) ClientReportTotals(ctx context.Context, clientID string) (*domain.ClientReport, error) {
	args := m.Called(ctx, clientID)
	var r *domain.ClientReport
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.ClientReport)
	}
	return r, args.Error(1)
}

func (m *MockReportTotals) GeneralReportTotals(ctx context.Context) (*domain.GeneralReport, error) {
	args := m.Called(ctx)
	var r *domain.GeneralReport
	if args.Get(0) != nil {
		r = args.Get(0).(*domain.GeneralReport)
	}
	return r, args.Error(1)
}

type MockTemplateReader struct {
	mock.Mock
}

func (m *MockTemplateReader) GetTemplate(ctx context.Context, templateID string) (*domain.ReportTemplate, error) {
	args := m.Called(ctx, templateID)
	var t *domain.ReportTemplate
	if args.Get(0) != nil {
		t = args.Get(0).(*domain.ReportTemplate)
	}
	return t, args.Error(1)
}

func (m *MockTemplateReader) ListTemplates(ctx context.Context) ([]domain.ReportTemplate, error) {
	args := m.Called(ctx)
	var t []domain.ReportTemplate
	if args.Get(0) != nil {
		t = args.Get(0).([]domain.ReportTemplate)
	}
	return t, args.Error(1)
}

const testTemplate = "{{COMPANY_NAME}}|{{USER_NAME}}|{{REPORT_DATE}}" +
	"{{#IF_GENERAL}}|G:{{TOTAL_CLIENTS}}:{{TOTAL_DEBT}}{{/IF_GENERAL}}" +
	"{{#IF_CLIENT}}|C:{{CLIENT_NAME}}:{{CLIENT_BALANCE}}{{/IF_CLIENT}}"

type ReportingServiceTestSuite struct {
	suite.Suite
	totals    *MockReportTotals
	templates *MockTemplateReader
	userRepo  *MockUserRepository
	pdf       *MockPDFGenerator
	service   portssvc.ReportingSvcFacade
	ctx       context.Context
}

func (suite *ReportingServiceTestSuite) SetupTest() {
	suite.totals = new(MockReportTotals)
	suite.templates = new(MockTemplateReader)
	suite.userRepo = new(MockUserRepository)
	suite.pdf = new(MockPDFGenerator)
	now := time.Date(2025, 3, 14, 18, 0, 0, 0, time.UTC)
	suite.service = services.NewReportingService(suite.totals, suite.templates, suite.userRepo, suite.pdf, "Acme & Co",
		services.WithReportingClock(func() time.Time { return now }),
		services.WithReportLocation(time.UTC))
	suite.ctx = context.Background()

	suite.templates.On("GetTemplate", mock.Anything, "").
		Return(&domain.ReportTemplate{TemplateID: "default", Content: testTemplate}, nil).Maybe()
}

func TestReportingServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ReportingServiceTestSuite))
}

func (suite *ReportingServiceTestSuite) generalReport() *domain.GeneralReport {
	return &domain.GeneralReport{
		TotalClients: 2,
		TotalDebt:    dec("1234.5"),
		TotalPaid:    dec("10"),
		Rows: []domain.GeneralReportRow{
			{Client: domain.Client{Name: "Ana"}, CurrentBalance: dec("1234.5"), Paid: dec("10"), Balance: dec("1224.5")},
		},
	}
}

func (suite *ReportingServiceTestSuite) TestRenderHTML_General() {
	suite.userRepo.On("FindUserByID", suite.ctx, "u1").Return(&domain.User{UserID: "u1", Name: "Marta"}, nil).Once()
	suite.totals.On("GeneralReportTotals", suite.ctx).Return(suite.generalReport(), nil).Once()

	out, err := suite.service.RenderHTML(suite.ctx, dto.RenderReportRequest{Mode: domain.ReportModeGeneral}, "u1")

	suite.Require().NoError(err)
	suite.Equal("Acme &amp; Co|Marta|14/03/2025|G:2:1,234.5", out.HTML)
	suite.Equal("reporte-general-2025-03-14.pdf", out.FileName)
	suite.totals.AssertNotCalled(suite.T(), "ClientReportTotals", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestRenderHTML_Client() {
	suite.userRepo.On("FindUserByID", suite.ctx, "u1").Return(nil, apperrors.ErrNotFound).Once()
	suite.totals.On("ClientReportTotals", suite.ctx, "c1").Return(&domain.ClientReport{
		Client:          domain.Client{ClientID: "c1", Name: "Ana López"},
		GrossDebtIssued: dec("50"),
		Paid:            dec("70"),
		Balance:         dec("-20"),
	}, nil).Once()

	out, err := suite.service.RenderHTML(suite.ctx, dto.RenderReportRequest{Mode: domain.ReportModeClient, ClientID: "c1"}, "u1")

	suite.Require().NoError(err)
	suite.Equal("Acme &amp; Co||14/03/2025|C:Ana López:-20", out.HTML)
	suite.Equal("reporte-Ana López-2025-03-14.pdf", out.FileName)
}

func (suite *ReportingServiceTestSuite) TestRenderHTML_Validation() {
	_, err := suite.service.RenderHTML(suite.ctx, dto.RenderReportRequest{Mode: "weekly"}, "u1")
	requireAppError(suite.T(), err, apperrors.CodeInvalidMode)

	_, err = suite.service.RenderHTML(suite.ctx, dto.RenderReportRequest{Mode: domain.ReportModeClient}, "u1")
	appErr := requireAppError(suite.T(), err, apperrors.CodeMissingField)
	suite.Equal([]string{"clientId"}, appErr.Fields)

	suite.templates.AssertNotCalled(suite.T(), "GetTemplate", mock.Anything, mock.Anything)
}

func (suite *ReportingServiceTestSuite) TestRenderHTML_ClientNotFound() {
	suite.totals.On("ClientReportTotals", suite.ctx, "gone").
		Return(nil, apperrors.NewNotFoundError(apperrors.CodeClientNotFound, "client not found")).Once()

	_, err := suite.service.RenderHTML(suite.ctx, dto.RenderReportRequest{Mode: domain.ReportModeClient, ClientID: "gone"}, "")

	requireAppError(suite.T(), err, apperrors.CodeClientNotFound)
}

func (suite *ReportingServiceTestSuite) TestRenderPDF() {
	suite.totals.On("GeneralReportTotals", suite.ctx).Return(suite.generalReport(), nil).Once()
	suite.pdf.On("GeneratePDF", suite.ctx, "Acme &amp; Co||14/03/2025|G:2:1,234.5").Return([]byte("%PDF-1.3"), nil).Once()

	pdf, name, err := suite.service.RenderPDF(suite.ctx, dto.RenderReportRequest{Mode: domain.ReportModeGeneral}, "")

	suite.Require().NoError(err)
	suite.Equal([]byte("%PDF-1.3"), pdf)
	suite.Equal("reporte-general-2025-03-14.pdf", name)
}

func (suite *ReportingServiceTestSuite) TestRenderPDF_Failures() {
	suite.totals.On("GeneralReportTotals", suite.ctx).Return(suite.generalReport(), nil)

	suite.pdf.On("GeneratePDF", suite.ctx, mock.Anything).Return(nil, fmt.Errorf("chrome: %w", context.DeadlineExceeded)).Once()
	_, _, err := suite.service.RenderPDF(suite.ctx, dto.RenderReportRequest{Mode: domain.ReportModeGeneral}, "")
	appErr := requireAppError(suite.T(), err, apperrors.CodeUpstreamTimeout)
	suite.Equal(504, appErr.Code)

	suite.pdf.On("GeneratePDF", suite.ctx, mock.Anything).Return(nil, errors.New("chrome crashed")).Once()
	_, _, err = suite.service.RenderPDF(suite.ctx, dto.RenderReportRequest{Mode: domain.ReportModeGeneral}, "")
	requireAppError(suite.T(), err, apperrors.CodeRenderError)
	suite.ErrorIs(err, apperrors.ErrRenderFailed)
}

func (suite *ReportingServiceTestSuite) TestRenderPDF_NoGenerator() {
	svc := services.NewReportingService(suite.totals, suite.templates, suite.userRepo, nil, "Acme")
	suite.totals.On("GeneralReportTotals", suite.ctx).Return(suite.generalReport(), nil).Once()

	_, _, err := svc.RenderPDF(suite.ctx, dto.RenderReportRequest{Mode: domain.ReportModeGeneral}, "")

	requireAppError(suite.T(), err, apperrors.CodeRenderError)
}
