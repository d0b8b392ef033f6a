package handlers_test

import (
	"context"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/stretchr/testify/mock"
)

type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) GetClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Client), args.Error(1)
}

func (m *MockClientService) CreateClient(ctx context.Context, req dto.CreateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

func (m *MockClientService) UpdateClient(ctx context.Context, clientID string, req dto.UpdateClientRequest) (*domain.Client, error) {
	args := m.Called(ctx, clientID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Client), args.Error(1)
}

type MockLedgerService struct {
	mock.Mock
}

func (m *MockLedgerService) RecordDebt(ctx context.Context, req dto.CreateDebtRequest) (*domain.Debt, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Debt), args.Error(1)
}

func (m *MockLedgerService) RecordPayment(ctx context.Context, req dto.CreatePaymentRequest) (*domain.Payment, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockLedgerService) ListDebts(ctx context.Context, clientID string) ([]domain.Debt, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Debt), args.Error(1)
}

func (m *MockLedgerService) ListPayments(ctx context.Context, params dto.ListPaymentsParams) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, params)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var next *string
	if args.Get(1) != nil {
		next = args.Get(1).(*string)
	}
	return payments, next, args.Error(2)
}

type MockAggregationService struct {
	mock.Mock
}

func (m *MockAggregationService) DashboardSummary(ctx context.Context, day time.Time) (*domain.DashboardSummary, error) {
	args := m.Called(ctx, day)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DashboardSummary), args.Error(1)
}

func (m *MockAggregationService) ChartSeries(ctx context.Context, days int) ([]domain.ChartPoint, error) {
	args := m.Called(ctx, days)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ChartPoint), args.Error(1)
}

func (m *MockAggregationService) DebtDistribution(ctx context.Context) ([]domain.DistributionSlice, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.DistributionSlice), args.Error(1)
}

func (m *MockAggregationService) ClientReportTotals(ctx context.Context, clientID string) (*domain.ClientReport, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ClientReport), args.Error(1)
}

func (m *MockAggregationService) GeneralReportTotals(ctx context.Context) (*domain.GeneralReport, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GeneralReport), args.Error(1)
}

type MockReportingService struct {
	mock.Mock
}

func (m *MockReportingService) RenderHTML(ctx context.Context, req dto.RenderReportRequest, userID string) (*domain.RenderedReport, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RenderedReport), args.Error(1)
}

func (m *MockReportingService) RenderPDF(ctx context.Context, req dto.RenderReportRequest, userID string) ([]byte, string, error) {
	args := m.Called(ctx, req, userID)
	var pdf []byte
	if args.Get(0) != nil {
		pdf = args.Get(0).([]byte)
	}
	return pdf, args.String(1), args.Error(2)
}

type MockReportTemplateService struct {
	mock.Mock
}

func (m *MockReportTemplateService) GetTemplate(ctx context.Context, templateID string) (*domain.ReportTemplate, error) {
	args := m.Called(ctx, templateID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportTemplate), args.Error(1)
}

func (m *MockReportTemplateService) ListTemplates(ctx context.Context) ([]domain.ReportTemplate, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ReportTemplate), args.Error(1)
}

func (m *MockReportTemplateService) CreateTemplate(ctx context.Context, req dto.CreateReportTemplateRequest, userID string) (*domain.ReportTemplate, error) {
	args := m.Called(ctx, req, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportTemplate), args.Error(1)
}

func (m *MockReportTemplateService) DeleteTemplate(ctx context.Context, templateID string) error {
	return m.Called(ctx, templateID).Error(0)
}

func (m *MockReportTemplateService) EnsureDefaultTemplate(ctx context.Context) error {
	return m.Called(ctx).Error(0)
}

type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ListUsers(ctx context.Context, email string) ([]domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *MockUserService) CreateUser(ctx context.Context, req dto.CreateUserRequest) (*domain.User, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) EnsureBootstrapAdmin(ctx context.Context, name, email, password string) error {
	return m.Called(ctx, name, email, password).Error(0)
}

func (m *MockUserService) AuthenticateUser(ctx context.Context, email, password string) (*domain.User, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

type MockTokenService struct {
	mock.Mock
}

func (m *MockTokenService) GenerateAccessToken(ctx context.Context, user *domain.User) (string, time.Time, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Get(1).(time.Time), args.Error(2)
}

type MockGoogleService struct {
	mock.Mock
}

func (m *MockGoogleService) Enabled() bool {
	return m.Called().Bool(0)
}

func (m *MockGoogleService) ExchangeCodeForIdentity(ctx context.Context, code string) (*domain.GoogleIdentity, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GoogleIdentity), args.Error(1)
}

type fakePinger struct {
	err error
}

func (p fakePinger) Ping(context.Context) error {
	return p.err
}
