package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock ClientRepository ---
type MockClientRepository struct {
	mock.Mock
}

func (m *MockClientRepository) FindClientByID(ctx context.Context, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) ListClients(ctx context.Context) ([]domain.Client, error) {
	args := m.Called(ctx)
	var clients []domain.Client
	if args.Get(0) != nil {
		clients = args.Get(0).([]domain.Client)
	}
	return clients, args.Error(1)
}

func (m *MockClientRepository) SaveClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) UpdateClient(ctx context.Context, client domain.Client) error {
	args := m.Called(ctx, client)
	return args.Error(0)
}

func (m *MockClientRepository) LockClientForUpdate(ctx context.Context, tx pgx.Tx, clientID string) (*domain.Client, error) {
	args := m.Called(ctx, tx, clientID)
	var client *domain.Client
	if args.Get(0) != nil {
		client = args.Get(0).(*domain.Client)
	}
	return client, args.Error(1)
}

func (m *MockClientRepository) SetBalanceInTx(ctx context.Context, tx pgx.Tx, clientID string, balance decimal.Decimal, at time.Time) error {
	args := m.Called(ctx, tx, clientID, balance, at)
	return args.Error(0)
}

// --- Mock DebtRepository ---
type MockDebtRepository struct {
	mock.Mock
}

func (m *MockDebtRepository) SaveDebt(ctx context.Context, debt domain.Debt) (decimal.Decimal, error) {
	args := m.Called(ctx, debt)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockDebtRepository) ListDebts(ctx context.Context, clientID string) ([]domain.Debt, error) {
	args := m.Called(ctx, clientID)
	var debts []domain.Debt
	if args.Get(0) != nil {
		debts = args.Get(0).([]domain.Debt)
	}
	return debts, args.Error(1)
}

// --- Mock PaymentRepository ---
type MockPaymentRepository struct {
	mock.Mock
}

func (m *MockPaymentRepository) SavePayment(ctx context.Context, payment domain.Payment) (decimal.Decimal, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPaymentRepository) ListPayments(ctx context.Context, filter domain.PaymentFilter) ([]domain.Payment, *string, error) {
	args := m.Called(ctx, filter)
	var payments []domain.Payment
	if args.Get(0) != nil {
		payments = args.Get(0).([]domain.Payment)
	}
	var token *string
	if args.Get(1) != nil {
		token = args.Get(1).(*string)
	}
	return payments, token, args.Error(2)
}

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	args := m.Called(ctx, userID)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUsers(ctx context.Context, email string) ([]domain.User, error) {
	args := m.Called(ctx, email)
	var users []domain.User
	if args.Get(0) != nil {
		users = args.Get(0).([]domain.User)
	}
	return users, args.Error(1)
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// --- Mock ReportTemplateRepository ---
type MockReportTemplateRepository struct {
	mock.Mock
}

func (m *MockReportTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.ReportTemplate, error) {
	args := m.Called(ctx, templateID)
	var tmpl *domain.ReportTemplate
	if args.Get(0) != nil {
		tmpl = args.Get(0).(*domain.ReportTemplate)
	}
	return tmpl, args.Error(1)
}

func (m *MockReportTemplateRepository) ListTemplates(ctx context.Context) ([]domain.ReportTemplate, error) {
	args := m.Called(ctx)
	var templates []domain.ReportTemplate
	if args.Get(0) != nil {
		templates = args.Get(0).([]domain.ReportTemplate)
	}
	return templates, args.Error(1)
}

func (m *MockReportTemplateRepository) SaveTemplate(ctx context.Context, tmpl domain.ReportTemplate) error {
	args := m.Called(ctx, tmpl)
	return args.Error(0)
}

func (m *MockReportTemplateRepository) SaveTemplateIfAbsent(ctx context.Context, tmpl domain.ReportTemplate) (bool, error) {
	args := m.Called(ctx, tmpl)
	return args.Bool(0), args.Error(1)
}

func (m *MockReportTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	args := m.Called(ctx, templateID)
	return args.Error(0)
}

// --- Mock PDFGenerator ---
type MockPDFGenerator struct {
	mock.Mock
}

func (m *MockPDFGenerator) GeneratePDF(ctx context.Context, html string) ([]byte, error) {
	args := m.Called(ctx, html)
	var out []byte
	if args.Get(0) != nil {
		out = args.Get(0).([]byte)
	}
	return out, args.Error(1)
}

func strPtr(s string) *string {
	return &s
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}
