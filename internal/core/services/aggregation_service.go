package services

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/utils/accounting"
	"github.com/shopspring/decimal"
)

const (
	recentPaymentsLimit = 10
	defaultChartDays    = 7

	unknownClientName       = "Cliente no encontrado"
	unknownUserName         = "Usuario no encontrado"
	unnamedDistributionName = "Desconocido"

	dateKeyLayout    = "2006-01-02"
	chartLabelLayout = "02/01"
)

// aggregationService recomputes every figure from storage on each call.
type aggregationService struct {
	BaseService
	clientRepo  portsrepo.ClientReader
	debtRepo    portsrepo.DebtReader
	paymentRepo portsrepo.PaymentReader
	userRepo    portsrepo.UserReader
	now         func() time.Time
	loc         *time.Location
}

// AggregationOption configures the aggregation service.
type AggregationOption func(*aggregationService)

// WithAggregationClock overrides the time source that defines "today".
func WithAggregationClock(now func() time.Time) AggregationOption {
	return func(s *aggregationService) {
		s.now = now
	}
}

// WithLocation sets the time zone whose calendar days bucket payments.
func WithLocation(loc *time.Location) AggregationOption {
	return func(s *aggregationService) {
		if loc != nil {
			s.loc = loc
		}
	}
}

func NewAggregationService(
	clientRepo portsrepo.ClientReader,
	debtRepo portsrepo.DebtReader,
	paymentRepo portsrepo.PaymentReader,
	userRepo portsrepo.UserReader,
	opts ...AggregationOption,
) portssvc.AggregationSvcFacade {
	s := &aggregationService{
		clientRepo:  clientRepo,
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
		userRepo:    userRepo,
		now:         systemClock,
		loc:         time.Local,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ portssvc.AggregationSvcFacade = (*aggregationService)(nil)

// dayBounds returns the first and last millisecond of the local day containing t.
func (s *aggregationService) dayBounds(t time.Time) (time.Time, time.Time) {
	y, m, d := t.In(s.loc).Date()
	start := time.Date(y, m, d, 0, 0, 0, 0, s.loc)
	end := time.Date(y, m, d, 23, 59, 59, int(999*time.Millisecond), s.loc)
	return start, end
}

func (s *aggregationService) allPayments(ctx context.Context, clientID string) ([]domain.Payment, error) {
	payments, _, err := s.paymentRepo.ListPayments(ctx, domain.PaymentFilter{ClientID: clientID})
	return payments, err
}

// newestFirst sorts a copy of payments by creation time, keeping the input order of ties.
func newestFirst(payments []domain.Payment) []domain.Payment {
	sorted := make([]domain.Payment, len(payments))
	copy(sorted, payments)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})
	return sorted
}

func (s *aggregationService) DashboardSummary(ctx context.Context, day time.Time) (*domain.DashboardSummary, error) {
	if day.IsZero() {
		day = s.now()
	}

	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for dashboard")
		return nil, err
	}
	payments, err := s.allPayments(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for dashboard")
		return nil, err
	}

	start, end := s.dayBounds(day)
	s.LogDebug(ctx, "Summing payments for day", "start", start, "end", end)
	paymentsToday := decimal.Zero
	for _, p := range payments {
		if !p.CreatedAt.Before(start) && !p.CreatedAt.After(end) {
			paymentsToday = paymentsToday.Add(p.Amount)
		}
	}

	clientNames := make(map[string]string, len(clients))
	for _, c := range clients {
		clientNames[c.ClientID] = c.Name
	}
	userNames := map[string]string{}
	users, err := s.userRepo.FindUsers(ctx, "")
	if err != nil {
		// Names are cosmetic; the summary is still served with fallbacks.
		s.GetLogger(ctx).Warn("Failed to list users for dashboard", slog.String("error", err.Error()))
	}
	for _, u := range users {
		userNames[u.UserID] = u.Name
	}

	sorted := newestFirst(payments)
	if len(sorted) > recentPaymentsLimit {
		sorted = sorted[:recentPaymentsLimit]
	}
	recent := make([]domain.RecentPayment, 0, len(sorted))
	for _, p := range sorted {
		clientName, ok := clientNames[p.ClientID]
		if !ok {
			clientName = unknownClientName
		}
		userName, ok := userNames[p.ReceivedBy]
		if !ok {
			userName = unknownUserName
		}
		recent = append(recent, domain.RecentPayment{
			PaymentID:  p.PaymentID,
			Amount:     p.Amount,
			CreatedAt:  p.CreatedAt,
			Notes:      p.Description,
			ClientName: clientName,
			UserName:   userName,
		})
	}

	return &domain.DashboardSummary{
		TotalClients:   len(clients),
		TotalDebt:      accounting.SumBalances(clients),
		TotalPaid:      accounting.SumPayments(payments),
		PaymentsToday:  paymentsToday,
		RecentPayments: recent,
	}, nil
}

func (s *aggregationService) ChartSeries(ctx context.Context, days int) ([]domain.ChartPoint, error) {
	if days <= 0 {
		days = defaultChartDays
	}

	payments, err := s.allPayments(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for chart")
		return nil, err
	}

	type bucket struct {
		count  int
		amount decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, p := range payments {
		key := p.CreatedAt.In(s.loc).Format(dateKeyLayout)
		b, ok := buckets[key]
		if !ok {
			b = &bucket{amount: decimal.Zero}
			buckets[key] = b
		}
		b.count++
		b.amount = b.amount.Add(p.Amount)
	}

	today, _ := s.dayBounds(s.now())
	points := make([]domain.ChartPoint, 0, days)
	for i := days - 1; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		key := day.Format(dateKeyLayout)
		point := domain.ChartPoint{
			Date:          key,
			Label:         day.Format(chartLabelLayout),
			PaymentAmount: decimal.Zero,
		}
		if b, ok := buckets[key]; ok {
			point.PaymentCount = b.count
			point.PaymentAmount = b.amount
		}
		points = append(points, point)
	}
	return points, nil
}

func (s *aggregationService) DebtDistribution(ctx context.Context) ([]domain.DistributionSlice, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for debt distribution")
		return nil, err
	}

	slices := make([]domain.DistributionSlice, 0, len(clients))
	for _, c := range clients {
		if !c.HasOutstandingBalance() {
			continue
		}
		name := c.Name
		if name == "" {
			name = unnamedDistributionName
		}
		slices = append(slices, domain.DistributionSlice{Name: name, Value: c.TotalDebt})
	}
	return slices, nil
}

// ClientReportTotals derives the balance from the event history, so it can go
// negative after over-payments while the stored running balance stays at zero.
func (s *aggregationService) ClientReportTotals(ctx context.Context, clientID string) (*domain.ClientReport, error) {
	client, err := s.clientRepo.FindClientByID(ctx, clientID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(apperrors.CodeClientNotFound, "client not found")
		}
		s.LogError(ctx, err, "Failed to find client for report", slog.String("client_id", clientID))
		return nil, err
	}

	debts, err := s.debtRepo.ListDebts(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list debts for report", slog.String("client_id", clientID))
		return nil, err
	}
	payments, err := s.allPayments(ctx, clientID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for report", slog.String("client_id", clientID))
		return nil, err
	}

	sortedDebts := make([]domain.Debt, len(debts))
	copy(sortedDebts, debts)
	sort.SliceStable(sortedDebts, func(i, j int) bool {
		return sortedDebts[i].CreatedAt.After(sortedDebts[j].CreatedAt)
	})

	gross := accounting.SumDebts(debts)
	paid := accounting.SumPayments(payments)
	return &domain.ClientReport{
		Client:          *client,
		GrossDebtIssued: gross,
		Paid:            paid,
		Balance:         gross.Sub(paid),
		Debts:           sortedDebts,
		Payments:        newestFirst(payments),
	}, nil
}

func (s *aggregationService) GeneralReportTotals(ctx context.Context) (*domain.GeneralReport, error) {
	clients, err := s.clientRepo.ListClients(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list clients for general report")
		return nil, err
	}
	payments, err := s.allPayments(ctx, "")
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for general report")
		return nil, err
	}

	paidBy := accounting.PaidByClient(payments)
	rows := make([]domain.GeneralReportRow, 0, len(clients))
	for _, c := range clients {
		paid, ok := paidBy[c.ClientID]
		if !ok {
			paid = decimal.Zero
		}
		rows = append(rows, domain.GeneralReportRow{
			Client:         c,
			CurrentBalance: c.TotalDebt,
			Paid:           paid,
			Balance:        c.TotalDebt.Sub(paid),
		})
	}

	return &domain.GeneralReport{
		TotalClients: len(clients),
		TotalDebt:    accounting.SumBalances(clients),
		TotalPaid:    accounting.SumPayments(payments),
		Rows:         rows,
	}, nil
}
