package services

import (
	"context"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
)

// DashboardSvc computes the figures shown on the dashboard. Nothing is cached.
type DashboardSvc interface {
	// DashboardSummary sums payments made on the local calendar day containing day.
	DashboardSummary(ctx context.Context, day time.Time) (*domain.DashboardSummary, error)

	// ChartSeries returns one point per local day, oldest first, ending today.
	ChartSeries(ctx context.Context, days int) ([]domain.ChartPoint, error)

	// DebtDistribution lists clients that currently owe something.
	DebtDistribution(ctx context.Context) ([]domain.DistributionSlice, error)
}

type ReportTotalsSvc interface {
	ClientReportTotals(ctx context.Context, clientID string) (*domain.ClientReport, error)
	GeneralReportTotals(ctx context.Context) (*domain.GeneralReport, error)
}

type AggregationSvcFacade interface {
	DashboardSvc
	ReportTotalsSvc
}
