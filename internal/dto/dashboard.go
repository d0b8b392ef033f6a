package dto

import "github.com/SscSPs/debt_tracker_app/internal/core/domain"

// DashboardParams selects the local day whose payments are summed, as YYYY-MM-DD.
// An empty Date means today.
type DashboardParams struct {
	Date string `form:"date" binding:"omitempty,datetime=2006-01-02"`
}

// ChartParams selects how many days the chart covers.
type ChartParams struct {
	Days int `form:"days,default=7" binding:"min=1,max=90"`
}

type ChartResponse struct {
	Points []domain.ChartPoint `json:"points"`
}

type DistributionResponse struct {
	Slices []domain.DistributionSlice `json:"slices"`
}
