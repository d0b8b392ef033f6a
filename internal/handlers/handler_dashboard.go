package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

// dashboardHandler serves the back-office dashboard figures.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
	loc              *time.Location
}

func newDashboardHandler(ds portssvc.DashboardSvc, loc *time.Location) *dashboardHandler {
	if loc == nil {
		loc = time.Local
	}
	return &dashboardHandler{dashboardService: ds, loc: loc}
}

// RegisterDashboardRoutes registers the dashboard routes. loc is the zone the
// date query parameter is interpreted in.
func RegisterDashboardRoutes(rg *gin.RouterGroup, dashboardService portssvc.DashboardSvc, loc *time.Location) {
	h := newDashboardHandler(dashboardService, loc)

	dashboard := rg.Group("/dashboard")
	{
		dashboard.GET("/stats", h.getStats)
		dashboard.GET("/chart-data", h.getChartData)
		dashboard.GET("/debt-distribution", h.getDebtDistribution)
	}
}

// getStats godoc
// @Summary Dashboard summary
// @Description Totals, the sum of payments received on the given local day and the ten most recent payments
// @Tags dashboard
// @Produce json
// @Param date query string false "Day (YYYY-MM-DD)" default(today)
// @Success 200 {object} domain.DashboardSummary
// @Failure 400 {object} apperrors.AppError "Invalid date"
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /dashboard/stats [get]
func (h *dashboardHandler) getStats(c *gin.Context) {
	var params dto.DashboardParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	var day time.Time
	if params.Date != "" {
		// binding already checked the layout
		day, _ = time.ParseInLocation("2006-01-02", params.Date, h.loc)
	}

	summary, err := h.dashboardService.DashboardSummary(c.Request.Context(), day)
	if err != nil {
		respondError(c, err)
		return
	}
	c.Header("Cache-Control", "no-store")
	c.JSON(http.StatusOK, summary)
}

// getChartData godoc
// @Summary Payments per day
// @Description One entry per local day, oldest first, ending today
// @Tags dashboard
// @Produce json
// @Param days query int false "Number of days (1-90)" default(7)
// @Success 200 {object} dto.ChartResponse
// @Failure 400 {object} apperrors.AppError "Invalid days"
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /dashboard/chart-data [get]
func (h *dashboardHandler) getChartData(c *gin.Context) {
	var params dto.ChartParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, err)
		return
	}

	points, err := h.dashboardService.ChartSeries(c.Request.Context(), params.Days)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ChartResponse{Points: points})
}

// getDebtDistribution godoc
// @Summary Outstanding balance per client
// @Description Clients that currently owe something
// @Tags dashboard
// @Produce json
// @Success 200 {object} dto.DistributionResponse
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /dashboard/debt-distribution [get]
func (h *dashboardHandler) getDebtDistribution(c *gin.Context) {
	slices, err := h.dashboardService.DebtDistribution(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.DistributionResponse{Slices: slices})
}
