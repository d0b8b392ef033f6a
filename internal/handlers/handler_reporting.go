package handlers

import (
	"log/slog"
	"mime"
	"net/http"

	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/SscSPs/debt_tracker_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to reports
type reportingHandler struct {
	totalsService    portssvc.ReportTotalsSvc
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(ts portssvc.ReportTotalsSvc, rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		totalsService:    ts,
		reportingService: rs,
	}
}

// RegisterReportingRoutes registers the report totals and rendering routes.
func RegisterReportingRoutes(rg *gin.RouterGroup, totalsService portssvc.ReportTotalsSvc, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(totalsService, reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/general", h.getGeneralReport)
		reports.GET("/clients/:id", h.getClientReport)
		reports.POST("/render", h.renderReport)
		reports.POST("/pdf", h.renderReportPDF)
	}
}

// getGeneralReport godoc
// @Summary General report totals
// @Description Totals across all clients plus one row per client
// @Tags reports
// @Produce json
// @Success 200 {object} domain.GeneralReport
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /reports/general [get]
func (h *reportingHandler) getGeneralReport(c *gin.Context) {
	report, err := h.totalsService.GeneralReportTotals(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// getClientReport godoc
// @Summary Client report totals
// @Description Gross debt issued, total paid and the history of one client
// @Tags reports
// @Produce json
// @Param id path string true "Client ID"
// @Success 200 {object} domain.ClientReport
// @Failure 404 {object} apperrors.AppError "CLIENT_NOT_FOUND"
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /reports/clients/{id} [get]
func (h *reportingHandler) getClientReport(c *gin.Context) {
	report, err := h.totalsService.ClientReportTotals(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

// renderReport godoc
// @Summary Render a report template
// @Description Fills a template with live totals and returns the HTML preview
// @Tags reports
// @Accept json
// @Produce json
// @Param request body dto.RenderReportRequest true "Template, mode and client"
// @Success 200 {object} dto.RenderReportResponse
// @Failure 400 {object} apperrors.AppError "INVALID_MODE or MISSING_FIELD"
// @Failure 404 {object} apperrors.AppError "Template or client not found"
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /reports/render [post]
func (h *reportingHandler) renderReport(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.RenderReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	rendered, err := h.reportingService.RenderHTML(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.RenderReportResponse{HTML: rendered.HTML, FileName: rendered.FileName})
}

// renderReportPDF godoc
// @Summary Download a report as PDF
// @Description Renders the template, rasterizes it and paginates it onto A4 pages
// @Tags reports
// @Accept json
// @Produce application/pdf
// @Param request body dto.RenderReportRequest true "Template, mode and client"
// @Success 200 {file} binary
// @Failure 400 {object} apperrors.AppError "INVALID_MODE or MISSING_FIELD"
// @Failure 404 {object} apperrors.AppError "Template or client not found"
// @Failure 500 {object} apperrors.AppError "RENDER_ERROR"
// @Failure 504 {object} apperrors.AppError "UPSTREAM_TIMEOUT"
// @Security BearerAuth
// @Router /reports/pdf [post]
func (h *reportingHandler) renderReportPDF(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.RenderReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	pdf, fileName, err := h.reportingService.RenderPDF(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}

	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Serving report PDF",
		slog.String("file_name", fileName), slog.Int("bytes", len(pdf)))
	c.Header("Content-Disposition", attachmentDisposition(fileName))
	c.Header("Cache-Control", "no-store")
	c.Data(http.StatusOK, "application/pdf", pdf)
}

// attachmentDisposition quotes fileName per RFC 6266; non-ASCII names are sent as filename*=utf-8''.
func attachmentDisposition(fileName string) string {
	if v := mime.FormatMediaType("attachment", map[string]string{"filename": fileName}); v != "" {
		return v
	}
	return "attachment"
}
