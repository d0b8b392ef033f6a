package dto

import "github.com/SscSPs/debt_tracker_app/internal/core/domain"

// RenderReportRequest is the body of POST /reports/render and POST /reports/pdf.
// An empty TemplateID selects the default template. Mode and ClientID are
// checked by the service so the caller gets INVALID_MODE or MISSING_FIELD.
type RenderReportRequest struct {
	TemplateID string            `json:"templateId"`
	Mode       domain.ReportMode `json:"mode"`
	ClientID   string            `json:"clientId"`
}

type RenderReportResponse struct {
	HTML     string `json:"html"`
	FileName string `json:"fileName"`
}
