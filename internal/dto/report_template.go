package dto

import (
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
)

// CreateReportTemplateRequest is the body of POST /report-templates.
type CreateReportTemplateRequest struct {
	Name    string `json:"name" binding:"required,max=120"`
	Content string `json:"content" binding:"required"`
}

type ReportTemplateResponse struct {
	TemplateID string    `json:"id"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	Variables  []string  `json:"variables"`
	CreatedAt  time.Time `json:"createdAt"`
}

func ToReportTemplateResponse(t *domain.ReportTemplate) ReportTemplateResponse {
	vars := t.Variables
	if vars == nil {
		vars = []string{}
	}
	return ReportTemplateResponse{
		TemplateID: t.TemplateID,
		Name:       t.Name,
		Content:    t.Content,
		Variables:  vars,
		CreatedAt:  t.CreatedAt,
	}
}

type ListReportTemplatesResponse struct {
	Templates []ReportTemplateResponse `json:"templates"`
}

func ToListReportTemplatesResponse(templates []domain.ReportTemplate) ListReportTemplatesResponse {
	out := make([]ReportTemplateResponse, len(templates))
	for i := range templates {
		out[i] = ToReportTemplateResponse(&templates[i])
	}
	return ListReportTemplatesResponse{Templates: out}
}
