package mapping

import (
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/models"
)

func ToModelReportTemplate(d domain.ReportTemplate) models.ReportTemplate {
	vars := d.Variables
	if vars == nil {
		vars = []string{}
	}
	return models.ReportTemplate{
		TemplateID: d.TemplateID,
		Name:       d.Name,
		Content:    d.Content,
		Variables:  vars,
		CreatedBy:  d.CreatedBy,
		CreatedAt:  d.CreatedAt,
	}
}

func ToDomainReportTemplate(m models.ReportTemplate) domain.ReportTemplate {
	return domain.ReportTemplate{
		TemplateID: m.TemplateID,
		Name:       m.Name,
		Content:    m.Content,
		Variables:  m.Variables,
		CreatedBy:  m.CreatedBy,
		CreatedAt:  m.CreatedAt,
	}
}

func ToDomainReportTemplateSlice(ms []models.ReportTemplate) []domain.ReportTemplate {
	ds := make([]domain.ReportTemplate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainReportTemplate(m)
	}
	return ds
}
