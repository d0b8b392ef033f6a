package repositories

import (
	"context"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
)

type ReportTemplateReader interface {
	FindTemplateByID(ctx context.Context, templateID string) (*domain.ReportTemplate, error)
	ListTemplates(ctx context.Context) ([]domain.ReportTemplate, error)
}

type ReportTemplateWriter interface {
	SaveTemplate(ctx context.Context, tmpl domain.ReportTemplate) error

	// SaveTemplateIfAbsent inserts tmpl unless a template with the same id exists.
	// It reports whether a row was written.
	SaveTemplateIfAbsent(ctx context.Context, tmpl domain.ReportTemplate) (bool, error)

	DeleteTemplate(ctx context.Context, templateID string) error
}

type ReportTemplateRepositoryFacade interface {
	ReportTemplateReader
	ReportTemplateWriter
}
