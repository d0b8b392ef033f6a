package services

import (
	"context"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
)

type ReportTemplateReaderSvc interface {
	// GetTemplate resolves an empty id to the built-in template.
	GetTemplate(ctx context.Context, templateID string) (*domain.ReportTemplate, error)
	ListTemplates(ctx context.Context) ([]domain.ReportTemplate, error)
}

type ReportTemplateWriterSvc interface {
	CreateTemplate(ctx context.Context, req dto.CreateReportTemplateRequest, userID string) (*domain.ReportTemplate, error)

	// DeleteTemplate refuses to remove the built-in template.
	DeleteTemplate(ctx context.Context, templateID string) error

	// EnsureDefaultTemplate seeds the built-in template when it is missing.
	EnsureDefaultTemplate(ctx context.Context) error
}

type ReportTemplateSvcFacade interface {
	ReportTemplateReaderSvc
	ReportTemplateWriterSvc
}
