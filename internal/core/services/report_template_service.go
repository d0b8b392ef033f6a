package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/SscSPs/debt_tracker_app/internal/report/template"
	"github.com/google/uuid"
)

type reportTemplateService struct {
	BaseService
	templateRepo portsrepo.ReportTemplateRepositoryFacade
	now          func() time.Time
}

func NewReportTemplateService(templateRepo portsrepo.ReportTemplateRepositoryFacade) portssvc.ReportTemplateSvcFacade {
	return &reportTemplateService{templateRepo: templateRepo, now: systemClock}
}

var _ portssvc.ReportTemplateSvcFacade = (*reportTemplateService)(nil)

func builtinTemplate(createdAt time.Time) domain.ReportTemplate {
	return domain.ReportTemplate{
		TemplateID: domain.DefaultReportTemplateID,
		Name:       template.DefaultTemplateName,
		Content:    template.DefaultTemplate,
		Variables:  template.ExtractVariables(template.DefaultTemplate),
		CreatedAt:  createdAt,
	}
}

func (s *reportTemplateService) GetTemplate(ctx context.Context, templateID string) (*domain.ReportTemplate, error) {
	templateID = strings.TrimSpace(templateID)
	if templateID == "" {
		templateID = domain.DefaultReportTemplateID
	}

	tmpl, err := s.templateRepo.FindTemplateByID(ctx, templateID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			if templateID == domain.DefaultReportTemplateID {
				// Not seeded yet; the built-in layout is always available.
				t := builtinTemplate(s.now())
				return &t, nil
			}
			return nil, apperrors.NewNotFoundError(apperrors.CodeNotFound, "report template not found")
		}
		s.LogError(ctx, err, "Failed to find report template", slog.String("template_id", templateID))
		return nil, err
	}
	return tmpl, nil
}

func (s *reportTemplateService) ListTemplates(ctx context.Context) ([]domain.ReportTemplate, error) {
	templates, err := s.templateRepo.ListTemplates(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list report templates")
		return nil, err
	}
	return templates, nil
}

func (s *reportTemplateService) CreateTemplate(ctx context.Context, req dto.CreateReportTemplateRequest, userID string) (*domain.ReportTemplate, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" || strings.TrimSpace(req.Content) == "" {
		return nil, apperrors.NewValidationError(apperrors.CodeValidation, "name and content are required", "name", "content")
	}

	tmpl := domain.ReportTemplate{
		TemplateID: uuid.NewString(),
		Name:       name,
		Content:    req.Content,
		Variables:  template.ExtractVariables(req.Content),
		CreatedBy:  trimmedOrNil(&userID),
		CreatedAt:  s.now(),
	}

	if err := s.templateRepo.SaveTemplate(ctx, tmpl); err != nil {
		s.LogError(ctx, err, "Failed to save report template")
		return nil, err
	}

	s.LogInfo(ctx, "Report template created",
		slog.String("template_id", tmpl.TemplateID),
		slog.Int("variables", len(tmpl.Variables)))
	return &tmpl, nil
}

func (s *reportTemplateService) DeleteTemplate(ctx context.Context, templateID string) error {
	if templateID == domain.DefaultReportTemplateID {
		return apperrors.NewLockedError(apperrors.CodeTemplateLocked, "the default template cannot be deleted")
	}
	if err := s.templateRepo.DeleteTemplate(ctx, templateID); err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return apperrors.NewNotFoundError(apperrors.CodeNotFound, "report template not found")
		}
		s.LogError(ctx, err, "Failed to delete report template", slog.String("template_id", templateID))
		return err
	}
	s.LogInfo(ctx, "Report template deleted", slog.String("template_id", templateID))
	return nil
}

func (s *reportTemplateService) EnsureDefaultTemplate(ctx context.Context) error {
	created, err := s.templateRepo.SaveTemplateIfAbsent(ctx, builtinTemplate(s.now()))
	if err != nil {
		return err
	}
	if created {
		s.LogInfo(ctx, "Default report template seeded")
	}
	return nil
}
