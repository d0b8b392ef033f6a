package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/core/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/SscSPs/debt_tracker_app/internal/report/template"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReportTemplateService_GetTemplate_FallsBackToBuiltinDefault(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportTemplateRepository)
	svc := services.NewReportTemplateService(repo)
	repo.On("FindTemplateByID", ctx, domain.DefaultReportTemplateID).Return(nil, apperrors.ErrNotFound).Once()

	tmpl, err := svc.GetTemplate(ctx, "")

	require.NoError(t, err)
	assert.Equal(t, domain.DefaultReportTemplateID, tmpl.TemplateID)
	assert.Equal(t, template.DefaultTemplate, tmpl.Content)
	assert.NotEmpty(t, tmpl.Variables)
}

func TestReportTemplateService_GetTemplate_UnknownID(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportTemplateRepository)
	svc := services.NewReportTemplateService(repo)
	repo.On("FindTemplateByID", ctx, "custom").Return(nil, apperrors.ErrNotFound).Once()

	_, err := svc.GetTemplate(ctx, "custom")

	requireAppError(t, err, apperrors.CodeNotFound)
}

func TestReportTemplateService_CreateTemplate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportTemplateRepository)
	svc := services.NewReportTemplateService(repo)

	content := "<h1>{{COMPANY_NAME}}</h1>{{#IF_CLIENT}}{{CLIENT_NAME}}{{/IF_CLIENT}}"
	repo.On("SaveTemplate", ctx, mock.MatchedBy(func(tmpl domain.ReportTemplate) bool {
		return tmpl.Name == "Mensual" &&
			tmpl.Content == content &&
			tmpl.CreatedBy != nil && *tmpl.CreatedBy == "u1" &&
			assert.ObjectsAreEqual(template.ExtractVariables(content), tmpl.Variables)
	})).Return(nil).Once()

	tmpl, err := svc.CreateTemplate(ctx, dto.CreateReportTemplateRequest{Name: " Mensual ", Content: content}, "u1")

	require.NoError(t, err)
	assert.Contains(t, tmpl.Variables, "COMPANY_NAME")
	assert.Contains(t, tmpl.Variables, "CLIENT_NAME")
	repo.AssertExpectations(t)
}

func TestReportTemplateService_CreateTemplate_Validation(t *testing.T) {
	repo := new(MockReportTemplateRepository)
	svc := services.NewReportTemplateService(repo)

	_, err := svc.CreateTemplate(context.Background(), dto.CreateReportTemplateRequest{Name: "x", Content: "  "}, "u1")

	requireAppError(t, err, apperrors.CodeValidation)
	repo.AssertNotCalled(t, "SaveTemplate", mock.Anything, mock.Anything)
}

func TestReportTemplateService_DeleteTemplate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportTemplateRepository)
	svc := services.NewReportTemplateService(repo)

	err := svc.DeleteTemplate(ctx, domain.DefaultReportTemplateID)
	appErr := requireAppError(t, err, apperrors.CodeTemplateLocked)
	assert.Equal(t, 409, appErr.Code)
	repo.AssertNotCalled(t, "DeleteTemplate", mock.Anything, mock.Anything)

	repo.On("DeleteTemplate", ctx, "gone").Return(apperrors.ErrNotFound).Once()
	requireAppError(t, svc.DeleteTemplate(ctx, "gone"), apperrors.CodeNotFound)

	repo.On("DeleteTemplate", ctx, "t1").Return(nil).Once()
	assert.NoError(t, svc.DeleteTemplate(ctx, "t1"))
}

func TestReportTemplateService_EnsureDefaultTemplate(t *testing.T) {
	ctx := context.Background()
	repo := new(MockReportTemplateRepository)
	svc := services.NewReportTemplateService(repo)
	repo.On("SaveTemplateIfAbsent", ctx, mock.MatchedBy(func(tmpl domain.ReportTemplate) bool {
		return tmpl.TemplateID == domain.DefaultReportTemplateID && tmpl.Content == template.DefaultTemplate
	})).Return(false, nil).Once()

	require.NoError(t, svc.EnsureDefaultTemplate(ctx))
	repo.AssertExpectations(t)
}
