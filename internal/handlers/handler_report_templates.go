package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/debt_tracker_app/internal/core/ports/services"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
	"github.com/gin-gonic/gin"
)

type reportTemplateHandler struct {
	templateService portssvc.ReportTemplateSvcFacade
}

// RegisterReportTemplateRoutes registers routes for managing report templates.
func RegisterReportTemplateRoutes(rg *gin.RouterGroup, templateService portssvc.ReportTemplateSvcFacade) {
	h := &reportTemplateHandler{templateService: templateService}

	templates := rg.Group("/report-templates")
	{
		templates.GET("", h.listTemplates)
		templates.POST("", h.createTemplate)
		templates.GET("/:id", h.getTemplate)
		templates.DELETE("/:id", h.deleteTemplate)
	}
}

// listTemplates godoc
// @Summary List report templates
// @Description The default template is listed first
// @Tags report-templates
// @Produce json
// @Success 200 {object} dto.ListReportTemplatesResponse
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /report-templates [get]
func (h *reportTemplateHandler) listTemplates(c *gin.Context) {
	templates, err := h.templateService.ListTemplates(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListReportTemplatesResponse(templates))
}

// getTemplate godoc
// @Summary Get a report template
// @Tags report-templates
// @Produce json
// @Param id path string true "Template ID"
// @Success 200 {object} dto.ReportTemplateResponse
// @Failure 404 {object} apperrors.AppError "NOT_FOUND"
// @Security BearerAuth
// @Router /report-templates/{id} [get]
func (h *reportTemplateHandler) getTemplate(c *gin.Context) {
	tmpl, err := h.templateService.GetTemplate(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToReportTemplateResponse(tmpl))
}

// createTemplate godoc
// @Summary Create a report template
// @Description Saves the HTML and records every {{TOKEN}} it contains
// @Tags report-templates
// @Accept json
// @Produce json
// @Param template body dto.CreateReportTemplateRequest true "Name and HTML content"
// @Success 201 {object} dto.ReportTemplateResponse
// @Failure 400 {object} apperrors.AppError "VALIDATION_ERROR"
// @Failure 500 {object} apperrors.AppError "DB_ERROR"
// @Security BearerAuth
// @Router /report-templates [post]
func (h *reportTemplateHandler) createTemplate(c *gin.Context) {
	userID, ok := currentUserID(c)
	if !ok {
		return
	}
	var req dto.CreateReportTemplateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	tmpl, err := h.templateService.CreateTemplate(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToReportTemplateResponse(tmpl))
}

// deleteTemplate godoc
// @Summary Delete a report template
// @Description The default template cannot be deleted
// @Tags report-templates
// @Param id path string true "Template ID"
// @Success 204 "No Content"
// @Failure 404 {object} apperrors.AppError "NOT_FOUND"
// @Failure 409 {object} apperrors.AppError "TEMPLATE_PROTECTED"
// @Security BearerAuth
// @Router /report-templates/{id} [delete]
func (h *reportTemplateHandler) deleteTemplate(c *gin.Context) {
	if err := h.templateService.DeleteTemplate(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
