package services

import (
	"context"

	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/dto"
)

// ReportingSvcFacade turns a stored template plus live totals into HTML or PDF.
type ReportingSvcFacade interface {
	// RenderHTML fills the selected template for the requesting user.
	RenderHTML(ctx context.Context, req dto.RenderReportRequest, userID string) (*domain.RenderedReport, error)

	// RenderPDF renders the same document and paginates it onto A4 pages.
	RenderPDF(ctx context.Context, req dto.RenderReportRequest, userID string) ([]byte, string, error)
}
