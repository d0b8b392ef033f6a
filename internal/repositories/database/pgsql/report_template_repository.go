package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/debt_tracker_app/internal/apperrors"
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	portsrepo "github.com/SscSPs/debt_tracker_app/internal/core/ports/repositories"
	"github.com/SscSPs/debt_tracker_app/internal/models"
	"github.com/SscSPs/debt_tracker_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const templateColumns = `template_id, name, content, variables, created_by, created_at`

type PgxReportTemplateRepository struct {
	BaseRepository
}

func newPgxReportTemplateRepository(pool *pgxpool.Pool) portsrepo.ReportTemplateRepositoryFacade {
	return &PgxReportTemplateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ReportTemplateRepositoryFacade = (*PgxReportTemplateRepository)(nil)

func scanTemplate(row pgx.Row) (models.ReportTemplate, error) {
	var m models.ReportTemplate
	err := row.Scan(&m.TemplateID, &m.Name, &m.Content, &m.Variables, &m.CreatedBy, &m.CreatedAt)
	return m, err
}

func (r *PgxReportTemplateRepository) SaveTemplate(ctx context.Context, tmpl domain.ReportTemplate) error {
	m := mapping.ToModelReportTemplate(tmpl)
	query := `INSERT INTO report_templates (` + templateColumns + `) VALUES ($1, $2, $3, $4, $5, $6);`
	if _, err := r.Pool.Exec(ctx, query, m.TemplateID, m.Name, m.Content, m.Variables, m.CreatedBy, m.CreatedAt); err != nil {
		return fmt.Errorf("failed to save report template %s: %w", m.TemplateID, err)
	}
	return nil
}

func (r *PgxReportTemplateRepository) SaveTemplateIfAbsent(ctx context.Context, tmpl domain.ReportTemplate) (bool, error) {
	m := mapping.ToModelReportTemplate(tmpl)
	query := `
		INSERT INTO report_templates (` + templateColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (template_id) DO NOTHING;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, m.TemplateID, m.Name, m.Content, m.Variables, m.CreatedBy, m.CreatedAt)
	if err != nil {
		return false, fmt.Errorf("failed to seed report template %s: %w", m.TemplateID, err)
	}
	return cmdTag.RowsAffected() == 1, nil
}

func (r *PgxReportTemplateRepository) FindTemplateByID(ctx context.Context, templateID string) (*domain.ReportTemplate, error) {
	query := `SELECT ` + templateColumns + ` FROM report_templates WHERE template_id = $1;`
	m, err := scanTemplate(r.Pool.QueryRow(ctx, query, templateID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find report template %s: %w", templateID, err)
	}
	tmpl := mapping.ToDomainReportTemplate(m)
	return &tmpl, nil
}

// ListTemplates returns the built-in template first, then the rest newest first.
func (r *PgxReportTemplateRepository) ListTemplates(ctx context.Context) ([]domain.ReportTemplate, error) {
	query := `
		SELECT ` + templateColumns + `
		FROM report_templates
		ORDER BY (template_id = $1) DESC, created_at DESC;
	`
	rows, err := r.Pool.Query(ctx, query, domain.DefaultReportTemplateID)
	if err != nil {
		return nil, fmt.Errorf("failed to query report templates: %w", err)
	}
	defer rows.Close()

	modelTemplates := []models.ReportTemplate{}
	for rows.Next() {
		m, err := scanTemplate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report template row: %w", err)
		}
		modelTemplates = append(modelTemplates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating report template rows: %w", err)
	}
	return mapping.ToDomainReportTemplateSlice(modelTemplates), nil
}

func (r *PgxReportTemplateRepository) DeleteTemplate(ctx context.Context, templateID string) error {
	cmdTag, err := r.Pool.Exec(ctx, `DELETE FROM report_templates WHERE template_id = $1;`, templateID)
	if err != nil {
		return fmt.Errorf("failed to delete report template %s: %w", templateID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report template %s: %w", templateID, apperrors.ErrNotFound)
	}
	return nil
}
