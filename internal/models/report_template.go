package models

import "time"

type ReportTemplate struct {
	TemplateID string    `db:"template_id"`
	Name       string    `db:"name"`
	Content    string    `db:"content"`
	Variables  []string  `db:"variables"`
	CreatedBy  *string   `db:"created_by"`
	CreatedAt  time.Time `db:"created_at"`
}
