package domain

import "time"

// DefaultReportTemplateID identifies the built-in template seeded at startup.
const DefaultReportTemplateID = "default"

// ReportTemplate is a user-editable HTML report layout.
// Variables lists every {{TOKEN}} found in Content when the template was saved.
type ReportTemplate struct {
	TemplateID string    `json:"id"`
	Name       string    `json:"name"`
	Content    string    `json:"content"`
	Variables  []string  `json:"variables"`
	CreatedBy  *string   `json:"createdBy,omitempty"`
	CreatedAt  time.Time `json:"createdAt"`
}

// ReportMode selects which conditional block of a template is rendered.
type ReportMode string

const (
	ReportModeGeneral ReportMode = "general"
	ReportModeClient  ReportMode = "client"
)

// IsValid reports whether m is a supported mode.
func (m ReportMode) IsValid() bool {
	return m == ReportModeGeneral || m == ReportModeClient
}
