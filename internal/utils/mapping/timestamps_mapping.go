package mapping

import (
	"github.com/SscSPs/debt_tracker_app/internal/core/domain"
	"github.com/SscSPs/debt_tracker_app/internal/models"
)

// ToModelTimestamps converts a domain Timestamps to a model Timestamps
func ToModelTimestamps(d domain.Timestamps) models.Timestamps {
	return models.Timestamps{CreatedAt: d.CreatedAt, UpdatedAt: d.UpdatedAt}
}

// ToDomainTimestamps converts a model Timestamps to a domain Timestamps
func ToDomainTimestamps(m models.Timestamps) domain.Timestamps {
	return domain.Timestamps{CreatedAt: m.CreatedAt, UpdatedAt: m.UpdatedAt}
}
