package template

import (
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

const (
	reportDateLayout     = "02/01/2006"
	generationDateLayout = "02/01/2006 15:04"
	rowDateLayout        = "02/01/2006 03:04 PM"
)

// FormatAmount renders d with thousands separators and at most two fractional digits,
// dropping trailing zeros: 1234.5 becomes "1,234.5" and 1000 becomes "1,000".
func FormatAmount(d decimal.Decimal) string {
	return humanize.Commaf(d.Round(2).InexactFloat64())
}

func formatDate(t time.Time, layout string) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(layout)
}
