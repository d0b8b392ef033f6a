package document

import (
	"context"
	"errors"
	"regexp"
	"strings"
	"time"
)

// Generator produces PDF bytes from report HTML.
type Generator struct {
	rasterizer Rasterizer
	timeout    time.Duration
}

// NewGenerator wires a rasterizer; timeout bounds each rendering.
func NewGenerator(r Rasterizer, timeout time.Duration) *Generator {
	return &Generator{rasterizer: r, timeout: timeout}
}

// GeneratePDF rasterizes html and assembles the pages.
func (g *Generator) GeneratePDF(ctx context.Context, html string) ([]byte, error) {
	if strings.TrimSpace(html) == "" {
		return nil, ErrEmptyContent
	}
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	img, err := g.rasterizer.Rasterize(ctx, html)
	if err != nil {
		// chromedp does not always wrap the context error it stopped on
		if ctxErr := ctx.Err(); ctxErr != nil && !errors.Is(err, ctxErr) {
			return nil, errors.Join(err, ctxErr)
		}
		return nil, err
	}
	return AssemblePDF(img)
}

var unsafeFileChars = regexp.MustCompile(`[\\/:*?"<>|\x00-\x1f]+`)

// FileName returns the download name of a report generated on date.
// An empty clientName denotes the general report.
func FileName(clientName string, date time.Time) string {
	subject := "general"
	if name := strings.TrimSpace(unsafeFileChars.ReplaceAllString(clientName, "-")); name != "" {
		subject = name
	}
	return "reporte-" + subject + "-" + date.Format("2006-01-02") + ".pdf"
}
