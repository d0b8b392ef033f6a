package document

import (
	"bytes"
	"fmt"
	"image"
	"image/jpeg"

	"github.com/go-pdf/fpdf"
)

const (
	jpegQuality    = 95
	reportImageKey = "report"
)

// AssemblePDF places img across as many A4 portrait pages as it needs.
// The whole document is built in memory, so a failure never yields partial output.
func AssemblePDF(img image.Image) ([]byte, error) {
	if img == nil {
		return nil, ErrEmptyContent
	}

	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(0, 0, 0)
	pdf.SetAutoPageBreak(false, 0)
	pageW, pageH := pdf.GetPageSize()

	bounds := img.Bounds()
	layout, err := Paginate(bounds.Dx(), bounds.Dy(), pageW, pageH)
	if err != nil {
		return nil, err
	}

	var encoded bytes.Buffer
	if err := jpeg.Encode(&encoded, img, &jpeg.Options{Quality: jpegQuality}); err != nil {
		return nil, fmt.Errorf("failed to encode report image: %w", err)
	}

	opts := fpdf.ImageOptions{ImageType: "JPG"}
	pdf.RegisterImageOptionsReader(reportImageKey, opts, &encoded)
	for _, offset := range layout.Offsets {
		pdf.AddPage()
		pdf.ImageOptions(reportImageKey, 0, offset, layout.PageWidth, layout.RenderHeight, false, opts, 0, "")
	}
	if err := pdf.Error(); err != nil {
		return nil, fmt.Errorf("failed to assemble pdf: %w", err)
	}

	var out bytes.Buffer
	if err := pdf.Output(&out); err != nil {
		return nil, fmt.Errorf("failed to write pdf: %w", err)
	}
	return out.Bytes(), nil
}
