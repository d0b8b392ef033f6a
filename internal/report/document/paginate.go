// Package document turns rendered report HTML into a paginated A4 PDF.
package document

import "errors"

// ErrEmptyContent is returned when there is nothing to paginate.
var ErrEmptyContent = errors.New("document has no renderable content")

// remainders below this many page units do not start a new page
const pageEpsilon = 1e-6

// Layout describes how a single tall image is sliced across pages.
// Each offset is the vertical position, in page units, at which the full
// image is drawn on that page so the visible window shows the next slice.
type Layout struct {
	PageWidth    float64
	PageHeight   float64
	RenderHeight float64
	Offsets      []float64
}

// PageCount returns the number of pages in the layout.
func (l Layout) PageCount() int {
	return len(l.Offsets)
}

// Paginate scales an imgW x imgH raster to the page width and returns the
// offsets of every page needed to show it: 0, -pageH, -2*pageH, ...
func Paginate(imgW, imgH int, pageW, pageH float64) (Layout, error) {
	if imgW <= 0 || imgH <= 0 || pageW <= 0 || pageH <= 0 {
		return Layout{}, ErrEmptyContent
	}

	renderH := float64(imgH) * pageW / float64(imgW)
	layout := Layout{
		PageWidth:    pageW,
		PageHeight:   pageH,
		RenderHeight: renderH,
		Offsets:      []float64{0},
	}

	heightLeft := renderH - pageH
	for heightLeft > pageEpsilon {
		layout.Offsets = append(layout.Offsets, -(renderH - heightLeft))
		heightLeft -= pageH
	}
	return layout, nil
}
