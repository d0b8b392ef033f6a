package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name        string
		imgW, imgH  int
		pageW       float64
		pageH       float64
		wantOffsets []float64
	}{
		{name: "shorter than a page", imgW: 100, imgH: 40, pageW: 100, pageH: 100, wantOffsets: []float64{0}},
		{name: "exactly one page", imgW: 100, imgH: 100, pageW: 100, pageH: 100, wantOffsets: []float64{0}},
		{name: "exactly three pages", imgW: 100, imgH: 300, pageW: 100, pageH: 100, wantOffsets: []float64{0, -100, -200}},
		{name: "three point four pages", imgW: 100, imgH: 340, pageW: 100, pageH: 100, wantOffsets: []float64{0, -100, -200, -300}},
		{name: "scaled down to page width", imgW: 200, imgH: 500, pageW: 100, pageH: 100, wantOffsets: []float64{0, -100, -200}},
		{name: "single pixel", imgW: 1, imgH: 1, pageW: 100, pageH: 100, wantOffsets: []float64{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			layout, err := Paginate(tt.imgW, tt.imgH, tt.pageW, tt.pageH)
			require.NoError(t, err)
			assert.Equal(t, len(tt.wantOffsets), layout.PageCount())
			for i, want := range tt.wantOffsets {
				assert.InDelta(t, want, layout.Offsets[i], 1e-9)
			}
		})
	}
}

func TestPaginate_A4(t *testing.T) {
	// 900 CSS px at scale 2 on a 210 x 297 mm page
	layout, err := Paginate(1800, 8655, 210, 297)
	require.NoError(t, err)

	assert.InDelta(t, 1009.75, layout.RenderHeight, 1e-9)
	assert.Equal(t, 4, layout.PageCount())
	assert.InDelta(t, -891.0, layout.Offsets[3], 1e-9)
}

func TestPaginate_EmptyContent(t *testing.T) {
	for _, dims := range [][4]float64{
		{0, 100, 210, 297},
		{100, 0, 210, 297},
		{-1, 100, 210, 297},
		{100, 100, 0, 297},
		{100, 100, 210, 0},
	} {
		_, err := Paginate(int(dims[0]), int(dims[1]), dims[2], dims[3])
		assert.ErrorIs(t, err, ErrEmptyContent)
	}
}
