package document

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

const (
	// DefaultWidthPx is the CSS width reports are laid out at.
	DefaultWidthPx = 900
	// DefaultScale is the device scale factor used when capturing.
	DefaultScale = 2.0
)

// Rasterizer renders an HTML fragment to a single tall image.
type Rasterizer interface {
	Rasterize(ctx context.Context, html string) (image.Image, error)
}

// ChromeRasterizer renders HTML with a headless Chrome started per call.
type ChromeRasterizer struct {
	execPath string
	widthPx  int64
	scale    float64
}

// NewChromeRasterizer creates a rasterizer. An empty execPath lets chromedp locate Chrome.
func NewChromeRasterizer(execPath string) *ChromeRasterizer {
	return &ChromeRasterizer{execPath: execPath, widthPx: DefaultWidthPx, scale: DefaultScale}
}

var _ Rasterizer = (*ChromeRasterizer)(nil)

func (r *ChromeRasterizer) Rasterize(ctx context.Context, html string) (image.Image, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.WindowSize(int(r.widthPx), 1200),
	)
	if r.execPath != "" {
		opts = append(opts, chromedp.ExecPath(r.execPath))
	}

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()
	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var shot []byte
	err := chromedp.Run(browserCtx,
		chromedp.EmulateViewport(r.widthPx, 1, chromedp.EmulateScale(r.scale)),
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			tree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(tree.Frame.ID, wrapDocument(html, r.widthPx)).Do(ctx)
		}),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.FullScreenshot(&shot, 100),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to rasterize report html: %w", err)
	}
	if len(shot) == 0 {
		return nil, ErrEmptyContent
	}

	img, _, err := image.Decode(bytes.NewReader(shot))
	if err != nil {
		return nil, fmt.Errorf("failed to decode report screenshot: %w", err)
	}
	return img, nil
}

func wrapDocument(body string, widthPx int64) string {
	return fmt.Sprintf(`<!DOCTYPE html><html><head><meta charset="utf-8">`+
		`<style>html,body{margin:0;padding:0;background:#fff;}.wrap{width:%dpx;background:#fff;}</style>`+
		`</head><body><div class="wrap">%s</div></body></html>`, widthPx, body)
}
