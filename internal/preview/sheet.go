// Package preview lays rendered icon sizes out on a single contact sheet
// and can show that sheet on the Linux framebuffer console.
package preview

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gmanager/lockicon/internal/render/layout"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

var (
	CheckerLight = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}
	CheckerDark  = color.RGBA{R: 0xCC, G: 0xCC, B: 0xCC, A: 0xFF}
	LabelColor   = color.RGBA{R: 0x23, G: 0x4D, B: 0x89, A: 0xFF}
)

const (
	defaultPaddingPx     = 16
	defaultGapPx         = 16
	defaultLabelHeightPx = 24
	checkerTilePx        = 8
)

type Frame struct {
	Size  int
	Image image.Image
}

// SheetOptions tunes the sheet layout; zero values select defaults.
type SheetOptions struct {
	PaddingPx     int
	GapPx         int
	LabelHeightPx int
}

func (o SheetOptions) withDefaults() SheetOptions {
	if o.PaddingPx <= 0 {
		o.PaddingPx = defaultPaddingPx
	}
	if o.GapPx <= 0 {
		o.GapPx = defaultGapPx
	}
	if o.LabelHeightPx <= 0 {
		o.LabelHeightPx = defaultLabelHeightPx
	}
	return o
}

// Compose places frames left to right on a checkerboard, each centred
// above a "WxH" label. Frames keep their pixel size.
func Compose(frames []Frame, opts SheetOptions) *image.RGBA {
	opts = opts.withDefaults()

	widths := make([]int, len(frames))
	tallest := 0
	for i, f := range frames {
		b := f.Image.Bounds()
		widths[i] = b.Dx()
		tallest = max(tallest, b.Dy())
	}
	cells := layout.Row(image.Pt(opts.PaddingPx, opts.PaddingPx), widths, tallest+opts.LabelHeightPx, opts.GapPx)

	width := 2 * opts.PaddingPx
	if n := len(cells); n > 0 {
		width = cells[n-1].Max.X + opts.PaddingPx
	}
	height := 2*opts.PaddingPx + tallest + opts.LabelHeightPx
	sheet := image.NewRGBA(image.Rect(0, 0, width, height))
	fillChecker(sheet, sheet.Bounds())

	face := basicfont.Face7x13
	for i, f := range frames {
		iconArea, labelArea := layout.SplitHorizontal(cells[i], tallest)
		b := f.Image.Bounds()
		dst := layout.CenterIn(iconArea, b.Dx(), b.Dy())
		draw.Draw(sheet, dst, f.Image, b.Min, draw.Over)
		drawLabel(sheet, labelArea, fmt.Sprintf("%dx%d", b.Dx(), b.Dy()), face)
	}
	return sheet
}

func fillChecker(img *image.RGBA, rect image.Rectangle) {
	light := &image.Uniform{C: CheckerLight}
	dark := &image.Uniform{C: CheckerDark}
	for y := rect.Min.Y; y < rect.Max.Y; y += checkerTilePx {
		for x := rect.Min.X; x < rect.Max.X; x += checkerTilePx {
			src := light
			if ((x-rect.Min.X)/checkerTilePx+(y-rect.Min.Y)/checkerTilePx)%2 == 1 {
				src = dark
			}
			tile := image.Rect(x, y, x+checkerTilePx, y+checkerTilePx).Intersect(rect)
			draw.Draw(img, tile, src, image.Point{}, draw.Src)
		}
	}
}

// drawLabel centres text horizontally on rect and vertically on its
// cap height.
func drawLabel(img *image.RGBA, rect image.Rectangle, text string, face font.Face) {
	drawer := &font.Drawer{Dst: img, Src: image.NewUniform(LabelColor), Face: face}
	textWidth := drawer.MeasureString(text).Ceil()
	ascent := face.Metrics().Ascent.Ceil()
	x := rect.Min.X + (rect.Dx()-textWidth)/2
	baseline := rect.Min.Y + (rect.Dy()+ascent)/2
	drawer.Dot = fixed.P(x, baseline)
	drawer.DrawString(text)
}
