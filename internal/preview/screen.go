package preview

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/gmanager/lockicon/internal/render/layout"
	xdraw "golang.org/x/image/draw"
)

// ScreenBackground fills the framebuffer around the sheet.
var ScreenBackground = color.RGBA{R: 0x10, G: 0x1A, B: 0x2B, A: 0xFF}

const screenMarginPx = 32

// FitToScreen scales sheet into screen, keeping its aspect ratio, on an
// opaque background. The sheet is never enlarged past 2x.
func FitToScreen(sheet image.Image, screen image.Rectangle) *image.RGBA {
	canvas := image.NewRGBA(image.Rect(0, 0, screen.Dx(), screen.Dy()))
	draw.Draw(canvas, canvas.Bounds(), &image.Uniform{C: ScreenBackground}, image.Point{}, draw.Src)

	sb := sheet.Bounds()
	if sb.Empty() {
		return canvas
	}
	area := layout.Inset(canvas.Bounds(), screenMarginPx)
	dst := layout.FitRect(area, sb.Dx(), sb.Dy())
	if dst.Dx() > 2*sb.Dx() {
		dst = layout.CenterIn(area, 2*sb.Dx(), 2*sb.Dy())
	}
	xdraw.NearestNeighbor.Scale(canvas, dst, sheet, sb, xdraw.Over, nil)
	return canvas
}

type pixelSetter interface {
	Bounds() image.Rectangle
	Set(x, y int, c color.Color)
}

// blit copies canvas onto dst pixel by pixel, forcing full opacity.
func blit(dst pixelSetter, canvas *image.RGBA) {
	bounds := dst.Bounds()
	for y := 0; y < bounds.Dy() && y < canvas.Bounds().Dy(); y++ {
		for x := 0; x < bounds.Dx() && x < canvas.Bounds().Dx(); x++ {
			pixel := canvas.RGBAAt(x, y)
			dst.Set(bounds.Min.X+x, bounds.Min.Y+y, color.RGBA{R: pixel.R, G: pixel.G, B: pixel.B, A: 0xFF})
		}
	}
}
