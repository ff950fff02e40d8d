package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/golang/freetype/raster"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// kappa places cubic control points so four curves approximate a circle.
const kappa = 0.5522847498

// Degrees per line segment when flattening arcs for stroking.
const arcStepDeg = 3.0

// rasterPainter fills shapes with an x/image/vector rasterizer and strokes
// arcs with the freetype rasterizer. Both composite with draw.Over.
type rasterPainter struct {
	canvas *image.RGBA
	z      vector.Rasterizer
}

func newRasterPainter(size int) *rasterPainter {
	return &rasterPainter{canvas: image.NewRGBA(image.Rect(0, 0, size, size))}
}

func (p *rasterPainter) Image() *image.RGBA { return p.canvas }

func (p *rasterPainter) begin() *vector.Rasterizer {
	b := p.canvas.Bounds()
	p.z.Reset(b.Dx(), b.Dy())
	p.z.DrawOp = draw.Over
	return &p.z
}

func (p *rasterPainter) fill(c color.Color) {
	p.z.Draw(p.canvas, p.canvas.Bounds(), image.NewUniform(c), image.Point{})
}

func (p *rasterPainter) FillRect(rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	x0, y0, x1, y1 := edges(rect)
	z := p.begin()
	z.MoveTo(x0, y0)
	z.LineTo(x1, y0)
	z.LineTo(x1, y1)
	z.LineTo(x0, y1)
	z.ClosePath()
	p.fill(c)
}

func (p *rasterPainter) FillRoundedRect(rect image.Rectangle, radius float64, c color.Color) {
	if rect.Empty() {
		return
	}
	r := float32(clampRadius(rect, radius))
	if r <= 0 {
		p.FillRect(rect, c)
		return
	}
	x0, y0, x1, y1 := edges(rect)
	k := r * (1 - kappa)
	z := p.begin()
	z.MoveTo(x0+r, y0)
	z.LineTo(x1-r, y0)
	z.CubeTo(x1-k, y0, x1, y0+k, x1, y0+r)
	z.LineTo(x1, y1-r)
	z.CubeTo(x1, y1-k, x1-k, y1, x1-r, y1)
	z.LineTo(x0+r, y1)
	z.CubeTo(x0+k, y1, x0, y1-k, x0, y1-r)
	z.LineTo(x0, y0+r)
	z.CubeTo(x0, y0+k, x0+k, y0, x0+r, y0)
	z.ClosePath()
	p.fill(c)
}

func (p *rasterPainter) FillEllipse(rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	x0, y0, x1, y1 := edges(rect)
	cx, cy := (x0+x1)/2, (y0+y1)/2
	rx, ry := (x1-x0)/2, (y1-y0)/2
	kx, ky := rx*kappa, ry*kappa
	z := p.begin()
	z.MoveTo(cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.ClosePath()
	p.fill(c)
}

func (p *rasterPainter) StrokeArc(rect image.Rectangle, startDeg, endDeg, width float64, c color.Color) {
	cx, cy, rx, ry, ok := arcEllipse(rect, width)
	if !ok || endDeg <= startDeg {
		return
	}
	steps := int(math.Ceil((endDeg - startDeg) / arcStepDeg))
	var path raster.Path
	for i := 0; i <= steps; i++ {
		theta := (startDeg + (endDeg-startDeg)*float64(i)/float64(steps)) * math.Pi / 180
		pt := fixedPoint(cx+rx*math.Cos(theta), cy+ry*math.Sin(theta))
		if i == 0 {
			path.Start(pt)
			continue
		}
		path.Add1(pt)
	}

	b := p.canvas.Bounds()
	r := raster.NewRasterizer(b.Dx(), b.Dy())
	r.UseNonZeroWinding = true
	r.AddStroke(path, fixed.Int26_6(math.Round(width*64)), raster.ButtCapper, raster.RoundJoiner)
	painter := raster.NewRGBAPainter(p.canvas)
	painter.SetColor(c)
	r.Rasterize(painter)
}

// arcEllipse returns the centre line of a stroke of the given width that
// stays inside rect.
func arcEllipse(rect image.Rectangle, width float64) (cx, cy, rx, ry float64, ok bool) {
	if rect.Empty() || width <= 0 {
		return 0, 0, 0, 0, false
	}
	cx = float64(rect.Min.X+rect.Max.X) / 2
	cy = float64(rect.Min.Y+rect.Max.Y) / 2
	rx = float64(rect.Dx())/2 - width/2
	ry = float64(rect.Dy())/2 - width/2
	if rx <= 0 || ry <= 0 {
		return 0, 0, 0, 0, false
	}
	return cx, cy, rx, ry, true
}

func clampRadius(rect image.Rectangle, radius float64) float64 {
	limit := float64(min(rect.Dx(), rect.Dy())) / 2
	if radius > limit {
		return limit
	}
	return radius
}

func edges(rect image.Rectangle) (x0, y0, x1, y1 float32) {
	return float32(rect.Min.X), float32(rect.Min.Y), float32(rect.Max.X), float32(rect.Max.Y)
}

func fixedPoint(x, y float64) fixed.Point26_6 {
	return fixed.Point26_6{X: fixed.Int26_6(math.Round(x * 64)), Y: fixed.Int26_6(math.Round(y * 64))}
}
