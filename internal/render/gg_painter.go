package render

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/fogleman/gg"
)

type ggPainter struct {
	dc *gg.Context
}

func newGGPainter(size int) *ggPainter {
	return &ggPainter{dc: gg.NewContext(size, size)}
}

func (p *ggPainter) FillRect(rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	p.dc.DrawRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()))
	p.fillWith(c)
}

func (p *ggPainter) FillRoundedRect(rect image.Rectangle, radius float64, c color.Color) {
	if rect.Empty() {
		return
	}
	r := clampRadius(rect, radius)
	p.dc.DrawRoundedRectangle(float64(rect.Min.X), float64(rect.Min.Y), float64(rect.Dx()), float64(rect.Dy()), r)
	p.fillWith(c)
}

func (p *ggPainter) FillEllipse(rect image.Rectangle, c color.Color) {
	if rect.Empty() {
		return
	}
	cx := float64(rect.Min.X+rect.Max.X) / 2
	cy := float64(rect.Min.Y+rect.Max.Y) / 2
	p.dc.DrawEllipse(cx, cy, float64(rect.Dx())/2, float64(rect.Dy())/2)
	p.fillWith(c)
}

func (p *ggPainter) StrokeArc(rect image.Rectangle, startDeg, endDeg, width float64, c color.Color) {
	cx, cy, rx, ry, ok := arcEllipse(rect, width)
	if !ok || endDeg <= startDeg {
		return
	}
	p.dc.NewSubPath()
	p.dc.DrawEllipticalArc(cx, cy, rx, ry, gg.Radians(startDeg), gg.Radians(endDeg))
	p.dc.SetColor(c)
	p.dc.SetLineWidth(width)
	p.dc.SetLineCap(gg.LineCapButt)
	p.dc.SetLineJoin(gg.LineJoinRound)
	p.dc.Stroke()
}

func (p *ggPainter) fillWith(c color.Color) {
	p.dc.SetColor(c)
	p.dc.Fill()
}

func (p *ggPainter) Image() *image.RGBA {
	if rgba, ok := p.dc.Image().(*image.RGBA); ok {
		return rgba
	}
	src := p.dc.Image()
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Src)
	return dst
}
