package render

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"strings"
)

// ErrInvalidSize is returned when a non-positive canvas size is requested.
var ErrInvalidSize = errors.New("icon size must be positive")

// Painter is the set of primitives the icon is composed from.
// Rectangles are half-open pixel rectangles on the canvas; shapes are
// composited over whatever is already drawn.
type Painter interface {
	FillRoundedRect(rect image.Rectangle, radius float64, c color.Color)
	FillEllipse(rect image.Rectangle, c color.Color)
	FillRect(rect image.Rectangle, c color.Color)

	// StrokeArc strokes the part of the ellipse inscribed in rect between
	// startDeg and endDeg (clockwise from 3 o'clock). The stroke lies
	// inside rect.
	StrokeArc(rect image.Rectangle, startDeg, endDeg, width float64, c color.Color)

	Image() *image.RGBA
}

type Backend string

const (
	// BackendRaster fills with x/image/vector and strokes with freetype.
	BackendRaster Backend = "raster"
	// BackendGG draws every primitive through fogleman/gg.
	BackendGG Backend = "gg"
)

// Backends lists the supported painter backends.
func Backends() []Backend { return []Backend{BackendRaster, BackendGG} }

// ParseBackend resolves a backend name; empty selects BackendRaster.
func ParseBackend(name string) (Backend, error) {
	switch Backend(strings.ToLower(strings.TrimSpace(name))) {
	case "", BackendRaster:
		return BackendRaster, nil
	case BackendGG:
		return BackendGG, nil
	default:
		return "", fmt.Errorf("unknown render backend %q (want raster | gg)", name)
	}
}

// NewPainter returns a painter of the given backend on a transparent
// size x size canvas.
func NewPainter(backend Backend, size int) (Painter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	switch backend {
	case "", BackendRaster:
		return newRasterPainter(size), nil
	case BackendGG:
		return newGGPainter(size), nil
	default:
		return nil, fmt.Errorf("unknown render backend %q", backend)
	}
}

// Renderer draws the lock icon.
type Renderer struct {
	Backend Backend
	Logger  interface {
		Infof(string, string, ...interface{})
		Errorf(string, string, ...interface{})
	}
}

func NewRenderer(backend Backend) *Renderer { return &Renderer{Backend: backend} }

// Render draws the icon on a fresh size x size canvas. The result depends
// only on size and the backend.
func (r *Renderer) Render(size int) (*image.RGBA, error) {
	p, err := NewPainter(r.Backend, size)
	if err != nil {
		if r.Logger != nil {
			r.Logger.Errorf("render", "painter for %dpx: %v", size, err)
		}
		return nil, err
	}
	g := NewGeometry(size)

	radius := float64(g.CornerRadius)
	p.FillRoundedRect(g.Shadow.Rect(), radius, Shadow)
	p.FillRoundedRect(g.Badge.Rect(), radius, Primary)
	p.StrokeArc(g.Shackle.Rect(), ShackleStartDeg, ShackleEndDeg, float64(g.ShackleThickness), White)
	p.FillEllipse(g.Keyhole.Rect(), White)
	p.FillRect(g.Stem.Rect(), White)

	if r.Logger != nil {
		r.Logger.Infof("render", "rendered %dx%d (%s)", size, size, r.backendName())
	}
	return p.Image(), nil
}

func (r *Renderer) backendName() Backend {
	if r.Backend == "" {
		return BackendRaster
	}
	return r.Backend
}

// Render draws the icon with the default backend.
func Render(size int) (*image.RGBA, error) {
	return NewRenderer(BackendRaster).Render(size)
}
