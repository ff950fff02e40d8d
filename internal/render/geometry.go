package render

import "image"

// Box is an inclusive pixel box: it covers pixels X0..X1 and Y0..Y1.
type Box struct {
	X0, Y0, X1, Y1 int
}

// Rect converts the inclusive box to a half-open image.Rectangle.
func (b Box) Rect() image.Rectangle {
	return image.Rect(b.X0, b.Y0, b.X1+1, b.Y1+1)
}

// Geometry holds every coordinate the icon is drawn from.
// All values derive from Size with integer arithmetic.
type Geometry struct {
	Size         int
	Padding      int
	BoxSize      int
	CornerRadius int

	Shadow Box
	Badge  Box

	Shackle          Box
	ShackleThickness int

	KeyholeCenter image.Point
	KeyholeRadius int
	Keyhole       Box
	Stem          Box
}

// NewGeometry lays out the icon for a canvas of size x size pixels.
func NewGeometry(size int) Geometry {
	padding := size / 10
	boxSize := size - 2*padding
	g := Geometry{
		Size:         size,
		Padding:      padding,
		BoxSize:      boxSize,
		CornerRadius: boxSize / 5,
	}

	shadowPadding := padding + size/40
	g.Shadow = Box{shadowPadding, shadowPadding, shadowPadding + boxSize, shadowPadding + boxSize}
	g.Badge = Box{padding, padding, padding + boxSize, padding + boxSize}

	shackleWidth := boxSize / 2
	shackleHeight := boxSize / 2
	shackleX := padding + boxSize/2 - shackleWidth/2
	shackleY := padding - boxSize/10
	g.Shackle = Box{shackleX, shackleY - shackleHeight/2, shackleX + shackleWidth, shackleY + shackleHeight/2}
	g.ShackleThickness = max(2, size/25)

	center := image.Pt(size/2, size/2+size/20)
	radius := size / 12
	g.KeyholeCenter = center
	g.KeyholeRadius = radius
	g.Keyhole = Box{center.X - radius, center.Y - radius, center.X + radius, center.Y + radius}

	stemWidth := radius
	stemHeight := radius * 3 / 2
	g.Stem = Box{center.X - stemWidth/2, center.Y, center.X + stemWidth/2, center.Y + stemHeight}
	return g
}
