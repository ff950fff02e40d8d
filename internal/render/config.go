package render

import "image/color"

// Icon palette. Values match the GManager brand blues.
var (
	Primary   = color.RGBA{R: 0x34, G: 0x73, B: 0xC9, A: 0xFF} // #3473c9
	Dark      = color.RGBA{R: 0x23, G: 0x4D, B: 0x89, A: 0xFF} // #234d89
	Highlight = color.RGBA{R: 0x64, G: 0xA0, B: 0xE6, A: 0xFF} // #64a0e6, not drawn
	White     = color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}

	// Shadow is a translucent navy, rgba(30,65,120,100) non-premultiplied.
	Shadow = color.NRGBA{R: 30, G: 65, B: 120, A: 100}
)

// Shackle sweep in degrees, measured clockwise from 3 o'clock.
const (
	ShackleStartDeg = 0
	ShackleEndDeg   = 180
)
