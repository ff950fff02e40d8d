package render

import (
	"image"
	"testing"
)

func TestNewGeometry(t *testing.T) {
	tests := []struct {
		size int
		want Geometry
	}{
		{
			size: 32,
			want: Geometry{
				Size: 32, Padding: 3, BoxSize: 26, CornerRadius: 5,
				Shadow:           Box{3, 3, 29, 29},
				Badge:            Box{3, 3, 29, 29},
				Shackle:          Box{10, -5, 23, 7},
				ShackleThickness: 2,
				KeyholeCenter:    image.Pt(16, 17),
				KeyholeRadius:    2,
				Keyhole:          Box{14, 15, 18, 19},
				Stem:             Box{15, 17, 17, 20},
			},
		},
		{
			size: 128,
			want: Geometry{
				Size: 128, Padding: 12, BoxSize: 104, CornerRadius: 20,
				Shadow:           Box{15, 15, 119, 119},
				Badge:            Box{12, 12, 116, 116},
				Shackle:          Box{38, -24, 90, 28},
				ShackleThickness: 5,
				KeyholeCenter:    image.Pt(64, 70),
				KeyholeRadius:    10,
				Keyhole:          Box{54, 60, 74, 80},
				Stem:             Box{59, 70, 69, 85},
			},
		},
	}
	for _, tt := range tests {
		if got := NewGeometry(tt.size); got != tt.want {
			t.Errorf("NewGeometry(%d) =\n%+v\nwant\n%+v", tt.size, got, tt.want)
		}
	}
}

func TestBoxRectIsInclusive(t *testing.T) {
	r := Box{2, 3, 5, 7}.Rect()
	if r != image.Rect(2, 3, 6, 8) {
		t.Errorf("Rect() = %v", r)
	}
	if r.Dx() != 4 || r.Dy() != 5 {
		t.Errorf("Rect() size = %dx%d, want 4x5", r.Dx(), r.Dy())
	}
}

func TestShadowOffsetGrowsWithSize(t *testing.T) {
	for _, size := range []int{16, 32, 48, 128, 256, 512} {
		g := NewGeometry(size)
		offset := g.Shadow.X0 - g.Badge.X0
		if offset != size/40 {
			t.Errorf("size %d: shadow offset = %d, want %d", size, offset, size/40)
		}
		if g.Shadow.X1-g.Shadow.X0 != g.BoxSize {
			t.Errorf("size %d: shadow width = %d, want %d", size, g.Shadow.X1-g.Shadow.X0, g.BoxSize)
		}
	}
}
