// Package ico bundles rendered frames into a multi-resolution ICO file.
package ico

import (
	"encoding/binary"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	goico "github.com/sergeymakinen/go-ico"
)

// MaxFrameSize is the largest edge an ICO directory entry can record.
const MaxFrameSize = 256

const typeIcon = 1

var (
	ErrNoFrames       = errors.New("ico: no frames")
	ErrFrameTooLarge  = errors.New("ico: frame larger than 256px")
	ErrInvalidHeader  = errors.New("ico: invalid header")
	ErrTruncatedEntry = errors.New("ico: truncated directory")
)

// RenderFunc draws one square frame of the given size.
type RenderFunc func(size int) (*image.RGBA, error)

type Frame struct {
	Size  int
	Image image.Image
}

// Icon is an ordered set of frames.
type Icon struct {
	Frames []Frame
}

// Directory layout, read back by ReadSizes.
type iconDir struct {
	Reserved uint16
	Type     uint16
	Count    uint16
}

type iconDirEntry struct {
	Width       uint8
	Height      uint8
	ColorCount  uint8
	Reserved    uint8
	Planes      uint16
	BitCount    uint16
	BytesInRes  uint32
	ImageOffset uint32
}

// Pack renders one frame per size, in the order given. Sizes are neither
// deduplicated nor sorted.
func Pack(sizes []int, render RenderFunc) (*Icon, error) {
	if len(sizes) == 0 {
		return nil, ErrNoFrames
	}
	icon := &Icon{Frames: make([]Frame, 0, len(sizes))}
	for _, size := range sizes {
		if size > MaxFrameSize {
			return nil, fmt.Errorf("%w: %d", ErrFrameTooLarge, size)
		}
		img, err := render(size)
		if err != nil {
			return nil, fmt.Errorf("render %dpx frame: %w", size, err)
		}
		icon.Frames = append(icon.Frames, Frame{Size: size, Image: img})
	}
	return icon, nil
}

// Sizes returns the frame sizes in container order.
func (icon *Icon) Sizes() []int {
	sizes := make([]int, len(icon.Frames))
	for i, f := range icon.Frames {
		sizes[i] = f.Size
	}
	return sizes
}

// Encode writes the icon as an ICO container, one entry per frame in
// frame order.
func (icon *Icon) Encode(w io.Writer) error {
	if len(icon.Frames) == 0 {
		return ErrNoFrames
	}
	images := make([]image.Image, len(icon.Frames))
	for i, f := range icon.Frames {
		b := f.Image.Bounds()
		if b.Dx() > MaxFrameSize || b.Dy() > MaxFrameSize {
			return fmt.Errorf("%w: %dx%d", ErrFrameTooLarge, b.Dx(), b.Dy())
		}
		images[i] = f.Image
	}
	if err := goico.EncodeAll(w, images); err != nil {
		return fmt.Errorf("encode %d frames: %w", len(images), err)
	}
	return nil
}

// WriteFile encodes the icon to path, replacing any existing file.
func (icon *Icon) WriteFile(path string) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return icon.Encode(f)
}

// ReadSizes returns the width x height of every directory entry of an ICO
// stream, in container order.
func ReadSizes(r io.Reader) ([]image.Point, error) {
	var dir iconDir
	if err := binary.Read(r, binary.LittleEndian, &dir); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidHeader, err)
	}
	if dir.Reserved != 0 || dir.Type != typeIcon {
		return nil, fmt.Errorf("%w: reserved=%d type=%d", ErrInvalidHeader, dir.Reserved, dir.Type)
	}
	sizes := make([]image.Point, 0, dir.Count)
	for i := 0; i < int(dir.Count); i++ {
		var entry iconDirEntry
		if err := binary.Read(r, binary.LittleEndian, &entry); err != nil {
			return nil, fmt.Errorf("%w: entry %d: %v", ErrTruncatedEntry, i, err)
		}
		sizes = append(sizes, image.Pt(edge(entry.Width), edge(entry.Height)))
	}
	return sizes, nil
}

// 256 does not fit a byte and is stored as 0.
func edge(v uint8) int {
	if v == 0 {
		return MaxFrameSize
	}
	return int(v)
}
