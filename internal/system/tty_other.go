//go:build !linux

package system

func SetGraphicsMode() error { return ErrUnsupported }
func RestoreTextMode() error { return ErrUnsupported }
func HideCursor() error      { return ErrUnsupported }
func ShowCursor() error      { return ErrUnsupported }
