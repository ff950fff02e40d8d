//go:build linux

package preview

import (
	"context"
	"fmt"
	"image"
	"time"

	"github.com/gmanager/lockicon/internal/system"
	fb "github.com/gonutz/framebuffer"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// ShowOnFramebuffer draws sheet on the framebuffer device, holds it for
// hold or until ctx is done, then gives the console back.
func ShowOnFramebuffer(ctx context.Context, device string, sheet image.Image, hold time.Duration, l logger) error {
	dev, err := fb.Open(device)
	if err != nil {
		return fmt.Errorf("open %s: %w", device, err)
	}
	defer dev.Close()
	bounds := dev.Bounds()
	l.Infof("fb", "framebuffer open, bounds=%dx%d", bounds.Dx(), bounds.Dy())

	// Graphics mode keeps the console from scrolling over the preview.
	system.SetGraphicsModeWithLog(l)
	system.HideCursorWithLog(l)
	defer func() {
		system.ShowCursorWithLog(l)
		system.RestoreTextModeWithLog(l)
	}()

	blit(dev, FitToScreen(sheet, bounds))
	l.Infof("fb", "preview shown for %s", hold)

	timer := time.NewTimer(hold)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
	return nil
}
