//go:build !linux

package preview

import (
	"context"
	"image"
	"time"

	"github.com/gmanager/lockicon/internal/system"
)

type logger interface {
	Infof(string, string, ...interface{})
	Errorf(string, string, ...interface{})
}

// ShowOnFramebuffer is only available on Linux.
func ShowOnFramebuffer(ctx context.Context, device string, sheet image.Image, hold time.Duration, l logger) error {
	return system.ErrUnsupported
}
