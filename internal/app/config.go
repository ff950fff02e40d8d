package app

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/gmanager/lockicon/internal/render"
)

const (
	EnvOutDir   = "LOCKICON_OUT_DIR"
	EnvBackend  = "LOCKICON_BACKEND"
	EnvStdioLog = "LOCKICON_STDIO_LOG"
	EnvFBDevice = "LOCKICON_FB_DEVICE"
	EnvDebug    = "LOCKICON_DEBUG"
)

const (
	DefaultOutDir   = "icons"
	DefaultFBDevice = "/dev/fb0"
	DefaultFBHold   = 5 * time.Second
)

// Config contains settings for one generator run. The output plan itself
// is fixed; see DefaultPlan.
type Config struct {
	OutDir   string
	Backend  render.Backend
	StdioLog string
	Debug    bool

	// Sheet writes preview.png next to the icons.
	Sheet bool

	// Framebuffer shows the preview sheet on FBDevice for FBHold.
	Framebuffer bool
	FBDevice    string
	FBHold      time.Duration
}

// DefaultConfigFromEnv returns the defaults, overridden by LOCKICON_*
// environment variables when set.
func DefaultConfigFromEnv() (Config, error) {
	cfg := Config{
		OutDir:   DefaultOutDir,
		Backend:  render.BackendRaster,
		FBDevice: DefaultFBDevice,
		FBHold:   DefaultFBHold,
	}
	if v := os.Getenv(EnvOutDir); v != "" {
		cfg.OutDir = v
	}
	if v := os.Getenv(EnvBackend); v != "" {
		backend, err := render.ParseBackend(v)
		if err != nil {
			return Config{}, fmt.Errorf("%s: %w", EnvBackend, err)
		}
		cfg.Backend = backend
	}
	cfg.StdioLog = os.Getenv(EnvStdioLog)
	if v := os.Getenv(EnvFBDevice); v != "" {
		cfg.FBDevice = v
	}
	if raw := os.Getenv(EnvDebug); raw != "" {
		parsed, err := strconv.ParseBool(raw)
		if err != nil {
			return Config{}, fmt.Errorf("%s must be a boolean (got %q): %w", EnvDebug, raw, err)
		}
		cfg.Debug = parsed
	}
	return cfg, nil
}
