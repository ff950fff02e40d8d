package app

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/gmanager/lockicon/internal/ico"
	"github.com/gmanager/lockicon/internal/preview"
	"github.com/gmanager/lockicon/internal/render"
)

const (
	dirPerm     = os.FileMode(0o755)
	previewName = "preview.png"
)

var errEmptyOutput = errors.New("output has no sizes")

type App struct {
	Config   Config
	Plan     []Output
	Renderer *render.Renderer
	Logger   Logger

	showFramebuffer func(ctx context.Context, device string, sheet image.Image, hold time.Duration) error
}

func New(cfg Config, logger Logger) *App {
	if logger == nil {
		logger = NoopLogger{}
	}
	renderer := render.NewRenderer(cfg.Backend)
	renderer.Logger = logger
	a := &App{Config: cfg, Plan: DefaultPlan(), Renderer: renderer, Logger: logger}
	a.showFramebuffer = func(ctx context.Context, device string, sheet image.Image, hold time.Duration) error {
		return preview.ShowOnFramebuffer(ctx, device, sheet, hold, a.Logger)
	}
	return a
}

// Run writes every planned output into Config.OutDir, creating it when
// absent. Outputs are written one after another; the first failure stops
// the run. ctx is checked between outputs.
func (app *App) Run(ctx context.Context) error {
	outDir := app.Config.OutDir
	if outDir == "" {
		outDir = DefaultOutDir
	}
	if err := os.MkdirAll(outDir, dirPerm); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}
	app.Logger.Infof("app", "writing icons to %s", outDir)

	for _, out := range app.Plan {
		if err := ctx.Err(); err != nil {
			return err
		}
		path := filepath.Join(outDir, out.Name)
		if err := app.writeOutput(out, path); err != nil {
			app.Logger.Errorf("app", "%s: %v", out.Name, err)
			return fmt.Errorf("write %s: %w", out.Name, err)
		}
		if out.Note != "" {
			app.Logger.Infof("app", "note: %s", out.Note)
		}
	}

	if app.Config.Sheet || app.Config.Framebuffer {
		if err := app.preview(ctx, outDir); err != nil {
			return err
		}
	}

	app.Logger.Infof("app", "all icons created")
	return nil
}

func (app *App) writeOutput(out Output, path string) error {
	if len(out.Sizes) == 0 {
		return errEmptyOutput
	}
	switch out.Kind {
	case KindPNG:
		img, err := app.Renderer.Render(out.Sizes[0])
		if err != nil {
			return err
		}
		if err := writePNG(path, img); err != nil {
			return err
		}
		app.Logger.Infof("app", "created %s (%dx%d)", path, out.Sizes[0], out.Sizes[0])
		return nil
	case KindICO:
		icon, err := ico.Pack(out.Sizes, app.Renderer.Render)
		if err != nil {
			return err
		}
		if err := icon.WriteFile(path); err != nil {
			return err
		}
		recorded, err := readICOSizes(path)
		if err != nil {
			return fmt.Errorf("verify: %w", err)
		}
		app.Logger.Infof("app", "created %s (ICO with sizes: %v)", path, recorded)
		return nil
	default:
		return fmt.Errorf("unsupported output kind %v", out.Kind)
	}
}

func (app *App) preview(ctx context.Context, outDir string) error {
	sizes := PreviewSizes(app.Plan)
	frames := make([]preview.Frame, 0, len(sizes))
	for _, size := range sizes {
		img, err := app.Renderer.Render(size)
		if err != nil {
			return fmt.Errorf("preview %dpx: %w", size, err)
		}
		frames = append(frames, preview.Frame{Size: size, Image: img})
	}
	sheet := preview.Compose(frames, preview.SheetOptions{})

	if app.Config.Sheet {
		path := filepath.Join(outDir, previewName)
		if err := writePNG(path, sheet); err != nil {
			return fmt.Errorf("write %s: %w", previewName, err)
		}
		app.Logger.Infof("app", "created %s (%dx%d)", path, sheet.Bounds().Dx(), sheet.Bounds().Dy())
	}
	if app.Config.Framebuffer {
		// The icons are already on disk; a missing framebuffer is not fatal.
		if err := app.showFramebuffer(ctx, app.Config.FBDevice, sheet, app.Config.FBHold); err != nil {
			app.Logger.Errorf("fb", "preview on %s failed: %v", app.Config.FBDevice, err)
		}
	}
	return nil
}

func writePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return png.Encode(f, img)
}

func readICOSizes(path string) ([]int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	points, err := ico.ReadSizes(f)
	if err != nil {
		return nil, err
	}
	sizes := make([]int, len(points))
	for i, p := range points {
		sizes[i] = p.X
	}
	return sizes, nil
}
