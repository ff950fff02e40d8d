package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gmanager/lockicon/internal/app"
	"github.com/gmanager/lockicon/internal/render"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "lockicon: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	defaults, err := app.DefaultConfigFromEnv()
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}

	// Flags
	outDir := flag.String("out", defaults.OutDir, "output directory, created if absent; also configurable via "+app.EnvOutDir)
	backend := flag.String("backend", string(defaults.Backend), "render backend: raster | gg; also configurable via "+app.EnvBackend)
	sheet := flag.Bool("sheet", false, "also write preview.png, a contact sheet of every rendered size")
	showFB := flag.Bool("fb", false, "show the contact sheet on the framebuffer console (linux)")
	fbDevice := flag.String("fb-device", defaults.FBDevice, "framebuffer device; also configurable via "+app.EnvFBDevice)
	fbHold := flag.Duration("fb-hold", defaults.FBHold, "how long to keep the framebuffer preview on screen")
	debug := flag.Bool("debug", defaults.Debug, "log every rendered frame; also configurable via "+app.EnvDebug)
	stdioLog := flag.String("stdio-log", defaults.StdioLog, "redirect stdout+stderr (including panics) to this file; also configurable via "+app.EnvStdioLog)
	flag.Parse()

	if *stdioLog != "" {
		if err := redirectStdIO(*stdioLog); err != nil {
			fmt.Println("stdio log redirect error:", err)
		}
	}

	selected, err := render.ParseBackend(*backend)
	if err != nil {
		return err
	}
	cfg := app.Config{
		OutDir:      *outDir,
		Backend:     selected,
		StdioLog:    *stdioLog,
		Debug:       *debug,
		Sheet:       *sheet,
		Framebuffer: *showFB,
		FBDevice:    *fbDevice,
		FBHold:      *fbHold,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := app.NewConsoleLogger(os.Stdout, cfg.Debug)
	logger.Infof("main", "creating GManager icons (backend=%s)", cfg.Backend)
	return app.New(cfg, logger).Run(ctx)
}
