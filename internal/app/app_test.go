package app

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/gmanager/lockicon/internal/ico"
	"github.com/gmanager/lockicon/internal/render"
)

var wantFiles = map[string]int{
	"32x32.png":      32,
	"128x128.png":    128,
	"128x128@2x.png": 256,
	"icon.icns.png":  512,
}

func runInto(t *testing.T, dir string, cfg Config) *App {
	t.Helper()
	cfg.OutDir = dir
	a := New(cfg, NoopLogger{})
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	return a
}

func TestRunWritesPlan(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "icons")
	runInto(t, dir, Config{})

	for name, size := range wantFiles {
		f, err := os.Open(filepath.Join(dir, name))
		if err != nil {
			t.Errorf("%s: %v", name, err)
			continue
		}
		cfg, err := png.DecodeConfig(f)
		f.Close()
		if err != nil {
			t.Errorf("%s: decode: %v", name, err)
			continue
		}
		if cfg.Width != size || cfg.Height != size {
			t.Errorf("%s is %dx%d, want %dx%d", name, cfg.Width, cfg.Height, size, size)
		}
	}

	f, err := os.Open(filepath.Join(dir, "icon.ico"))
	if err != nil {
		t.Fatalf("icon.ico: %v", err)
	}
	defer f.Close()
	sizes, err := ico.ReadSizes(f)
	if err != nil {
		t.Fatalf("ReadSizes: %v", err)
	}
	want := []image.Point{{16, 16}, {32, 32}, {48, 48}, {256, 256}}
	if !reflect.DeepEqual(sizes, want) {
		t.Errorf("icon.ico sizes = %v, want %v", sizes, want)
	}

	if _, err := os.Stat(filepath.Join(dir, previewName)); !os.IsNotExist(err) {
		t.Errorf("preview.png written without -sheet (err=%v)", err)
	}
}

func TestRunIsByteIdentical(t *testing.T) {
	for _, backend := range render.Backends() {
		first := filepath.Join(t.TempDir(), "a")
		second := filepath.Join(t.TempDir(), "b")
		runInto(t, first, Config{Backend: backend})
		runInto(t, second, Config{Backend: backend})

		for _, out := range DefaultPlan() {
			a, err := os.ReadFile(filepath.Join(first, out.Name))
			if err != nil {
				t.Fatal(err)
			}
			b, err := os.ReadFile(filepath.Join(second, out.Name))
			if err != nil {
				t.Fatal(err)
			}
			if !bytes.Equal(a, b) {
				t.Errorf("%s: %s differs between runs", backend, out.Name)
			}
		}
	}
}

func TestRunOverwritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "32x32.png")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatal(err)
	}
	runInto(t, dir, Config{})
	data, err := os.ReadFile(stale)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.HasPrefix(data, []byte("\x89PNG")) {
		t.Error("32x32.png was not replaced")
	}
}

func TestRunWritesSheet(t *testing.T) {
	dir := t.TempDir()
	runInto(t, dir, Config{Sheet: true})
	f, err := os.Open(filepath.Join(dir, previewName))
	if err != nil {
		t.Fatalf("preview.png: %v", err)
	}
	defer f.Close()
	cfg, err := png.DecodeConfig(f)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Height < 512 {
		t.Errorf("preview.png height = %d, want room for the 512px frame", cfg.Height)
	}
}

func TestRunFramebufferFailureIsNotFatal(t *testing.T) {
	a := New(Config{OutDir: t.TempDir(), Framebuffer: true, FBHold: time.Millisecond}, NoopLogger{})
	called := false
	a.showFramebuffer = func(ctx context.Context, device string, sheet image.Image, hold time.Duration) error {
		called = true
		return errors.New("no framebuffer")
	}
	if err := a.Run(context.Background()); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !called {
		t.Error("framebuffer preview was not attempted")
	}
}

func TestRunCancelled(t *testing.T) {
	dir := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := New(Config{OutDir: dir}, NoopLogger{}).Run(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Run err = %v, want context.Canceled", err)
	}
	entries, _ := os.ReadDir(dir)
	if len(entries) != 0 {
		t.Errorf("cancelled run wrote %d files", len(entries))
	}
}

func TestRunUnwritableDirectory(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	err := New(Config{OutDir: filepath.Join(blocker, "icons")}, NoopLogger{}).Run(context.Background())
	if err == nil || !strings.Contains(err.Error(), "create output directory") {
		t.Fatalf("Run err = %v, want output directory error", err)
	}
}

func TestRunReportsFailingOutput(t *testing.T) {
	a := New(Config{OutDir: t.TempDir()}, NoopLogger{})
	a.Plan = []Output{{Name: "broken.png", Kind: KindPNG, Sizes: []int{0}}}
	err := a.Run(context.Background())
	if !errors.Is(err, render.ErrInvalidSize) {
		t.Fatalf("Run err = %v, want ErrInvalidSize", err)
	}
	if !strings.Contains(err.Error(), "broken.png") {
		t.Errorf("error %q does not name the output", err)
	}
}

func TestPreviewSizes(t *testing.T) {
	got := PreviewSizes(DefaultPlan())
	want := []int{16, 32, 48, 128, 256, 512}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("PreviewSizes = %v, want %v", got, want)
	}
}

func TestDefaultConfigFromEnv(t *testing.T) {
	t.Setenv(EnvOutDir, "")
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvDebug, "")
	cfg, err := DefaultConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != DefaultOutDir || cfg.Backend != render.BackendRaster || cfg.Debug {
		t.Errorf("defaults = %+v", cfg)
	}

	t.Setenv(EnvOutDir, "/tmp/lockicon")
	t.Setenv(EnvBackend, "gg")
	t.Setenv(EnvDebug, "true")
	cfg, err = DefaultConfigFromEnv()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.OutDir != "/tmp/lockicon" || cfg.Backend != render.BackendGG || !cfg.Debug {
		t.Errorf("from env = %+v", cfg)
	}
}

func TestDefaultConfigFromEnvRejectsBadValues(t *testing.T) {
	t.Setenv(EnvBackend, "cairo")
	if _, err := DefaultConfigFromEnv(); err == nil {
		t.Error("unknown backend accepted")
	}
	t.Setenv(EnvBackend, "")
	t.Setenv(EnvDebug, "maybe")
	if _, err := DefaultConfigFromEnv(); err == nil {
		t.Error("non-boolean debug accepted")
	}
}

func TestConsoleLogger(t *testing.T) {
	var buf bytes.Buffer
	l := NewConsoleLogger(&buf, false)
	l.Infof("app", "created %s", "32x32.png")
	l.Infof("render", "rendered %dx%d", 32, 32)
	l.Errorf("fb", "open failed")

	out := buf.String()
	if !strings.Contains(out, "created 32x32.png") || !strings.Contains(out, "component=app") {
		t.Errorf("missing info line in %q", out)
	}
	if strings.Contains(out, "rendered 32x32") {
		t.Errorf("render line logged without debug: %q", out)
	}
	if !strings.Contains(out, "open failed") {
		t.Errorf("missing error line in %q", out)
	}

	buf.Reset()
	NewConsoleLogger(&buf, true).Infof("render", "rendered %dx%d", 32, 32)
	if !strings.Contains(buf.String(), "rendered 32x32") {
		t.Errorf("render line missing with debug: %q", buf.String())
	}
}
