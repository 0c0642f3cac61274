package cmd

import (
	"bytes"
	"errors"
	"image"
	_ "image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/df07/go-pathtracer/log"
	"github.com/df07/go-pathtracer/pkg/integrator"
	"github.com/df07/go-pathtracer/pkg/renderer"
	"github.com/df07/go-pathtracer/pkg/scene"
	"github.com/urfave/cli"
)

func TestMain(m *testing.M) {
	log.SetSink(io.Discard)
	os.Exit(m.Run())
}

// runRender runs action as the render command of a minimal app
func runRender(args []string, action func(*cli.Context) error) error {
	app := cli.NewApp()
	app.Writer = io.Discard
	app.ErrWriter = io.Discard
	app.Flags = []cli.Flag{
		cli.BoolFlag{Name: "v"},
		cli.BoolFlag{Name: "vv"},
	}
	app.Commands = []cli.Command{
		{
			Name:   "render",
			Flags:  RenderFlags(),
			Action: action,
		},
	}
	return app.Run(append([]string{"pathtracer", "render"}, args...))
}

func parseOptions(t *testing.T, args ...string) renderer.Options {
	t.Helper()
	var opts renderer.Options
	err := runRender(args, func(ctx *cli.Context) error {
		var err error
		opts, err = renderOptions(ctx)
		return err
	})
	if err != nil {
		t.Fatalf("Parsing %v failed: %v", args, err)
	}
	return opts
}

func TestRenderOptionsDefaults(t *testing.T) {
	opts := parseOptions(t)
	defaults := renderer.DefaultOptions()

	if opts.Width != defaults.Width || opts.Height != defaults.Height {
		t.Errorf("Expected %dx%d, got %dx%d", defaults.Width, defaults.Height, opts.Width, opts.Height)
	}
	if opts.SamplesPerStratum != defaults.SamplesPerStratum {
		t.Errorf("Expected %d samples per stratum, got %d", defaults.SamplesPerStratum, opts.SamplesPerStratum)
	}
	if opts.Gamma != defaults.Gamma {
		t.Errorf("Expected gamma %f, got %f", defaults.Gamma, opts.Gamma)
	}
	if opts.Seed != defaults.Seed {
		t.Errorf("Expected seed %d, got %d", defaults.Seed, opts.Seed)
	}
	if opts.OutputPath != defaults.OutputPath {
		t.Errorf("Expected output %q, got %q", defaults.OutputPath, opts.OutputPath)
	}
	if opts.Background != integrator.BackgroundBlack {
		t.Errorf("Expected black background, got %s", opts.Background)
	}
	if opts.SoftDepthCap {
		t.Error("Depth cap should be off by default")
	}
	if opts.Workers < 1 {
		t.Errorf("Expected at least one worker, got %d", opts.Workers)
	}
	if opts.Progress == nil || opts.Logger == nil {
		t.Error("Expected progress reporting and a logger to be wired")
	}
	if err := opts.Validate(); err != nil {
		t.Errorf("Default flags should produce valid options, got %v", err)
	}
}

func TestRenderOptionsFlags(t *testing.T) {
	opts := parseOptions(t,
		"--width", "32", "--height", "16", "--spp", "2",
		"--max-depth", "4", "--cap-depth", "--gamma", "1.8",
		"-w", "3", "--seed", "9", "--background", "sky", "-o", "frame.bmp",
	)

	tests := []struct {
		name     string
		got      interface{}
		expected interface{}
	}{
		{"width", opts.Width, 32},
		{"height", opts.Height, 16},
		{"samples per stratum", opts.SamplesPerStratum, 2},
		{"max depth", opts.MaxDepth, 4},
		{"depth cap", opts.SoftDepthCap, true},
		{"gamma", opts.Gamma, 1.8},
		{"workers", opts.Workers, 3},
		{"output", opts.OutputPath, "frame.bmp"},
		{"seed", opts.Seed, int64(9)},
		{"background", opts.Background, integrator.BackgroundSky},
	}
	for _, tt := range tests {
		if tt.got != tt.expected {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.expected, tt.got)
		}
	}
}

func TestRenderOptionsEnvironment(t *testing.T) {
	t.Setenv("PATHTRACER_HEIGHT", "77")
	t.Setenv("PATHTRACER_BACKGROUND", "sky")

	opts := parseOptions(t, "--width", "10")
	if opts.Height != 77 {
		t.Errorf("Expected height from environment, got %d", opts.Height)
	}
	if opts.Background != integrator.BackgroundSky {
		t.Errorf("Expected sky background from environment, got %s", opts.Background)
	}
	if opts.Width != 10 {
		t.Errorf("Expected width from flag, got %d", opts.Width)
	}
}

func TestRenderOptionsBadBackground(t *testing.T) {
	err := runRender([]string{"--background", "purple"}, func(ctx *cli.Context) error {
		_, err := renderOptions(ctx)
		return err
	})
	if err == nil {
		t.Error("Expected an error for an unknown background")
	}
}

func TestRenderFrame(t *testing.T) {
	out := filepath.Join(t.TempDir(), "renders", "cornell.png")
	err := runRender([]string{
		"--scene", "cornell", "--width", "8", "--height", "6", "--spp", "1", "-w", "2", "-o", out,
	}, RenderFrame)
	if err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	f, err := os.Open(out)
	if err != nil {
		t.Fatalf("Expected output image: %v", err)
	}
	defer f.Close()
	img, format, err := image.Decode(f)
	if err != nil {
		t.Fatalf("Output does not decode: %v", err)
	}
	if format != "png" || img.Bounds().Dx() != 8 || img.Bounds().Dy() != 6 {
		t.Errorf("Expected 8x6 png, got %dx%d %s", img.Bounds().Dx(), img.Bounds().Dy(), format)
	}
}

func TestRenderFrameLogsCameraBasis(t *testing.T) {
	var buf bytes.Buffer
	log.SetSink(&buf)
	log.SetLevel(log.Debug)
	defer func() {
		log.SetSink(io.Discard)
		log.SetLevel(log.Notice)
	}()

	out := filepath.Join(t.TempDir(), "frame.png")
	err := runRender([]string{
		"--scene", "cornell", "--width", "2", "--height", "2", "--spp", "1", "-w", "1", "-o", out,
	}, RenderFrame)
	if err != nil {
		t.Fatalf("RenderFrame failed: %v", err)
	}

	if !strings.Contains(buf.String(), "camera basis: forward") {
		t.Errorf("Expected the camera basis in the debug log, got:\n%s", buf.String())
	}
}

func TestRenderFrameErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name     string
		args     []string
		expected error
	}{
		{"unknown scene", []string{"--scene", "teapot"}, scene.ErrUnknownScene},
		{"missing textures", []string{"--scene", "earth-moon", "--textures", dir}, scene.ErrMissingAsset},
		{"invalid size", []string{"--width", "0"}, renderer.ErrInvalidOptions},
		{"unknown format", []string{"--width", "2", "--height", "2", "--spp", "1", "-o", filepath.Join(dir, "out.exr")}, renderer.ErrWriteImage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"-o", filepath.Join(dir, "unused.png")}, tt.args...)
			err := runRender(args, RenderFrame)
			if !errors.Is(err, tt.expected) {
				t.Errorf("Expected %v, got %v", tt.expected, err)
			}
		})
	}
}

func TestSceneTable(t *testing.T) {
	table := sceneTable()
	for _, name := range scene.Names() {
		if !strings.Contains(table, name) {
			t.Errorf("Scene table is missing %q:\n%s", name, table)
		}
	}
}

func TestDefaultWorkers(t *testing.T) {
	if workers := defaultWorkers(); workers < 1 {
		t.Errorf("Expected at least one worker, got %d", workers)
	}
}
