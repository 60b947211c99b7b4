// Command cgdemo draws a sample scene with the cg 2D graphics library and
// writes it to a PNG file.
//
// Configuration comes from CG_* environment variables; the -output flag
// overrides CG_OUTPUT.
//
//	CG_WIDTH=800 CG_HEIGHT=600 CG_BACKEND=software cgdemo -output demo.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"image/color"
	"log"
	"log/slog"
	"math"
	"os"

	"github.com/gogpu/cg"
	"github.com/gogpu/cg/backend"
	_ "github.com/gogpu/cg/backend/wgpu"
	"github.com/gogpu/cg/gpucore"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the demo settings.
type Config struct {
	Width       int    `envconfig:"WIDTH" default:"800"`
	Height      int    `envconfig:"HEIGHT" default:"600"`
	Output      string `envconfig:"OUTPUT" default:"demo.png"`
	Backend     string `envconfig:"BACKEND"`
	VertexLimit int    `envconfig:"VERTEX_LIMIT" default:"256"`
	Truncate    bool   `envconfig:"TRUNCATE" default:"false"`
	Debug       bool   `envconfig:"DEBUG" default:"false"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := envconfig.Process("cg", &cfg); err != nil {
		return cfg, fmt.Errorf("failed to process config: %w", err)
	}
	return cfg, nil
}

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal(err)
	}
	output := flag.String("output", cfg.Output, "output file")
	flag.Parse()
	cfg.Output = *output

	if cfg.Debug {
		cg.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	if err := run(cfg); err != nil {
		log.Fatal(err)
	}
	log.Printf("Demo saved to %s (%dx%d)\n", cfg.Output, cfg.Width, cfg.Height)
}

func run(cfg Config) error {
	dev, name, err := openDevice(cfg)
	if err != nil {
		return err
	}
	log.Printf("Rendering with %s backend", name)

	opts := []cg.ContextOption{cg.WithDevice(dev), cg.WithVertexLimit(cfg.VertexLimit)}
	if cfg.Truncate {
		opts = append(opts, cg.WithOverflowPolicy(cg.OverflowTruncate))
	}
	ctx := cg.NewContext(cfg.Width, cfg.Height, opts...)
	defer ctx.Close()

	if err := drawScene(ctx); err != nil {
		return fmt.Errorf("draw: %w", err)
	}
	if err := ctx.Flush(); err != nil {
		return fmt.Errorf("flush: %w", err)
	}

	pm, err := pixels(dev)
	if err != nil {
		return err
	}
	return pm.SavePNG(cfg.Output)
}

func openDevice(cfg Config) (gpucore.Device, string, error) {
	if cfg.Backend == "" {
		return backend.Open(cfg.Width, cfg.Height)
	}
	dev, err := backend.OpenNamed(cfg.Backend, cfg.Width, cfg.Height)
	return dev, cfg.Backend, err
}

// pixels returns the rendered image, reading it back from GPU devices.
func pixels(dev gpucore.Device) (*cg.Pixmap, error) {
	switch d := dev.(type) {
	case *cg.SoftwareDevice:
		return d.Pixmap(), nil
	case interface{ Pixmap() (*cg.Pixmap, error) }:
		return d.Pixmap()
	}
	return nil, errors.New("device cannot read back its pixels")
}

func drawScene(ctx *cg.Context) error {
	w, h := float64(ctx.Width()), float64(ctx.Height())
	steps := []func(*cg.Context) error{
		func(ctx *cg.Context) error { return drawGradientBackground(ctx, w, h) },
		drawShapesDemo,
		drawTransformDemo,
		drawPathDemo,
		drawImageDemo,
	}
	for _, step := range steps {
		if err := step(ctx); err != nil {
			return err
		}
	}
	return nil
}

func drawGradientBackground(ctx *cg.Context, w, h float64) error {
	const steps = 50
	band := h / steps
	for i := range steps {
		t := float64(i) / steps
		ctx.SetFillColor(cg.RGB(0.1+t*0.4, 0.2+t*0.3, 0.4+t*0.2))
		if err := ctx.FillRect(cg.NewRect(0, band*float64(i), w, band+1)); err != nil {
			return err
		}
	}
	return nil
}

func drawShapesDemo(ctx *cg.Context) error {
	// Overlapping translucent circles.
	circles := []struct {
		x, y    float64
		r, g, b float64
	}{
		{150, 150, 1, 0.3, 0.3},
		{200, 150, 0.3, 1, 0.3},
		{175, 200, 0.3, 0.3, 1},
	}
	for _, c := range circles {
		ctx.SetRGBFillColor(c.r, c.g, c.b, 0.8)
		if err := ctx.FillEllipse(cg.NewRect(c.x-60, c.y-60, 120, 120)); err != nil {
			return err
		}
	}

	card := cg.NewRect(350, 100, 120, 80)
	ctx.SetFillColor(cg.Hex("#ffcc00"))
	ctx.AddRoundedRect(card, 15, 15)
	if err := ctx.FillPath(cg.Winding); err != nil {
		return err
	}
	ctx.SetRGBStrokeColor(1, 1, 1, 1)
	return ctx.StrokeRectWithWidth(card, 4)
}

func drawTransformDemo(ctx *cg.Context) error {
	for i := range 8 {
		ctx.SaveGState()
		ctx.TranslateBy(600, 150)
		ctx.RotateBy(float64(i) * math.Pi / 4)
		t := float64(i) / 8
		ctx.SetFillColor(cg.RGBA(0.9-t*0.6, 0.4+t*0.4, 0.3+t*0.6, 0.7))
		err := ctx.FillRect(cg.NewRect(-30, -30, 60, 60))
		ctx.RestoreGState()
		if err != nil {
			return err
		}
	}
	return nil
}

func drawPathDemo(ctx *cg.Context) error {
	ctx.SaveGState()
	defer ctx.RestoreGState()
	ctx.TranslateBy(150, 400)

	ctx.SetRGBStrokeColor(1, 0.5, 0, 1)
	ctx.SetLineWidth(6)
	ctx.MoveTo(cg.Pt(0, 0))
	ctx.AddCurveTo(cg.Pt(50, -50), cg.Pt(100, 50), cg.Pt(150, 0))
	ctx.AddCurveTo(cg.Pt(200, -30), cg.Pt(250, 30), cg.Pt(300, 0))
	if err := ctx.StrokePath(); err != nil {
		return err
	}

	// Pentagram: the even-odd rule leaves the center open.
	ctx.TranslateBy(400, 0)
	ctx.SetRGBFillColor(1, 1, 0, 1)
	for i := range 5 {
		angle := float64(i*2)*2*math.Pi/5 - math.Pi/2
		p := cg.Pt(60*math.Cos(angle), 60*math.Sin(angle))
		if i == 0 {
			ctx.MoveTo(p)
		} else {
			ctx.AddLineTo(p)
		}
	}
	ctx.ClosePath()
	return ctx.EOFillPath()
}

func drawImageDemo(ctx *cg.Context) error {
	ctx.SetBlendMode(cg.BlendModeNormal)
	return ctx.DrawImage(cg.NewRect(620, 340, 120, 120), cg.NewImage(checkerboard(8, 16)))
}

// checkerboard returns an n by n board of size-pixel cells.
func checkerboard(n, size int) image.Image {
	img := image.NewNRGBA(image.Rect(0, 0, n*size, n*size))
	light := color.NRGBA{R: 240, G: 240, B: 240, A: 255}
	dark := color.NRGBA{R: 40, G: 60, B: 90, A: 200}
	for y := range n * size {
		for x := range n * size {
			if (x/size+y/size)%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}
