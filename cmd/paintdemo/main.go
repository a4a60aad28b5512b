// Command paintdemo renders a scene with the painter and saves it as PNG.
package main

import (
	"flag"
	"log"
	"log/slog"
	"os"

	"golang.org/x/image/font/gofont/goregular"

	"github.com/gogpu/painter"
	"github.com/gogpu/painter/config"
	"github.com/gogpu/painter/fontbake"
	"github.com/gogpu/painter/graphics"
)

const fontChars = " !,.0123456789:?ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

func main() {
	var (
		configPath = flag.String("config", "", "display config file (.toml or .yaml)")
		output     = flag.String("output", "paintdemo.png", "output file")
		sprite     = flag.String("sprite", "", "image to draw, relative to the game dir")
		fontFile   = flag.String("font", "", "TrueType font file (default Go Regular)")
		fontSize   = flag.Float64("size", 16, "font size in pixels")
		verbose    = flag.Bool("v", false, "debug logging")
	)
	flag.Parse()

	if *verbose {
		painter.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}

	eng, err := graphics.New(cfg, painter.WithBackground(painter.RGB(24, 28, 40)))
	if err != nil {
		log.Fatalf("Failed to create engine: %v", err)
	}
	ctx := eng.Context()
	ctx.Clear()

	drawShapes(ctx)

	if *sprite != "" {
		img, err := eng.NewImage(*sprite)
		if err != nil {
			log.Fatalf("Failed to load sprite: %v", err)
		}
		ctx.Draw(img, nil, painter.At(float64(eng.Width()-img.Width()-8), 8))
	}

	ttf := goregular.TTF
	if *fontFile != "" {
		if ttf, err = os.ReadFile(*fontFile); err != nil {
			log.Fatalf("Failed to read font: %v", err)
		}
	}
	font, err := fontbake.BakeFont(ttf, fontChars, *fontSize)
	if err != nil {
		log.Fatalf("Failed to bake font: %v", err)
	}
	drawText(ctx, font, eng.Width(), eng.Height())

	if err := eng.Framebuffer().SavePNG(*output); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Demo saved to %s (%dx%d)\n", *output, eng.Width(), eng.Height())
}

func drawShapes(ctx *painter.Context) {
	w, h := ctx.Width(), ctx.Height()

	// Diagonal grid lines
	ctx.SetColor(painter.RGB(60, 70, 90))
	for x := 0; x < w; x += 16 {
		ctx.Line(x, 0, x+h/2, h-1)
	}

	// Translated and clipped panel
	ctx.Push()
	ctx.Translate(w/8, h/4)
	ctx.SetColor(painter.RGB(230, 120, 40))
	_ = ctx.Rectangle(painter.ModeFill, 0, 0, w/4, h/3)
	ctx.SetColor(painter.White)
	_ = ctx.Rectangle(painter.ModeLine, -2, -2, w/4+4, h/3+4)
	ctx.Pop()

	ctx.Push()
	ctx.SetScissor(painter.R(w/2, h/4, w/3, h/3))
	ctx.SetColor(painter.RGB(60, 160, 220))
	_ = ctx.Rectangle(painter.ModeFill, w/2-20, h/4-20, w, h)
	ctx.Pop()

	// Point scatter
	ctx.SetColor(painter.RGB(250, 240, 120))
	for i := 0; i < 64; i++ {
		ctx.Point((i*37)%w, h-8-(i*11)%16)
	}
}

func drawText(ctx *painter.Context, font *painter.Font, w, h int) {
	ctx.Push()
	defer ctx.Pop()

	ctx.SetFont(font)
	_ = ctx.Printf("Hello, painter!", 0, 8, w, painter.AlignCenter)
	_ = ctx.Printf("left", 8, h-2*font.Height()-16, w-16, painter.AlignLeft)
	_ = ctx.Printf("right", 8, h-2*font.Height()-16, w-16, painter.AlignRight)
}
