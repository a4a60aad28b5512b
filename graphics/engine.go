// Package graphics is the engine-facing front end of the painter: it owns
// the framebuffer described by a config.Display, the Context drawing into
// it, and the loading and caching of image and font assets.
//
//	cfg, _ := config.Load("display.toml")
//	eng, err := graphics.New(cfg)
//	if err != nil {
//		return err
//	}
//	ctx := eng.Context()
//	hero, err := eng.NewImage("images/hero.png")
//	ctx.Draw(hero, nil, painter.At(10, 20))
package graphics

import (
	"fmt"

	"github.com/gogpu/painter"
	"github.com/gogpu/painter/config"
	"github.com/gogpu/painter/internal/lru"
)

// Engine is a framebuffer plus the painter drawing into it.
// It is not safe for concurrent use.
type Engine struct {
	cfg    config.Display
	pix    []uint32
	fb     *painter.Surface
	ctx    *painter.Context
	images *lru.Cache[string, *painter.Surface]
}

// New allocates a cfg.Width×cfg.Height framebuffer and a Context drawing
// into it. opts configure the Context.
func New(cfg config.Display, opts ...painter.ContextOption) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("graphics: %w: %w", painter.ErrInvalidArgument, err)
	}
	if cfg.Width > painter.MaxSurfacePixels/cfg.Height {
		return nil, fmt.Errorf("graphics: framebuffer %dx%d: %w", cfg.Width, cfg.Height, painter.ErrAllocation)
	}

	pix := make([]uint32, cfg.Width*cfg.Height)
	fb, err := painter.NewSurfaceFromPixels(pix, cfg.Width, cfg.Height, cfg.Width*4)
	if err != nil {
		return nil, fmt.Errorf("graphics: framebuffer: %w", err)
	}

	painter.Logger().Info("graphics: framebuffer created",
		"width", cfg.Width, "height", cfg.Height, "game_dir", cfg.GameDir)

	return &Engine{
		cfg:    cfg,
		pix:    pix,
		fb:     fb,
		ctx:    painter.NewContext(fb, opts...),
		images: lru.New[string, *painter.Surface](cfg.ImageCache),
	}, nil
}

// Context returns the painter drawing into the framebuffer.
func (e *Engine) Context() *painter.Context { return e.ctx }

// Framebuffer returns the framebuffer surface.
func (e *Engine) Framebuffer() *painter.Surface { return e.fb }

// Pixels returns the framebuffer's backing pixels, row-major with a pitch of
// Width()*4 bytes, for presenting to a display.
func (e *Engine) Pixels() []uint32 { return e.pix }

// Width returns the framebuffer width.
func (e *Engine) Width() int { return e.cfg.Width }

// Height returns the framebuffer height.
func (e *Engine) Height() int { return e.cfg.Height }

// Config returns the display configuration the engine was built from.
func (e *Engine) Config() config.Display { return e.cfg }
