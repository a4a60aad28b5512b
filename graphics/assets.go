package graphics

import (
	"fmt"

	"github.com/gogpu/painter"
)

// NewImage loads the image at path, relative to the game directory.
//
// Decoded images are cached by resolved path; loading the same path again
// returns the same surface. Images are shared, so callers must not modify
// their pixels.
func (e *Engine) NewImage(path string) (*painter.Surface, error) {
	full, err := e.cfg.ResolvePath(path)
	if err != nil {
		return nil, fmt.Errorf("graphics: image %q: %w: %w", path, painter.ErrInvalidArgument, err)
	}

	img, hit, err := e.images.GetOrLoad(full, func() (*painter.Surface, error) {
		return painter.LoadSurface(full)
	})
	if err != nil {
		return nil, err
	}
	if hit {
		painter.Logger().Debug("graphics: image cache hit", "path", full)
	}
	return img, nil
}

// NewImageFromSurface returns an image sharing s's pixels.
func (e *Engine) NewImageFromSurface(s *painter.Surface) *painter.Surface {
	return painter.WrapSurface(s)
}

// NewImageFont loads an image-font atlas from path, relative to the game
// directory, and builds a font for characters. The atlas goes through the
// image cache.
func (e *Engine) NewImageFont(path, characters string, opts ...painter.FontOption) (*painter.Font, error) {
	atlas, err := e.NewImage(path)
	if err != nil {
		return nil, err
	}
	return painter.NewImageFont(atlas, characters, opts...)
}

// NewImageFontFromSurface builds a font from an atlas already in memory.
func (e *Engine) NewImageFontFromSurface(atlas *painter.Surface, characters string, opts ...painter.FontOption) (*painter.Font, error) {
	return painter.NewImageFont(atlas, characters, opts...)
}

// ClearCache drops every cached image. Surfaces already handed out stay valid.
func (e *Engine) ClearCache() {
	e.images.Purge()
}

// CachedImages returns the number of images in the cache.
func (e *Engine) CachedImages() int {
	return e.images.Len()
}

// CacheStats describes image cache traffic since creation or the last
// ClearCache.
type CacheStats struct {
	Images    int
	Capacity  int
	Hits      uint64
	Misses    uint64
	Evictions uint64
}

// CacheStats returns a snapshot of the image cache counters.
func (e *Engine) CacheStats() CacheStats {
	s := e.images.Stats()
	return CacheStats{
		Images:    s.Len,
		Capacity:  s.Capacity,
		Hits:      s.Hits,
		Misses:    s.Misses,
		Evictions: s.Evictions,
	}
}
