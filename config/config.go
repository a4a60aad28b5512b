// Package config holds the display configuration an engine is built from:
// framebuffer size, the game directory asset paths resolve against, and the
// image cache size. Configurations load from TOML or YAML files.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// MaxPathLength is the longest resolved asset path ResolvePath accepts.
const MaxPathLength = 4096

// Defaults used by Default and filled in by Load for missing keys.
const (
	DefaultWidth      = 320
	DefaultHeight     = 240
	DefaultGameDir    = "./"
	DefaultImageCache = 64
)

var (
	// ErrPathTooLong is returned by ResolvePath when the joined path exceeds
	// MaxPathLength.
	ErrPathTooLong = errors.New("config: path too long")

	// ErrInvalidSize is returned by Validate for a non-positive framebuffer
	// size or a negative cache size.
	ErrInvalidSize = errors.New("config: invalid size")

	// ErrUnknownFormat is returned by Load for files that are neither TOML
	// nor YAML.
	ErrUnknownFormat = errors.New("config: unknown file format")
)

// Display configures the framebuffer and asset loading.
type Display struct {
	// Width and Height are the framebuffer size in pixels.
	Width  int `toml:"width" yaml:"width"`
	Height int `toml:"height" yaml:"height"`

	// GameDir is prepended to every asset path. It is used as a plain
	// string prefix, so it normally ends with a separator.
	GameDir string `toml:"game_dir" yaml:"game_dir"`

	// ImageCache is the number of decoded images kept by the engine.
	// 0 selects the default.
	ImageCache int `toml:"image_cache" yaml:"image_cache"`
}

// Default returns a 320×240 display rooted at the current directory.
func Default() Display {
	return Display{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		GameDir:    DefaultGameDir,
		ImageCache: DefaultImageCache,
	}
}

// Load reads a display configuration from path. The format is chosen by
// extension: .toml, or .yaml/.yml. Keys missing from the file keep their
// Default values. The result is validated.
func Load(path string) (Display, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Display{}, fmt.Errorf("config: %w", err)
	}

	d := Default()
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".toml":
		err = toml.NewDecoder(bytes.NewReader(data)).DisallowUnknownFields().Decode(&d)
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err = dec.Decode(&d); errors.Is(err, io.EOF) {
			err = nil
		}
	default:
		return Display{}, fmt.Errorf("%w: %q", ErrUnknownFormat, ext)
	}
	if err != nil {
		return Display{}, fmt.Errorf("config: decode %s: %w", path, err)
	}

	if err := d.Validate(); err != nil {
		return Display{}, err
	}
	return d, nil
}

// Validate reports whether the display can be allocated.
func (d Display) Validate() error {
	if d.Width <= 0 || d.Height <= 0 {
		return fmt.Errorf("%w: framebuffer %dx%d", ErrInvalidSize, d.Width, d.Height)
	}
	if d.ImageCache < 0 {
		return fmt.Errorf("%w: image cache %d", ErrInvalidSize, d.ImageCache)
	}
	return nil
}

// ResolvePath returns GameDir followed by rel. The two are concatenated
// without inserting a separator.
func (d Display) ResolvePath(rel string) (string, error) {
	if len(d.GameDir)+len(rel) > MaxPathLength {
		return "", fmt.Errorf("%w: %d bytes", ErrPathTooLong, len(d.GameDir)+len(rel))
	}
	return d.GameDir + rel, nil
}
