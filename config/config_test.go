package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	d := Default()
	assert.Equal(t, 320, d.Width)
	assert.Equal(t, 240, d.Height)
	assert.Equal(t, "./", d.GameDir)
	assert.Equal(t, DefaultImageCache, d.ImageCache)
	assert.NoError(t, d.Validate())
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, "display.toml", `
width = 640
height = 480
game_dir = "/games/demo/"
`)
	d, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, Display{Width: 640, Height: 480, GameDir: "/games/demo/", ImageCache: DefaultImageCache}, d)
}

func TestLoadYAML(t *testing.T) {
	for _, name := range []string{"display.yaml", "display.YML"} {
		t.Run(name, func(t *testing.T) {
			path := writeFile(t, name, "width: 100\nheight: 50\nimage_cache: 8\n")
			d, err := Load(path)
			require.NoError(t, err)
			assert.Equal(t, 100, d.Width)
			assert.Equal(t, 50, d.Height)
			assert.Equal(t, 8, d.ImageCache)
			assert.Equal(t, DefaultGameDir, d.GameDir)
		})
	}
}

func TestLoadEmptyKeepsDefaults(t *testing.T) {
	for _, name := range []string{"empty.toml", "empty.yaml"} {
		d, err := Load(writeFile(t, name, ""))
		require.NoError(t, err, name)
		assert.Equal(t, Default(), d, name)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
		target  error
	}{
		{"unknown extension", "display.json", `{"width": 1}`, ErrUnknownFormat},
		{"invalid size", "display.toml", "width = 0\n", ErrInvalidSize},
		{"negative cache", "display.yaml", "image_cache: -1\n", ErrInvalidSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.file, tt.content))
			assert.ErrorIs(t, err, tt.target)
		})
	}
}

func TestLoadMalformed(t *testing.T) {
	_, err := Load(writeFile(t, "bad.toml", "width = \n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "unknown.toml", "depth = 3\n"))
	assert.Error(t, err)

	_, err = Load(writeFile(t, "unknown.yaml", "depth: 3\n"))
	assert.Error(t, err)

	_, err = Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestValidate(t *testing.T) {
	assert.ErrorIs(t, Display{Width: -1, Height: 10}.Validate(), ErrInvalidSize)
	assert.ErrorIs(t, Display{Width: 10}.Validate(), ErrInvalidSize)
	assert.NoError(t, Display{Width: 1, Height: 1}.Validate())
}

func TestResolvePath(t *testing.T) {
	d := Display{GameDir: "/games/demo/"}

	p, err := d.ResolvePath("images/hero.png")
	require.NoError(t, err)
	assert.Equal(t, "/games/demo/images/hero.png", p)

	// plain concatenation, no separator inserted
	p, err = Display{GameDir: "assets"}.ResolvePath("x.png")
	require.NoError(t, err)
	assert.Equal(t, "assetsx.png", p)
}

func TestResolvePathTooLong(t *testing.T) {
	d := Display{GameDir: "/g/"}

	_, err := d.ResolvePath(strings.Repeat("a", MaxPathLength-3))
	assert.NoError(t, err)

	_, err = d.ResolvePath(strings.Repeat("a", MaxPathLength-2))
	assert.ErrorIs(t, err, ErrPathTooLong)
}
