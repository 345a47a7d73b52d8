package allspaceslib

import (
	"errors"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("NoFileReturnsDefaults", func(t *testing.T) {
		fs := &mockFileSystem{HomeDir: "/Users/me"}

		c, err := NewLoaderWithFS(fs).Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), c)
	})

	t.Run("NoHomeReturnsDefaults", func(t *testing.T) {
		fs := &mockFileSystem{HomeDirErr: errors.New("no home")}

		c, err := NewLoaderWithFS(fs).Load("")
		require.NoError(t, err)
		assert.Equal(t, DefaultConfig(), c)
	})

	t.Run("DefaultPath", func(t *testing.T) {
		fs := &mockFileSystem{HomeDir: "/Users/me"}
		assert.Equal(t, "/Users/me/.config/wallpaper-allspaces/config.toml", NewLoaderWithFS(fs).DefaultPath())

		fs.Env = map[string]string{"XDG_CONFIG_HOME": "/xdg"}
		assert.Equal(t, "/xdg/wallpaper-allspaces/config.toml", NewLoaderWithFS(fs).DefaultPath())
	})

	t.Run("OverridesDefaults", func(t *testing.T) {
		fs := &mockFileSystem{
			HomeDir: "/Users/me",
			Files: map[string][]byte{
				"/Users/me/.config/wallpaper-allspaces/config.toml": []byte(`
Yabai = "/opt/homebrew/bin/yabai"
Scale = "center"
Fill = "#336699"
StrictFocus = true
Timeout = "10s"
Verbose = true
`),
			},
		}

		c, err := NewLoaderWithFS(fs).Load("")
		require.NoError(t, err)
		assert.Equal(t, "/opt/homebrew/bin/yabai", c.Yabai)
		assert.Equal(t, "center", c.Scale)
		assert.Equal(t, "#336699", c.Fill)
		assert.True(t, c.StrictFocus)
		assert.True(t, c.Verbose)
		assert.Equal(t, 10*time.Second, c.Timeout.Duration)
	})

	t.Run("PartialFileKeepsDefaults", func(t *testing.T) {
		fs := &mockFileSystem{Files: map[string][]byte{
			"/etc/wallpaper.toml": []byte(`StrictFocus = true`),
		}}

		c, err := NewLoaderWithFS(fs).Load("/etc/wallpaper.toml")
		require.NoError(t, err)
		assert.True(t, c.StrictFocus)
		assert.Equal(t, DefaultYabaiPath, c.Yabai)
		assert.Equal(t, DefaultScale, c.Scale)
		assert.Equal(t, DefaultFill, c.Fill)
	})

	t.Run("ExplicitFileMustExist", func(t *testing.T) {
		fs := &mockFileSystem{}

		_, err := NewLoaderWithFS(fs).Load("/missing.toml")
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("ReadError", func(t *testing.T) {
		fs := &mockFileSystem{HomeDir: "/Users/me", ReadErr: os.ErrPermission}

		_, err := NewLoaderWithFS(fs).Load("")
		assert.ErrorIs(t, err, os.ErrPermission)
	})

	t.Run("InvalidValues", func(t *testing.T) {
		for name, body := range map[string]string{
			"scale":   `Scale = "fit"`,
			"fill":    `Fill = "black"`,
			"timeout": `Timeout = "-1s"`,
			"syntax":  `Scale = `,
			"unknown": `Wallpaper = "/tmp/a.png"`,
			"badtime": `Timeout = "soon"`,
		} {
			fs := &mockFileSystem{Files: map[string][]byte{"/c.toml": []byte(body)}}
			_, err := NewLoaderWithFS(fs).Load("/c.toml")
			assert.Error(t, err, name)
		}
	})
}
