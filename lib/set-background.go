package allspaceslib

import (
	"errors"
	"fmt"
	"path/filepath"
)

var ErrNoScreens = errors.New("no screens connected")
var ErrUnsupportedPlatform = errors.New("setting the desktop image is not supported on this platform")

// Desktop is a per-screen desktop image backend. Screens are numbered from 0.
type Desktop interface {
	Screens() (int, error)
	SetDesktopImage(screen int, file string, opts ScreenOptions) error
}

// SetWallpaper applies the image to every connected screen of the current space,
// stopping at the first screen that fails.
func SetWallpaper(d Desktop, path string, opts WallpaperOptions) error {
	file, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("Error resolving wallpaper path [%s]: %w", path, err)
	}

	n, err := d.Screens()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNoScreens
	}

	so := ScreenOptionsFor(opts)
	for i := 0; i < n; i++ {
		if err := d.SetDesktopImage(i, file, so); err != nil {
			return fmt.Errorf("screen %d: %w", i, err)
		}
	}

	return nil
}
