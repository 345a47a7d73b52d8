//go:build !darwin

package allspaceslib

import "github.com/charmbracelet/log"

type unsupportedDesktop struct{}

func NewDesktop(_ *log.Logger) Desktop {
	return unsupportedDesktop{}
}

func (unsupportedDesktop) Screens() (int, error) {
	return 0, ErrUnsupportedPlatform
}

func (unsupportedDesktop) SetDesktopImage(int, string, ScreenOptions) error {
	return ErrUnsupportedPlatform
}
