package allspaceslib

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

const (
	DefaultScale = "zoom"
	DefaultFill  = "#000000"
)

var ErrInvalidColor = errors.New("invalid fill color")
var ErrInvalidScaling = errors.New("invalid scaling option")

type ScalingMode int

const (
	ScaleCenter ScalingMode = iota
	ScaleZoom
	ScaleStretch
	ScaleNone
)

func (s ScalingMode) String() string {
	switch s {
	case ScaleCenter:
		return "center"
	case ScaleZoom:
		return "zoom"
	case ScaleStretch:
		return "stretch"
	case ScaleNone:
		return "none"
	}
	return "ScalingMode(" + strconv.Itoa(int(s)) + ")"
}

// ImageScaling mirrors the raw values of AppKit's NSImageScaling.
type ImageScaling uint

const (
	ImageScaleProportionallyDown     ImageScaling = 0
	ImageScaleAxesIndependently      ImageScaling = 1
	ImageScaleNone                   ImageScaling = 2
	ImageScaleProportionallyUpOrDown ImageScaling = 3
)

type WallpaperOptions struct {
	Scaling ScalingMode
	Fill    color.RGBA
}

// ScreenOptions is the option set handed to the desktop backend for a single screen.
type ScreenOptions struct {
	AllowClipping bool
	ImageScaling  ImageScaling
	StretchAxes   bool
	Fill          color.RGBA
}

func ParseScalingMode(s string) (ScalingMode, error) {
	switch s {
	case "center":
		return ScaleCenter, nil
	case "zoom":
		return ScaleZoom, nil
	case "stretch":
		return ScaleStretch, nil
	case "none":
		return ScaleNone, nil
	}
	return 0, fmt.Errorf("%w [%s], expected one of center, zoom, stretch, none",
		ErrInvalidScaling, s)
}

// ParseColor reads a #RRGGBB string. Only the length and the three hex pairs are checked.
func ParseColor(s string) (color.RGBA, error) {
	if len(s) != 7 {
		return color.RGBA{}, fmt.Errorf("%w [%s], expected #RRGGBB", ErrInvalidColor, s)
	}

	var channels [3]uint8
	for i := range channels {
		start := 1 + 2*i
		v, err := strconv.ParseUint(s[start:start+2], 16, 8)
		if err != nil {
			return color.RGBA{}, fmt.Errorf("%w [%s], expected #RRGGBB", ErrInvalidColor, s)
		}
		channels[i] = uint8(v)
	}

	return color.RGBA{R: channels[0], G: channels[1], B: channels[2], A: 0xff}, nil
}

// BuildOptions combines a scaling keyword and a fill color.
// Empty strings select DefaultScale and DefaultFill.
func BuildOptions(scale, fill string) (WallpaperOptions, error) {
	if scale == "" {
		scale = DefaultScale
	}
	if fill == "" {
		fill = DefaultFill
	}

	mode, err := ParseScalingMode(scale)
	if err != nil {
		return WallpaperOptions{}, err
	}

	c, err := ParseColor(fill)
	if err != nil {
		return WallpaperOptions{}, err
	}

	return WallpaperOptions{Scaling: mode, Fill: c}, nil
}

func ScreenOptionsFor(o WallpaperOptions) ScreenOptions {
	so := ScreenOptions{Fill: o.Fill}

	switch o.Scaling {
	case ScaleCenter:
		so.ImageScaling = ImageScaleProportionallyUpOrDown
	case ScaleZoom:
		so.AllowClipping = true
		so.ImageScaling = ImageScaleProportionallyUpOrDown
	case ScaleStretch:
		so.ImageScaling = ImageScaleAxesIndependently
		so.StretchAxes = true
	case ScaleNone:
		so.ImageScaling = ImageScaleNone
	}

	return so
}
