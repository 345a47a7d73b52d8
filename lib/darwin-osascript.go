//go:build darwin && !cgo

package allspaceslib

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
)

// Without cgo there is no way to reach NSWorkspace, so fall back to System Events.
// It can only set the picture; scaling and fill color are left to macOS.
type osascriptDesktop struct {
	runner Runner
	logger *log.Logger
	warned bool
}

func NewDesktop(logger *log.Logger) Desktop {
	return &osascriptDesktop{runner: CommandRunner{}, logger: orDiscard(logger)}
}

func (d *osascriptDesktop) osascript(script string) (string, error) {
	res, err := d.runner.Run(context.Background(), "/usr/bin/osascript", "-e", script)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}

func (d *osascriptDesktop) Screens() (int, error) {
	out, err := d.osascript(`tell application "System Events" to count of desktops`)
	if err != nil {
		return 0, err
	}

	n, err := strconv.Atoi(out)
	if err != nil {
		return 0, fmt.Errorf("Unexpected desktop count [%s] from System Events", out)
	}
	return n, nil
}

func (d *osascriptDesktop) SetDesktopImage(screen int, file string, opts ScreenOptions) error {
	if !d.warned {
		d.warned = true
		d.logger.Warn("built without cgo, ignoring scale and fill options",
			"imageScaling", opts.ImageScaling, "allowClipping", opts.AllowClipping)
	}

	// AppleScript desktops are 1-indexed.
	script := fmt.Sprintf(`tell application "System Events" to set picture of desktop %d to "%s"`,
		screen+1, appleScriptEscape(file))
	_, err := d.osascript(script)
	return err
}

func appleScriptEscape(s string) string {
	return strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s)
}
