package allspaceslib

import (
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/sys/execabs"
)

const DefaultYabaiPath = "/usr/local/bin/yabai"

// Yabai enumerates and focuses spaces through the yabai command line client.
type Yabai struct {
	Path   string
	Runner Runner
	// Fail when `space --focus` exits non-zero instead of logging and carrying on.
	StrictFocus bool
	// Zero means calls are only bounded by the caller's context.
	Timeout time.Duration
	Logger  *log.Logger
}

func NewYabai(path string, logger *log.Logger) *Yabai {
	return &Yabai{Path: path, Runner: CommandRunner{}, Logger: orDiscard(logger)}
}

func (y *Yabai) run(ctx context.Context, args ...string) (*Result, error) {
	if y.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, y.Timeout)
		defer cancel()
	}

	orDiscard(y.Logger).Debug("running yabai", "path", y.Path, "args", strings.Join(args, " "))
	return y.Runner.Run(ctx, y.Path, args...)
}

func (y *Yabai) ListSpaces(ctx context.Context) ([]Space, error) {
	res, err := y.run(ctx, "-m", "query", "--spaces")
	if err != nil {
		return nil, err
	}

	spaces, err := DecodeSpaces([]byte(res.Stdout))
	if err != nil {
		return nil, err
	}

	orDiscard(y.Logger).Debug("queried spaces", "count", len(spaces))
	return spaces, nil
}

func (y *Yabai) Focus(ctx context.Context, index int) error {
	res, err := y.run(ctx, "-m", "space", "--focus", strconv.Itoa(index))
	if err == nil {
		return nil
	}

	// A Result means yabai ran and reported a failure, as opposed to not running at all.
	if res == nil || y.StrictFocus || ctx.Err() != nil {
		return err
	}

	orDiscard(y.Logger).Warn("switching space failed, continuing",
		"index", index, "status", res.ExitCode, "stderr", strings.TrimSpace(res.Stderr))
	return nil
}

// ResolveYabai prefers the configured path and falls back to yabai on $PATH.
func ResolveYabai(path string) (string, error) {
	if path != "" {
		if _, err := os.Stat(path); err == nil {
			return path, nil
		}
	}

	found, err := execabs.LookPath("yabai")
	if err != nil {
		return "", fmt.Errorf("yabai not found at [%s] or on $PATH", path)
	}
	return found, nil
}
