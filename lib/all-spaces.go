package allspaceslib

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
)

type SpaceController interface {
	ListSpaces(ctx context.Context) ([]Space, error)
	Focus(ctx context.Context, index int) error
}

// StageError records which step of a run failed.
type StageError struct {
	Stage string
	Err   error
}

func (e *StageError) Error() string {
	return e.Stage + ": " + e.Err.Error()
}

func (e *StageError) Unwrap() error {
	return e.Err
}

type Request struct {
	Path string
	// Empty Scale or Fill selects the default.
	Scale string
	Fill  string
}

// AllSpaces walks every space, sets the wallpaper on each and then puts focus back
// where it was.
type AllSpaces struct {
	Spaces  SpaceController
	Desktop Desktop
	Logger  *log.Logger
}

func (a *AllSpaces) Run(ctx context.Context, req Request) (err error) {
	logger := orDiscard(a.Logger)

	opts, err := BuildOptions(req.Scale, req.Fill)
	if err != nil {
		return &StageError{Stage: "options", Err: err}
	}

	spaces, err := a.Spaces.ListSpaces(ctx)
	if err != nil {
		return &StageError{Stage: "query spaces", Err: err}
	}

	focused := FocusedIndex(spaces)
	logger.Debug("starting", "spaces", len(spaces), "focused", focused,
		"scale", opts.Scaling, "path", req.Path)

	defer func() {
		if focused < 0 {
			logger.Warn("no focused space reported, not restoring focus")
			return
		}
		// Focus is restored even after the run was interrupted.
		if rerr := a.Spaces.Focus(context.WithoutCancel(ctx), focused); rerr != nil {
			err = errors.Join(err, &StageError{Stage: "restore focus", Err: rerr})
		}
	}()

	for i, s := range spaces {
		if s.Index == nil {
			logger.Debug("skipping space without an index", "position", i)
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		index := *s.Index
		if err := a.Spaces.Focus(ctx, index); err != nil {
			return &StageError{Stage: fmt.Sprintf("focus space %d", index), Err: err}
		}

		if err := SetWallpaper(a.Desktop, req.Path, opts); err != nil {
			return &StageError{Stage: fmt.Sprintf("set wallpaper on space %d", index), Err: err}
		}
		logger.Debug("set wallpaper", "space", index)
	}

	return nil
}
