package main

import (
	"fmt"
	"os"

	lib "github.com/awused/wallpaper-allspaces/lib"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

const scale = "scale"
const fill = "fill"
const yabai = "yabai"
const strictFocus = "strict-focus"
const timeout = "timeout"
const configFlag = "config"
const verbose = "verbose"

// env holds everything setAction reaches outside the process for.
type env struct {
	loader       *lib.Loader
	resolveYabai func(string) (string, error)
	runner       lib.Runner
	desktop      lib.Desktop
}

func defaultEnv(logger *log.Logger) *env {
	return &env{
		loader:       lib.NewLoader(),
		resolveYabai: lib.ResolveYabai,
		runner:       lib.CommandRunner{},
		desktop:      lib.NewDesktop(logger),
	}
}

func setFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    scale,
			EnvVars: []string{"WALLPAPER_SCALE"},
			Usage:   "Scaling option: center, zoom, stretch, none. (default zoom)",
		},
		&cli.StringFlag{
			Name:    fill,
			EnvVars: []string{"WALLPAPER_FILL"},
			Usage:   "Fill color as #RRGGBB. (default #000000)",
		},
		&cli.StringFlag{
			Name:      yabai,
			EnvVars:   []string{"WALLPAPER_YABAI"},
			TakesFile: true,
			Usage:     "Path to the yabai binary. (default " + lib.DefaultYabaiPath + ")",
		},
		&cli.BoolFlag{
			Name:  strictFocus,
			Usage: "Abort when yabai fails to switch spaces instead of carrying on",
		},
		&cli.DurationFlag{
			Name:  timeout,
			Usage: "Kill any single yabai call that runs longer than this, 0 waits forever",
		},
		&cli.StringFlag{
			Name:      configFlag,
			TakesFile: true,
			Usage:     "Settings file, defaults to $XDG_CONFIG_HOME/wallpaper-allspaces/config.toml",
		},
		&cli.BoolFlag{
			Name:  verbose,
			Usage: "Log every yabai call and space",
		},
	}
}

func setAction(c *cli.Context, logger *log.Logger, e *env) error {
	if c.NArg() != 1 {
		return fmt.Errorf("expected exactly one image PATH, got %d arguments", c.NArg())
	}

	conf, err := e.loader.Load(c.String(configFlag))
	if err != nil {
		return err
	}

	if conf.Verbose || c.Bool(verbose) {
		logger.SetLevel(log.DebugLevel)
	}

	if conf.LogFile != "" {
		// Left open until exit so the final error from main lands in it as well.
		f, err := os.OpenFile(conf.LogFile, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
		if err != nil {
			return fmt.Errorf("Error opening log file: %w", err)
		}
		logger.SetOutput(f)
	}

	req := lib.Request{
		Path:  c.Args().First(),
		Scale: conf.Scale,
		Fill:  conf.Fill,
	}
	if c.IsSet(scale) {
		req.Scale = c.String(scale)
	}
	if c.IsSet(fill) {
		req.Fill = c.String(fill)
	}

	// Bad options are reported before yabai is even looked up.
	if _, err := lib.BuildOptions(req.Scale, req.Fill); err != nil {
		return &lib.StageError{Stage: "options", Err: err}
	}

	yabaiPath := conf.Yabai
	if c.IsSet(yabai) {
		yabaiPath = c.String(yabai)
	}
	yabaiPath, err = e.resolveYabai(yabaiPath)
	if err != nil {
		return err
	}

	y := lib.NewYabai(yabaiPath, logger)
	y.Runner = e.runner
	y.StrictFocus = conf.StrictFocus || c.Bool(strictFocus)
	y.Timeout = conf.Timeout.Duration
	if c.IsSet(timeout) {
		y.Timeout = c.Duration(timeout)
	}

	run := &lib.AllSpaces{Spaces: y, Desktop: e.desktop, Logger: logger}
	return run.Run(c.Context, req)
}
