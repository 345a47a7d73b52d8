package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	lib "github.com/awused/wallpaper-allspaces/lib"
	"github.com/charmbracelet/log"
	"github.com/urfave/cli/v2"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := lib.NewLogger(os.Stderr, false)

	app := newApp(logger, defaultEnv(logger))
	if err := app.RunContext(ctx, os.Args); err != nil {
		logger.Error(err)
		stop()
		os.Exit(1)
	}
}

func newApp(logger *log.Logger, e *env) *cli.App {
	app := cli.NewApp()
	app.Name = "wallpaper"
	app.Usage = "Set the desktop picture on every yabai space"
	app.ArgsUsage = "PATH"
	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr
	app.Flags = setFlags()
	app.Action = func(c *cli.Context) error {
		return setAction(c, logger, e)
	}

	return app
}
