package allspaceslib

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sys/execabs"
)

// Result is the outcome of a process that was started.
type Result struct {
	Stdout   string
	Stderr   string
	ExitCode int
}

type CommandError struct {
	Cmd      string
	Stage    string
	ExitCode int
	Stderr   string
	Cause    error
}

func (e *CommandError) Error() string {
	msg := fmt.Sprintf("%s failed to %s", e.Cmd, e.Stage)
	if e.Stage == "exit" {
		msg = fmt.Sprintf("%s exited with status %d", e.Cmd, e.ExitCode)
	}
	if s := strings.TrimSpace(e.Stderr); s != "" {
		msg += ": " + s
	} else if e.Cause != nil {
		msg += ": " + e.Cause.Error()
	}
	return msg
}

func (e *CommandError) Unwrap() error {
	return e.Cause
}

type Runner interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}

// CommandRunner runs real processes and waits for them to exit.
type CommandRunner struct{}

func (CommandRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := execabs.CommandContext(ctx, name, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	// Children that inherit the pipes must not keep Wait blocked after a kill.
	cmd.WaitDelay = time.Second

	if err := cmd.Start(); err != nil {
		return nil, &CommandError{Cmd: name, Stage: "start", ExitCode: -1, Cause: err}
	}

	err := cmd.Wait()
	res := &Result{
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		ExitCode: exitCode(err),
	}
	if err != nil {
		return res, &CommandError{
			Cmd:      name,
			Stage:    "exit",
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Cause:    err,
		}
	}

	return res, nil
}

func exitCode(err error) int {
	if err == nil {
		return 0
	}
	type exitCoder interface {
		ExitCode() int
	}
	if ec, ok := err.(exitCoder); ok {
		return ec.ExitCode()
	}
	return -1
}
