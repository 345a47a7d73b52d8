package allspaceslib

import (
	"context"
	"fmt"
	"os"
	"strings"
)

// recorder collects one line per side effect so tests can assert the exact order.
type recorder struct {
	events []string
}

func (r *recorder) add(format string, args ...interface{}) {
	if r == nil {
		return
	}
	r.events = append(r.events, fmt.Sprintf(format, args...))
}

type mockSpaces struct {
	rec            *recorder
	Spaces         []Space
	ListSpacesFunc func(ctx context.Context) ([]Space, error)
	FocusFunc      func(ctx context.Context, index int) error
}

func (m *mockSpaces) ListSpaces(ctx context.Context) ([]Space, error) {
	m.rec.add("list")
	if m.ListSpacesFunc != nil {
		return m.ListSpacesFunc(ctx)
	}
	return m.Spaces, nil
}

func (m *mockSpaces) Focus(ctx context.Context, index int) error {
	m.rec.add("focus %d", index)
	if m.FocusFunc != nil {
		return m.FocusFunc(ctx, index)
	}
	return nil
}

type mockDesktop struct {
	rec                 *recorder
	ScreenCount         int
	ScreensErr          error
	SetDesktopImageFunc func(screen int, file string, opts ScreenOptions) error
	Options             []ScreenOptions
}

func (m *mockDesktop) Screens() (int, error) {
	return m.ScreenCount, m.ScreensErr
}

func (m *mockDesktop) SetDesktopImage(screen int, file string, opts ScreenOptions) error {
	m.rec.add("set screen %d %s", screen, file)
	m.Options = append(m.Options, opts)
	if m.SetDesktopImageFunc != nil {
		return m.SetDesktopImageFunc(screen, file, opts)
	}
	return nil
}

type runnerCall struct {
	Name string
	Args []string
}

type mockRunner struct {
	Calls   []runnerCall
	RunFunc func(ctx context.Context, name string, args []string) (*Result, error)
}

func (m *mockRunner) Run(ctx context.Context, name string, args ...string) (*Result, error) {
	m.Calls = append(m.Calls, runnerCall{Name: name, Args: args})
	if m.RunFunc != nil {
		return m.RunFunc(ctx, name, args)
	}
	return &Result{}, nil
}

func (m *mockRunner) commandLines() []string {
	lines := make([]string, len(m.Calls))
	for i, c := range m.Calls {
		lines[i] = c.Name + " " + strings.Join(c.Args, " ")
	}
	return lines
}

type mockFileSystem struct {
	HomeDir    string
	HomeDirErr error
	Env        map[string]string
	Files      map[string][]byte
	ReadErr    error
}

func (m *mockFileSystem) UserHomeDir() (string, error) {
	return m.HomeDir, m.HomeDirErr
}

func (m *mockFileSystem) Getenv(key string) string {
	return m.Env[key]
}

func (m *mockFileSystem) ReadFile(path string) ([]byte, error) {
	if m.ReadErr != nil {
		return nil, m.ReadErr
	}
	data, ok := m.Files[path]
	if !ok {
		return nil, os.ErrNotExist
	}
	return data, nil
}

func intp(i int) *int    { return &i }
func boolp(b bool) *bool { return &b }
