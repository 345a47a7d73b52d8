package allspaceslib

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
)

const configName = "wallpaper-allspaces"

// Config holds settings for the tool itself. It never describes wallpapers and
// nothing is written back to it.
type Config struct {
	Yabai       string
	Scale       string
	Fill        string
	StrictFocus bool
	Timeout     Duration
	Verbose     bool
	LogFile     string
}

// Duration lets TOML values like "5s" decode into a time.Duration.
type Duration struct {
	time.Duration
}

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func DefaultConfig() *Config {
	return &Config{
		Yabai: DefaultYabaiPath,
		Scale: DefaultScale,
		Fill:  DefaultFill,
	}
}

type FileSystem interface {
	UserHomeDir() (string, error)
	Getenv(key string) string
	ReadFile(path string) ([]byte, error)
}

type osFileSystem struct{}

func (osFileSystem) UserHomeDir() (string, error)         { return os.UserHomeDir() }
func (osFileSystem) Getenv(key string) string             { return os.Getenv(key) }
func (osFileSystem) ReadFile(path string) ([]byte, error) { return os.ReadFile(path) }

type Loader struct {
	fs FileSystem
}

func NewLoader() *Loader {
	return &Loader{fs: osFileSystem{}}
}

func NewLoaderWithFS(fs FileSystem) *Loader {
	return &Loader{fs: fs}
}

// DefaultPath is $XDG_CONFIG_HOME/wallpaper-allspaces/config.toml, falling back
// to ~/.config. Empty if neither can be determined.
func (l *Loader) DefaultPath() string {
	dir := l.fs.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := l.fs.UserHomeDir()
		if err != nil || home == "" {
			return ""
		}
		dir = filepath.Join(home, ".config")
	}
	return filepath.Join(dir, configName, "config.toml")
}

// Load reads the config at path, or at DefaultPath when path is empty.
// Only an explicitly requested file has to exist.
func (l *Loader) Load(path string) (*Config, error) {
	c := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = l.DefaultPath()
		if path == "" {
			return c, c.validate()
		}
	}

	data, err := l.fs.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return c, c.validate()
		}
		return nil, fmt.Errorf("Error reading config [%s]: %w", path, err)
	}

	md, err := toml.Decode(string(data), c)
	if err != nil {
		return nil, fmt.Errorf("Error parsing config [%s]: %w", path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("Config [%s] contains unknown keys: %s", path, strings.Join(keys, ", "))
	}

	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Yabai == "" {
		c.Yabai = DefaultYabaiPath
	}
	if c.Scale == "" {
		c.Scale = DefaultScale
	}
	if c.Fill == "" {
		c.Fill = DefaultFill
	}

	if _, err := ParseScalingMode(c.Scale); err != nil {
		return fmt.Errorf("Config contains invalid Scale: %w", err)
	}
	if _, err := ParseColor(c.Fill); err != nil {
		return fmt.Errorf("Config contains invalid Fill: %w", err)
	}

	if c.Timeout.Duration < 0 {
		return fmt.Errorf("Timeout must not be negative")
	}

	return nil
}
