package aoc

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNoSession is returned when puzzle data has to be fetched but no session
// cookie is configured.
var ErrNoSession = errors.New("no adventofcode.com session configured")

const (
	defaultBaseURL         = "https://adventofcode.com"
	defaultRequestInterval = 3 * time.Second
)

// Config configures access to adventofcode.com.
type Config struct {
	// Session is the value of the "session" cookie of a logged in browser.
	Session string `yaml:"session"`
	// CacheDir holds fetched inputs, descriptions and answer ledgers.
	CacheDir string `yaml:"cache_dir"`
	// RequestInterval is the minimum spacing between requests.
	RequestInterval time.Duration `yaml:"request_interval"`
	// BaseURL defaults to https://adventofcode.com.
	BaseURL string `yaml:"base_url"`
}

// DefaultConfigPath returns <user config dir>/aoc/config.yaml.
func DefaultConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "aoc", "config.yaml")
}

// LoadConfig reads the YAML config at path, if it exists, then applies
// environment overrides and defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{}
	if path != "" {
		b, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("reading config: %w", err)
		default:
			if err := yaml.Unmarshal(b, cfg); err != nil {
				return nil, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}
	cfg.applyEnvOverrides()
	cfg.applyDefaults()
	return cfg, nil
}

func (c *Config) applyEnvOverrides() {
	for _, env := range []string{"COOKIE", "AOC_SESSION"} {
		if v := strings.TrimSpace(os.Getenv(env)); v != "" {
			c.Session = v
			return
		}
	}
}

func (c *Config) applyDefaults() {
	if c.CacheDir == "" {
		c.CacheDir = "."
	}
	if c.RequestInterval <= 0 {
		c.RequestInterval = defaultRequestInterval
	}
	c.BaseURL = strings.TrimSuffix(Or(c.BaseURL, defaultBaseURL), "/")
}

// SessionToken returns the configured session, falling back to the contents
// of ~/keys/aoc.session.
func (c *Config) SessionToken() (string, error) {
	if c.Session != "" {
		return c.Session, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", ErrNoSession
	}
	b, err := os.ReadFile(filepath.Join(home, "keys", "aoc.session"))
	if err != nil {
		return "", ErrNoSession
	}
	if s := strings.TrimSpace(string(b)); s != "" {
		return s, nil
	}
	return "", ErrNoSession
}
