package identification

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/exertive/identity/locator"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultScheme is the URI scheme of canonical locators.
	DefaultScheme = "https://"

	// DefaultAuthority is the authority of canonical locators.
	DefaultAuthority = "index.exertive.io"
)

// Config holds the values a Service is built from.
type Config struct {
	// Scheme including its "://" separator, e.g. "https://".
	Scheme string `yaml:"scheme"`

	// Authority is the host part of every locator, e.g. "index.exertive.io".
	Authority string `yaml:"authority"`

	// Locators maps model names to group names. When empty the built-in
	// locator table is used.
	Locators map[string]string `yaml:"locators,omitempty"`
}

// DefaultConfig returns the built-in configuration.
func DefaultConfig() Config {
	locators := make(map[string]string)
	for _, e := range locator.DefaultEntries() {
		locators[e.Model.String()] = e.Group.String()
	}
	return Config{
		Scheme:    DefaultScheme,
		Authority: DefaultAuthority,
		Locators:  locators,
	}
}

// Validate checks the scheme, the authority and every locator entry.
func (c Config) Validate() error {
	name, ok := strings.CutSuffix(c.Scheme, "://")
	if !ok || name == "" || strings.ContainsAny(name, ":/ ") {
		return fmt.Errorf("%w: scheme %q must look like \"https://\"", ErrInvalidConfig, c.Scheme)
	}
	if c.Authority == "" || strings.ContainsAny(c.Authority, "/ ") {
		return fmt.Errorf("%w: authority %q must be a bare host", ErrInvalidConfig, c.Authority)
	}
	if _, err := c.entries(); err != nil {
		return err
	}
	return nil
}

// Registry builds the locator registry described by the configuration.
func (c Config) Registry() (*locator.Registry, error) {
	entries, err := c.entries()
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return locator.NewDefaultRegistry(), nil
	}
	registry, err := locator.NewRegistry(entries)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return registry, nil
}

// entries converts the locator map into typed entries, sorted by model name
// so that errors are reported in a stable order.
func (c Config) entries() ([]locator.Entry, error) {
	names := make([]string, 0, len(c.Locators))
	for name := range c.Locators {
		names = append(names, name)
	}
	sort.Strings(names)

	entries := make([]locator.Entry, 0, len(names))
	for _, name := range names {
		m, err := locator.ParseModel(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
		}
		g, err := locator.ParseGroup(c.Locators[name])
		if err != nil {
			return nil, fmt.Errorf("%w: model %s: %w", ErrInvalidConfig, name, err)
		}
		entries = append(entries, locator.Entry{Model: m, Group: g})
	}
	return entries, nil
}

// LoadConfig reads and parses an identification configuration file.
// If path is a directory, it looks for identity.yaml or identity.yml in that
// directory. Fields missing from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	info, err := os.Stat(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: failed to stat path: %w", ErrInvalidConfig, err)
	}

	configPath := path
	if info.IsDir() {
		configPath = ""
		for _, candidate := range []string{"identity.yaml", "identity.yml"} {
			p := filepath.Join(path, candidate)
			if _, err := os.Stat(p); err == nil {
				configPath = p
				break
			}
		}
		if configPath == "" {
			return Config{}, fmt.Errorf("%w: no identity.yaml or identity.yml found in %s", ErrInvalidConfig, path)
		}
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return Config{}, fmt.Errorf("%w: failed to read config file: %w", ErrInvalidConfig, err)
	}

	return ParseConfig(data)
}

// ParseConfig parses YAML configuration data on top of DefaultConfig and
// validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	cfg.Locators = nil

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: failed to parse config file: %w", ErrInvalidConfig, err)
	}
	if len(cfg.Locators) == 0 {
		cfg.Locators = DefaultConfig().Locators
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
