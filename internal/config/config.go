package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/consolemenu/internal/menu"
)

// EnvConfigPath overrides the config file location.
const EnvConfigPath = "CONSOLEMENU_CONFIG"

// Config holds the consolemenu configuration
type Config struct {
	Header        string `toml:"header"`
	Separator     string `toml:"separator"`
	WordSeparator string `toml:"word_separator"`
	RawLabels     bool   `toml:"raw_labels"`
	Cancel        bool   `toml:"cancel"`
	Dispatch      bool   `toml:"dispatch"`
	LeadingBlank  bool   `toml:"leading_blank"`
}

// Default returns the default configuration
func Default() Config {
	return Config{
		Header:        menu.DefaultHeader,
		Separator:     menu.DefaultSeparator,
		WordSeparator: string(menu.DefaultWordSeparator),
		Cancel:        true,
		Dispatch:      true,
		LeadingBlank:  true,
	}
}

// WordSeparatorRune returns the word separator as a rune, or 0 if disabled.
func (c Config) WordSeparatorRune() rune {
	for _, r := range c.WordSeparator {
		return r
	}
	return 0
}

// Apply copies the presentation settings onto m.
func Apply[K menu.Key](c Config, m *menu.Menu[K]) {
	m.Header = c.Header
	m.Separator = c.Separator
	m.WordSeparator = c.WordSeparatorRune()
	m.SupportsCancel = c.Cancel
	m.AutoDispatch = c.Dispatch
	m.LeadingBlankLine = c.LeadingBlank
}

// Path returns the path to the config file
func Path() (string, error) {
	if p := os.Getenv(EnvConfigPath); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "consolemenu", "config.toml"), nil
}

// Load reads config from Path().
// Returns Default() if file doesn't exist (no error)
// Returns error only if file exists but is invalid
func Load() (Config, error) {
	path, err := Path()
	if err != nil {
		return Default(), nil
	}
	return LoadFile(path)
}

// LoadFile reads config from path. Keys missing from the file keep their
// default values.
func LoadFile(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Default(), fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks field values that TOML typing cannot.
func (c Config) Validate() error {
	return validateWordSeparator(c.WordSeparator)
}

// Encode renders c as TOML.
func (c Config) Encode() (string, error) {
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return buf.String(), nil
}

const defaultConfig = `# consolemenu configuration

# Line printed above the options
header = "Please choose an option:"

# Text between an option's number and its label: "1 - iPhone 5"
separator = "-"

# Character shown as a blank in labels ("iPhone_5" -> "iPhone 5")
# Set to "" to disable
word_separator = "_"

# Print labels verbatim, ignoring word_separator
raw_labels = false

# Offer "X - Exit" to leave the menu without a selection
cancel = true

# Run an option's action (options file "run") after it is picked
dispatch = true

# Print a blank line before the header
leading_blank = true
`

// DefaultContent returns the content written by Init.
func DefaultContent() string {
	return defaultConfig
}

// Init creates a default config file at Path()
// If force is true, overwrites existing file
// Returns the path to the created file
func Init(force bool) (string, error) {
	path, err := Path()
	if err != nil {
		return "", err
	}

	if !force {
		if _, err := os.Stat(path); err == nil {
			return "", fmt.Errorf("config file already exists: %s (use --force to overwrite)", path)
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory: %w", err)
	}

	// Write to a temp file, then rename into place
	tempPath := path + ".tmp"
	if err := os.WriteFile(tempPath, []byte(defaultConfig), 0644); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}
	if err := os.Rename(tempPath, path); err != nil {
		return "", fmt.Errorf("failed to write config file: %w", err)
	}

	return path, nil
}

type ctxKey struct{}

// WithConfig attaches cfg to the context.
func WithConfig(ctx context.Context, cfg Config) context.Context {
	return context.WithValue(ctx, ctxKey{}, cfg)
}

// FromContext retrieves the config from context.
// Returns Default() if none is attached.
func FromContext(ctx context.Context) Config {
	if cfg, ok := ctx.Value(ctxKey{}).(Config); ok {
		return cfg
	}
	return Default()
}
