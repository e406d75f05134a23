package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/consolemenu/internal/menu"
)

// OptionEntry is one [[option]] table of an options file.
type OptionEntry struct {
	Key   int64  `toml:"key"`
	Label string `toml:"label"`
	Run   string `toml:"run"` // optional shell command run when picked
}

// OptionsFile is a menu definition loaded from TOML.
type OptionsFile struct {
	Header    string        `toml:"header"`    // overrides Config.Header when set
	Separator string        `toml:"separator"` // overrides Config.Separator when set
	Options   []OptionEntry `toml:"option"`
}

// LoadOptions reads and validates an options file.
func LoadOptions(path string) (OptionsFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return OptionsFile{}, fmt.Errorf("failed to read options file: %w", err)
	}

	var f OptionsFile
	md, err := toml.Decode(string(data), &f)
	if err != nil {
		return OptionsFile{}, fmt.Errorf("failed to parse options file: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return OptionsFile{}, fmt.Errorf("%s: unknown key %q", path, undecoded[0].String())
	}

	if err := validateOptions(f.Options); err != nil {
		return OptionsFile{}, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// MenuOptions returns the entries as menu options.
func (f OptionsFile) MenuOptions() []menu.Option[int64] {
	opts := make([]menu.Option[int64], len(f.Options))
	for i, o := range f.Options {
		opts[i] = menu.Option[int64]{Key: o.Key, Label: o.Label}
	}
	return opts
}

// Actions returns the shell command for every entry that has one.
func (f OptionsFile) Actions() map[int64]string {
	actions := make(map[int64]string)
	for _, o := range f.Options {
		if o.Run != "" {
			actions[o.Key] = o.Run
		}
	}
	return actions
}

// Merge returns cfg with the file's header and separator applied.
func (f OptionsFile) Merge(cfg Config) Config {
	if f.Header != "" {
		cfg.Header = f.Header
	}
	if f.Separator != "" {
		cfg.Separator = f.Separator
	}
	return cfg
}
