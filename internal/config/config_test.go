package config

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/BurntSushi/toml"

	"github.com/raphi011/consolemenu/internal/menu"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if cfg.Header != menu.DefaultHeader {
		t.Errorf("Header = %q, want %q", cfg.Header, menu.DefaultHeader)
	}
	if cfg.Separator != menu.DefaultSeparator {
		t.Errorf("Separator = %q, want %q", cfg.Separator, menu.DefaultSeparator)
	}
	if cfg.WordSeparatorRune() != '_' {
		t.Errorf("WordSeparatorRune() = %q, want '_'", cfg.WordSeparatorRune())
	}
	if !cfg.Cancel || !cfg.Dispatch || !cfg.LeadingBlank || cfg.RawLabels {
		t.Errorf("unexpected default flags: %+v", cfg)
	}
}

func TestDefaultContentMatchesDefault(t *testing.T) {
	t.Parallel()

	cfg := Default()
	if _, err := toml.Decode(DefaultContent(), &cfg); err != nil {
		t.Fatalf("default config does not parse: %v", err)
	}
	if cfg != Default() {
		t.Errorf("default config file = %+v, want %+v", cfg, Default())
	}
}

func TestLoadFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    func() Config
		wantErr string
	}{
		{
			name:    "partial file keeps defaults",
			content: "header = \"Pick a phone:\"\ncancel = false\n",
			want: func() Config {
				c := Default()
				c.Header = "Pick a phone:"
				c.Cancel = false
				return c
			},
		},
		{
			name:    "empty word separator disables replacement",
			content: "word_separator = \"\"\n",
			want: func() Config {
				c := Default()
				c.WordSeparator = ""
				return c
			},
		},
		{
			name:    "multi-character word separator",
			content: "word_separator = \"__\"\n",
			wantErr: "invalid word_separator",
		},
		{
			name:    "invalid toml",
			content: "header = \n",
			wantErr: "failed to parse config file",
		},
		{
			name:    "wrong type",
			content: "cancel = \"yes\"\n",
			wantErr: "failed to parse config file",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := LoadFile(writeFile(t, "config.toml", tt.content))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadFile() error = %v, want containing %q", err, tt.wantErr)
				}
				if cfg != Default() {
					t.Errorf("LoadFile() on error = %+v, want defaults", cfg)
				}
				return
			}
			if err != nil {
				t.Fatalf("LoadFile() error = %v", err)
			}
			if want := tt.want(); cfg != want {
				t.Errorf("LoadFile() = %+v, want %+v", cfg, want)
			}
		})
	}
}

func TestLoadFile_Missing(t *testing.T) {
	t.Parallel()

	cfg, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("LoadFile() error = %v, want nil", err)
	}
	if cfg != Default() {
		t.Errorf("LoadFile() = %+v, want defaults", cfg)
	}
}

func TestLoad_EnvPath(t *testing.T) {
	path := writeFile(t, "custom.toml", "separator = \":\"\n")
	t.Setenv(EnvConfigPath, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Separator != ":" {
		t.Errorf("Separator = %q, want %q", cfg.Separator, ":")
	}
}

func TestInit(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "config.toml")
	t.Setenv(EnvConfigPath, path)

	got, err := Init(false)
	if err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if got != path {
		t.Errorf("Init() path = %q, want %q", got, path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != DefaultContent() {
		t.Error("Init() wrote unexpected content")
	}

	if _, err := Init(false); err == nil || !strings.Contains(err.Error(), "already exists") {
		t.Errorf("Init() on existing file error = %v, want already exists", err)
	}
	if _, err := Init(true); err != nil {
		t.Errorf("Init(force) error = %v", err)
	}
}

func TestEncode(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Separator = "=>"
	s, err := cfg.Encode()
	if err != nil {
		t.Fatal(err)
	}

	var decoded Config
	if _, err := toml.NewDecoder(bytes.NewBufferString(s)).Decode(&decoded); err != nil {
		t.Fatalf("encoded config does not parse: %v", err)
	}
	if decoded != cfg {
		t.Errorf("decoded = %+v, want %+v", decoded, cfg)
	}
}

func TestApply(t *testing.T) {
	t.Parallel()

	m, err := menu.New(&bytes.Buffer{}, strings.NewReader(""), []menu.Option[int]{{Key: 1, Label: "a"}})
	if err != nil {
		t.Fatal(err)
	}
	cfg := Config{
		Header:        "H",
		Separator:     ":",
		WordSeparator: "",
		Cancel:        false,
		Dispatch:      false,
		LeadingBlank:  false,
	}
	Apply(cfg, m)

	if m.Header != "H" || m.Separator != ":" {
		t.Errorf("Header/Separator = %q/%q, want H/:", m.Header, m.Separator)
	}
	if m.WordSeparator != 0 {
		t.Errorf("WordSeparator = %q, want 0", m.WordSeparator)
	}
	if m.SupportsCancel || m.AutoDispatch || m.LeadingBlankLine {
		t.Error("flags should be copied from config")
	}
}

func TestWithConfig_FromContext(t *testing.T) {
	t.Parallel()

	if got := FromContext(context.Background()); got != Default() {
		t.Errorf("FromContext(empty) = %+v, want defaults", got)
	}

	cfg := Default()
	cfg.Header = "Pick:"
	if got := FromContext(WithConfig(context.Background(), cfg)); got != cfg {
		t.Errorf("FromContext = %+v, want %+v", got, cfg)
	}
}

func TestConfigMethodsOnValue(t *testing.T) {
	t.Parallel()

	if err := Default().Validate(); err != nil {
		t.Errorf("Default().Validate() = %v, want nil", err)
	}
	if r := Default().WordSeparatorRune(); r != '_' {
		t.Errorf("Default().WordSeparatorRune() = %q, want '_'", r)
	}
	bad := Config{WordSeparator: "ab"}
	if err := bad.Validate(); err == nil {
		t.Error("Validate() with two-character word_separator = nil, want error")
	}
}
