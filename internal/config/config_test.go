package config

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestDefaultIsValid(t *testing.T) {
	c := Default()
	if err := c.Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	if w, h := c.ScreenSize(); w != 400 || h != 400 {
		t.Errorf("expected 400x400 screen, got %dx%d", w, h)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"narrow", func(c *Config) { c.Width = MinGrid - 1 }},
		{"short", func(c *Config) { c.Height = 3 }},
		{"wide", func(c *Config) { c.Width = MaxGrid + 1 }},
		{"tall", func(c *Config) { c.Height = 100000000 }},
		{"zero cell", func(c *Config) { c.CellSize = 0 }},
		{"huge cell", func(c *Config) { c.CellSize = 65 }},
		{"zero period", func(c *Config) { c.Period = 0 }},
		{"negative period", func(c *Config) { c.Period = -time.Second }},
		{"zero scale", func(c *Config) { c.Scale = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			tt.mutate(&c)
			if err := c.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("expected ErrInvalid, got %v", err)
			}
		})
	}
}

func TestDecode(t *testing.T) {
	src := `
# a comment line
width  = 60
height = 30   # trailing comment
cell_size = 12
period = 150ms
seed = 1234
scale = 3
`
	c := Default()
	if err := c.Decode("test.conf", src); err != nil {
		t.Fatalf("Decode: %v", err)
	}

	want := Config{Width: 60, Height: 30, CellSize: 12, Period: 150 * time.Millisecond, Seed: 1234, Scale: 3}
	if c != want {
		t.Errorf("expected %+v, got %+v", want, c)
	}
}

func TestDecodeEmptyKeepsDefaults(t *testing.T) {
	c := Default()
	if err := c.Decode("empty.conf", "\n# nothing here\n"); err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if c != Default() {
		t.Errorf("expected defaults, got %+v", c)
	}
}

func TestDecodeErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		want string
	}{
		{"unknown key", "speed = 3", `unknown key "speed"`},
		{"int for duration", "period = 100", "period: expected duration"},
		{"duration for int", "width = 10ms", "width: expected integer"},
		{"ident for int", "height = tall", "height: expected integer"},
		{"missing value", "width =", "parse bad.conf"},
		{"missing equals", "width 40", "parse bad.conf"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := Default()
			err := c.Decode("bad.conf", tt.src)
			if err == nil {
				t.Fatal("expected error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("expected error containing %q, got %q", tt.want, err)
			}
		})
	}
}

func TestDecodeReportsPosition(t *testing.T) {
	c := Default()
	err := c.Decode("pos.conf", "width = 40\nbogus = 1\n")
	if err == nil || !strings.Contains(err.Error(), "pos.conf:2:") {
		t.Errorf("expected position pos.conf:2 in error, got %v", err)
	}
}

func writeFile(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "snake.conf")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadValidates(t *testing.T) {
	for _, src := range []string{"width = 5\n", "width = 100000000\n"} {
		path := writeFile(t, src)
		if _, err := Load(path); !errors.Is(err, ErrInvalid) {
			t.Errorf("%q: expected ErrInvalid, got %v", src, err)
		}
	}
}

func TestValidateGridEdges(t *testing.T) {
	c := Default()
	c.Width, c.Height = MinGrid, MaxGrid
	if err := c.Validate(); err != nil {
		t.Errorf("%dx%d should be valid: %v", c.Width, c.Height, err)
	}
}

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestFlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "width = 60\nheight = 30\nperiod = 200ms\n")

	fs := newFlagSet()
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-height", "50", "-seed", "9"}); err != nil {
		t.Fatal(err)
	}

	c, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.Width != 60 {
		t.Errorf("expected width from file 60, got %d", c.Width)
	}
	if c.Height != 50 {
		t.Errorf("expected height from flag 50, got %d", c.Height)
	}
	if c.Period != 200*time.Millisecond {
		t.Errorf("expected period from file 200ms, got %v", c.Period)
	}
	if c.Seed != 9 {
		t.Errorf("expected seed 9, got %d", c.Seed)
	}
	if f.Source() != path {
		t.Errorf("expected source %q, got %q", path, f.Source())
	}
}

func TestFlagsRescueInvalidFile(t *testing.T) {
	path := writeFile(t, "width = 5\n")

	fs := newFlagSet()
	f := RegisterFlags(fs)
	if err := fs.Parse([]string{"-config", path, "-width", "20"}); err != nil {
		t.Fatal(err)
	}
	c, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c.Width != 20 {
		t.Errorf("expected width 20, got %d", c.Width)
	}
}

func TestMissingDefaultFileFallsBack(t *testing.T) {
	t.Chdir(t.TempDir())

	fs := newFlagSet()
	f := RegisterFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	c, err := f.Resolve()
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c != Default() {
		t.Errorf("expected defaults, got %+v", c)
	}
	if f.Source() != "defaults" {
		t.Errorf("expected source defaults, got %q", f.Source())
	}
}

func TestMissingExplicitFileFails(t *testing.T) {
	fs := newFlagSet()
	f := RegisterFlags(fs)
	missing := filepath.Join(t.TempDir(), "nope.conf")
	if err := fs.Parse([]string{"-config", missing}); err != nil {
		t.Fatal(err)
	}
	if _, err := f.Resolve(); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected not-exist error, got %v", err)
	}
}
