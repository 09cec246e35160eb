package config

import (
	"fmt"
	"os"
	"time"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// A config file is a list of "key = value" lines. '#' starts a comment.
//
//	# bigger board, slower snake
//	width  = 60
//	height = 30
//	period = 150ms

type file struct {
	Entries []*entry `parser:"@@*"`
}

type entry struct {
	Pos   lexer.Position
	Key   string `parser:"@Ident '='"`
	Value *value `parser:"@@"`
}

type value struct {
	Duration *string `parser:"  @Duration"`
	Int      *int64  `parser:"| @Int"`
	Ident    *string `parser:"| @Ident"`
}

func (v *value) String() string {
	switch {
	case v.Duration != nil:
		return *v.Duration
	case v.Int != nil:
		return fmt.Sprint(*v.Int)
	case v.Ident != nil:
		return *v.Ident
	}
	return ""
}

var fileLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Duration", Pattern: `(\d+(ns|us|ms|s|m|h))+`},
	{Name: "Int", Pattern: `-?\d+`},
	{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`},
	{Name: "Punct", Pattern: `=`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var fileParser = participle.MustBuild[file](
	participle.Lexer(fileLexer),
	participle.Elide("Comment", "Whitespace"),
)

// Load reads path on top of the defaults and validates the result.
func Load(path string) (Config, error) {
	c, err := load(path)
	if err != nil {
		return c, err
	}
	return c, c.Validate()
}

func load(path string) (Config, error) {
	c := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return c, err
	}
	err = c.Decode(path, string(data))
	return c, err
}

// Decode applies the entries in data to c. name is used in error messages.
// It does not validate.
func (c *Config) Decode(name, data string) error {
	f, err := fileParser.ParseString(name, data)
	if err != nil {
		return fmt.Errorf("parse %s: %w", name, err)
	}
	for _, e := range f.Entries {
		if err := c.set(e.Key, e.Value); err != nil {
			return fmt.Errorf("%s: %w", e.Pos, err)
		}
	}
	return nil
}

func (c *Config) set(key string, v *value) error {
	switch key {
	case "width":
		return v.int(key, &c.Width)
	case "height":
		return v.int(key, &c.Height)
	case "cell_size":
		return v.int(key, &c.CellSize)
	case "scale":
		return v.int(key, &c.Scale)
	case "seed":
		if v.Int == nil {
			return fmt.Errorf("seed: expected integer, got %q", v)
		}
		c.Seed = *v.Int
		return nil
	case "period":
		if v.Duration == nil {
			return fmt.Errorf("period: expected duration like 100ms, got %q", v)
		}
		d, err := time.ParseDuration(*v.Duration)
		if err != nil {
			return fmt.Errorf("period: %w", err)
		}
		c.Period = d
		return nil
	}
	return fmt.Errorf("unknown key %q", key)
}

func (v *value) int(key string, dst *int) error {
	if v.Int == nil {
		return fmt.Errorf("%s: expected integer, got %q", key, v)
	}
	*dst = int(*v.Int)
	return nil
}
