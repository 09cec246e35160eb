package config

import (
	"errors"
	"flag"
	"os"
)

// Flags binds the config fields and a -config path to a FlagSet. After the
// FlagSet is parsed, Resolve loads the file and lets explicitly set flags
// override it.
type Flags struct {
	fs     *flag.FlagSet
	path   string
	cfg    Config
	source string
}

func RegisterFlags(fs *flag.FlagSet) *Flags {
	f := &Flags{fs: fs, cfg: Default()}
	fs.StringVar(&f.path, "config", DefaultPath, "config file (missing default file is ignored)")
	fs.IntVar(&f.cfg.Width, "width", f.cfg.Width, "grid width in cells")
	fs.IntVar(&f.cfg.Height, "height", f.cfg.Height, "grid height in cells")
	fs.IntVar(&f.cfg.CellSize, "cell", f.cfg.CellSize, "cell size in pixels")
	fs.DurationVar(&f.cfg.Period, "period", f.cfg.Period, "time between moves")
	fs.Int64Var(&f.cfg.Seed, "seed", f.cfg.Seed, "food RNG seed (0 = random)")
	fs.IntVar(&f.cfg.Scale, "scale", f.cfg.Scale, "initial window scale")
	return f
}

func (f *Flags) Resolve() (Config, error) {
	explicit := map[string]bool{}
	f.fs.Visit(func(fl *flag.Flag) { explicit[fl.Name] = true })

	c, err := load(f.path)
	switch {
	case err == nil:
		f.source = f.path
	case errors.Is(err, os.ErrNotExist) && !explicit["config"]:
		c = Default()
		f.source = "defaults"
	default:
		return c, err
	}

	for name := range explicit {
		switch name {
		case "width":
			c.Width = f.cfg.Width
		case "height":
			c.Height = f.cfg.Height
		case "cell":
			c.CellSize = f.cfg.CellSize
		case "period":
			c.Period = f.cfg.Period
		case "seed":
			c.Seed = f.cfg.Seed
		case "scale":
			c.Scale = f.cfg.Scale
		}
	}
	return c, c.Validate()
}

// Source names where the base values came from: the file path or
// "defaults". It is empty until Resolve succeeds.
func (f *Flags) Source() string { return f.source }
