package app

import (
	"flag"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/caarlos0/env/v11"

	"tgol/pkg/sims/life"
)

// Front-end names accepted by Config.UI.
const (
	UITerminal = "term"
	UIWindow   = "gui"
)

// Config represents the runtime parameters of the interactive program.
// Values come from NewConfig, then GOL_* environment variables, then flags,
// then an optional positional density argument.
type Config struct {
	Density  int    `env:"GOL_DENSITY"`
	Rule     string `env:"GOL_RULE"`
	Adaptive bool   `env:"GOL_ADAPTIVE"`
	// Seed 0 means derive one from the clock at startup.
	Seed    int64  `env:"GOL_SEED"`
	SpeedMS int    `env:"GOL_SPEED_MS"`
	UI      string `env:"GOL_UI"`
	Scale   int    `env:"GOL_SCALE"`
	MinRows int    `env:"GOL_MIN_ROWS"`
	MinCols int    `env:"GOL_MIN_COLS"`
	LogFile string `env:"GOL_LOG"`
}

// NewConfig returns a Config populated with defaults.
func NewConfig() *Config {
	return &Config{
		Density: life.DefaultDensity,
		Rule:    life.ConwayRule.Name,
		SpeedMS: 50,
		UI:      UITerminal,
		Scale:   4,
		MinRows: 10,
		MinCols: 10,
	}
}

// LoadEnv overrides fields whose GOL_* variable is set.
func (c *Config) LoadEnv() error {
	if err := env.Parse(c); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Density, "density", c.Density, "seeding density in parts per thousand (0-1000)")
	fs.StringVar(&c.Rule, "rule", c.Rule, "rule name or B/S notation, e.g. conway or B36/S23")
	fs.BoolVar(&c.Adaptive, "adaptive", c.Adaptive, "switch between growth and decay rules by population")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "random seed (0 derives one from the clock)")
	fs.IntVar(&c.SpeedMS, "speed", c.SpeedMS, "milliseconds between generations")
	fs.StringVar(&c.UI, "ui", c.UI, "front-end: term or gui")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier for the gui front-end")
	fs.IntVar(&c.MinRows, "min-rows", c.MinRows, "minimum grid rows")
	fs.IntVar(&c.MinCols, "min-cols", c.MinCols, "minimum grid columns")
	fs.StringVar(&c.LogFile, "log", c.LogFile, "write logs to this file while the terminal is in use")
}

// ApplyArgs interprets the first positional argument as a density. Values
// that do not parse or fall outside [0,1000] are reported to warn and the
// default density is used instead.
func (c *Config) ApplyArgs(args []string, warn io.Writer) {
	if len(args) == 0 {
		return
	}
	d, err := strconv.Atoi(args[0])
	switch {
	case err != nil:
		fmt.Fprintf(warn, "Warning: Invalid density argument '%s'. Using default (%d).\n", args[0], life.DefaultDensity)
		c.Density = life.DefaultDensity
	case d < 0 || d > life.MaxDensity:
		fmt.Fprintf(warn, "Warning: Density must be between 0 and %d. Using default (%d).\n", life.MaxDensity, life.DefaultDensity)
		c.Density = life.DefaultDensity
	default:
		c.Density = d
	}
}

// Validate checks values that would otherwise fail deep inside the loop.
func (c *Config) Validate() error {
	if err := life.ValidateDensity(c.Density); err != nil {
		return err
	}
	if c.SpeedMS <= 0 {
		return fmt.Errorf("speed must be positive, got %d", c.SpeedMS)
	}
	if c.MinRows < 1 || c.MinCols < 1 {
		return fmt.Errorf("minimum size must be at least 1x1, got %dx%d", c.MinRows, c.MinCols)
	}
	if c.Scale < 1 {
		return fmt.Errorf("scale must be positive, got %d", c.Scale)
	}
	if c.UI != UITerminal && c.UI != UIWindow {
		return fmt.Errorf("unknown ui %q", c.UI)
	}
	if _, err := life.LookupRule(c.Rule); err != nil {
		return err
	}
	return nil
}

// Speed returns the delay between generations.
func (c *Config) Speed() time.Duration {
	return time.Duration(c.SpeedMS) * time.Millisecond
}

// WorldConfig builds the simulation config for a rows x cols board.
func (c *Config) WorldConfig(rows, cols int) (life.Config, error) {
	rule, err := life.LookupRule(c.Rule)
	if err != nil {
		return life.Config{}, err
	}
	return life.Config{
		Rows:     rows,
		Cols:     cols,
		Density:  c.Density,
		Rule:     rule,
		Adaptive: c.Adaptive,
	}, nil
}
