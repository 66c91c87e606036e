package life

import (
	"errors"
	"fmt"
)

// ErrInvalidArgument reports dimensions, densities or rules that a World
// cannot be built or resized with.
var ErrInvalidArgument = errors.New("life: invalid argument")

const (
	// DefaultDensity is the seeding probability in parts per thousand.
	DefaultDensity = 2
	// MaxDensity makes every cell attempt a stamp.
	MaxDensity = 1000

	// Adaptive thresholds, in percent of the grid area.
	minThresholdPct = 5
	maxThresholdPct = 34
)

// Config describes a World at construction time.
type Config struct {
	Rows    int
	Cols    int
	Density int

	// Rule is used for every generation unless Adaptive is set, in which case
	// the world starts with DecayRule and switches between GrowthRule and
	// DecayRule based on population.
	Rule     Rule
	Adaptive bool
}

// DefaultConfig returns a Config for a rows x cols Conway world.
func DefaultConfig(rows, cols int) Config {
	return Config{Rows: rows, Cols: cols, Density: DefaultDensity, Rule: ConwayRule}
}

func validateSize(rows, cols int) error {
	if rows < 1 {
		return fmt.Errorf("%w: rows must be >= 1, got %d", ErrInvalidArgument, rows)
	}
	if cols < 1 {
		return fmt.Errorf("%w: cols must be >= 1, got %d", ErrInvalidArgument, cols)
	}
	return nil
}

// ValidateDensity reports whether density lies in [0, MaxDensity].
func ValidateDensity(density int) error {
	if density < 0 || density > MaxDensity {
		return fmt.Errorf("%w: density must be in [0,%d], got %d", ErrInvalidArgument, MaxDensity, density)
	}
	return nil
}

func (c Config) validate() error {
	if err := validateSize(c.Rows, c.Cols); err != nil {
		return err
	}
	return ValidateDensity(c.Density)
}
