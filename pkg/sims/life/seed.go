package life

// SeedStats summarises one seeding pass.
type SeedStats struct {
	// Attempts counts cells whose density trial succeeded.
	Attempts int
	// Placed counts attempts whose pattern fit on the board.
	Placed int
}

// Seed walks the board in row-major order. For each cell it draws one trial
// in [0, 1000); when the trial is below density it stamps a pattern picked
// uniformly from the catalogue with its corner on that cell. Patterns that
// do not fit are skipped, so cells near the bottom and right edges produce
// fewer patterns.
func (w *World) Seed(density int) (SeedStats, error) {
	if err := ValidateDensity(density); err != nil {
		return SeedStats{}, err
	}
	return w.seed(density), nil
}

// seed runs the seeding pass for an already validated density.
func (w *World) seed(density int) SeedStats {
	var stats SeedStats
	rows, cols := w.cur.H, w.cur.W
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if !w.rng.Chance(density, MaxDensity) {
				continue
			}
			stats.Attempts++
			if w.Stamp(r, c, patterns[w.rng.IntN(len(patterns))]) {
				stats.Placed++
			}
		}
	}
	return stats
}
