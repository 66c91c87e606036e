package life

// Pattern is an immutable seed shape stored row-major, 1 = alive.
type Pattern struct {
	Name  string
	Rows  int
	Cols  int
	Cells []uint8
}

// At reports whether the pattern cell at (r, c) is alive.
func (p Pattern) At(r, c int) bool { return p.Cells[r*p.Cols+c] == 1 }

var patterns = []Pattern{
	{Name: "glider", Rows: 3, Cols: 3, Cells: []uint8{
		0, 1, 0,
		0, 0, 1,
		1, 1, 1,
	}},
	{Name: "exploder", Rows: 4, Cols: 4, Cells: []uint8{
		0, 1, 0, 0,
		1, 1, 1, 1,
		1, 0, 1, 1,
		0, 1, 0, 0,
	}},
	{Name: "ten-cell-row", Rows: 1, Cols: 10, Cells: []uint8{
		1, 1, 1, 1, 1, 1, 1, 1, 1, 1,
	}},
	// Three rows of one column, stamped as a vertical bar.
	{Name: "blinker", Rows: 3, Cols: 1, Cells: []uint8{
		1,
		1,
		1,
	}},
	{Name: "r-pentomino", Rows: 3, Cols: 3, Cells: []uint8{
		0, 1, 1,
		1, 1, 0,
		0, 1, 0,
	}},
}

// Patterns returns the seeding catalogue in registry order. The Cells slices
// are shared and must not be modified.
func Patterns() []Pattern {
	return append([]Pattern(nil), patterns...)
}

// PatternByName looks up a catalogue entry.
func PatternByName(name string) (Pattern, bool) {
	for _, p := range patterns {
		if p.Name == name {
			return p, true
		}
	}
	return Pattern{}, false
}
