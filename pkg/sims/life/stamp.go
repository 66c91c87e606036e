package life

// Stamp ORs the alive cells of p onto the board with its top-left corner at
// (rowStart, colStart). Placement does not wrap: if any part of the pattern
// would fall outside the board, or p is malformed, nothing is written and
// Stamp returns false.
func (w *World) Stamp(rowStart, colStart int, p Pattern) bool {
	if p.Rows < 1 || p.Cols < 1 || len(p.Cells) != p.Rows*p.Cols {
		return false
	}
	// Compared by subtraction so huge anchors cannot overflow.
	if rowStart < 0 || colStart < 0 || p.Rows > w.cur.H || p.Cols > w.cur.W ||
		rowStart > w.cur.H-p.Rows || colStart > w.cur.W-p.Cols {
		return false
	}
	cells := w.cur.Cells()
	for r := 0; r < p.Rows; r++ {
		for c := 0; c < p.Cols; c++ {
			if !p.At(r, c) {
				continue
			}
			idx := w.cur.Index(colStart+c, rowStart+r)
			if cells[idx] == 0 {
				cells[idx] = 1
				w.population++
			}
		}
	}
	return true
}
