package life

// Step advances the world by one generation. Every cell is evaluated against
// the current buffer with toroidal wrapping and the results land in the
// scratch buffer, which then becomes current. On a board with a single row
// or column a cell sees itself through the wrap and counts as its own
// neighbor.
func (w *World) Step() {
	rows, cols := w.cur.H, w.cur.W
	cur := w.cur.Cells()
	nxt := w.nxt.Cells()
	population := 0
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			idx := r*cols + c
			alive := cur[idx] == 1
			nxt[idx] = 0
			if w.rule.Next(alive, neighbors(cur, rows, cols, r, c)) {
				nxt[idx] = 1
				population++
			}
		}
	}
	w.cur, w.nxt = w.nxt, w.cur
	w.population = population
	w.generation++
	if w.adaptive {
		w.adapt()
	}
}

// Neighbors returns the live neighbor count of (r, c) in the current
// generation, with wrapping.
func (w *World) Neighbors(r, c int) int {
	return neighbors(w.cur.Cells(), w.cur.H, w.cur.W, r, c)
}

func neighbors(cells []uint8, rows, cols, r, c int) int {
	n := 0
	for dr := -1; dr <= 1; dr++ {
		for dc := -1; dc <= 1; dc++ {
			if dr == 0 && dc == 0 {
				continue
			}
			nr := (r + dr + rows) % rows
			nc := (c + dc + cols) % cols
			n += int(cells[nr*cols+nc])
		}
	}
	return n
}

// adapt switches to GrowthRule when the population drops below the lower
// threshold and to DecayRule when it exceeds the upper one.
func (w *World) adapt() {
	switch {
	case w.population < w.minAlive:
		w.rule = GrowthRule
	case w.population > w.maxAlive:
		w.rule = DecayRule
	}
}
