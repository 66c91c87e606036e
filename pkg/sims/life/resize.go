package life

import "tgol/pkg/core"

// Resize reallocates both buffers at rows x cols. The rectangle shared by the
// old and new shapes is copied from the current generation; new area starts
// dead and anything outside the new shape is dropped. The generation counter
// and run mode are unchanged.
func (w *World) Resize(rows, cols int) error {
	if err := validateSize(rows, cols); err != nil {
		return err
	}
	cur := core.NewByteGrid(cols, rows)
	cur.CopyOverlap(w.cur)
	w.cur = cur
	w.nxt = core.NewByteGrid(cols, rows)
	w.population = countAlive(cur.Cells())
	w.updateThresholds()
	return nil
}

func countAlive(cells []uint8) int {
	n := 0
	for _, c := range cells {
		n += int(c)
	}
	return n
}
