package life

import (
	"math"
	"slices"
	"testing"
)

func TestStampOutOfBoundsIsNoop(t *testing.T) {
	w := newEmpty(t, 10, 10)
	w.Set(5, 5, true)
	before := append([]uint8(nil), w.Cells()...)

	exploder, _ := PatternByName("exploder")
	cases := []struct {
		name     string
		row, col int
	}{
		{"last row", w.Rows() - 1, 0},
		{"partial bottom", w.Rows() - 3, 2},
		{"partial right", 0, w.Cols() - 2},
		{"negative row", -1, 3},
		{"negative col", 3, -1},
		{"far away", 100, 100},
		{"overflowing row", math.MaxInt - 1, 0},
		{"overflowing col", 0, math.MaxInt - 1},
		{"overflowing both", math.MaxInt, math.MaxInt},
	}
	for _, tc := range cases {
		if w.Stamp(tc.row, tc.col, exploder) {
			t.Fatalf("%s: Stamp reported placement", tc.name)
		}
		if !slices.Equal(before, w.Cells()) {
			t.Fatalf("%s: grid changed by out-of-bounds stamp", tc.name)
		}
	}

	malformed := []Pattern{
		{Name: "short", Rows: 2, Cols: 2, Cells: []uint8{1}},
		{Name: "long", Rows: 1, Cols: 1, Cells: []uint8{1, 1}},
		{Name: "empty", Rows: 0, Cols: 3, Cells: nil},
		{Name: "negative", Rows: -1, Cols: -1, Cells: []uint8{1}},
	}
	for _, p := range malformed {
		if w.Stamp(0, 0, p) {
			t.Fatalf("%s: malformed pattern reported placement", p.Name)
		}
		if !slices.Equal(before, w.Cells()) {
			t.Fatalf("%s: grid changed by malformed pattern", p.Name)
		}
	}
	if w.Population() != 1 {
		t.Fatalf("population = %d, want 1", w.Population())
	}
}

func TestStampFitsExactlyAtEdge(t *testing.T) {
	w := newEmpty(t, 4, 4)
	exploder, _ := PatternByName("exploder")
	if !w.Stamp(0, 0, exploder) {
		t.Fatal("4x4 pattern should fit a 4x4 grid")
	}
	if !slices.Equal(w.Cells(), exploder.Cells) {
		t.Fatalf("cells = %v, want %v", w.Cells(), exploder.Cells)
	}
	if w.Population() != 9 {
		t.Fatalf("population = %d, want 9", w.Population())
	}
}

func TestStampMergesWithoutClearing(t *testing.T) {
	w := newEmpty(t, 5, 5)
	for c := 0; c < 5; c++ {
		w.Set(1, c, true)
	}
	glider, _ := PatternByName("glider")
	w.Stamp(0, 0, glider)

	// Row 1 of the glider is 0,0,1: its dead cells must not clear row 1.
	for c := 0; c < 5; c++ {
		if !w.Alive(1, c) {
			t.Fatalf("cell (1,%d) cleared by stamp", c)
		}
	}
	expect := [][2]int{
		{0, 1},
		{1, 0}, {1, 1}, {1, 2}, {1, 3}, {1, 4},
		{2, 0}, {2, 1}, {2, 2},
	}
	expectAlive(t, w, expect, "merged")
	if w.Population() != len(expect) {
		t.Fatalf("population = %d, want %d", w.Population(), len(expect))
	}
}

func TestPatternCatalogue(t *testing.T) {
	want := []struct {
		name       string
		rows, cols int
	}{
		{"glider", 3, 3},
		{"exploder", 4, 4},
		{"ten-cell-row", 1, 10},
		{"blinker", 3, 1},
		{"r-pentomino", 3, 3},
	}
	got := Patterns()
	if len(got) != len(want) {
		t.Fatalf("catalogue has %d patterns, want %d", len(got), len(want))
	}
	for i, w := range want {
		p := got[i]
		if p.Name != w.name || p.Rows != w.rows || p.Cols != w.cols {
			t.Fatalf("pattern %d = %s %dx%d, want %s %dx%d", i, p.Name, p.Rows, p.Cols, w.name, w.rows, w.cols)
		}
		if len(p.Cells) != p.Rows*p.Cols {
			t.Fatalf("%s has %d cells for %dx%d", p.Name, len(p.Cells), p.Rows, p.Cols)
		}
	}
	if _, ok := PatternByName("missing"); ok {
		t.Fatal("PatternByName found a pattern that does not exist")
	}
}
