package shaper

import "sort"

// lineStarts holds the byte offset of the first character of each line
// (lineStarts[0] == 0). rowColOf finds a byte offset's row/column by
// binary search over this array (spec.md §9 "compute row/column ranges
// ... via binary search over newline-offset arrays").
func lineStarts(src string) []uint32 {
	starts := []uint32{0}
	for i := 0; i < len(src); i++ {
		if src[i] == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}
	return starts
}

// rowColOf returns the 0-based row and column of byte offset off,
// where column is a plain byte count from the start of the line (a tab
// counts as one byte, per spec.md §8 scenario 5).
func rowColOf(starts []uint32, off uint32) (row, col uint32) {
	row = uint32(sort.Search(len(starts), func(i int) bool { return starts[i] > off }) - 1)
	col = off - starts[row]
	return row, col
}
