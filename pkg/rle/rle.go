// Package rle decodes the run-length-encoded text format used to distribute
// cellular-automaton patterns, and carries a small catalogue of bundled
// patterns.
package rle

import "sparse-life/pkg/life"

// Decode scans RLE text in a single left-to-right pass and returns the live
// cells it describes as offsets from the pattern's top-left corner, in
// row-major emission order.
//
// Digits accumulate a run count (one when absent), 'b' and '.' skip dead
// cells, 'o' emits live cells, '$' ends the row and '!' ends the pattern.
// Every other byte is skipped. Decode never fails: malformed input degrades
// to a partial or empty cell list.
func Decode(text string) []life.Point {
	var cells []life.Point
	x, y, run := 0, 0, 0
	for i := 0; i < len(text); i++ {
		switch b := text[i]; {
		case b >= '0' && b <= '9':
			run = run*10 + int(b-'0')
		case b == 'b' || b == '.':
			x += max(run, 1)
			run = 0
		case b == 'o':
			n := max(run, 1)
			for j := 0; j < n; j++ {
				cells = append(cells, life.Point{X: x + j, Y: y})
			}
			x += n
			run = 0
		case b == '$':
			y += max(run, 1)
			x = 0
			run = 0
		case b == '!':
			return cells
		}
	}
	return cells
}
