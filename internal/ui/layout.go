package ui

import "github.com/charmbracelet/lipgloss"

// wordSpan is the screen column range of one token on a rendered line.
type wordSpan struct {
	index      int
	start, end int // end exclusive
}

// wrapWords breaks tokens into lines no wider than width, in reading order.
// A token wider than width gets a line of its own.
func wrapWords(tokens []string, width int) [][]int {
	var lines [][]int
	var line []int
	used := 0
	for i, tok := range tokens {
		w := lipgloss.Width(tok)
		need := w
		if len(line) > 0 {
			need++
		}
		if len(line) > 0 && used+need > width {
			lines = append(lines, line)
			line, used, need = nil, 0, w
		}
		line = append(line, i)
		used += need
	}
	if len(line) > 0 {
		lines = append(lines, line)
	}
	return lines
}

// placeWords lays a line out right to left, centered in width. Spans come
// back in screen order, so the first token of the line is the last span.
func placeWords(tokens []string, line []int, width int) []wordSpan {
	total := 0
	for i, idx := range line {
		if i > 0 {
			total++
		}
		total += lipgloss.Width(tokens[idx])
	}

	col := max((width-total)/2, 0)
	spans := make([]wordSpan, 0, len(line))
	for i := len(line) - 1; i >= 0; i-- {
		idx := line[i]
		w := lipgloss.Width(tokens[idx])
		spans = append(spans, wordSpan{index: idx, start: col, end: col + w})
		col += w + 1
	}
	return spans
}

// hitWord finds the token under column col, or -1.
func hitWord(spans []wordSpan, col int) int {
	for _, s := range spans {
		if col >= s.start && col < s.end {
			return s.index
		}
	}
	return -1
}
