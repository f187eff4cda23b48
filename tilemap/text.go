package tilemap

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// ParseRunes splits s on '\n' and returns a row-major rune grid whose width
// is the longest row; shorter rows are padded with fill. A trailing '\r' on
// a row is dropped.
// Complexity: O(w×h).
func ParseRunes(s string, fill rune) (grid []rune, width, height int) {
	rows := strings.Split(s, "\n")
	for i, r := range rows {
		rows[i] = strings.TrimSuffix(r, "\r")
		if n := utf8.RuneCountInString(rows[i]); n > width {
			width = n
		}
	}
	height = len(rows)

	grid = make([]rune, 0, width*height)
	for _, r := range rows {
		n := 0
		for _, c := range r {
			grid = append(grid, c)
			n++
		}
		for ; n < width; n++ {
			grid = append(grid, fill)
		}
	}
	return grid, width, height
}

// Render prints data as h lines of w cells, each left-aligned and padded to
// cellWidth. Lines are separated by '\n' with no trailing newline.
// rune (int32) cells print as characters.
// Complexity: O(w×h).
func Render[T any](data []T, width, height, cellWidth int) string {
	var sb strings.Builder
	for y := 0; y < height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < width; x++ {
			fmt.Fprintf(&sb, "%-*s", cellWidth, cellString(data[y*width+x]))
		}
	}
	return sb.String()
}

func cellString(v any) string {
	switch t := v.(type) {
	case rune:
		return string(t)
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprint(t)
	}
}
