package tilemap

// Region is a 4-connected group of cells showing the same tile.
type Region struct {
	Tile  int
	Cells []int // row-major ids, in discovery order
}

// Regions partitions a w×h row-major tile-id grid into 4-connected regions
// of equal tiles. Cells holding Unknown belong to no region. Regions are
// returned in row-major order of their first cell.
//
// Time:   O(W·H).
// Memory: O(W·H) for visited flags and output.
func Regions(ids []int, w, h int) []Region {
	seen := make([]bool, w*h)
	var out []Region
	var queue []int

	for i0, tile := range ids[:w*h] {
		if tile == Unknown || seen[i0] {
			continue
		}
		seen[i0] = true
		queue = append(queue[:0], i0)
		for qi := 0; qi < len(queue); qi++ {
			x, y := queue[qi]%w, queue[qi]/w
			for _, d := range [4][2]int{{-1, 0}, {0, 1}, {1, 0}, {0, -1}} {
				vx, vy := x+d[0], y+d[1]
				if vx < 0 || vx >= w || vy < 0 || vy >= h {
					continue
				}
				vi := vy*w + vx
				if !seen[vi] && ids[vi] == tile {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		out = append(out, Region{Tile: tile, Cells: append([]int(nil), queue...)})
	}
	return out
}
