package model

// rotate90 returns src (n×n, row-major) rotated a quarter turn clockwise.
func rotate90(src []int, n int) []int {
	dst := make([]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dst[x*n+(n-1-y)] = src[y*n+x]
		}
	}
	return dst
}

// flipHorizontal mirrors src (n×n) around its vertical axis.
func flipHorizontal(src []int, n int) []int {
	dst := make([]int, n*n)
	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			dst[y*n+x] = src[y*n+(n-1-x)]
		}
	}
	return dst
}

// dihedral returns the 8 symmetries of an n×n pattern in the order
// R0, R90, R180, R270, then the horizontal flip of each rotation.
func dihedral(src []int, n int) [][]int {
	r0 := make([]int, len(src))
	copy(r0, src)
	r1 := rotate90(r0, n)
	r2 := rotate90(r1, n)
	r3 := rotate90(r2, n)

	return [][]int{
		r0, r1, r2, r3,
		flipHorizontal(r0, n),
		flipHorizontal(r1, n),
		flipHorizontal(r2, n),
		flipHorizontal(r3, n),
	}
}
