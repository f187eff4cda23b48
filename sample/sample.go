package sample

import (
	"math"
	"strings"

	opensimplex "github.com/ojrac/opensimplex-go"
)

// Box is a box-drawing outline around the letters "WFC", 13×7 runes with
// blank margins. Learned with periodic 3×3 patterns it produces closed
// interlocking outlines.
var Box = strings.Join([]string{
	"             ",
	" ┌─────┐     ",
	" │     └──┐  ",
	" │  WFC   │  ",
	" └──┐     │  ",
	"    └─────┘  ",
	"             ",
}, "\n")

// Octave parameters of the terrain noise.
const (
	noiseOctaves     = 4
	noiseFrequency   = 0.12
	noisePersistence = 0.5
)

// Noise returns a w×h row-major terrain sample quantized into levels bands
// (tile ids 0..levels-1), generated from seed. The same arguments always
// produce the same sample. Non-positive sizes give an empty slice; levels
// below 2 yield a single band.
// Complexity: O(w×h×octaves).
func Noise(w, h, levels int, seed int64) []int {
	if w <= 0 || h <= 0 {
		return []int{}
	}
	if levels < 1 {
		levels = 1
	}
	noise := opensimplex.NewNormalized(seed)

	out := make([]int, w*h)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := octaveNoise(noise, float64(x), float64(y))
			band := int(math.Floor(v * float64(levels)))
			if band >= levels {
				band = levels - 1
			}
			if band < 0 {
				band = 0
			}
			out[y*w+x] = band
		}
	}
	return out
}

// octaveNoise layers noiseOctaves frequencies; the result stays in [0,1].
func octaveNoise(noise opensimplex.Noise, x, y float64) float64 {
	total, amplitude, maxVal := 0.0, 1.0, 0.0
	frequency := noiseFrequency
	for i := 0; i < noiseOctaves; i++ {
		total += noise.Eval2(x*frequency, y*frequency) * amplitude
		maxVal += amplitude
		amplitude *= noisePersistence
		frequency *= 2
	}
	return total / maxVal
}
