// Package sample provides ready-made training samples: the boxed "WFC"
// drawing used by the command-line demo, and fractal OpenSimplex terrain for
// benchmarking against larger, noisier inputs.
package sample
