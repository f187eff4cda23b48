// Package runconfig loads the YAML description of a generation run: where
// the sample comes from, how patterns are learned, the output size, the
// algorithms to use and how many seeded attempts to make.
//
// A minimal file:
//
//	sample_file: samples/box.txt
//	pattern_size: 3
//	periodic: true
//	width: 50
//	height: 25
//	propagator: ac4
//	heuristic: optimized
//	attempts: 10
//
// Missing keys keep their Default values; unknown keys are rejected.
package runconfig
