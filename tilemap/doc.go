// Package tilemap translates between user-facing tile values (runes, colors,
// terrain codes) and the dense integer tile ids the model learns from.
//
// Ids are assigned in first-seen row-major order of the sample, starting at 0.
// The unknown value always maps to -1 and back; it never receives an id of
// its own, even if it also appears in the sample.
//
// The package also carries the two text helpers the command-line tools
// need: ParseRunes turns a multi-line string into a padded rectangular grid,
// and Render prints any flat grid with a fixed cell width. Regions groups an
// output into 4-connected areas of equal tiles for reporting.
package tilemap
