// Package chart describes plots independently of where they are shown.
//
// Renderers build a [Chart] (line series, point markers, reference lines,
// axis scales and limits) and hand it to a [Display]:
//
//   - [Terminal]: asciigraph line charts and a braille canvas for
//     parametric curves, optionally held open in a bubbletea viewer
//   - [Image]: gonum/plot output as png, svg or pdf
//
// A Display is not safe for concurrent use.
package chart
