// Package trace implements a potrace-style bitmap tracer.
//
// A [Tracer] decomposes a [vectorize.BinaryBitmap] into the closed
// boundaries of its foreground and background regions, approximates each
// boundary by a polygon, and then smooths the polygon into a sequence of
// [vectorize.Corner] and [vectorize.CurveTo] segments.
//
// The stages are:
//
//   - Decomposition. Boundaries are found by walking the edges between set
//     and clear pixels. Ambiguous configurations, where two set pixels only
//     touch diagonally, are resolved by the turn policy. After a boundary
//     has been found, its interior is inverted, so that holes are found as
//     boundaries of their own. Boundaries enclosing no more than TurdSize
//     pixels are dropped.
//   - Polygon fitting. Each boundary is approximated by a polygon whose
//     edges stay within half a pixel of the boundary.
//   - Smoothing. Each polygon vertex becomes either a corner or a cubic
//     Bézier, depending on how sharply the polygon turns there and on
//     AlphaMax.
//   - Optimization. If enabled, runs of Bézier segments that bend in the
//     same direction are merged when the merged curve stays within
//     OptimizeTolerance of the original.
//
// The result is deterministic; in particular, [vectorize.TurnRandom]
// derives its choices from pixel coordinates.
package trace
