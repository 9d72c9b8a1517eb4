// Package vectorize converts raster images into vector curves.
//
// Conversion happens in three stages. A [Source] is binarized into a
// black and white [BinaryBitmap] with [Binarize]. A [Tracer] decomposes
// the bitmap into closed [Path] values made of typed segments. Finally,
// [Reconstruct] assembles each path into a single continuous
// [curve.BezPath].
//
// # Sessions
//
// Interactive use revolves around a [Session], which owns one source
// bitmap, one set of [Params] and the most recent [CurveSet]. Callers
// change a parameter and notify the session, which decides how much work
// is needed: a new brightness threshold requires binarizing again, other
// parameters only require tracing the cached bitmap, and toggling the
// border requires no tracing at all.
//
// Only one retrace runs at a time. Requests that arrive while a retrace is
// in progress are dropped rather than queued, which keeps rapid parameter
// changes, such as dragging a slider, from building up a backlog.
//
// # Coordinates
//
// Sources use raster coordinates, with the origin at the top left. Binary
// bitmaps, traced paths and curves use cartesian coordinates, with the
// origin at the bottom left, and one unit per pixel until scaled by the
// session. [WriteSVG] and [RenderPreview] flip the output back for
// top-down formats.
//
// # The border
//
// The first curve of every [CurveSet] is a rectangle around the source
// bitmap. It is always present so that curve indices stay stable, but it
// is only part of the output if [Params.IncludeBorder] is set. Consumers
// iterate over [CurveSet.Visible] to honor this.
//
// # Tracers
//
// The tracer is pluggable. The trace subpackage provides a potrace-style
// tracer that handles turn policies, despeckling, corner detection and
// curve optimization.
package vectorize
