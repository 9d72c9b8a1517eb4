package vectorize

import "context"

// A Tracer decomposes a binary bitmap into closed paths.
//
// Trace must not modify bm. The returned paths are in a tracer-defined
// order which callers preserve. A tracer that finds nothing returns an
// empty list and a nil error; an error reports a failed trace.
type Tracer interface {
	Trace(ctx context.Context, bm *BinaryBitmap, p Params) ([]Path, error)
}

// TracerFunc adapts a function to the [Tracer] interface.
type TracerFunc func(ctx context.Context, bm *BinaryBitmap, p Params) ([]Path, error)

func (fn TracerFunc) Trace(ctx context.Context, bm *BinaryBitmap, p Params) ([]Path, error) {
	return fn(ctx, bm, p)
}
