package vectorize

import "errors"

var (
	// ErrInvalidInput is returned when the source bitmap is absent or has a
	// zero dimension. Nothing is traced in that case.
	ErrInvalidInput = errors.New("vectorize: invalid input bitmap")

	// ErrIncompatiblePixelFormat is returned for images whose pixel layout
	// isn't 32-bit or 8-bit indexed. The condition is recoverable; see
	// [MakeCompatible].
	ErrIncompatiblePixelFormat = errors.New("vectorize: incompatible pixel format")

	// ErrTracerFailure wraps errors reported by a [Tracer]. The previously
	// published [CurveSet] stays in place when a retrace fails with it.
	ErrTracerFailure = errors.New("vectorize: tracer failure")

	// ErrInvalidParameter is returned by the strict setters and by
	// [ParseTurnPolicy].
	ErrInvalidParameter = errors.New("vectorize: invalid parameter")

	// ErrDisabled is returned by [Session.Retrace] on a disabled session.
	ErrDisabled = errors.New("vectorize: session disabled")
)
