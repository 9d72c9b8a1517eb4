package vectorize

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"honnef.co/go/curve"
)

// ErrBusy is returned by [Session.Update] and [Session.SetSource] while a
// retrace is in progress.
var ErrBusy = errors.New("vectorize: retrace in progress")

// State is the state of a [Session].
type State int32

const (
	Idle State = iota
	Retracing
	Disabled
)

func (st State) String() string {
	switch st {
	case Idle:
		return "idle"
	case Retracing:
		return "retracing"
	case Disabled:
		return "disabled"
	default:
		return fmt.Sprintf("State(%d)", int32(st))
	}
}

// SessionOption configures a [Session].
type SessionOption func(*Session)

// WithScale sets the factors that map bitmap pixels to output units.
// The default is 1 on both axes.
func WithScale(x, y float64) SessionOption {
	return func(s *Session) {
		s.scaleX, s.scaleY = x, y
	}
}

// WithLogger sets the logger used by the session. By default the package
// logger, see [SetLogger], is used.
func WithLogger(l *slog.Logger) SessionOption {
	return func(s *Session) { s.logger = l }
}

// WithReconstructOptions sets the options used to reconstruct traced
// paths. The default is [DefaultReconstructOptions].
func WithReconstructOptions(opts ReconstructOptions) SessionOption {
	return func(s *Session) { s.ropts = opts }
}

// Session owns the traced result of one source bitmap and recomputes it
// when parameters change.
//
// Retraces run synchronously on the calling goroutine. A session is in
// one of three states: [Idle], [Retracing] or [Disabled]. A retrace
// requested while another one is running is dropped, not queued, so at
// most one tracer call is ever in flight. Results are published
// atomically and may be read from any goroutine.
//
// The parameters passed to [NewSession] are read at the start of every
// retrace. Callers mutate them only between retraces, either directly
// followed by [Session.ParameterChanged], or through [Session.Update].
type Session struct {
	src    Source
	params *Params
	tracer Tracer

	scaleX, scaleY float64
	logger         *slog.Logger
	ropts          ReconstructOptions

	busy     atomic.Bool
	disabled atomic.Bool
	bitmap   atomic.Pointer[BinaryBitmap]
	curves   atomic.Pointer[CurveSet]
}

// NewSession returns an idle session tracing src with tracer. If params
// is nil, the session uses its own copy of [DefaultParams].
func NewSession(src Source, params *Params, tracer Tracer, opts ...SessionOption) *Session {
	if params == nil {
		p := DefaultParams()
		params = &p
	}
	s := &Session{
		src:    src,
		params: params,
		tracer: tracer,
		scaleX: 1,
		scaleY: 1,
		ropts:  DefaultReconstructOptions,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) log() *slog.Logger {
	if s.logger != nil {
		return s.logger
	}
	return Logger()
}

// State returns the current state. A session disabled during a retrace
// reports [Disabled].
func (s *Session) State() State {
	switch {
	case s.disabled.Load():
		return Disabled
	case s.busy.Load():
		return Retracing
	default:
		return Idle
	}
}

// Params returns the parameters the session traces with. Don't modify
// them during a retrace.
func (s *Session) Params() *Params { return s.params }

// CurveSet returns the most recently published result, or nil if no
// retrace has succeeded yet.
func (s *Session) CurveSet() *CurveSet { return s.curves.Load() }

// Bitmap returns the current binarized bitmap, or nil if none has been
// built yet.
func (s *Session) Bitmap() *BinaryBitmap { return s.bitmap.Load() }

// Disable stops the session from retracing until [Session.Enable] is
// called. A retrace that is already running completes normally.
func (s *Session) Disable() {
	s.disabled.Store(true)
}

// Enable lets a disabled session retrace again. Enabling doesn't end a
// retrace that is still running.
func (s *Session) Enable() {
	s.disabled.Store(false)
}

// guard runs fn in the Retracing state. It returns ErrDisabled or ErrBusy
// without calling fn if the session isn't idle.
func (s *Session) guard(fn func() error) error {
	if s.disabled.Load() {
		return ErrDisabled
	}
	if !s.busy.CompareAndSwap(false, true) {
		return ErrBusy
	}
	defer s.busy.Store(false)
	if s.disabled.Load() {
		return ErrDisabled
	}
	return fn()
}

// Retrace recomputes and publishes the curve set.
//
// It rebuilds the binary bitmap if there is none yet or the brightness
// threshold changed, traces it, reconstructs every path, prepends the
// border rectangle, scales all curves and publishes the result.
//
// If the tracer fails, the previous curve set stays published and the
// returned error wraps [ErrTracerFailure]. A call made while another
// retrace is running does nothing and returns nil. On a disabled session,
// Retrace returns [ErrDisabled].
func (s *Session) Retrace(ctx context.Context) error {
	err := s.guard(func() error { return s.retrace(ctx) })
	if errors.Is(err, ErrBusy) {
		s.log().Debug("retrace dropped", "reason", "busy")
		return nil
	}
	return err
}

// ParameterChanged notifies the session that field f of its parameters
// was modified and retraces as necessary. Toggling the border only
// republishes the current result.
func (s *Session) ParameterChanged(ctx context.Context, f Field) error {
	s.log().Debug("parameter changed", "field", f)
	if f == FieldIncludeBorder && s.CurveSet() != nil {
		err := s.guard(func() error {
			cs := s.curves.Load()
			s.curves.Store(cs.withBorder(s.params.IncludeBorder()))
			return nil
		})
		if errors.Is(err, ErrBusy) {
			return nil
		}
		return err
	}
	return s.Retrace(ctx)
}

// Update applies fn to the session's parameters and retraces. The
// mutation and the retrace happen as one step: if a retrace is already
// running, fn isn't called and Update returns [ErrBusy].
func (s *Session) Update(ctx context.Context, f Field, fn func(p *Params)) error {
	return s.guard(func() error {
		fn(s.params)
		s.log().Debug("parameter changed", "field", f)
		if f == FieldIncludeBorder {
			if cs := s.curves.Load(); cs != nil {
				s.curves.Store(cs.withBorder(s.params.IncludeBorder()))
				return nil
			}
		}
		return s.retrace(ctx)
	})
}

// SetSource replaces the source bitmap. The next retrace binarizes the
// new source.
func (s *Session) SetSource(src Source) error {
	return s.guard(func() error {
		s.src = src
		s.bitmap.Store(nil)
		return nil
	})
}

func (s *Session) retrace(ctx context.Context) error {
	p := *s.params

	bm := s.bitmap.Load()
	if bm == nil || bm.Threshold() != p.Threshold() {
		bm = Binarize(s.src, p.Threshold())
		if bm == nil {
			return ErrInvalidInput
		}
		s.log().Debug("binarized bitmap", "width", bm.Width(), "height", bm.Height(), "threshold", bm.Threshold())
		s.bitmap.Store(bm)
	}

	paths, err := s.trace(ctx, bm, p)
	if err != nil {
		s.log().Warn("trace failed", "error", err)
		return fmt.Errorf("%w: %w", ErrTracerFailure, err)
	}

	traced, skipped := ReconstructAll(paths, s.ropts)
	curves := make([]curve.BezPath, 0, len(traced)+1)
	curves = append(curves, borderCurve(bm.Width(), bm.Height()))
	curves = append(curves, traced...)

	if s.scaleX != 1 || s.scaleY != 1 {
		aff := curve.Scale(s.scaleX, s.scaleY)
		for i := range curves {
			curves[i].ApplyTransform(aff)
		}
	}

	cs := &CurveSet{
		Curves:        curves,
		Bounds:        curves[0].BoundingBox(),
		IncludeBorder: p.IncludeBorder(),
		Width:         bm.Width(),
		Height:        bm.Height(),
		ScaleX:        s.scaleX,
		ScaleY:        s.scaleY,
		Skipped:       skipped,
	}
	s.curves.Store(cs)
	s.log().Info("retraced", "paths", len(paths), "curves", len(curves)-1, "skipped", skipped)
	return nil
}

// trace calls the tracer, turning a panic into an error.
func (s *Session) trace(ctx context.Context, bm *BinaryBitmap, p Params) (paths []Path, err error) {
	defer func() {
		if r := recover(); r != nil {
			paths, err = nil, fmt.Errorf("tracer panic: %v", r)
		}
	}()
	if s.tracer == nil {
		return nil, errors.New("no tracer")
	}
	return s.tracer.Trace(ctx, bm, p)
}
