package vectorize

import (
	"fmt"
	"math"
	"strings"
)

// TurnPolicy determines how the tracer resolves ambiguous 2×2 pixel
// configurations while decomposing a bitmap into paths.
type TurnPolicy int

const (
	// TurnBlack prefers to connect black (foreground) components.
	TurnBlack TurnPolicy = iota
	// TurnWhite prefers to connect white (background) components.
	TurnWhite
	// TurnLeft always takes a left turn.
	TurnLeft
	// TurnRight always takes a right turn.
	TurnRight
	// TurnMinority prefers to connect the color that occurs least
	// frequently in a local neighborhood.
	TurnMinority
	// TurnMajority prefers to connect the color that occurs most
	// frequently in a local neighborhood.
	TurnMajority
	// TurnRandom chooses pseudo-randomly. The choice is a deterministic
	// function of the position, so repeated traces agree.
	TurnRandom
)

var turnPolicyNames = [...]string{
	TurnBlack:    "black",
	TurnWhite:    "white",
	TurnLeft:     "left",
	TurnRight:    "right",
	TurnMinority: "minority",
	TurnMajority: "majority",
	TurnRandom:   "random",
}

func (tp TurnPolicy) String() string {
	if tp.Valid() {
		return turnPolicyNames[tp]
	}
	return fmt.Sprintf("TurnPolicy(%d)", int(tp))
}

// Valid reports whether tp is one of the defined policies.
func (tp TurnPolicy) Valid() bool {
	return tp >= TurnBlack && tp <= TurnRandom
}

// ParseTurnPolicy parses the case-insensitive name of a policy, as
// returned by [TurnPolicy.String].
func ParseTurnPolicy(s string) (TurnPolicy, error) {
	for i, name := range turnPolicyNames {
		if strings.EqualFold(s, name) {
			return TurnPolicy(i), nil
		}
	}
	return 0, fmt.Errorf("%w: unknown turn policy %q", ErrInvalidParameter, s)
}

// Parameter ranges.
const (
	MinTurdSize          = 0
	MaxTurdSize          = 100
	MinAlphaMax          = 0.0
	MaxAlphaMax          = 4.0 / 3.0
	MinOptimizeTolerance = 0.0
	MaxOptimizeTolerance = 1.0
	MinThreshold         = 0.0
	MaxThreshold         = 1.0
)

// Default parameter values.
const (
	DefaultTurdSize          = 2
	DefaultTurnPolicy        = TurnMinority
	DefaultAlphaMax          = 1.0
	DefaultOptimizeCurve     = true
	DefaultOptimizeTolerance = 0.2
	DefaultThreshold         = 0.5
	DefaultIncludeBorder     = true
)

// Field identifies a single tracing parameter. Its string form is the key
// under which the parameter is persisted.
type Field int

const (
	FieldTurdSize Field = iota
	FieldTurnPolicy
	FieldAlphaMax
	FieldOptimizeCurve
	FieldOptimizeTolerance
	FieldThreshold
	FieldIncludeBorder
)

// Fields lists every parameter field in persistence order.
var Fields = []Field{
	FieldTurdSize,
	FieldTurnPolicy,
	FieldAlphaMax,
	FieldOptimizeCurve,
	FieldOptimizeTolerance,
	FieldThreshold,
	FieldIncludeBorder,
}

var fieldKeys = [...]string{
	FieldTurdSize:          "TurdSize",
	FieldTurnPolicy:        "TurnPolicy",
	FieldAlphaMax:          "AlphaMax",
	FieldOptimizeCurve:     "OptimizeCurve",
	FieldOptimizeTolerance: "OptimizeTolerance",
	FieldThreshold:         "Threshold",
	FieldIncludeBorder:     "IncludeBorder",
}

// Key returns the stable persistence key of f.
func (f Field) Key() string {
	if f >= 0 && int(f) < len(fieldKeys) {
		return fieldKeys[f]
	}
	return ""
}

func (f Field) String() string {
	if k := f.Key(); k != "" {
		return k
	}
	return fmt.Sprintf("Field(%d)", int(f))
}

// AffectsBitmap reports whether changing f invalidates the binarized
// bitmap. Only the threshold does; every other field is consumed by the
// tracer or by the session itself.
func (f Field) AffectsBitmap() bool { return f == FieldThreshold }

// Params holds the tunable tracing parameters.
//
// The zero value is not useful; start from [DefaultParams]. Params is a
// value type and may be copied freely. Setters keep every field within its
// documented range: the interactive setters clamp, the Strict variants
// reject out-of-range values with an error wrapping [ErrInvalidParameter].
// The brightness threshold is clamped on every write path.
type Params struct {
	turdSize          int
	turnPolicy        TurnPolicy
	alphaMax          float64
	optimizeCurve     bool
	optimizeTolerance float64
	threshold         float64
	includeBorder     bool
}

// DefaultParams returns the engine defaults.
func DefaultParams() Params {
	return Params{
		turdSize:          DefaultTurdSize,
		turnPolicy:        DefaultTurnPolicy,
		alphaMax:          DefaultAlphaMax,
		optimizeCurve:     DefaultOptimizeCurve,
		optimizeTolerance: DefaultOptimizeTolerance,
		threshold:         DefaultThreshold,
		includeBorder:     DefaultIncludeBorder,
	}
}

// RestoreDefaults resets every field to its default value.
func (p *Params) RestoreDefaults() { *p = DefaultParams() }

// TurdSize returns the despeckle threshold: paths enclosing an area of at
// most this many pixels are discarded.
func (p Params) TurdSize() int { return p.turdSize }

// TurnPolicy returns the ambiguity resolution policy.
func (p Params) TurnPolicy() TurnPolicy { return p.turnPolicy }

// AlphaMax returns the corner threshold. Smaller values produce more
// corners, 0 produces a polygon, and values of 4/3 or more produce no
// corners at all.
func (p Params) AlphaMax() float64 { return p.alphaMax }

// OptimizeCurve reports whether adjacent Bézier segments may be merged.
func (p Params) OptimizeCurve() bool { return p.optimizeCurve }

// OptimizeTolerance returns the error allowed when merging segments.
func (p Params) OptimizeTolerance() float64 { return p.optimizeTolerance }

// Threshold returns the brightness threshold used for binarization.
func (p Params) Threshold() float64 { return p.threshold }

// IncludeBorder reports whether the border rectangle is part of the
// visible output.
func (p Params) IncludeBorder() bool { return p.includeBorder }

func clampInt(v, lo, hi int) int {
	return min(max(v, lo), hi)
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return min(max(v, lo), hi)
}

// SetTurdSize sets the despeckle threshold, clamped to [0, 100].
func (p *Params) SetTurdSize(v int) { p.turdSize = clampInt(v, MinTurdSize, MaxTurdSize) }

// SetTurnPolicy sets the turn policy. Unknown values select
// [TurnMinority].
func (p *Params) SetTurnPolicy(v TurnPolicy) {
	if !v.Valid() {
		v = DefaultTurnPolicy
	}
	p.turnPolicy = v
}

// SetAlphaMax sets the corner threshold, clamped to [0, 4/3].
func (p *Params) SetAlphaMax(v float64) { p.alphaMax = clampFloat(v, MinAlphaMax, MaxAlphaMax) }

func (p *Params) SetOptimizeCurve(v bool) { p.optimizeCurve = v }

// SetOptimizeTolerance sets the merge tolerance, clamped to [0, 1].
func (p *Params) SetOptimizeTolerance(v float64) {
	p.optimizeTolerance = clampFloat(v, MinOptimizeTolerance, MaxOptimizeTolerance)
}

// SetThreshold sets the brightness threshold, clamped to [0, 1]. There is
// no strict variant; out-of-range thresholds are always clamped.
func (p *Params) SetThreshold(v float64) { p.threshold = clampFloat(v, MinThreshold, MaxThreshold) }

func (p *Params) SetIncludeBorder(v bool) { p.includeBorder = v }

func rangeError(f Field, v any, lo, hi any) error {
	return fmt.Errorf("%w: %s %v out of range [%v, %v]", ErrInvalidParameter, f, v, lo, hi)
}

// SetTurdSizeStrict is like [Params.SetTurdSize] but returns an error
// instead of clamping.
func (p *Params) SetTurdSizeStrict(v int) error {
	if v < MinTurdSize || v > MaxTurdSize {
		return rangeError(FieldTurdSize, v, MinTurdSize, MaxTurdSize)
	}
	p.turdSize = v
	return nil
}

// SetTurnPolicyStrict is like [Params.SetTurnPolicy] but returns an error
// for unknown policies.
func (p *Params) SetTurnPolicyStrict(v TurnPolicy) error {
	if !v.Valid() {
		return rangeError(FieldTurnPolicy, int(v), int(TurnBlack), int(TurnRandom))
	}
	p.turnPolicy = v
	return nil
}

// SetAlphaMaxStrict is like [Params.SetAlphaMax] but returns an error
// instead of clamping.
func (p *Params) SetAlphaMaxStrict(v float64) error {
	if !(v >= MinAlphaMax && v <= MaxAlphaMax) {
		return rangeError(FieldAlphaMax, v, MinAlphaMax, "4/3")
	}
	p.alphaMax = v
	return nil
}

// SetOptimizeToleranceStrict is like [Params.SetOptimizeTolerance] but
// returns an error instead of clamping.
func (p *Params) SetOptimizeToleranceStrict(v float64) error {
	if !(v >= MinOptimizeTolerance && v <= MaxOptimizeTolerance) {
		return rangeError(FieldOptimizeTolerance, v, MinOptimizeTolerance, MaxOptimizeTolerance)
	}
	p.optimizeTolerance = v
	return nil
}

// Load reads every field from s. Fields whose key is missing, or stored
// with the wrong type, keep their current value. Loaded values are
// clamped into range.
func (p *Params) Load(s Store) {
	if v, ok := s.TryGetInt(FieldTurdSize.Key()); ok {
		p.SetTurdSize(v)
	}
	if v, ok := s.TryGetInt(FieldTurnPolicy.Key()); ok {
		p.SetTurnPolicy(TurnPolicy(v))
	}
	if v, ok := s.TryGetFloat(FieldAlphaMax.Key()); ok {
		p.SetAlphaMax(v)
	}
	if v, ok := s.TryGetBool(FieldOptimizeCurve.Key()); ok {
		p.SetOptimizeCurve(v)
	}
	if v, ok := s.TryGetFloat(FieldOptimizeTolerance.Key()); ok {
		p.SetOptimizeTolerance(v)
	}
	if v, ok := s.TryGetFloat(FieldThreshold.Key()); ok {
		p.SetThreshold(v)
	}
	if v, ok := s.TryGetBool(FieldIncludeBorder.Key()); ok {
		p.SetIncludeBorder(v)
	}
}

// Save writes every field to s.
func (p Params) Save(s Store) {
	s.SetInt(FieldTurdSize.Key(), p.turdSize)
	s.SetInt(FieldTurnPolicy.Key(), int(p.turnPolicy))
	s.SetFloat(FieldAlphaMax.Key(), p.alphaMax)
	s.SetBool(FieldOptimizeCurve.Key(), p.optimizeCurve)
	s.SetFloat(FieldOptimizeTolerance.Key(), p.optimizeTolerance)
	s.SetFloat(FieldThreshold.Key(), p.threshold)
	s.SetBool(FieldIncludeBorder.Key(), p.includeBorder)
}

func (p Params) String() string {
	return fmt.Sprintf("threshold=%g turdsize=%d alphamax=%g opticurve=%t opttolerance=%g turnpolicy=%s border=%t",
		p.threshold, p.turdSize, p.alphaMax, p.optimizeCurve, p.optimizeTolerance, p.turnPolicy, p.includeBorder)
}
