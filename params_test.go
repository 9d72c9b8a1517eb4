package vectorize

import (
	"errors"
	"math"
	"testing"
)

func TestDefaultParams(t *testing.T) {
	p := DefaultParams()
	if p.TurdSize() != 2 || p.TurnPolicy() != TurnMinority || p.AlphaMax() != 1 ||
		!p.OptimizeCurve() || p.OptimizeTolerance() != 0.2 || p.Threshold() != 0.5 || !p.IncludeBorder() {
		t.Errorf("unexpected defaults: %v", p)
	}

	p.SetTurdSize(50)
	p.SetThreshold(0.1)
	p.SetIncludeBorder(false)
	p.RestoreDefaults()
	if p != DefaultParams() {
		t.Errorf("got %v after restoring defaults", p)
	}
}

func TestParamsClamp(t *testing.T) {
	p := DefaultParams()

	p.SetThreshold(1.5)
	if got := p.Threshold(); got != 1 {
		t.Errorf("threshold: got %v, want 1", got)
	}
	p.SetThreshold(-0.5)
	if got := p.Threshold(); got != 0 {
		t.Errorf("threshold: got %v, want 0", got)
	}
	p.SetThreshold(math.NaN())
	if got := p.Threshold(); got != 0 {
		t.Errorf("threshold: got %v for NaN, want 0", got)
	}

	p.SetTurdSize(-3)
	if got := p.TurdSize(); got != 0 {
		t.Errorf("turd size: got %v, want 0", got)
	}
	p.SetTurdSize(1000)
	if got := p.TurdSize(); got != MaxTurdSize {
		t.Errorf("turd size: got %v, want %v", got, MaxTurdSize)
	}
	p.SetAlphaMax(2)
	if got := p.AlphaMax(); got != MaxAlphaMax {
		t.Errorf("alpha max: got %v, want %v", got, MaxAlphaMax)
	}
	p.SetOptimizeTolerance(-1)
	if got := p.OptimizeTolerance(); got != 0 {
		t.Errorf("optimize tolerance: got %v, want 0", got)
	}
	p.SetTurnPolicy(TurnPolicy(42))
	if got := p.TurnPolicy(); got != TurnMinority {
		t.Errorf("turn policy: got %v, want %v", got, TurnMinority)
	}
}

func TestParamsStrict(t *testing.T) {
	p := DefaultParams()
	for name, err := range map[string]error{
		"turd size":          p.SetTurdSizeStrict(101),
		"negative turd size": p.SetTurdSizeStrict(-1),
		"turn policy":        p.SetTurnPolicyStrict(TurnPolicy(-1)),
		"alpha max":          p.SetAlphaMaxStrict(1.5),
		"NaN alpha max":      p.SetAlphaMaxStrict(math.NaN()),
		"optimize tolerance": p.SetOptimizeToleranceStrict(1.01),
	} {
		if !errors.Is(err, ErrInvalidParameter) {
			t.Errorf("%s: got error %v, want %v", name, err, ErrInvalidParameter)
		}
	}
	if p != DefaultParams() {
		t.Errorf("rejected values modified params: %v", p)
	}

	if err := p.SetTurdSizeStrict(100); err != nil {
		t.Error(err)
	}
	if err := p.SetAlphaMaxStrict(MaxAlphaMax); err != nil {
		t.Error(err)
	}
	if err := p.SetTurnPolicyStrict(TurnRandom); err != nil {
		t.Error(err)
	}
	if err := p.SetOptimizeToleranceStrict(0); err != nil {
		t.Error(err)
	}
	if p.TurdSize() != 100 || p.AlphaMax() != MaxAlphaMax || p.TurnPolicy() != TurnRandom || p.OptimizeTolerance() != 0 {
		t.Errorf("strict setters didn't apply: %v", p)
	}
}

func TestParseTurnPolicy(t *testing.T) {
	for tp := TurnBlack; tp <= TurnRandom; tp++ {
		got, err := ParseTurnPolicy(tp.String())
		if err != nil {
			t.Fatal(err)
		}
		if got != tp {
			t.Errorf("got %v, want %v", got, tp)
		}
	}
	if got, err := ParseTurnPolicy("Majority"); err != nil || got != TurnMajority {
		t.Errorf("got %v, %v", got, err)
	}
	if _, err := ParseTurnPolicy("sideways"); !errors.Is(err, ErrInvalidParameter) {
		t.Errorf("got error %v, want %v", err, ErrInvalidParameter)
	}
}

func TestParamsLoadSave(t *testing.T) {
	p := DefaultParams()
	p.SetTurdSize(7)
	p.SetTurnPolicy(TurnBlack)
	p.SetAlphaMax(0.5)
	p.SetOptimizeCurve(false)
	p.SetOptimizeTolerance(0.8)
	p.SetThreshold(0.25)
	p.SetIncludeBorder(false)

	var s MapStore
	p.Save(&s)
	diff(t, []string{"AlphaMax", "IncludeBorder", "OptimizeCurve", "OptimizeTolerance", "Threshold", "TurdSize", "TurnPolicy"}, s.Keys())

	var q Params
	q.Load(&s)
	if q != p {
		t.Errorf("got %v, want %v", q, p)
	}
}

func TestParamsLoadPartial(t *testing.T) {
	s := NewMapStore(map[string]any{
		"TurdSize":      int64(10),
		"Threshold":     "dark",
		"AlphaMax":      5.0,
		"IncludeBorder": 1,
		"Unrelated":     true,
	})
	p := DefaultParams()
	p.Load(s)

	want := DefaultParams()
	want.SetTurdSize(10)
	want.SetAlphaMax(MaxAlphaMax)
	if p != want {
		t.Errorf("got %v, want %v", p, want)
	}
}

func TestFieldKeys(t *testing.T) {
	var keys []string
	for _, f := range Fields {
		keys = append(keys, f.Key())
		if f.AffectsBitmap() != (f == FieldThreshold) {
			t.Errorf("%v: AffectsBitmap = %t", f, f.AffectsBitmap())
		}
	}
	diff(t, []string{"TurdSize", "TurnPolicy", "AlphaMax", "OptimizeCurve", "OptimizeTolerance", "Threshold", "IncludeBorder"}, keys)
	if s := Field(99).String(); s != "Field(99)" {
		t.Errorf("got %q", s)
	}
}
