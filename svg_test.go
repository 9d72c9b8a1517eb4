package vectorize

import (
	"bytes"
	"context"
	"strings"
	"testing"
)

func tracedSquare(t *testing.T, border bool) *CurveSet {
	t.Helper()
	s := newTestSession(&fakeTracer{paths: []Path{squarePath(2, 2, 6, 6)}})
	s.Params().SetIncludeBorder(border)
	if err := s.Retrace(context.Background()); err != nil {
		t.Fatal(err)
	}
	return s.CurveSet()
}

func TestWriteSVG(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteSVG(&buf, tracedSquare(t, true), SVGOptions{}); err != nil {
		t.Fatal(err)
	}
	want := `<?xml version="1.0" encoding="UTF-8"?>
<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10">
<g fill="none" stroke="black" stroke-width="1">
<path id="curve0" d="M0,10 L10,10 L10,0 L0,0 Z"/>
<path id="curve1" d="M2,6 L2,8 L6,8 L6,4 L2,4 L2,6 Z"/>
</g>
</svg>
`
	diff(t, want, buf.String())
}

func TestWriteSVGWithoutBorder(t *testing.T) {
	var buf bytes.Buffer
	opts := SVGOptions{Stroke: "red", Fill: "#000", StrokeWidth: 0.5}
	if err := WriteSVG(&buf, tracedSquare(t, false), opts); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if strings.Contains(out, `id="curve0"`) {
		t.Error("border written although it isn't included")
	}
	if !strings.Contains(out, `id="curve1"`) {
		t.Error("traced curve missing")
	}
	if !strings.Contains(out, `<g fill="#000" stroke="red" stroke-width="0.5">`) {
		t.Errorf("style not applied:\n%s", out)
	}
}

func TestWriteSVGEmpty(t *testing.T) {
	if err := WriteSVG(&bytes.Buffer{}, nil, SVGOptions{}); err == nil {
		t.Error("wrote an empty curve set")
	}
}
