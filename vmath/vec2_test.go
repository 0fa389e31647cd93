package vmath

import (
	"math"
	"testing"
)

func TestTryNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   Vec2
		want Vec2
		ok   bool
	}{
		{"zero", Vec2{}, Vec2{}, false},
		{"unit x", V2(5, 0), V2(1, 0), true},
		{"diagonal", V2(1, 1), V2(1/math.Sqrt2, 1/math.Sqrt2), true},
		{"negative", V2(0, -3), V2(0, -1), true},
		{"nan", V2(math.NaN(), 1), Vec2{}, false},
		{"inf", V2(math.Inf(1), 0), Vec2{}, false},
		{"tiny", V2(1e-300, 0), V2(1, 0), true},
		{"tiny diagonal", V2(3e-170, 4e-170), V2(0.6, 0.8), true},
		{"subnormal", V2(0, -5e-324), V2(0, -1), true},
		{"huge", V2(1e200, 0), V2(1, 0), true},
		{"huge diagonal", V2(-3e200, 4e200), V2(-0.6, 0.8), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.in.TryNormalize()
			if ok != tt.ok {
				t.Fatalf("ok = %v, want %v", ok, tt.ok)
			}
			if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
				t.Errorf("TryNormalize(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if !got.IsFinite() {
				t.Errorf("result not finite: %v", got)
			}
		})
	}
}

func TestDirectionCoincident(t *testing.T) {
	p := V2(10, -4)
	if d, ok := Direction(p, p); ok || !d.IsZero() {
		t.Errorf("Direction of coincident points = %v, %v; want zero, false", d, ok)
	}

	d, ok := Direction(V2(0, 0), V2(600, 0))
	if !ok {
		t.Fatal("expected direction")
	}
	if d != V2(1, 0) {
		t.Errorf("Direction = %v, want (1,0)", d)
	}
}

func TestVectorOps(t *testing.T) {
	a := V2(1, 2)
	b := V2(3, -1)

	if got := a.Add(b); got != V2(4, 1) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != V2(-2, 3) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Scale(2); got != V2(2, 4) {
		t.Errorf("Scale = %v", got)
	}
	if got := a.Dot(b); got != 1 {
		t.Errorf("Dot = %v", got)
	}
	if got := V2(3, 4).Mag(); got != 5 {
		t.Errorf("Mag = %v", got)
	}
	if got := V2(3e200, 4e200).Mag(); math.IsInf(got, 0) || math.Abs(got-5e200) > 1e186 {
		t.Errorf("Mag of large vector = %v, want 5e200", got)
	}
	if got := Clamp(5, 0, 3); got != 3 {
		t.Errorf("Clamp = %v", got)
	}
}
