package interp

import "testing"

func TestLerpEndpoints(t *testing.T) {
	for _, tc := range []struct {
		a, b, t, w float64
	}{
		{a: 2, b: 4, t: 0, w: 2},
		{a: 2, b: 4, t: 1, w: 4},
		{a: 2, b: 4, t: 0.25, w: 2.5},
		{a: -1, b: 1, t: 0.5, w: 0},
	} {
		if got := Lerp(tc.a, tc.b, tc.t); got != tc.w {
			t.Fatalf("Lerp(%v, %v, %v) = %v, want %v", tc.a, tc.b, tc.t, got, tc.w)
		}
	}
}

func TestSCurveShape(t *testing.T) {
	if got := SCurve(float32(0)); got != 0 {
		t.Fatalf("SCurve(0) = %v, want 0", got)
	}
	if got := SCurve(float32(1)); got != 1 {
		t.Fatalf("SCurve(1) = %v, want 1", got)
	}
	if got := SCurve(0.5); got != 0.5 {
		t.Fatalf("SCurve(0.5) = %v, want 0.5", got)
	}
	if got := SCurve(0.25); got != 0.15625 {
		t.Fatalf("SCurve(0.25) = %v, want 0.15625", got)
	}

	// Slope vanishes at the endpoints.
	const h = 1e-6
	if d := (SCurve(h) - SCurve(0.0)) / h; d > 1e-5 {
		t.Fatalf("slope at 0 = %v, want ~0", d)
	}
	if d := (SCurve(1.0) - SCurve(1-h)) / h; d > 1e-5 {
		t.Fatalf("slope at 1 = %v, want ~0", d)
	}

	prev := SCurve(0.0)
	for i := 1; i <= 100; i++ {
		v := SCurve(float64(i) / 100)
		if v < prev {
			t.Fatalf("SCurve not monotonic at %d: %v < %v", i, v, prev)
		}
		prev = v
	}
}

func TestBilerpCorners(t *testing.T) {
	tests := []struct {
		name   string
		tx, ty float64
		want   float64
	}{
		{name: "c00", tx: 0, ty: 0, want: 1},
		{name: "c10", tx: 1, ty: 0, want: 2},
		{name: "c01", tx: 0, ty: 1, want: 3},
		{name: "c11", tx: 1, ty: 1, want: 4},
		{name: "center", tx: 0.5, ty: 0.5, want: 2.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Bilerp(1.0, 2.0, 3.0, 4.0, tt.tx, tt.ty); got != tt.want {
				t.Fatalf("Bilerp() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrilerpSlices(t *testing.T) {
	near := Trilerp(1.0, 1.0, 1.0, 1.0, 5.0, 5.0, 5.0, 5.0, 0.3, 0.7, 0)
	if near != 1 {
		t.Fatalf("near slice = %v, want 1", near)
	}
	far := Trilerp(1.0, 1.0, 1.0, 1.0, 5.0, 5.0, 5.0, 5.0, 0.3, 0.7, 1)
	if far != 5 {
		t.Fatalf("far slice = %v, want 5", far)
	}
	mid := Trilerp(1.0, 1.0, 1.0, 1.0, 5.0, 5.0, 5.0, 5.0, 0.3, 0.7, 0.5)
	if mid != 3 {
		t.Fatalf("mid = %v, want 3", mid)
	}
}

func TestSmoothstep(t *testing.T) {
	tests := []struct {
		name string
		x    float64
		want float64
	}{
		{name: "below", x: -1, want: 0},
		{name: "at a", x: 2, want: 0},
		{name: "middle", x: 3, want: 0.5},
		{name: "at b", x: 4, want: 1},
		{name: "above", x: 10, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Smoothstep(2.0, 4.0, tt.x); got != tt.want {
				t.Fatalf("Smoothstep(2, 4, %v) = %v, want %v", tt.x, got, tt.want)
			}
		})
	}
}

func TestBezier(t *testing.T) {
	if got := Bezier(1.0, 2.0, 3.0, 4.0, 0); got != 1 {
		t.Fatalf("Bezier(t=0) = %v, want 1", got)
	}
	if got := Bezier(1.0, 2.0, 3.0, 4.0, 1); got != 4 {
		t.Fatalf("Bezier(t=1) = %v, want 4", got)
	}
	// Evenly spaced control values reproduce a straight line.
	got := Bezier(0.0, 1.0, 2.0, 3.0, 0.5)
	if diff := got - 1.5; diff < -1e-12 || diff > 1e-12 {
		t.Fatalf("Bezier(t=0.5) = %v, want 1.5", got)
	}
}
