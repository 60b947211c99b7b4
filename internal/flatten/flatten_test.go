package flatten

import (
	"math"
	"testing"
)

func TestQuadraticStraightLine(t *testing.T) {
	// Control point on the chord: already flat.
	got := Quadratic(nil, Point{0, 0}, Point{5, 0}, Point{10, 0}, 0.1)
	if len(got) != 1 || got[0] != (Point{10, 0}) {
		t.Errorf("Quadratic(flat) = %v, want single end point", got)
	}
}

func TestCubicEndsAtEndPoint(t *testing.T) {
	p3 := Point{100, 0}
	got := Cubic(nil, Point{0, 0}, Point{0, 100}, Point{100, 100}, p3, 0.1)
	if len(got) < 4 {
		t.Fatalf("curved cubic produced only %d points", len(got))
	}
	if got[len(got)-1] != p3 {
		t.Errorf("last point = %v, want %v", got[len(got)-1], p3)
	}
}

func TestCubicWithinTolerance(t *testing.T) {
	// Quarter circle of radius 100.
	const k = 0.5522847498307936
	r := 100.0
	p0, p1, p2, p3 := Point{r, 0}, Point{r, r * k}, Point{r * k, r}, Point{0, r}
	const tol = 0.25
	pts := Cubic([]Point{p0}, p0, p1, p2, p3, tol)
	for _, p := range pts {
		d := math.Hypot(p.X, p.Y)
		if math.Abs(d-r) > 0.1 {
			t.Errorf("point %v is %v from the circle", p, math.Abs(d-r))
		}
	}
	// Midpoints of the chords stay within tolerance of the arc.
	for i := 1; i < len(pts); i++ {
		m := pts[i-1].Lerp(pts[i], 0.5)
		if d := r - math.Hypot(m.X, m.Y); d > tol+0.05 {
			t.Errorf("chord %d deviates %v from the arc", i, d)
		}
	}
}

func TestDepthBound(t *testing.T) {
	// A pathological tolerance must still terminate with a bounded count.
	got := Cubic(nil, Point{0, 0}, Point{0, 1e6}, Point{1e6, 1e6}, Point{1e6, 0}, 1e-12)
	if len(got) > 1<<maxDepth {
		t.Errorf("got %d points, want at most %d", len(got), 1<<maxDepth)
	}
}

func TestDistanceToSegment(t *testing.T) {
	tests := []struct {
		name    string
		p, a, b Point
		want    float64
	}{
		{"perpendicular", Point{5, 3}, Point{0, 0}, Point{10, 0}, 3},
		{"before start", Point{-3, 4}, Point{0, 0}, Point{10, 0}, 5},
		{"after end", Point{13, 4}, Point{0, 0}, Point{10, 0}, 5},
		{"degenerate", Point{3, 4}, Point{0, 0}, Point{0, 0}, 5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DistanceToSegment(tt.p, tt.a, tt.b); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DistanceToSegment() = %v, want %v", got, tt.want)
			}
		})
	}
}
