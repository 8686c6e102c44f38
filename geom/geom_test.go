package geom

import (
	"math"
	"testing"
)

func TestSegmentLen(t *testing.T) {
	tests := []struct {
		name string
		seg  Segment
		want float64
	}{
		{"zero length", Seg(Pt(16, 16), Pt(16, 16)), 0},
		{"horizontal", Seg(Pt(16, 16), Pt(66, 16)), 50},
		{"vertical reversed", Seg(Pt(10, 90), Pt(10, 10)), 80},
		{"pythagorean", Seg(Pt(0, 0), Pt(3, 4)), 5},
		{"negative quadrant", Seg(Pt(-3, -4), Pt(0, 0)), 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.seg.Len()
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Expected length %v, got %v", tt.want, got)
			}
			swapped := Seg(tt.seg.To, tt.seg.From).Len()
			if swapped != got {
				t.Errorf("Expected symmetric length, got %v and %v", got, swapped)
			}
			if got < 0 {
				t.Errorf("Expected non-negative length, got %v", got)
			}
		})
	}
}

func TestSegmentLen_ZeroOnlyWhenEndpointsCoincide(t *testing.T) {
	for _, p := range []Point{Pt(0, 0), Pt(8, 8), Pt(-5, 7), Pt(792, 792)} {
		if l := Seg(p, p).Len(); l != 0 {
			t.Errorf("Expected zero length for %v, got %v", p, l)
		}
		if l := Seg(p, p.Add(1, 0)).Len(); l == 0 {
			t.Errorf("Expected non-zero length for distinct endpoints at %v", p)
		}
	}
}

func TestOrient(t *testing.T) {
	tests := []struct {
		name    string
		p, q, r Point
		want    Orientation
	}{
		{"collinear horizontal", Pt(0, 0), Pt(5, 0), Pt(10, 0), Collinear},
		{"collinear backtrack", Pt(0, 0), Pt(5, 0), Pt(-3, 0), Collinear},
		{"positive cross", Pt(0, 0), Pt(10, 0), Pt(10, -10), Clockwise},
		{"negative cross", Pt(0, 0), Pt(10, 0), Pt(10, 10), CounterClockwise},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Orient(tt.p, tt.q, tt.r); got != tt.want {
				t.Errorf("Expected %v, got %v", tt.want, got)
			}
		})
	}
}

func TestOnSegment(t *testing.T) {
	if !OnSegment(Pt(0, 0), Pt(5, 0), Pt(10, 0)) {
		t.Error("Expected midpoint to be on segment")
	}
	if !OnSegment(Pt(10, 0), Pt(10, 0), Pt(0, 0)) {
		t.Error("Expected endpoint to be on segment (closed interval)")
	}
	if OnSegment(Pt(0, 0), Pt(11, 0), Pt(10, 0)) {
		t.Error("Expected point past the end to be off segment")
	}
	if OnSegment(Pt(0, 0), Pt(5, 1), Pt(10, 0)) {
		t.Error("Expected point outside the y interval to be off segment")
	}
}

func TestIntersects_ProperCrossingIsSymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Segment
		want bool
	}{
		{"plus sign", Seg(Pt(0, 5), Pt(10, 5)), Seg(Pt(5, 0), Pt(5, 10)), true},
		{"diagonal cross", Seg(Pt(0, 0), Pt(10, 10)), Seg(Pt(0, 10), Pt(10, 0)), true},
		{"parallel apart", Seg(Pt(0, 0), Pt(10, 0)), Seg(Pt(0, 5), Pt(10, 5)), false},
		{"perpendicular short", Seg(Pt(0, 5), Pt(4, 5)), Seg(Pt(5, 0), Pt(5, 10)), false},
		{"corner touch", Seg(Pt(16, 66), Pt(16, 16)), Seg(Pt(16, 16), Pt(66, 16)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Intersects(tt.b); got != tt.want {
				t.Errorf("Expected a.Intersects(b) = %v, got %v", tt.want, got)
			}
			if got := tt.b.Intersects(tt.a); got != tt.want {
				t.Errorf("Expected b.Intersects(a) = %v, got %v", tt.want, got)
			}
		})
	}
}

func TestIntersects_CollinearBranches(t *testing.T) {
	// Overlapping collinear segments: o.To falls inside s
	s := Seg(Pt(0, 0), Pt(10, 0))
	o := Seg(Pt(20, 0), Pt(5, 0))
	if !s.Intersects(o) {
		t.Error("Expected overlap detected when o.To lies on s")
	}

	// Only o.From lies on s; no branch tests that triple from s's side
	o = Seg(Pt(5, 0), Pt(20, 0))
	if !s.Intersects(o) {
		// o3/o4 branch: s.To (10,0) lies within o
		t.Error("Expected overlap detected through s.To lying on o")
	}

	// Disjoint collinear segments never intersect
	o = Seg(Pt(11, 0), Pt(20, 0))
	if s.Intersects(o) {
		t.Error("Expected disjoint collinear segments not to intersect")
	}
}

func TestIntersects_ZeroLengthSegments(t *testing.T) {
	p := Seg(Pt(16, 16), Pt(16, 16))
	if !p.Intersects(p) {
		t.Error("Expected coincident points to intersect")
	}
	far := Seg(Pt(40, 40), Pt(40, 40))
	if p.Intersects(far) {
		t.Error("Expected distinct points not to intersect")
	}
}

func TestBoundsOf(t *testing.T) {
	b := BoundsOf(Pt(16, 16), Pt(66, 16), Pt(16, 66), Pt(16, 16))
	want := Box{Min: Pt(16, 16), Max: Pt(66, 66)}
	if b != want {
		t.Errorf("Expected %v, got %v", want, b)
	}
	if (BoundsOf() != Box{}) {
		t.Error("Expected zero Box for no points")
	}
}

func TestBoxContains(t *testing.T) {
	b := Box{Min: Pt(16, 16), Max: Pt(66, 66)}
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(40, 40), true},
		{Pt(16, 16), true},
		{Pt(66, 66), true},
		{Pt(16, 66), true},
		{Pt(15, 40), false},
		{Pt(67, 40), false},
		{Pt(40, 15), false},
		{Pt(40, 67), false},
	}
	for _, tt := range tests {
		if got := b.Contains(tt.p); got != tt.want {
			t.Errorf("Contains(%v): expected %v, got %v", tt.p, tt.want, got)
		}
	}
}

func TestRectOverlaps(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !a.Overlaps(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("Expected overlapping rects")
	}
	if a.Overlaps(Rect{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("Expected edge-adjacent rects not to overlap")
	}
}

func TestClampAndSign(t *testing.T) {
	if Clamp(5, 8, 792) != 8 || Clamp(900, 8, 792) != 792 || Clamp(40, 8, 792) != 40 {
		t.Error("Clamp returned unexpected value")
	}
	if Sign(-7) != -1 || Sign(0) != 0 || Sign(3) != 1 {
		t.Error("Sign returned unexpected value")
	}
}
