package world

import (
	"errors"
	"math/rand"
	"testing"
)

func fixedGrid(t *testing.T) *Grid {
	t.Helper()
	return mustGenerate(t, Options{Mode: ModeFixed}, nil)
}

func TestResolveScenarios(t *testing.T) {
	g := fixedGrid(t)
	r := NewResolver(rand.New(rand.NewSource(1)))

	tests := []struct {
		name         string
		in           Intent
		wantX, wantY int
		wantMoved    bool
	}{
		{"spawn north onto path", Intent{X: 5, Y: 5, DX: 0, DY: -1}, 5, 4, true},
		{"blocked by boundary", Intent{X: 1, Y: 1, DX: -1, DY: 0}, 1, 1, false},
		{"wraparound onto boundary", Intent{X: 10, Y: 5, DX: 1, DY: 0}, 10, 5, false},
		{"blocked by water", Intent{X: 3, Y: 2, DX: 0, DY: 1}, 3, 2, false},
		{"blocked by tree", Intent{X: 4, Y: 1, DX: 1, DY: 0}, 4, 1, false},
		{"diagonal onto grass", Intent{X: 5, Y: 5, DX: -1, DY: 1}, 4, 6, true},
		{"no-op", Intent{X: 5, Y: 5}, 5, 5, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Resolve(g, tt.in)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if out.X != tt.wantX || out.Y != tt.wantY {
				t.Errorf("Position = (%d,%d), want (%d,%d)", out.X, out.Y, tt.wantX, tt.wantY)
			}
			if out.Moved != tt.wantMoved {
				t.Errorf("Moved = %v, want %v", out.Moved, tt.wantMoved)
			}
			if out.Confused != 0 || out.Deflected {
				t.Errorf("Unconfused step reported confused=%d deflected=%v", out.Confused, out.Deflected)
			}
		})
	}
}

func TestResolveWraparoundStaysOnGrid(t *testing.T) {
	// Every cell and delta, including ring cells whose steps wrap.
	g := mustGenerate(t, Options{Mode: ModeProcedural, Size: 7}, rand.New(rand.NewSource(3)))
	r := NewResolver(rand.New(rand.NewSource(4)))
	n := g.Size()

	for y := 0; y < n; y++ {
		for x := 0; x < n; x++ {
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					out, err := r.Resolve(g, Intent{X: x, Y: y, DX: dx, DY: dy, Confused: 2})
					if err != nil {
						t.Fatalf("Resolve failed: %v", err)
					}
					if out.X < 0 || out.X >= n || out.Y < 0 || out.Y >= n {
						t.Fatalf("(%d,%d)+(%d,%d) escaped the grid: (%d,%d)", x, y, dx, dy, out.X, out.Y)
					}
					if wx, wy := Wrap(x+dx, n), Wrap(y+dy, n); wx < 0 || wx >= n || wy < 0 || wy >= n {
						t.Fatalf("Wrap produced (%d,%d) for n=%d", wx, wy, n)
					}
				}
			}
		}
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		v, n, want int
	}{
		{0, 11, 0},
		{10, 11, 10},
		{11, 11, 0},
		{-1, 11, 10},
		{-12, 11, 10},
		{23, 11, 1},
	}

	for _, tt := range tests {
		if got := Wrap(tt.v, tt.n); got != tt.want {
			t.Errorf("Wrap(%d, %d) = %d, want %d", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestResolveConfusionDecay(t *testing.T) {
	g := fixedGrid(t)
	r := NewResolver(rand.New(rand.NewSource(7)))

	for k := 1; k <= 10; k++ {
		for _, in := range []Intent{
			{X: 5, Y: 5, DX: 0, DY: -1, Confused: k}, // open ground
			{X: 1, Y: 1, DX: -1, DY: 0, Confused: k}, // against the boundary
			{X: 5, Y: 5, Confused: k},                // no-op
		} {
			out, err := r.Resolve(g, in)
			if err != nil {
				t.Fatalf("Resolve failed: %v", err)
			}
			if out.Confused != k-1 {
				t.Errorf("Intent %+v: confused = %d, want %d", in, out.Confused, k-1)
			}
		}
	}
}

func TestResolveDeflection(t *testing.T) {
	g := fixedGrid(t)
	r := NewResolver(rand.New(rand.NewSource(2024)))

	const trials = 1000
	deflected := 0
	for i := 0; i < trials; i++ {
		// All four neighbours of spawn are walkable, so a deflected no-op
		// always lands on one of them.
		out, err := r.Resolve(g, Intent{X: 5, Y: 5, Confused: 1})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if !out.Deflected {
			if out.X != 5 || out.Y != 5 {
				t.Fatalf("Undeflected no-op moved to (%d,%d)", out.X, out.Y)
			}
			continue
		}
		deflected++
		dist := abs(out.X-5) + abs(out.Y-5)
		if dist != 1 {
			t.Fatalf("Deflected step landed on (%d,%d), not a cardinal neighbour", out.X, out.Y)
		}
	}

	if deflected < 400 || deflected > 600 {
		t.Errorf("Deflected %d of %d steps, expected roughly half", deflected, trials)
	}
}

func TestResolveNoDeflectionWithoutConfusion(t *testing.T) {
	g := fixedGrid(t)
	r := NewResolver(rand.New(rand.NewSource(5)))

	for i := 0; i < 200; i++ {
		out, err := r.Resolve(g, Intent{X: 1, Y: 1, DX: -1, DY: 0})
		if err != nil {
			t.Fatalf("Resolve failed: %v", err)
		}
		if out.X != 1 || out.Y != 1 || out.Deflected {
			t.Fatalf("Blocked step moved to (%d,%d), deflected=%v", out.X, out.Y, out.Deflected)
		}
	}
}

func TestResolveReproducible(t *testing.T) {
	g := fixedGrid(t)
	r1 := NewResolver(rand.New(rand.NewSource(77)))
	r2 := NewResolver(rand.New(rand.NewSource(77)))

	in1 := Intent{X: 5, Y: 5, DX: 1, Confused: 20}
	in2 := in1
	for i := 0; i < 20; i++ {
		o1, err1 := r1.Resolve(g, in1)
		o2, err2 := r2.Resolve(g, in2)
		if err1 != nil || err2 != nil {
			t.Fatalf("Resolve failed: %v / %v", err1, err2)
		}
		if o1 != o2 {
			t.Fatalf("Step %d diverged: %+v != %+v", i, o1, o2)
		}
		in1.X, in1.Y, in1.Confused = o1.X, o1.Y, o1.Confused
		in2.X, in2.Y, in2.Confused = o2.X, o2.Y, o2.Confused
	}
}

func TestResolveInvalidIntent(t *testing.T) {
	g := fixedGrid(t)
	r := NewResolver(rand.New(rand.NewSource(1)))

	tests := []struct {
		name string
		in   Intent
	}{
		{"dx too large", Intent{X: 5, Y: 5, DX: 2}},
		{"dy too small", Intent{X: 5, Y: 5, DY: -2}},
		{"negative confusion", Intent{X: 5, Y: 5, Confused: -1}},
		{"position off grid", Intent{X: 11, Y: 5, DX: 1}},
		{"negative position", Intent{X: 5, Y: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := r.Resolve(g, tt.in)
			if !errors.Is(err, ErrInvalidIntent) {
				t.Fatalf("Expected ErrInvalidIntent, got %v", err)
			}
			if out.X != tt.in.X || out.Y != tt.in.Y || out.Confused != tt.in.Confused {
				t.Errorf("Rejected intent changed state: %+v", out)
			}
		})
	}

	if _, err := r.Resolve(nil, Intent{}); !errors.Is(err, ErrInvalidIntent) {
		t.Errorf("Nil grid: expected ErrInvalidIntent, got %v", err)
	}
}

func TestResolveFunc(t *testing.T) {
	g := fixedGrid(t)
	out, err := Resolve(g, Intent{X: 5, Y: 5, DY: -1}, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Resolve failed: %v", err)
	}
	if out.X != 5 || out.Y != 4 {
		t.Errorf("Position = (%d,%d), want (5,4)", out.X, out.Y)
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
