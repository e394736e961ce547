package noise

import (
	"errors"
	"math"
	"sync"
	"testing"
)

func TestTableInvariants(t *testing.T) {
	for _, seed := range []uint64{1, 2, 42, 1 << 40} {
		tbl := NewTable(WithSeed(seed))

		var seen [tableSize]bool
		for i := 0; i < tableSize; i++ {
			p := tbl.Perm(i)
			if p < 0 || p >= tableSize {
				t.Fatalf("seed %d: perm[%d] = %d out of range", seed, i, p)
			}
			if seen[p] {
				t.Fatalf("seed %d: perm value %d repeated", seed, p)
			}
			seen[p] = true
		}

		for i := 0; i < tbl.Len(); i++ {
			if g := tbl.Grad1(i); g < -1 || g > 1 {
				t.Fatalf("seed %d: grad1[%d] = %v outside [-1, 1]", seed, i, g)
			}
			if l := tbl.Grad2(i).Len(); math.Abs(float64(l)-1) > 1e-5 {
				t.Fatalf("seed %d: |grad2[%d]| = %v", seed, i, l)
			}
			if l := tbl.Grad3(i).Len(); math.Abs(float64(l)-1) > 1e-5 {
				t.Fatalf("seed %d: |grad3[%d]| = %v", seed, i, l)
			}
			if l := tbl.Grad4(i).Len(); math.Abs(float64(l)-1) > 1e-5 {
				t.Fatalf("seed %d: |grad4[%d]| = %v", seed, i, l)
			}
		}
	}
}

func TestTableTailDuplicatesHead(t *testing.T) {
	tbl := NewTable(WithSeed(9))
	if tbl.Len() != 2*tableSize+2 {
		t.Fatalf("Len() = %d, want %d", tbl.Len(), 2*tableSize+2)
	}
	for i := 0; i < tableSize+2; i++ {
		j := tableSize + i
		if tbl.Perm(j) != tbl.Perm(i) {
			t.Fatalf("perm[%d] = %d, want perm[%d] = %d", j, tbl.Perm(j), i, tbl.Perm(i))
		}
		if tbl.Grad1(j) != tbl.Grad1(i) || tbl.Grad2(j) != tbl.Grad2(i) ||
			tbl.Grad3(j) != tbl.Grad3(i) || tbl.Grad4(j) != tbl.Grad4(i) {
			t.Fatalf("gradient tail %d does not match head %d", j, i)
		}
	}
}

func TestNewTableSeeds(t *testing.T) {
	a := NewTable(WithSeed(5))
	b := NewTable(WithSeed(5))
	c := NewTable(WithSeed(6))
	d := NewTable(WithSeed(5), WithStream(77))

	if a.Seed() != 5 {
		t.Fatalf("Seed() = %d, want 5", a.Seed())
	}

	differsC, differsD := false, false
	for i := 0; i < tableSize; i++ {
		if a.Perm(i) != b.Perm(i) || a.Grad3(i) != b.Grad3(i) {
			t.Fatalf("equal seeds built different tables at %d", i)
		}
		if a.Perm(i) != c.Perm(i) {
			differsC = true
		}
		if a.Perm(i) != d.Perm(i) {
			differsD = true
		}
	}
	if !differsC {
		t.Fatal("different seeds built identical permutations")
	}
	if !differsD {
		t.Fatal("different streams built identical permutations")
	}
}

func TestNilOptionIgnored(t *testing.T) {
	a := NewTable(nil, WithSeed(3), nil)
	b := NewTable(WithSeed(3))
	if a.Noise2(0.3, 0.7) != b.Noise2(0.3, 0.7) {
		t.Fatal("nil options changed the table")
	}
}

func identity() []int {
	perm := make([]int, tableSize)
	for i := range perm {
		perm[i] = i
	}
	return perm
}

func constant(v float32) []float32 {
	g := make([]float32, tableSize)
	for i := range g {
		g[i] = v
	}
	return g
}

func TestFromLatticeValidation(t *testing.T) {
	dup := identity()
	dup[10] = 11

	outOfRange := identity()
	outOfRange[0] = 256

	badGrad := constant(0.5)
	badGrad[3] = 1.5

	nanGrad := constant(0.5)
	nanGrad[4] = float32(math.NaN())

	tests := []struct {
		name  string
		perm  []int
		grad1 []float32
		want  error
	}{
		{name: "short perm", perm: identity()[:10], grad1: constant(0.5), want: ErrTableSize},
		{name: "short grad", perm: identity(), grad1: constant(0.5)[:255], want: ErrTableSize},
		{name: "duplicate", perm: dup, grad1: constant(0.5), want: ErrNotPermutation},
		{name: "out of range", perm: outOfRange, grad1: constant(0.5), want: ErrNotPermutation},
		{name: "slope too steep", perm: identity(), grad1: badGrad, want: ErrGradientRange},
		{name: "slope NaN", perm: identity(), grad1: nanGrad, want: ErrGradientRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromLattice(tt.perm, tt.grad1)
			if !errors.Is(err, tt.want) {
				t.Fatalf("FromLattice() error = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestFromLatticeCopiesInput(t *testing.T) {
	perm := identity()
	grad := constant(0.5)
	tbl, err := FromLattice(perm, grad)
	if err != nil {
		t.Fatalf("FromLattice() error = %v", err)
	}
	perm[0], perm[1] = perm[1], perm[0]
	grad[0] = -1

	if tbl.Perm(0) != 0 || tbl.Grad1(0) != 0.5 {
		t.Fatal("table aliases caller slices")
	}
	if tbl.Perm(tableSize) != 0 || tbl.Grad1(tableSize+1) != 0.5 {
		t.Fatal("tail not duplicated from supplied lattice")
	}
}

func TestDefaultBuiltOnce(t *testing.T) {
	const workers = 16

	var wg sync.WaitGroup
	got := make([]*Table, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Default()
		}(i)
	}
	wg.Wait()

	for i := 1; i < workers; i++ {
		if got[i] != got[0] {
			t.Fatalf("worker %d saw a different default table", i)
		}
	}

	Init()
	if Default() != got[0] {
		t.Fatal("Init rebuilt the default table")
	}
	if Default().Seed() != defaultSeed {
		t.Fatalf("default seed = %d, want %d", Default().Seed(), defaultSeed)
	}
}
