package noise

import (
	"fmt"

	"github.com/MichaelTJones/pcg"
	"github.com/go-gl/mathgl/mgl32"
)

const (
	tableSize   = 0x100
	tableMask   = 0xff
	latticeBias = 0x1000

	// tableLen leaves room for the duplicated tail so that double hashing
	// (perm[perm[i]+j]) and i+1 lookups never wrap.
	tableLen = tableSize + tableSize + 2
)

// Table holds a permutation of the lattice indices and the pseudo-random
// gradients attached to each index. The zero value is not usable; build one
// with NewTable, FromLattice or Default.
type Table struct {
	perm  [tableLen]int
	grad1 [tableLen]float32
	grad2 [tableLen]mgl32.Vec2
	grad3 [tableLen]mgl32.Vec3
	grad4 [tableLen]mgl32.Vec4

	seed     uint64
	legacy3D bool
}

// NewTable builds a table from a seeded PCG32 stream.
func NewTable(opts ...Option) *Table {
	cfg := applyOptions(opts...)
	t := &Table{
		seed:     cfg.seed,
		legacy3D: cfg.legacy3D,
	}

	rng := pcg.NewPCG32()
	rng.Seed(cfg.seed, cfg.stream)
	t.generate(rng)
	t.shuffle(rng)
	t.wrap()
	return t
}

// FromLattice builds a table whose permutation and 1D slopes are given by the
// caller. Both slices must hold 256 entries, perm must be a permutation of
// 0..255 and every slope must lie in [-1, 1]. The 2D, 3D and 4D gradients are
// still generated from the seed in opts.
func FromLattice(perm []int, grad1 []float32, opts ...Option) (*Table, error) {
	if len(perm) != tableSize || len(grad1) != tableSize {
		return nil, fmt.Errorf("%w: perm %d, grad1 %d", ErrTableSize, len(perm), len(grad1))
	}

	var seen [tableSize]bool
	for i, p := range perm {
		if p < 0 || p >= tableSize || seen[p] {
			return nil, fmt.Errorf("%w: index %d holds %d", ErrNotPermutation, i, p)
		}
		seen[p] = true
	}
	for i, g := range grad1 {
		if !(g >= -1 && g <= 1) {
			return nil, fmt.Errorf("%w: index %d holds %v", ErrGradientRange, i, g)
		}
	}

	cfg := applyOptions(opts...)
	t := &Table{
		seed:     cfg.seed,
		legacy3D: cfg.legacy3D,
	}

	rng := pcg.NewPCG32()
	rng.Seed(cfg.seed, cfg.stream)
	t.generate(rng)

	copy(t.perm[:tableSize], perm)
	copy(t.grad1[:tableSize], grad1)
	t.wrap()
	return t, nil
}

// generate fills the identity permutation and draws every gradient set.
func (t *Table) generate(rng *pcg.PCG32) {
	for i := 0; i < tableSize; i++ {
		t.perm[i] = i
		t.grad1[i] = component(rng)

		for {
			v := mgl32.Vec2{component(rng), component(rng)}
			if v.Len() > 0 {
				t.grad2[i] = v.Normalize()
				break
			}
		}
		for {
			v := mgl32.Vec3{component(rng), component(rng), component(rng)}
			if v.Len() > 0 {
				t.grad3[i] = v.Normalize()
				break
			}
		}
		for {
			v := mgl32.Vec4{component(rng), component(rng), component(rng), component(rng)}
			if v.Len() > 0 {
				t.grad4[i] = v.Normalize()
				break
			}
		}
	}
}

// shuffle permutes the lattice indices with one swap pass over the table.
func (t *Table) shuffle(rng *pcg.PCG32) {
	for i := 0; i < tableSize; i++ {
		j := int(rng.Bounded(tableSize))
		t.perm[i], t.perm[j] = t.perm[j], t.perm[i]
	}
}

// wrap copies the head of every table into its tail.
func (t *Table) wrap() {
	for i := 0; i < tableSize+2; i++ {
		t.perm[tableSize+i] = t.perm[i]
		t.grad1[tableSize+i] = t.grad1[i]
		t.grad2[tableSize+i] = t.grad2[i]
		t.grad3[tableSize+i] = t.grad3[i]
		t.grad4[tableSize+i] = t.grad4[i]
	}
}

// component draws a value from {-256, ..., 255} / 256.
func component(rng *pcg.PCG32) float32 {
	return float32(int(rng.Bounded(2*tableSize))-tableSize) / tableSize
}

// Seed returns the seed the table was built from.
func (t *Table) Seed() uint64 { return t.seed }

// Len returns the number of addressable entries, including the duplicated tail.
func (t *Table) Len() int { return tableLen }

// Perm returns the permutation entry at index i.
func (t *Table) Perm(i int) int { return t.perm[i] }

// Grad1 returns the 1D slope at index i.
func (t *Table) Grad1(i int) float32 { return t.grad1[i] }

// Grad2 returns the 2D unit gradient at index i.
func (t *Table) Grad2(i int) mgl32.Vec2 { return t.grad2[i] }

// Grad3 returns the 3D unit gradient at index i.
func (t *Table) Grad3(i int) mgl32.Vec3 { return t.grad3[i] }

// Grad4 returns the 4D unit gradient at index i.
func (t *Table) Grad4(i int) mgl32.Vec4 { return t.grad4[i] }
