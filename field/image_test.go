package field

import (
	"errors"
	"testing"

	"github.com/jtsiomb/gph-math/internal/testutil"
)

func TestNormalize(t *testing.T) {
	got, err := Normalize([]float64{-2, 0, 2, 1}, 0, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0.5, 1, 0.75}, 1e-12)
}

func TestNormalizeConstant(t *testing.T) {
	got, err := Normalize([]float64{3, 3, 3}, -1, 1)
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, got, []float64{0, 0, 0}, 0)
}

func TestNormalizeDoesNotModifyInput(t *testing.T) {
	in := []float64{1, 2, 3}
	if _, err := Normalize(in, 0, 10); err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	testutil.RequireSliceNearlyEqual(t, in, []float64{1, 2, 3}, 0)
}

func TestNormalizeErrors(t *testing.T) {
	if _, err := Normalize(nil, 0, 1); !errors.Is(err, ErrEmptyField) {
		t.Fatalf("err = %v, want ErrEmptyField", err)
	}
	if _, err := Normalize([]float64{1}, 1, 0); !errors.Is(err, ErrInvalidRange) {
		t.Fatalf("err = %v, want ErrInvalidRange", err)
	}
}

func TestGray(t *testing.T) {
	img, err := Gray([]float64{0, 0.5, 1, -3, 7, 0.25}, 3, 2)
	if err != nil {
		t.Fatalf("Gray() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 3 || b.Dy() != 2 {
		t.Fatalf("bounds = %v", b)
	}
	want := [][]uint8{{0, 128, 255}, {0, 255, 64}}
	for y, row := range want {
		for x, v := range row {
			if got := img.GrayAt(x, y).Y; got != v {
				t.Fatalf("pixel (%d,%d) = %d, want %d", x, y, got, v)
			}
		}
	}
}

func TestGrayErrors(t *testing.T) {
	if _, err := Gray(make([]float64, 4), 0, 4); !errors.Is(err, ErrInvalidSize) {
		t.Fatalf("err = %v, want ErrInvalidSize", err)
	}
	if _, err := Gray(make([]float64, 5), 2, 2); !errors.Is(err, ErrSizeMismatch) {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}
}
