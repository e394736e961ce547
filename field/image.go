package field

import (
	"fmt"
	"image"
	"math"

	"github.com/cwbudde/algo-vecmath"
)

// Normalize linearly remaps data so its minimum becomes lo and its maximum
// becomes hi. A constant input maps to the midpoint of [lo, hi].
func Normalize(data []float64, lo, hi float64) ([]float64, error) {
	if len(data) == 0 {
		return nil, ErrEmptyField
	}
	if hi < lo {
		return nil, fmt.Errorf("%w: [%g, %g]", ErrInvalidRange, lo, hi)
	}

	minV, maxV := data[0], data[0]
	for _, v := range data[1:] {
		minV = math.Min(minV, v)
		maxV = math.Max(maxV, v)
	}

	out := make([]float64, len(data))
	if maxV == minV {
		mid := lo + (hi-lo)/2
		for i := range out {
			out[i] = mid
		}
		return out, nil
	}

	for i, v := range data {
		out[i] = v - minV
	}
	vecmath.ScaleBlockInPlace(out, (hi-lo)/(maxV-minV))
	for i := range out {
		out[i] += lo
	}
	return out, nil
}

// Gray converts width*height samples in [0, 1] to an 8-bit image. Values
// outside the range are clamped.
func Gray(data []float64, width, height int) (*image.Gray, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	if len(data) != width*height {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrSizeMismatch, len(data), width*height)
	}

	img := image.NewGray(image.Rect(0, 0, width, height))
	for row := 0; row < height; row++ {
		line := img.Pix[row*img.Stride : row*img.Stride+width]
		for col := range line {
			v := math.Max(0, math.Min(1, data[row*width+col]))
			line[col] = uint8(math.Round(v * 255))
		}
	}
	return img, nil
}
