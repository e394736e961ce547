//go:build fastmath

package analysis

import (
	"github.com/meko-christian/algo-approx"
)

// ln10 is the natural logarithm of 10, used for log base conversions.
const ln10 = 2.30258509299404568401799145468

// log10 computes log10(x) using fast approximation.
func log10(x float64) float64 {
	return approx.FastLog(x) / ln10
}
