package analysis

// powerFloor bounds PowerDB at -200 dB.
const powerFloor = 1e-20

// PowerDB converts power values to decibels, 10*log10(p). Values at or below
// 1e-20 (including zero) map to -200 dB.
func PowerDB(power []float64) []float64 {
	out := make([]float64, len(power))
	for i, p := range power {
		out[i] = 10 * log10(max(p, powerFloor))
	}
	return out
}
