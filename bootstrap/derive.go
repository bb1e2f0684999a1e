package bootstrap

// Raw and derived observable names as they appear in data files and in
// result tables.
const (
	KeyEnergy          = "E"
	KeyEnergySq        = "E2"
	KeyMagnetization   = "M"
	KeyMagnetizationSq = "M2"
	KeyHeatCapacity    = "C"
	KeySusceptibility  = "X"
)

// Derive extends a sampling block with the derived physical observables
// obtained from the fluctuation-dissipation relation:
//
//	C = beta^2 * N * (<E2> - <E>^2)
//	X = beta   * N * (<M2> - <M>^2)
//
// Each derived observable is computed only when both of its raw moments
// are present; absent keys are skipped silently. The fluctuation term is
// a difference of two correlated sample means, not a population variance,
// so it can come out negative under sampling noise; such values are
// stored as-is.
func Derive(b Block, systemSize int, beta float64) {
	size := float64(systemSize)
	if e, ok := b[KeyEnergy]; ok {
		if e2, ok := b[KeyEnergySq]; ok {
			b[KeyHeatCapacity] = beta * beta * size * (e2 - e*e)
		}
	}
	if m, ok := b[KeyMagnetization]; ok {
		if m2, ok := b[KeyMagnetizationSq]; ok {
			b[KeySusceptibility] = beta * size * (m2 - m*m)
		}
	}
}
