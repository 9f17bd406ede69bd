package sigproc

import (
	"gonum.org/v1/gonum/dsp/fourier"
)

// Autocorrelate computes the statistical autocorrelation of x via FFT and
// returns the coefficients for lags 0 through len(x)-1, normalized so that
// the zero-lag coefficient is 1. A constant input has no variance to
// correlate and yields all zeros.
//
// The input is zero-padded to the next power of two above 2*len(x)-1, so
// the correlation is linear, not circular.
func Autocorrelate(x []float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	mean := 0.0
	for _, v := range x {
		mean += v
	}
	mean /= float64(n)

	variance := 0.0
	for _, v := range x {
		d := v - mean
		variance += d * d
	}
	variance /= float64(n)

	corr := make([]float64, n)
	if variance == 0 {
		return corr
	}

	fsize := 1
	for fsize < 2*n-1 {
		fsize <<= 1
	}

	padded := make([]float64, fsize)
	for i, v := range x {
		padded[i] = v - mean
	}

	fft := fourier.NewFFT(fsize)
	coeff := fft.Coefficients(nil, padded)
	for i, c := range coeff {
		re := real(c)
		im := imag(c)
		coeff[i] = complex(re*re+im*im, 0)
	}
	// Sequence is the unnormalized inverse, scale by the transform length.
	full := fft.Sequence(nil, coeff)

	norm := variance * float64(n) * float64(fsize)
	for i := range corr {
		corr[i] = full[i] / norm
	}

	return corr
}

// DominantPeriod estimates the fundamental period of a signal from its
// autocorrelation coefficients: the best-correlated lag once the zero-lag
// lobe has decayed through its first non-positive coefficient. It returns
// 0 when no lag correlates strongly enough to call periodic.
func DominantPeriod(corr []float64) int {
	lag := 1
	for lag < len(corr) && corr[lag] > 0 {
		lag++
	}

	best, bestLag := 0.0, 0
	for ; lag < len(corr); lag++ {
		if corr[lag] > best {
			best, bestLag = corr[lag], lag
		}
	}

	// Weak correlations are noise, not periodicity.
	if best < 0.1 {
		return 0
	}
	return bestLag
}
