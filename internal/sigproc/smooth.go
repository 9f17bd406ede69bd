package sigproc

import (
	"math"

	"github.com/hnesk/flipper-raw-rfid/internal/pad"
)

// Smooth applies a Gaussian low-pass filter to a binary signal and returns
// the filtered samples. The kernel is truncated at four standard deviations
// and the signal is extended with its edge values, so the output keeps the
// input's length. Sigma controls how much smoothing is applied, in samples.
func Smooth(signal pad.Signal, sigma float64) []float64 {
	out := make([]float64, len(signal))
	if len(signal) == 0 {
		return out
	}
	if sigma <= 0 {
		for i, s := range signal {
			out[i] = float64(s)
		}
		return out
	}

	radius := int(4*sigma + 0.5)
	if radius < 1 {
		radius = 1
	}

	kernel := make([]float64, 2*radius+1)
	sum := 0.0
	for k := -radius; k <= radius; k++ {
		v := math.Exp(-float64(k*k) / (2 * sigma * sigma))
		kernel[k+radius] = v
		sum += v
	}
	for i := range kernel {
		kernel[i] /= sum
	}

	for i := range signal {
		acc := 0.0
		for k := -radius; k <= radius; k++ {
			j := i + k
			if j < 0 {
				j = 0
			} else if j >= len(signal) {
				j = len(signal) - 1
			}
			acc += float64(signal[j]) * kernel[k+radius]
		}
		out[i] = acc
	}

	return out
}

// Binarize thresholds a filtered signal back to a binary one: samples above
// threshold become 1, the rest 0.
func Binarize(samples []float64, threshold float64) pad.Signal {
	signal := make(pad.Signal, len(samples))
	for i, v := range samples {
		if v > threshold {
			signal[i] = 1
		}
	}
	return signal
}

// FirstTransition returns the index of the first sample where the signal
// transitions to the given level. It returns -1 if the signal never
// transitions to that level.
func FirstTransition(signal pad.Signal, to byte) int {
	for i := 1; i < len(signal); i++ {
		if signal[i] == to && signal[i-1] != to {
			return i
		}
	}
	return -1
}
