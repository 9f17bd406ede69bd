package pad

import (
	"errors"
	"fmt"
)

// Pair is one pulse-and-duration record as emitted by the capture device.
//
// Diagram:
//
//	_____________      _____
//	             ______     _______ .......
//
//	^ - Pulse - ^
//	^ -     Duration  -^
//
// Pulse is the number of samples the output was high at the start of the
// interval, Duration the total number of samples until the next interval
// begins (high part plus the following low part).
type Pair struct {
	Pulse    uint32
	Duration uint32
}

// Signal is a dense binary waveform, one byte per sample, 0 for low and 1
// for high.
type Signal []byte

var (
	// ErrPulseExceedsDuration reports a pair whose high part is longer than
	// its total interval. The low segment length would be negative, so the
	// conversion fails instead of wrapping around.
	ErrPulseExceedsDuration = errors.New("pulse exceeds duration")

	// ErrZeroDuration reports a pair with a zero-length interval.
	ErrZeroDuration = errors.New("pair has zero duration")
)

// TotalDuration returns the number of samples the pairs span, which is the
// length of the signal ToSignal produces for them.
func TotalDuration(pairs []Pair) int {
	total := 0
	for _, p := range pairs {
		total += int(p.Duration)
	}
	return total
}

// Validate checks the structural invariants of a decoded pair sequence:
// every pair must have a non-zero duration and a pulse no longer than its
// duration. The first violation is returned with its pair index.
func Validate(pairs []Pair) error {
	for i, p := range pairs {
		if p.Duration == 0 {
			return fmt.Errorf("pair %d: %w", i, ErrZeroDuration)
		}
		if p.Pulse > p.Duration {
			return fmt.Errorf("pair %d: %w (pulse %d, duration %d)", i, ErrPulseExceedsDuration, p.Pulse, p.Duration)
		}
	}
	return nil
}

// ToSignal expands a pair sequence into the dense binary signal it encodes:
// for each pair, Pulse high samples followed by Duration-Pulse low samples,
// concatenated in sequence order. The result has TotalDuration(pairs)
// samples.
//
// A pair with a zero pulse contributes a pure low run, and a pair with a
// zero duration contributes nothing. A pair whose pulse exceeds its
// duration fails with ErrPulseExceedsDuration. An empty pair sequence
// yields an empty signal.
func ToSignal(pairs []Pair) (Signal, error) {
	signal := make(Signal, TotalDuration(pairs))

	position := 0
	for i, p := range pairs {
		if p.Pulse > p.Duration {
			return nil, fmt.Errorf("pair %d: %w (pulse %d, duration %d)", i, ErrPulseExceedsDuration, p.Pulse, p.Duration)
		}
		// Low samples are already zero from allocation.
		for j := position; j < position+int(p.Pulse); j++ {
			signal[j] = 1
		}
		position += int(p.Duration)
	}

	return signal, nil
}

// FromSignal recovers the pair sequence from a dense binary signal by
// scanning its alternating runs: each maximal high run and the low run that
// follows it form one pair, with Pulse the length of the high run and
// Duration the combined length of both.
//
// A signal that begins with a low run yields a leading Pair{0, n} covering
// it. A signal that ends in a high run yields a final pair whose Duration
// equals its Pulse. Any non-zero sample counts as high.
func FromSignal(signal Signal) []Pair {
	var pairs []Pair

	i := 0
	if len(signal) > 0 && signal[0] == 0 {
		for i < len(signal) && signal[i] == 0 {
			i++
		}
		pairs = append(pairs, Pair{Pulse: 0, Duration: uint32(i)})
	}

	for i < len(signal) {
		start := i
		for i < len(signal) && signal[i] != 0 {
			i++
		}
		pulse := i - start
		for i < len(signal) && signal[i] == 0 {
			i++
		}
		pairs = append(pairs, Pair{Pulse: uint32(pulse), Duration: uint32(i - start)})
	}

	return pairs
}
