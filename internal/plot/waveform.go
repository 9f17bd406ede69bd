package plot

import (
	"fmt"
	"strings"

	"github.com/hnesk/flipper-raw-rfid/internal/pad"
)

// Options controls waveform rendering.
type Options struct {
	Width      int // Waveform width in columns
	Offset     int // First sample to render
	MaxSamples int // Samples to render from Offset on, 0 for all
}

// DefaultWidth is used when Options.Width is not positive.
const DefaultWidth = 80

// Render draws the signal as a two-rail text waveform. Each column covers a
// window of samples and sits on the high or the low rail depending on the
// window's majority level; a level change between neighbouring columns is
// drawn as an edge on both rails. A scale line below the waveform states
// the rendered range and the samples-per-column ratio.
func Render(signal pad.Signal, opts Options) string {
	width := opts.Width
	if width <= 0 {
		width = DefaultWidth
	}

	start := opts.Offset
	if start < 0 {
		start = 0
	}
	if start > len(signal) {
		start = len(signal)
	}
	end := len(signal)
	if opts.MaxSamples > 0 && start+opts.MaxSamples < end {
		end = start + opts.MaxSamples
	}
	window := signal[start:end]

	if len(window) == 0 {
		return "(empty signal)\n"
	}
	if len(window) < width {
		width = len(window)
	}

	// Samples per column, rounded up so every sample lands in a column.
	step := (len(window) + width - 1) / width
	columns := (len(window) + step - 1) / step

	levels := make([]byte, columns)
	for c := 0; c < columns; c++ {
		lo := c * step
		hi := lo + step
		if hi > len(window) {
			hi = len(window)
		}
		high := 0
		for _, s := range window[lo:hi] {
			if s != 0 {
				high++
			}
		}
		if high*2 >= hi-lo {
			levels[c] = 1
		}
	}

	top := make([]rune, columns)
	bottom := make([]rune, columns)
	for c := 0; c < columns; c++ {
		top[c] = ' '
		bottom[c] = ' '
		if levels[c] == 1 {
			top[c] = '_'
		} else {
			bottom[c] = '_'
		}
		if c > 0 && levels[c] != levels[c-1] {
			top[c] = '|'
			bottom[c] = '|'
		}
	}

	var b strings.Builder
	b.WriteString(string(top))
	b.WriteByte('\n')
	b.WriteString(string(bottom))
	b.WriteByte('\n')
	fmt.Fprintf(&b, "samples %d-%d of %d, %d per column\n", start, end-1, len(signal), step)
	return b.String()
}
