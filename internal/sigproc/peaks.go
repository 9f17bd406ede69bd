package sigproc

import "sort"

// Histogram counts how often each value occurs, one bin per integer value.
// The result has at least minLength bins and some headroom past the largest
// value so downstream peak detection has room to find a right base.
func Histogram(values []uint32, minLength int) []int {
	length := minLength
	for _, v := range values {
		if int(v)+20 > length {
			length = int(v) + 20
		}
	}

	hist := make([]int, length)
	for _, v := range values {
		hist[v]++
	}
	return hist
}

// Peak is one peak in a distribution, described by its left base, center
// and right base index.
type Peak struct {
	Left   int
	Center int
	Right  int
	Height int
}

// Contains reports whether a value lies inside the peak's bases.
func (p Peak) Contains(v int) bool {
	return p.Left <= v && v <= p.Right
}

// Merge combines two peaks into one spanning both.
func (p Peak) Merge(other Peak) Peak {
	merged := Peak{
		Left:   p.Left,
		Center: (p.Center + other.Center) / 2,
		Right:  p.Right,
		Height: p.Height,
	}
	if other.Left < merged.Left {
		merged.Left = other.Left
	}
	if other.Right > merged.Right {
		merged.Right = other.Right
	}
	if other.Height > merged.Height {
		merged.Height = other.Height
	}
	return merged
}

// FindPeaks locates local maxima in a distribution, typically a pulse or
// duration length histogram. Maxima below minHeight are ignored; a
// minHeight of zero or less uses the distribution's mean. Each peak's bases
// extend to where the distribution stops falling. The result is sorted by
// height, tallest first.
func FindPeaks(distribution []int, minHeight float64) []Peak {
	if len(distribution) < 3 {
		return nil
	}

	if minHeight <= 0 {
		sum := 0
		for _, v := range distribution {
			sum += v
		}
		minHeight = float64(sum) / float64(len(distribution))
	}

	var peaks []Peak
	for i := 1; i < len(distribution)-1; i++ {
		if float64(distribution[i]) < minHeight {
			continue
		}
		// Local maximum; on a plateau only its first bin qualifies.
		if distribution[i] <= distribution[i-1] || distribution[i] < distribution[i+1] {
			continue
		}

		left := i
		for left > 0 && distribution[left-1] < distribution[left] {
			left--
		}
		right := i
		for right < len(distribution)-1 && distribution[right+1] < distribution[right] {
			right++
		}

		peaks = append(peaks, Peak{Left: left, Center: i, Right: right, Height: distribution[i]})
	}

	sort.SliceStable(peaks, func(a, b int) bool {
		return peaks[a].Height > peaks[b].Height
	})

	return peaks
}
