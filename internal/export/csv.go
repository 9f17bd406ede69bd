package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/hnesk/flipper-raw-rfid/internal/pad"
)

// Format selects the CSV serialization of a capture.
type Format string

const (
	// FormatPad writes one pulse,duration row per pair, in stream order.
	FormatPad Format = "pad"
	// FormatSignal writes the reconstructed signal, one 0/1 row per sample.
	FormatSignal Format = "signal"
)

// ParseFormat validates a format name from user input.
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case FormatPad, FormatSignal:
		return Format(s), nil
	}
	return "", fmt.Errorf("format must be %q or %q, got %q", FormatPad, FormatSignal, s)
}

// WritePairs writes the pair sequence as pulse,duration CSV rows in stream
// order.
func WritePairs(w io.Writer, pairs []pad.Pair) error {
	cw := csv.NewWriter(w)
	for _, p := range pairs {
		row := []string{
			strconv.FormatUint(uint64(p.Pulse), 10),
			strconv.FormatUint(uint64(p.Duration), 10),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write pair row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteSignal writes the dense signal as CSV, one sample value per row.
func WriteSignal(w io.Writer, signal pad.Signal) error {
	cw := csv.NewWriter(w)
	for _, s := range signal {
		if err := cw.Write([]string{strconv.Itoa(int(s))}); err != nil {
			return fmt.Errorf("failed to write sample row: %w", err)
		}
	}
	cw.Flush()
	return cw.Error()
}
