package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hnesk/flipper-raw-rfid/internal/pad"
	"github.com/hnesk/flipper-raw-rfid/internal/rifl"
	"github.com/hnesk/flipper-raw-rfid/internal/sigproc"
)

var infoCmd = &cobra.Command{
	Use:   "info RAW_FILE",
	Short: "Show capture header and pulse statistics",
	Args:  cobra.ExactArgs(1),
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	capture, err := rifl.Load(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	pairs := capture.Pairs()
	total := pad.TotalDuration(pairs)

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "File:            %s\n", args[0])
	fmt.Fprintf(out, "Format version:  %d\n", capture.Header.Version)
	fmt.Fprintf(out, "Frequency:       %g Hz\n", capture.Header.Frequency)
	fmt.Fprintf(out, "Duty cycle:      %g\n", capture.Header.DutyCycle)
	fmt.Fprintf(out, "Max buffer size: %d bytes\n", capture.Header.MaxBufferSize)
	fmt.Fprintf(out, "Pairs:           %d\n", len(pairs))
	fmt.Fprintf(out, "Samples:         %d (%.3f s)\n", total, float64(total)/float64(capture.Header.Frequency))

	if err := pad.Validate(pairs); err != nil {
		fmt.Fprintf(out, "Warning:         %v\n", err)
	}

	if len(pairs) == 0 {
		return nil
	}

	pulses := make([]uint32, len(pairs))
	for i, p := range pairs {
		pulses[i] = p.Pulse
	}
	peaks := sigproc.FindPeaks(sigproc.Histogram(pulses, 0), 0)

	if len(peaks) > 0 {
		fmt.Fprint(out, "Pulse widths:   ")
		for i, p := range peaks {
			if i == 3 {
				break
			}
			fmt.Fprintf(out, " %d (x%d)", p.Center, p.Height)
		}
		fmt.Fprintln(out)
	}

	signal, err := capture.Signal()
	if err != nil {
		// The Validate warning above already names the offending pair.
		return nil
	}

	if edge := sigproc.FirstTransition(signal, 1); edge >= 0 {
		fmt.Fprintf(out, "First edge:      sample %d\n", edge)
	}

	samples := make([]float64, min(len(signal), analysisSamples))
	for i := range samples {
		samples[i] = float64(signal[i])
	}
	if period := sigproc.DominantPeriod(sigproc.Autocorrelate(samples)); period > 0 {
		fmt.Fprintf(out, "Dominant period: %d samples\n", period)
	}

	return nil
}

// Autocorrelation runs an FFT over the signal; a window this size keeps
// the cost flat regardless of capture length while still covering many
// repetitions of any realistic modulation period.
const analysisSamples = 1 << 16
