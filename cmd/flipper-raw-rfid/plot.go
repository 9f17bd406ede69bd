package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/hnesk/flipper-raw-rfid/internal/plot"
	"github.com/hnesk/flipper-raw-rfid/internal/rifl"
	"github.com/hnesk/flipper-raw-rfid/internal/sigproc"
)

var (
	plotWidth      int
	plotOffset     int
	plotMaxSamples int
	plotSigma      float64
)

var plotCmd = &cobra.Command{
	Use:   "plot [flags] RAW_FILE",
	Short: "Plot the reconstructed signal as a text waveform",
	Long: `Plot decodes a raw capture file, reconstructs the binary signal and draws
it as a two-rail waveform on the terminal. With --smooth the signal is
low-pass filtered and re-binarized before drawing, which suppresses narrow
glitches in noisy captures.`,
	Args: cobra.ExactArgs(1),
	RunE: runPlot,
}

func init() {
	plotCmd.Flags().IntVar(&plotWidth, "width", 0, "waveform width in columns (default from config)")
	plotCmd.Flags().IntVar(&plotOffset, "offset", 0, "first sample to draw")
	plotCmd.Flags().IntVar(&plotMaxSamples, "samples", 0, "number of samples to draw (default from config)")
	plotCmd.Flags().Float64Var(&plotSigma, "smooth", 0, "gaussian smoothing sigma in samples, 0 disables")
	rootCmd.AddCommand(plotCmd)
}

func runPlot(cmd *cobra.Command, args []string) error {
	capture, err := rifl.Load(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}

	signal, err := capture.Signal()
	if err != nil {
		return err
	}
	logger.Debug("signal reconstructed",
		slog.String("file", args[0]),
		slog.Int("samples", len(signal)),
	)

	sigma := plotSigma
	if sigma == 0 {
		sigma = cfg.Plot.SmoothSigma
	}
	if sigma > 0 {
		signal = sigproc.Binarize(sigproc.Smooth(signal, sigma), 0.5)
	}

	opts := plot.Options{
		Width:      plotWidth,
		Offset:     plotOffset,
		MaxSamples: plotMaxSamples,
	}
	if opts.Width == 0 {
		opts.Width = cfg.Plot.Width
	}
	if opts.MaxSamples == 0 {
		opts.MaxSamples = cfg.Plot.MaxSamples
	}

	fmt.Fprint(cmd.OutOrStdout(), plot.Render(signal, opts))
	return nil
}
