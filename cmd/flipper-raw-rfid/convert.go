package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/hnesk/flipper-raw-rfid/internal/export"
	"github.com/hnesk/flipper-raw-rfid/internal/rifl"
)

var convertFormat string

var convertCmd = &cobra.Command{
	Use:   "convert [flags] RAW_FILE [OUTPUT_FILE]",
	Short: "Convert a raw capture to CSV",
	Long: `Convert decodes a raw capture file and writes it as CSV to OUTPUT_FILE,
or to stdout when OUTPUT_FILE is omitted or "-".

In "pad" format each line holds one pulse and duration record, measured in
samples, in original stream order:

    pulse0,duration0
    pulse1,duration1
    ...

In "signal" format the reconstructed signal is written out sample by sample,
with "1" marking a high and "0" marking a low sample.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringVarP(&convertFormat, "format", "f", "", `output format: "pad" or "signal" (default from config)`)
	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) (err error) {
	name := convertFormat
	if name == "" {
		name = cfg.Convert.Format
	}
	format, err := export.ParseFormat(name)
	if err != nil {
		return err
	}

	capture, err := rifl.Load(args[0])
	if err != nil {
		return fmt.Errorf("%s: %w", args[0], err)
	}
	logger.Debug("capture decoded",
		slog.String("file", args[0]),
		slog.Int("pairs", len(capture.Pairs())),
		slog.Float64("frequency", float64(capture.Header.Frequency)),
	)

	var out io.Writer = os.Stdout
	if len(args) == 2 && args[1] != "-" {
		file, createErr := os.Create(args[1])
		if createErr != nil {
			return fmt.Errorf("failed to create output file: %w", createErr)
		}
		defer func() {
			if cerr := file.Close(); cerr != nil && err == nil {
				err = cerr
			}
		}()
		out = file
	}

	switch format {
	case export.FormatPad:
		err = export.WritePairs(out, capture.Pairs())
	case export.FormatSignal:
		signal, serr := capture.Signal()
		if serr != nil {
			return serr
		}
		err = export.WriteSignal(out, signal)
	}
	return err
}
