// Package plot renders a reconstructed binary signal as a two-rail text
// waveform for terminal inspection, replacing an external plotting tool.
package plot
