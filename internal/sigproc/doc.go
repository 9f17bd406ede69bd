// Package sigproc provides signal analysis helpers for reconstructed RFID
// waveforms: smoothing, binarization, autocorrelation and pulse-length
// histogram peak detection. It operates on decoded signals and pair
// statistics only; it does not demodulate any RFID protocol.
package sigproc
