// Package pad defines the pulse-and-duration representation of a captured
// RFID waveform and the conversion between that sparse form and a dense
// sample-by-sample binary signal.
package pad
