// Package export serializes decoded captures to CSV, either as raw
// pulse-and-duration rows ("pad" format) or as the reconstructed binary
// signal, one sample per row ("signal" format).
package export
