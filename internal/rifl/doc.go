// Package rifl reads and writes the RIFL container format used by the
// Flipper Zero for raw RFID captures (xyz.ask.raw / xyz.psk.raw). It parses
// the fixed-layout header and the varint-encoded pulse-and-duration pair
// buffers into typed records, validating structure as it goes.
package rifl
