package rifl

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Container constants from the Flipper Zero lfrfid raw file format.
const (
	// Magic is the file identifier, the ASCII bytes "RIFL" read as a
	// little-endian uint32.
	Magic = 0x4C464952

	// Version is the only supported RIFL format version.
	Version = 1

	// HeaderSize is the fixed byte length of the container header.
	HeaderSize = 20
)

// Header field byte offsets. All fields are little-endian and 4 bytes wide.
const (
	offMagic         = 0
	offVersion       = 4
	offFrequency     = 8
	offDutyCycle     = 12
	offMaxBufferSize = 16
)

// Header is the decoded RIFL container header.
// Layout: [Magic:4][Version:4][Frequency:4 float32][DutyCycle:4 float32][MaxBufferSize:4]
type Header struct {
	Version       uint32  // Format version, 1
	Frequency     float32 // Carrier frequency in Hz, the timing base for durations
	DutyCycle     float32 // Carrier duty cycle
	MaxBufferSize uint32  // Upper bound on the size of each pair buffer in bytes
}

// ParseHeader decodes and validates the 20-byte container header.
func ParseHeader(data []byte) (Header, error) {
	if len(data) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrTruncated, HeaderSize, len(data))
	}

	if magic := binary.LittleEndian.Uint32(data[offMagic:]); magic != Magic {
		return Header{}, fmt.Errorf("%w: magic 0x%08X", ErrBadMagic, magic)
	}

	h := Header{
		Version:       binary.LittleEndian.Uint32(data[offVersion:]),
		Frequency:     math.Float32frombits(binary.LittleEndian.Uint32(data[offFrequency:])),
		DutyCycle:     math.Float32frombits(binary.LittleEndian.Uint32(data[offDutyCycle:])),
		MaxBufferSize: binary.LittleEndian.Uint32(data[offMaxBufferSize:]),
	}

	if h.Version != Version {
		return Header{}, fmt.Errorf("%w %d", ErrBadVersion, h.Version)
	}

	if err := h.Validate(); err != nil {
		return Header{}, err
	}

	return h, nil
}

// Validate checks the header fields against their valid ranges.
func (h Header) Validate() error {
	if !(h.Frequency > 0) {
		return fmt.Errorf("%w: frequency must be positive, got %g", ErrHeader, h.Frequency)
	}

	if h.MaxBufferSize == 0 {
		return fmt.Errorf("%w: max buffer size must be positive", ErrHeader)
	}

	return nil
}

// AppendBinary appends the 20-byte wire encoding of the header to b.
func (h Header) AppendBinary(b []byte) []byte {
	b = binary.LittleEndian.AppendUint32(b, Magic)
	b = binary.LittleEndian.AppendUint32(b, h.Version)
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(h.Frequency))
	b = binary.LittleEndian.AppendUint32(b, math.Float32bits(h.DutyCycle))
	b = binary.LittleEndian.AppendUint32(b, h.MaxBufferSize)
	return b
}

// String returns a human-readable representation of the header.
func (h Header) String() string {
	return fmt.Sprintf("Header{Version:%d, Frequency:%g Hz, DutyCycle:%g, MaxBufferSize:%d}",
		h.Version, h.Frequency, h.DutyCycle, h.MaxBufferSize)
}
