package rifl

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/hnesk/flipper-raw-rfid/internal/pad"
)

// File is one decoded RIFL capture: the container header plus the pulse and
// duration pairs in their original stream order. A File is immutable after
// decoding.
type File struct {
	Header Header

	pairs []pad.Pair
}

// New builds a File from a header and a pair sequence, for writing captures
// programmatically. The pair slice is copied.
func New(h Header, pairs []pad.Pair) (*File, error) {
	if err := h.Validate(); err != nil {
		return nil, err
	}
	f := &File{Header: h}
	f.pairs = append(f.pairs, pairs...)
	return f, nil
}

// Load reads and decodes the RIFL capture at path.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture file: %w", err)
	}
	return DecodeBytes(data)
}

// Decode reads r to its end and decodes the bytes as a RIFL capture.
func Decode(r io.Reader) (*File, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read capture: %w", err)
	}
	return DecodeBytes(data)
}

// DecodeBytes decodes one complete RIFL capture from data: the 20-byte
// header, then size-prefixed buffers of varint-encoded (pulse, duration)
// pairs until the end of input. Pairs are appended strictly in stream
// order; nothing is reordered, filtered or deduplicated.
//
// The decode fails fast on the first structural malformation with one of
// the package's sentinel errors wrapped in positional context.
func DecodeBytes(data []byte) (*File, error) {
	header, err := ParseHeader(data)
	if err != nil {
		return nil, err
	}

	f := &File{Header: header}

	pos := HeaderSize
	for pos < len(data) {
		if len(data)-pos < 4 {
			return nil, fmt.Errorf("%w: buffer size prefix needs 4 bytes, %d left at offset %d", ErrTruncated, len(data)-pos, pos)
		}
		size := int(binary.LittleEndian.Uint32(data[pos:]))
		pos += 4

		if size > int(header.MaxBufferSize) {
			return nil, fmt.Errorf("%w: %d > %d at offset %d", ErrBufferSize, size, header.MaxBufferSize, pos-4)
		}
		if len(data)-pos < size {
			return nil, fmt.Errorf("%w: buffer of %d bytes declared at offset %d, only %d left", ErrTruncated, size, pos-4, len(data)-pos)
		}

		if err := f.decodeBuffer(data[pos : pos+size]); err != nil {
			return nil, err
		}
		pos += size
	}

	return f, nil
}

// decodeBuffer decodes the varint pairs of one buffer body and appends them
// to the file.
func (f *File) decodeBuffer(buf []byte) error {
	pos := 0
	for pos < len(buf) {
		pulse, n, err := readUvarint(buf, pos)
		if err != nil {
			return err
		}
		pos += n

		if pos >= len(buf) {
			return fmt.Errorf("%w: pulse %d at pair %d has no duration", ErrMisaligned, pulse, len(f.pairs))
		}

		duration, n, err := readUvarint(buf, pos)
		if err != nil {
			return err
		}
		pos += n

		if pulse > math.MaxUint32 || duration > math.MaxUint32 {
			return fmt.Errorf("%w: pair %d value overflows 32 bits (pulse %d, duration %d)", ErrMalformedPair, len(f.pairs), pulse, duration)
		}
		if duration == 0 {
			return fmt.Errorf("%w: pair %d has zero duration", ErrMalformedPair, len(f.pairs))
		}

		f.pairs = append(f.pairs, pad.Pair{Pulse: uint32(pulse), Duration: uint32(duration)})
	}
	return nil
}

// Pairs returns the decoded pulse and duration pairs in stream order. The
// returned slice is the File's backing storage and must not be modified.
func (f *File) Pairs() []pad.Pair {
	return f.pairs
}

// Signal reconstructs the dense binary signal from the file's pairs. The
// signal is derived on every call, not cached.
func (f *File) Signal() (pad.Signal, error) {
	return pad.ToSignal(f.pairs)
}

// Encode writes the file in RIFL container format: the header, then the
// varint-encoded pairs split into buffers of at most Header.MaxBufferSize
// payload bytes, each with its 4-byte size prefix. A pair is never split
// across two buffers; a pair whose encoding alone exceeds the buffer limit
// fails with ErrBufferSize, since DecodeBytes would reject the result.
func (f *File) Encode(w io.Writer) error {
	if err := f.Header.Validate(); err != nil {
		return err
	}

	if _, err := w.Write(f.Header.AppendBinary(make([]byte, 0, HeaderSize))); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	writeBuffer := func(body []byte) error {
		var prefix [4]byte
		binary.LittleEndian.PutUint32(prefix[:], uint32(len(body)))
		if _, err := w.Write(prefix[:]); err != nil {
			return fmt.Errorf("failed to write buffer size: %w", err)
		}
		if _, err := w.Write(body); err != nil {
			return fmt.Errorf("failed to write buffer: %w", err)
		}
		return nil
	}

	body := make([]byte, 0, f.Header.MaxBufferSize)
	for i, p := range f.pairs {
		var encoded []byte
		encoded = appendUvarint(encoded, uint64(p.Pulse))
		encoded = appendUvarint(encoded, uint64(p.Duration))

		if len(encoded) > int(f.Header.MaxBufferSize) {
			return fmt.Errorf("%w: pair %d needs %d bytes, buffer limit is %d", ErrBufferSize, i, len(encoded), f.Header.MaxBufferSize)
		}
		if len(body)+len(encoded) > int(f.Header.MaxBufferSize) {
			if err := writeBuffer(body); err != nil {
				return err
			}
			body = body[:0]
		}
		body = append(body, encoded...)
	}

	return writeBuffer(body)
}

// Save encodes the file to path in RIFL container format.
func (f *File) Save(path string) error {
	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create capture file: %w", err)
	}
	if err := f.Encode(out); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
