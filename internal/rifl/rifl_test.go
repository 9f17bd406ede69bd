package rifl

import (
	"bytes"
	"encoding/binary"
	"errors"
	"path/filepath"
	"testing"

	"github.com/hnesk/flipper-raw-rfid/internal/pad"
)

var testHeader = Header{Version: 1, Frequency: 125000, DutyCycle: 0.5, MaxBufferSize: 2048}

// capture assembles raw container bytes from a header and buffer payloads.
func capture(h Header, buffers ...[]byte) []byte {
	data := h.AppendBinary(nil)
	for _, b := range buffers {
		data = binary.LittleEndian.AppendUint32(data, uint32(len(b)))
		data = append(data, b...)
	}
	return data
}

func TestDecodeBytes(t *testing.T) {
	// The varint test vector pairs up as 6 (pulse, duration) records.
	expected := []pad.Pair{
		{Pulse: 241, Duration: 425}, {Pulse: 302, Duration: 773}, {Pulse: 550, Duration: 763}, {Pulse: 315, Duration: 775}, {Pulse: 557, Duration: 569}, {Pulse: 4, Duration: 452},
	}

	file, err := DecodeBytes(capture(testHeader, varintBytes))
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}

	if file.Header != testHeader {
		t.Errorf("Expected header %+v, got %+v", testHeader, file.Header)
	}
	if !pairsEqual(file.Pairs(), expected) {
		t.Errorf("Expected pairs %v, got %v", expected, file.Pairs())
	}
}

func TestDecodeBytesMultipleBuffers(t *testing.T) {
	// Pairs split across two buffers keep their stream order.
	buffer1 := appendUvarint(appendUvarint(nil, 241), 425)
	buffer2 := appendUvarint(appendUvarint(nil, 302), 773)

	file, err := DecodeBytes(capture(testHeader, buffer1, buffer2))
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}

	expected := []pad.Pair{{Pulse: 241, Duration: 425}, {Pulse: 302, Duration: 773}}
	if !pairsEqual(file.Pairs(), expected) {
		t.Errorf("Expected pairs %v, got %v", expected, file.Pairs())
	}
}

func TestDecodeBytesHeaderOnly(t *testing.T) {
	file, err := DecodeBytes(capture(testHeader))
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if len(file.Pairs()) != 0 {
		t.Errorf("Expected no pairs, got %v", file.Pairs())
	}
}

func TestDecodeBytesDeterminism(t *testing.T) {
	data := capture(testHeader, varintBytes)

	first, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	second, err := DecodeBytes(data)
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}

	if first.Header != second.Header || !pairsEqual(first.Pairs(), second.Pairs()) {
		t.Errorf("Two decodes of the same bytes differ: %+v vs %+v", first, second)
	}
}

func TestDecodeBytesErrors(t *testing.T) {
	pair := func(pulse, duration uint64) []byte {
		return appendUvarint(appendUvarint(nil, pulse), duration)
	}

	smallBufferHeader := testHeader
	smallBufferHeader.MaxBufferSize = 3

	tests := []struct {
		name        string
		data        []byte
		expectedErr error
	}{
		{
			name:        "truncated header",
			data:        testHeader.AppendBinary(nil)[:10],
			expectedErr: ErrTruncated,
		},
		{
			name:        "truncated buffer size prefix",
			data:        append(capture(testHeader, pair(3, 5)), 0x01, 0x00),
			expectedErr: ErrTruncated,
		},
		{
			name:        "buffer shorter than declared",
			data:        capture(testHeader, pair(3, 5))[:HeaderSize+5],
			expectedErr: ErrTruncated,
		},
		{
			name:        "buffer size exceeds maximum",
			data:        capture(smallBufferHeader, pair(241, 425)),
			expectedErr: ErrBufferSize,
		},
		{
			name:        "unterminated varint",
			data:        capture(testHeader, []byte{0x83, 0x85}),
			expectedErr: ErrTruncated,
		},
		{
			name:        "pulse without duration",
			data:        capture(testHeader, appendUvarint(nil, 241)),
			expectedErr: ErrMisaligned,
		},
		{
			name:        "odd value count across pairs",
			data:        capture(testHeader, append(pair(3, 5), appendUvarint(nil, 7)...)),
			expectedErr: ErrMisaligned,
		},
		{
			name:        "zero duration pair",
			data:        capture(testHeader, pair(3, 0)),
			expectedErr: ErrMalformedPair,
		},
		{
			name:        "value overflows 32 bits",
			data:        capture(testHeader, pair(1<<33, 5)),
			expectedErr: ErrMalformedPair,
		},
		{
			name: "varint overflows 64 bits",
			// A pulse of 1<<70 followed by duration 5 must fail, not decode
			// to a truncated small value.
			data:        capture(testHeader, append(append(bytes.Repeat([]byte{0x80}, 10), 0x01), 0x05)),
			expectedErr: ErrMalformedPair,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeBytes(tt.data)
			if !errors.Is(err, tt.expectedErr) {
				t.Errorf("Expected %v, got %v", tt.expectedErr, err)
			}
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	pairs := []pad.Pair{
		{Pulse: 241, Duration: 425}, {Pulse: 302, Duration: 773}, {Pulse: 550, Duration: 763}, {Pulse: 315, Duration: 775}, {Pulse: 557, Duration: 569}, {Pulse: 4, Duration: 452},
	}

	file, err := New(testHeader, pairs)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	if err := file.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	decoded, err := Decode(&buf)
	if err != nil {
		t.Fatalf("Decode failed: %v", err)
	}
	if decoded.Header != file.Header {
		t.Errorf("Expected header %+v, got %+v", file.Header, decoded.Header)
	}
	if !pairsEqual(decoded.Pairs(), pairs) {
		t.Errorf("Expected pairs %v, got %v", pairs, decoded.Pairs())
	}
}

func TestEncodeSplitsBuffers(t *testing.T) {
	// A 6 byte buffer limit forces one 4 byte pair per buffer.
	header := testHeader
	header.MaxBufferSize = 6

	pairs := []pad.Pair{{Pulse: 241, Duration: 425}, {Pulse: 302, Duration: 773}, {Pulse: 550, Duration: 763}}
	file, err := New(header, pairs)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	if err := file.Encode(&buf); err != nil {
		t.Fatalf("Encode failed: %v", err)
	}

	// Each pair encodes to 4 bytes, so only one fits per buffer: expect
	// three 4 byte buffers, each with its own size prefix.
	expectedSize := HeaderSize + 3*(4+4)
	if buf.Len() != expectedSize {
		t.Errorf("Expected %d encoded bytes, got %d", expectedSize, buf.Len())
	}

	decoded, err := DecodeBytes(buf.Bytes())
	if err != nil {
		t.Fatalf("DecodeBytes failed: %v", err)
	}
	if !pairsEqual(decoded.Pairs(), pairs) {
		t.Errorf("Expected pairs %v, got %v", pairs, decoded.Pairs())
	}
}

func TestEncodeRejectsOversizedPair(t *testing.T) {
	// {241, 425} encodes to 4 bytes, one more than the buffer limit.
	header := testHeader
	header.MaxBufferSize = 3

	file, err := New(header, []pad.Pair{{Pulse: 241, Duration: 425}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	var buf bytes.Buffer
	if err := file.Encode(&buf); !errors.Is(err, ErrBufferSize) {
		t.Errorf("Expected ErrBufferSize, got %v", err)
	}
}

func TestSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dummy.ask.raw")

	pairs := []pad.Pair{{Pulse: 241, Duration: 425}, {Pulse: 302, Duration: 773}}
	file, err := New(testHeader, pairs)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	if err := file.Save(path); err != nil {
		t.Fatalf("Save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if loaded.Header != file.Header {
		t.Errorf("Expected header %+v, got %+v", file.Header, loaded.Header)
	}
	if !pairsEqual(loaded.Pairs(), pairs) {
		t.Errorf("Expected pairs %v, got %v", pairs, loaded.Pairs())
	}
}

func TestFileSignal(t *testing.T) {
	file, err := New(testHeader, []pad.Pair{{Pulse: 3, Duration: 5}, {Pulse: 2, Duration: 4}})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	signal, err := file.Signal()
	if err != nil {
		t.Fatalf("Signal failed: %v", err)
	}

	expected := pad.Signal{1, 1, 1, 0, 0, 1, 1, 0, 0}
	if len(signal) != len(expected) {
		t.Fatalf("Expected %d samples, got %d", len(expected), len(signal))
	}
	for i := range expected {
		if signal[i] != expected[i] {
			t.Fatalf("Sample %d: expected %d, got %d", i, expected[i], signal[i])
		}
	}
}

func pairsEqual(a, b []pad.Pair) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
