package rifl

import "fmt"

// Varint coding as implemented by the Flipper firmware's toolbox/varint.c:
// 7 value bits per byte, least significant group first, bit 7 set on every
// byte except the last.

// readUvarint decodes one varint from buf starting at pos. It returns the
// value and the number of bytes consumed. A buffer that ends before a
// terminating byte (bit 7 clear) fails with ErrTruncated, and a varint
// carrying significant bits past position 63 fails with ErrMalformedPair
// instead of silently dropping them.
func readUvarint(buf []byte, pos int) (uint64, int, error) {
	var value uint64
	for i := 0; pos+i < len(buf); i++ {
		b := buf[pos+i]
		// Byte 10 holds bit 63 only; anything above, or a continuation,
		// does not fit in 64 bits.
		if i == 9 && b > 1 {
			return 0, i + 1, fmt.Errorf("%w: varint at offset %d overflows 64 bits", ErrMalformedPair, pos)
		}
		value |= uint64(b&0x7F) << (7 * i)
		if b&0x80 == 0 {
			return value, i + 1, nil
		}
	}
	return 0, len(buf) - pos, fmt.Errorf("%w: unterminated varint at offset %d", ErrTruncated, pos)
}

// appendUvarint appends the varint encoding of v to b.
func appendUvarint(b []byte, v uint64) []byte {
	for v >= 0x80 {
		b = append(b, byte(v&0x7F)|0x80)
		v >>= 7
	}
	return append(b, byte(v))
}
