package endian

import (
	"fmt"
	"math"
	"unicode/utf16"
)

// Offset-based primitive codecs.
//
// Each PutX writes exactly sizeof(X) bytes at the given offset in the engine's
// byte order; each XAt reads them back. Float values round-trip bit-for-bit,
// including NaN payloads and negative zero: the bits are moved verbatim via
// math.Float64bits/Float32bits, never renormalized.

// PutUint16 writes a 16-bit value at offset in engine byte order.
func PutUint16(engine EndianEngine, buf []byte, offset int, v uint16) {
	engine.PutUint16(buf[offset:offset+2], v)
}

// Uint16At reads a 16-bit value at offset in engine byte order.
func Uint16At(engine EndianEngine, buf []byte, offset int) uint16 {
	return engine.Uint16(buf[offset : offset+2])
}

// PutUint32 writes a 32-bit value at offset in engine byte order.
func PutUint32(engine EndianEngine, buf []byte, offset int, v uint32) {
	engine.PutUint32(buf[offset:offset+4], v)
}

// Uint32At reads a 32-bit value at offset in engine byte order.
func Uint32At(engine EndianEngine, buf []byte, offset int) uint32 {
	return engine.Uint32(buf[offset : offset+4])
}

// PutUint64 writes a 64-bit value at offset in engine byte order.
func PutUint64(engine EndianEngine, buf []byte, offset int, v uint64) {
	engine.PutUint64(buf[offset:offset+8], v)
}

// Uint64At reads a 64-bit value at offset in engine byte order.
func Uint64At(engine EndianEngine, buf []byte, offset int) uint64 {
	return engine.Uint64(buf[offset : offset+8])
}

// PutInt16 writes a signed 16-bit value at offset in engine byte order.
func PutInt16(engine EndianEngine, buf []byte, offset int, v int16) {
	engine.PutUint16(buf[offset:offset+2], uint16(v))
}

// Int16At reads a signed 16-bit value at offset in engine byte order.
func Int16At(engine EndianEngine, buf []byte, offset int) int16 {
	return int16(engine.Uint16(buf[offset : offset+2]))
}

// PutInt32 writes a signed 32-bit value at offset in engine byte order.
func PutInt32(engine EndianEngine, buf []byte, offset int, v int32) {
	engine.PutUint32(buf[offset:offset+4], uint32(v))
}

// Int32At reads a signed 32-bit value at offset in engine byte order.
func Int32At(engine EndianEngine, buf []byte, offset int) int32 {
	return int32(engine.Uint32(buf[offset : offset+4]))
}

// PutInt64 writes a signed 64-bit value at offset in engine byte order.
func PutInt64(engine EndianEngine, buf []byte, offset int, v int64) {
	engine.PutUint64(buf[offset:offset+8], uint64(v))
}

// Int64At reads a signed 64-bit value at offset in engine byte order.
func Int64At(engine EndianEngine, buf []byte, offset int) int64 {
	return int64(engine.Uint64(buf[offset : offset+8]))
}

// PutFloat32 writes the IEEE 754 bit pattern of v at offset in engine byte order.
func PutFloat32(engine EndianEngine, buf []byte, offset int, v float32) {
	engine.PutUint32(buf[offset:offset+4], math.Float32bits(v))
}

// Float32At reads an IEEE 754 single-precision value at offset, bit-exact.
func Float32At(engine EndianEngine, buf []byte, offset int) float32 {
	return math.Float32frombits(engine.Uint32(buf[offset : offset+4]))
}

// PutFloat64 writes the IEEE 754 bit pattern of v at offset in engine byte order.
func PutFloat64(engine EndianEngine, buf []byte, offset int, v float64) {
	engine.PutUint64(buf[offset:offset+8], math.Float64bits(v))
}

// Float64At reads an IEEE 754 double-precision value at offset, bit-exact.
func Float64At(engine EndianEngine, buf []byte, offset int) float64 {
	return math.Float64frombits(engine.Uint64(buf[offset : offset+8]))
}

// String codecs.
//
// Strings are length-prefixed, never terminated. The 4-byte prefix counts
// UTF-8 bytes for the UTF-8 form and UTF-16 code units for the UTF-16 form;
// code points outside the Basic Multilingual Plane occupy two code units.

// SizeStringUTF8 returns the encoded size of s in the UTF-8 form:
// a 4-byte length prefix plus the raw UTF-8 bytes.
func SizeStringUTF8(s string) int {
	return 4 + len(s)
}

// SizeStringUTF16 returns the encoded size of s in the UTF-16 form:
// a 4-byte length prefix plus 2 bytes per UTF-16 code unit.
func SizeStringUTF16(s string) int {
	return 4 + 2*len(utf16.Encode([]rune(s)))
}

// PutStringUTF8 writes a 4-byte byte-count prefix followed by the raw UTF-8
// bytes of s at offset. It returns the number of bytes written.
func PutStringUTF8(engine EndianEngine, buf []byte, offset int, s string) int {
	PutUint32(engine, buf, offset, uint32(len(s))) //nolint:gosec
	copy(buf[offset+4:], s)

	return 4 + len(s)
}

// StringUTF8At reads a string written by PutStringUTF8 at offset.
// It returns the decoded string and the number of bytes consumed.
func StringUTF8At(engine EndianEngine, buf []byte, offset int) (string, int, error) {
	if offset+4 > len(buf) {
		return "", 0, fmt.Errorf("insufficient data for UTF-8 length prefix at offset %d", offset)
	}

	n := int(Uint32At(engine, buf, offset))
	if offset+4+n > len(buf) {
		return "", 0, fmt.Errorf("UTF-8 string of %d bytes exceeds buffer at offset %d", n, offset)
	}

	return string(buf[offset+4 : offset+4+n]), 4 + n, nil
}

// PutStringUTF16 writes a 4-byte code-unit-count prefix followed by 2 bytes
// per UTF-16 code unit of s, each in engine byte order. Surrogate pairs are
// written as two consecutive code units. It returns the number of bytes written.
func PutStringUTF16(engine EndianEngine, buf []byte, offset int, s string) int {
	units := utf16.Encode([]rune(s))
	PutUint32(engine, buf, offset, uint32(len(units))) //nolint:gosec

	pos := offset + 4
	for _, u := range units {
		PutUint16(engine, buf, pos, u)
		pos += 2
	}

	return pos - offset
}

// StringUTF16At reads a string written by PutStringUTF16 at offset.
// It returns the decoded string and the number of bytes consumed.
func StringUTF16At(engine EndianEngine, buf []byte, offset int) (string, int, error) {
	if offset+4 > len(buf) {
		return "", 0, fmt.Errorf("insufficient data for UTF-16 length prefix at offset %d", offset)
	}

	n := int(Uint32At(engine, buf, offset))
	if offset+4+2*n > len(buf) {
		return "", 0, fmt.Errorf("UTF-16 string of %d code units exceeds buffer at offset %d", n, offset)
	}

	units := make([]uint16, n)
	pos := offset + 4
	for i := range units {
		units[i] = Uint16At(engine, buf, pos)
		pos += 2
	}

	return string(utf16.Decode(units)), pos - offset, nil
}
