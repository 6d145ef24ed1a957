// Package field defines the wire type-tag byte space of the qbin format.
//
// Every encoded value starts with exactly one tag byte identifying the shape
// of the payload that follows. Tags are globally unique and stay below 0x80:
// for the biased families (see Type.Biased), little-endian encoding is
// signaled in-band by setting bit 7 of the tag byte instead of using a
// separate header. Quantity and compound tags never carry the bias; their
// payload byte order is whatever the caller selected.
package field

import "fmt"

// Type is a single-byte wire tag identifying the shape of an encoded payload.
type Type uint8

// LittleEndianBias is the in-band little-endian marker: biased families add
// it to their tag byte when encoding little-endian.
const LittleEndianBias Type = 0x80

const (
	// Fixed-size primitive scalars.
	Bool    Type = 0x01 // 1-byte boolean (0x00 or 0x01)
	Int8    Type = 0x02 // signed 8-bit integer
	Int16   Type = 0x03 // signed 16-bit integer
	Int32   Type = 0x04 // signed 32-bit integer
	Int64   Type = 0x05 // signed 64-bit integer
	Float32 Type = 0x06 // IEEE 754 single-precision value
	Float64 Type = 0x07 // IEEE 754 double-precision value
	Char    Type = 0x08 // single UTF-16 code unit (2 bytes)

	// Primitive arrays: 4-byte length, then raw elements.
	BoolArray    Type = 0x11
	Int8Array    Type = 0x12
	Int16Array   Type = 0x13
	Int32Array   Type = 0x14
	Int64Array   Type = 0x15
	Float32Array Type = 0x16
	Float64Array Type = 0x17
	CharArray    Type = 0x18

	// Primitive matrices: 4-byte height, 4-byte width, then row-major elements.
	BoolMatrix    Type = 0x21
	Int8Matrix    Type = 0x22
	Int16Matrix   Type = 0x23
	Int32Matrix   Type = 0x24
	Int64Matrix   Type = 0x25
	Float32Matrix Type = 0x26
	Float64Matrix Type = 0x27
	CharMatrix    Type = 0x28

	// Strings: 4-byte byte count (UTF-8) or code-unit count (UTF-16), then payload.
	StringUTF8        Type = 0x31
	StringUTF16       Type = 0x32
	StringUTF8Array   Type = 0x33
	StringUTF16Array  Type = 0x34
	StringUTF8Matrix  Type = 0x35
	StringUTF16Matrix Type = 0x36

	// Quantities: a 2-byte unit header precedes the SI-normalized payload.
	Quantity            Type = 0x41
	QuantityVector      Type = 0x42
	QuantityMatrix      Type = 0x43
	QuantityVectorArray Type = 0x44

	// Compound row sets: heterogeneous fixed-schema rows.
	Compound Type = 0x51
)

// Biased reports whether this tag family signals little-endian encoding
// in-band by adding LittleEndianBias to the tag byte. Primitive and string
// shapes are biased; quantity and compound shapes are not.
func (t Type) Biased() bool {
	return t.Unbiased() < Quantity
}

// Unbiased strips the little-endian bias bit, returning the canonical tag.
func (t Type) Unbiased() Type {
	return t &^ LittleEndianBias
}

// HasBias reports whether the bias bit is set on this tag byte.
func (t Type) HasBias() bool {
	return t&LittleEndianBias != 0
}

func (t Type) String() string {
	switch t.Unbiased() {
	case Bool:
		return "Bool"
	case Int8:
		return "Int8"
	case Int16:
		return "Int16"
	case Int32:
		return "Int32"
	case Int64:
		return "Int64"
	case Float32:
		return "Float32"
	case Float64:
		return "Float64"
	case Char:
		return "Char"
	case BoolArray:
		return "BoolArray"
	case Int8Array:
		return "Int8Array"
	case Int16Array:
		return "Int16Array"
	case Int32Array:
		return "Int32Array"
	case Int64Array:
		return "Int64Array"
	case Float32Array:
		return "Float32Array"
	case Float64Array:
		return "Float64Array"
	case CharArray:
		return "CharArray"
	case BoolMatrix:
		return "BoolMatrix"
	case Int8Matrix:
		return "Int8Matrix"
	case Int16Matrix:
		return "Int16Matrix"
	case Int32Matrix:
		return "Int32Matrix"
	case Int64Matrix:
		return "Int64Matrix"
	case Float32Matrix:
		return "Float32Matrix"
	case Float64Matrix:
		return "Float64Matrix"
	case CharMatrix:
		return "CharMatrix"
	case StringUTF8:
		return "StringUTF8"
	case StringUTF16:
		return "StringUTF16"
	case StringUTF8Array:
		return "StringUTF8Array"
	case StringUTF16Array:
		return "StringUTF16Array"
	case StringUTF8Matrix:
		return "StringUTF8Matrix"
	case StringUTF16Matrix:
		return "StringUTF16Matrix"
	case Quantity:
		return "Quantity"
	case QuantityVector:
		return "QuantityVector"
	case QuantityMatrix:
		return "QuantityMatrix"
	case QuantityVectorArray:
		return "QuantityVectorArray"
	case Compound:
		return "Compound"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", uint8(t))
	}
}
