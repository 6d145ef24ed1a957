package serial

import (
	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
)

// Serializer is the per-shape codec contract. Implementations are stateless
// and bound to exactly one wire tag; the same instance serves every call
// concurrently.
//
// Invariants every implementation upholds:
//   - Size(v) equals the number of bytes Serialize(v, ...) writes, for every
//     valid v.
//   - Deserialize(Serialize(v)) reconstructs a value equal to v (bit-exact
//     for floating-point payloads).
//   - Shape validation happens in Size, before any byte is written; a
//     serializer never partially writes and returns success.
type Serializer interface {
	// Size returns the exact payload byte count, excluding the leading tag
	// byte. It fails on shape errors (wrong dynamic type, jagged or empty
	// matrix) so that no buffer is allocated for unserializable input.
	Size(value any) (int, error)

	// Tag returns the constant wire tag of this shape, without bias.
	Tag() field.Type

	// Serialize writes the payload only, advancing ptr by exactly Size(value).
	Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error

	// Deserialize is the inverse of Serialize. It assumes ptr is already past
	// the tag byte and advances it by the bytes consumed.
	Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error)

	// Dimensions returns 0 for scalars, 1 for arrays/vectors, 2 for matrices.
	// Used by introspection, not by the encode/decode path itself.
	Dimensions() int

	// HasUnit reports whether this shape carries a 2-byte unit header.
	// True only for quantity serializers.
	HasUnit() bool
}

// SizeWithTag returns 1 + s.Size(value): the full encoded length including
// the leading tag byte.
func SizeWithTag(s Serializer, value any) (int, error) {
	n, err := s.Size(value)
	if err != nil {
		return 0, err
	}

	return 1 + n, nil
}

// SerializeWithTag writes the tag byte then delegates to s.Serialize.
//
// For biased families the little-endian engine is signaled in-band: the tag
// byte is written with field.LittleEndianBias added instead of using a
// separate header. Quantity and compound tags are always written bare.
func SerializeWithTag(s Serializer, value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	tag := s.Tag()
	if tag.Biased() && endian.IsLittleEndian(engine) {
		tag |= field.LittleEndianBias
	}

	buf[ptr.Advance(1)] = byte(tag)

	return s.Serialize(value, buf, ptr, engine)
}
