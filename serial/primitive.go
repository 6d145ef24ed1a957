package serial

import (
	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
)

// Char is a single UTF-16 code unit, the wire "char" shape. Go's rune aliases
// int32, so chars need a distinct type to keep dispatch unambiguous; code
// points outside the Basic Multilingual Plane do not fit a Char and must be
// carried as strings.
type Char uint16

// elemCodec is the fixed-width element codec shared by the scalar, array,
// matrix and boxed serializers of one element type.
type elemCodec[T any] struct {
	width int
	put   func(engine endian.EndianEngine, buf []byte, offset int, v T)
	get   func(engine endian.EndianEngine, buf []byte, offset int) T
}

var boolCodec = elemCodec[bool]{
	width: 1,
	put: func(_ endian.EndianEngine, buf []byte, offset int, v bool) {
		if v {
			buf[offset] = 1
		} else {
			buf[offset] = 0
		}
	},
	get: func(_ endian.EndianEngine, buf []byte, offset int) bool {
		return buf[offset] != 0
	},
}

var int8Codec = elemCodec[int8]{
	width: 1,
	put: func(_ endian.EndianEngine, buf []byte, offset int, v int8) {
		buf[offset] = byte(v)
	},
	get: func(_ endian.EndianEngine, buf []byte, offset int) int8 {
		return int8(buf[offset])
	},
}

var int16Codec = elemCodec[int16]{width: 2, put: endian.PutInt16, get: endian.Int16At}
var int32Codec = elemCodec[int32]{width: 4, put: endian.PutInt32, get: endian.Int32At}
var int64Codec = elemCodec[int64]{width: 8, put: endian.PutInt64, get: endian.Int64At}
var float32Codec = elemCodec[float32]{width: 4, put: endian.PutFloat32, get: endian.Float32At}
var float64Codec = elemCodec[float64]{width: 8, put: endian.PutFloat64, get: endian.Float64At}

var charCodec = elemCodec[Char]{
	width: 2,
	put: func(engine endian.EndianEngine, buf []byte, offset int, v Char) {
		endian.PutUint16(engine, buf, offset, uint16(v))
	},
	get: func(engine endian.EndianEngine, buf []byte, offset int) Char {
		return Char(endian.Uint16At(engine, buf, offset))
	},
}

// primitiveSerializer encodes one fixed-size scalar as raw bytes in engine
// order, with no length prefix.
type primitiveSerializer[T any] struct {
	tag   field.Type
	codec elemCodec[T]
}

func (s primitiveSerializer[T]) Size(value any) (int, error) {
	if _, ok := value.(T); !ok {
		return 0, typeError(s, value)
	}

	return s.codec.width, nil
}

func (s primitiveSerializer[T]) Tag() field.Type { return s.tag }

func (s primitiveSerializer[T]) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.(T)
	if !ok {
		return typeError(s, value)
	}

	s.codec.put(engine, buf, ptr.Advance(s.codec.width), v)

	return nil
}

func (s primitiveSerializer[T]) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, s.codec.width, s.tag.String()); err != nil {
		return nil, err
	}

	return s.codec.get(engine, buf, ptr.Advance(s.codec.width)), nil
}

func (s primitiveSerializer[T]) Dimensions() int { return 0 }
func (s primitiveSerializer[T]) HasUnit() bool   { return false }

// The fixed-size primitive serializer family.
var (
	boolSerializer    = primitiveSerializer[bool]{field.Bool, boolCodec}
	int8Serializer    = primitiveSerializer[int8]{field.Int8, int8Codec}
	int16Serializer   = primitiveSerializer[int16]{field.Int16, int16Codec}
	int32Serializer   = primitiveSerializer[int32]{field.Int32, int32Codec}
	int64Serializer   = primitiveSerializer[int64]{field.Int64, int64Codec}
	float32Serializer = primitiveSerializer[float32]{field.Float32, float32Codec}
	float64Serializer = primitiveSerializer[float64]{field.Float64, float64Codec}
	charSerializer    = primitiveSerializer[Char]{field.Char, charCodec}
)
