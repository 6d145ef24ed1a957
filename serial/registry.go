package serial

import (
	"fmt"

	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
	"github.com/arloliu/qbin/unit"
)

// encodeOptions holds per-call encode configuration.
type encodeOptions struct {
	utf16 bool
}

// EncodeOption configures one Encode call.
type EncodeOption func(*encodeOptions)

// WithUTF16 selects the UTF-16 wire form for string, []string and [][]string
// inputs. The default is UTF-8.
func WithUTF16() EncodeOption {
	return func(o *encodeOptions) { o.utf16 = true }
}

// serializerFor selects a serializer by the runtime type of value.
// Exact type matches come first; string shapes are keyed by the caller's
// UTF-8-vs-UTF-16 choice; boxed shapes dispatch on their first element.
// No match is a hard failure.
func serializerFor(value any, opts encodeOptions) (Serializer, error) {
	switch v := value.(type) {
	case bool:
		return boolSerializer, nil
	case int8:
		return int8Serializer, nil
	case int16:
		return int16Serializer, nil
	case int32:
		return int32Serializer, nil
	case int64:
		return int64Serializer, nil
	case float32:
		return float32Serializer, nil
	case float64:
		return float64Serializer, nil
	case Char:
		return charSerializer, nil

	case []bool:
		return boolArraySerializer, nil
	case []int8:
		return int8ArraySerializer, nil
	case []int16:
		return int16ArraySerializer, nil
	case []int32:
		return int32ArraySerializer, nil
	case []int64:
		return int64ArraySerializer, nil
	case []float32:
		return float32ArraySerializer, nil
	case []float64:
		return float64ArraySerializer, nil
	case []Char:
		return charArraySerializer, nil

	case [][]bool:
		return boolMatrixSerializer, nil
	case [][]int8:
		return int8MatrixSerializer, nil
	case [][]int16:
		return int16MatrixSerializer, nil
	case [][]int32:
		return int32MatrixSerializer, nil
	case [][]int64:
		return int64MatrixSerializer, nil
	case [][]float32:
		return float32MatrixSerializer, nil
	case [][]float64:
		return float64MatrixSerializer, nil
	case [][]Char:
		return charMatrixSerializer, nil

	case string:
		if opts.utf16 {
			return stringUTF16Serializer, nil
		}

		return stringUTF8Serializer, nil
	case []string:
		if opts.utf16 {
			return stringUTF16ArraySerializer, nil
		}

		return stringUTF8ArraySerializer, nil
	case [][]string:
		if opts.utf16 {
			return stringUTF16MatrixSerializer, nil
		}

		return stringUTF8MatrixSerializer, nil

	case unit.Scalar:
		return quantitySerializer, nil
	case unit.Vector:
		return quantityVecSerializer, nil
	case unit.Matrix:
		return quantityMatSerializer, nil
	case []unit.Vector:
		return quantityVectorArraySerializer, nil

	case []any:
		return boxedArraySerializerFor(v)
	case [][]any:
		return boxedMatrixSerializerFor(v)

	case Compound:
		return compoundSerializer{opts: opts, lookup: valueLookup}, nil

	default:
		return nil, fmt.Errorf("%w: %T", ErrUnhandledType, value)
	}
}

// boxedArraySerializerFor dispatches a []any on its first element's type.
func boxedArraySerializerFor(v []any) (Serializer, error) {
	if len(v) == 0 {
		return nil, fmt.Errorf("%w: cannot infer element type of empty []any", ErrUnhandledType)
	}

	switch v[0].(type) {
	case bool:
		return boxedBoolArraySerializer, nil
	case int8:
		return boxedInt8ArraySerializer, nil
	case int16:
		return boxedInt16ArraySerializer, nil
	case int32:
		return boxedInt32ArraySerializer, nil
	case int64:
		return boxedInt64ArraySerializer, nil
	case float32:
		return boxedFloat32ArraySerializer, nil
	case float64:
		return boxedFloat64ArraySerializer, nil
	case Char:
		return boxedCharArraySerializer, nil
	default:
		return nil, fmt.Errorf("%w: []any with %T elements", ErrUnhandledType, v[0])
	}
}

// boxedMatrixSerializerFor dispatches a [][]any on its first element's type.
func boxedMatrixSerializerFor(v [][]any) (Serializer, error) {
	if len(v) == 0 || len(v[0]) == 0 {
		return nil, fmt.Errorf("%w: cannot infer element type of empty [][]any", ErrUnhandledType)
	}

	switch v[0][0].(type) {
	case bool:
		return boxedBoolMatrixSerializer, nil
	case int8:
		return boxedInt8MatrixSerializer, nil
	case int16:
		return boxedInt16MatrixSerializer, nil
	case int32:
		return boxedInt32MatrixSerializer, nil
	case int64:
		return boxedInt64MatrixSerializer, nil
	case float32:
		return boxedFloat32MatrixSerializer, nil
	case float64:
		return boxedFloat64MatrixSerializer, nil
	case Char:
		return boxedCharMatrixSerializer, nil
	default:
		return nil, fmt.Errorf("%w: [][]any with %T elements", ErrUnhandledType, v[0][0])
	}
}

// buildTable assembles one tag→decoder table. The two tables share the tag
// space and differ only in how ambiguous shapes are reconstructed: the value
// table rebuilds typed slices, the object table rebuilds []any / [][]any.
// Duplicate tag registration is a programming error and panics at init.
func buildTable(objectPreserving bool) map[field.Type]Serializer {
	table := make(map[field.Type]Serializer)
	add := func(s Serializer) {
		if _, dup := table[s.Tag()]; dup {
			panic(fmt.Sprintf("serial: duplicate decoder for tag %s", s.Tag()))
		}
		table[s.Tag()] = s
	}

	add(boolSerializer)
	add(int8Serializer)
	add(int16Serializer)
	add(int32Serializer)
	add(int64Serializer)
	add(float32Serializer)
	add(float64Serializer)
	add(charSerializer)

	if objectPreserving {
		add(boxedBoolArraySerializer)
		add(boxedInt8ArraySerializer)
		add(boxedInt16ArraySerializer)
		add(boxedInt32ArraySerializer)
		add(boxedInt64ArraySerializer)
		add(boxedFloat32ArraySerializer)
		add(boxedFloat64ArraySerializer)
		add(boxedCharArraySerializer)

		add(boxedBoolMatrixSerializer)
		add(boxedInt8MatrixSerializer)
		add(boxedInt16MatrixSerializer)
		add(boxedInt32MatrixSerializer)
		add(boxedInt64MatrixSerializer)
		add(boxedFloat32MatrixSerializer)
		add(boxedFloat64MatrixSerializer)
		add(boxedCharMatrixSerializer)
	} else {
		add(boolArraySerializer)
		add(int8ArraySerializer)
		add(int16ArraySerializer)
		add(int32ArraySerializer)
		add(int64ArraySerializer)
		add(float32ArraySerializer)
		add(float64ArraySerializer)
		add(charArraySerializer)

		add(boolMatrixSerializer)
		add(int8MatrixSerializer)
		add(int16MatrixSerializer)
		add(int32MatrixSerializer)
		add(int64MatrixSerializer)
		add(float32MatrixSerializer)
		add(float64MatrixSerializer)
		add(charMatrixSerializer)
	}

	add(stringUTF8Serializer)
	add(stringUTF16Serializer)
	add(stringUTF8ArraySerializer)
	add(stringUTF16ArraySerializer)
	add(stringUTF8MatrixSerializer)
	add(stringUTF16MatrixSerializer)

	add(quantitySerializer)
	add(quantityVecSerializer)
	add(quantityMatSerializer)
	add(quantityVectorArraySerializer)

	add(compoundSerializer{lookup: func(t field.Type) Serializer { return table[t] }})

	return table
}

// The decode tables. Populated once at package initialization and read-only
// afterwards, so concurrent decoders never synchronize.
var (
	valueTable  = buildTable(false)
	objectTable = buildTable(true)
)

// valueLookup resolves a tag in the primitive-preserving table. Encode-side
// compound serializers use it so their contract methods stay total.
func valueLookup(t field.Type) Serializer { return valueTable[t] }

// Encode serializes value into a freshly allocated, exactly sized buffer:
// one tag byte followed by the payload in the engine's byte order.
//
// The final cursor position is asserted against the pre-computed size; any
// discrepancy is an ErrSizeMismatch, which indicates a serializer bug and is
// never silently tolerated.
func Encode(engine endian.EndianEngine, value any, opts ...EncodeOption) ([]byte, error) {
	var options encodeOptions
	for _, opt := range opts {
		opt(&options)
	}

	s, err := serializerFor(value, options)
	if err != nil {
		return nil, err
	}

	total, err := SizeWithTag(s, value)
	if err != nil {
		return nil, err
	}

	buf := make([]byte, total)
	ptr := NewPointer()
	if err := SerializeWithTag(s, value, buf, ptr, engine); err != nil {
		return nil, err
	}

	if ptr.Get() != total {
		return nil, fmt.Errorf("%w: %s wrote %d bytes, size reported %d", ErrSizeMismatch, s.Tag(), ptr.Get(), total)
	}

	return buf, nil
}

// Decode deserializes one value from data, reconstructing typed slices for
// array and matrix shapes ([]int32, [][]float64, ...).
func Decode(engine endian.EndianEngine, data []byte) (any, error) {
	return decode(engine, data, valueTable)
}

// DecodeObjects deserializes one value from data, reconstructing boxed
// shapes ([]any, [][]any) for array and matrix tags. Scalar, string,
// quantity and compound shapes decode identically to Decode.
func DecodeObjects(engine endian.EndianEngine, data []byte) (any, error) {
	return decode(engine, data, objectTable)
}

func decode(engine endian.EndianEngine, data []byte, table map[field.Type]Serializer) (any, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: empty payload", ErrUnknownTag)
	}

	ptr := NewPointer()
	raw := field.Type(data[ptr.Advance(1)])

	// Bit 7 is the in-band little-endian hint of the biased families; it
	// overrides the caller's engine for this payload. Families that never
	// carry the hint reject it as an unknown tag.
	tag := raw.Unbiased()
	if raw.HasBias() {
		if !tag.Biased() {
			return nil, fmt.Errorf("%w: 0x%02X at offset 0", ErrUnknownTag, byte(raw))
		}
		engine = endian.GetLittleEndianEngine()
	}

	s, ok := table[tag]
	if !ok {
		return nil, fmt.Errorf("%w: 0x%02X at offset 0", ErrUnknownTag, byte(raw))
	}

	return s.Deserialize(data, ptr, engine)
}
