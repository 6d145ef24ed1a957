package serial

import (
	"fmt"

	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
)

// Boxed shapes carry their elements as any values ([]any, [][]any of one
// element type). The wire layout and tag are identical to the typed variants;
// only the Go-side representation differs. The object-preserving decode table
// uses these serializers to reconstruct []any / [][]any, and the encode
// dispatcher selects them for homogeneous []any / [][]any input.

// boxedArraySerializer encodes []any whose elements are all of type T with
// the same layout and tag as arraySerializer[T].
type boxedArraySerializer[T any] struct {
	tag   field.Type
	codec elemCodec[T]
}

// unbox asserts that every element of v is a T.
func (s boxedArraySerializer[T]) unbox(v []any) ([]T, error) {
	elems := make([]T, len(v))
	for i, raw := range v {
		elem, ok := raw.(T)
		if !ok {
			return nil, fmt.Errorf("%w: %s boxed element %d is %T", ErrUnhandledType, s.tag, i, raw)
		}
		elems[i] = elem
	}

	return elems, nil
}

func (s boxedArraySerializer[T]) Size(value any) (int, error) {
	v, ok := value.([]any)
	if !ok {
		return 0, typeError(s, value)
	}

	if _, err := s.unbox(v); err != nil {
		return 0, err
	}

	return 4 + len(v)*s.codec.width, nil
}

func (s boxedArraySerializer[T]) Tag() field.Type { return s.tag }

func (s boxedArraySerializer[T]) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.([]any)
	if !ok {
		return typeError(s, value)
	}

	elems, err := s.unbox(v)
	if err != nil {
		return err
	}

	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(len(elems))) //nolint:gosec
	for _, elem := range elems {
		s.codec.put(engine, buf, ptr.Advance(s.codec.width), elem)
	}

	return nil
}

func (s boxedArraySerializer[T]) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 4, s.tag.String()+" length"); err != nil {
		return nil, err
	}

	count := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	if err := needCount(buf, ptr, count, s.codec.width, s.tag.String()+" elements"); err != nil {
		return nil, err
	}

	v := make([]any, count)
	for i := range v {
		v[i] = s.codec.get(engine, buf, ptr.Advance(s.codec.width))
	}

	return v, nil
}

func (s boxedArraySerializer[T]) Dimensions() int { return 1 }
func (s boxedArraySerializer[T]) HasUnit() bool   { return false }

// boxedMatrixSerializer encodes [][]any whose elements are all of type T with
// the same layout and tag as matrixSerializer[T].
type boxedMatrixSerializer[T any] struct {
	tag   field.Type
	codec elemCodec[T]
}

func (s boxedMatrixSerializer[T]) checkMatrix(v [][]any) (int, int, error) {
	if len(v) == 0 || len(v[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: %s requires at least one row and one column", ErrEmptyShape, s.tag)
	}

	cols := len(v[0])
	for i, row := range v {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: %s row %d has %d columns, expected %d", ErrJagged, s.tag, i, len(row), cols)
		}
		for j, raw := range row {
			if _, ok := raw.(T); !ok {
				return 0, 0, fmt.Errorf("%w: %s boxed element (%d,%d) is %T", ErrUnhandledType, s.tag, i, j, raw)
			}
		}
	}

	return len(v), cols, nil
}

func (s boxedMatrixSerializer[T]) Size(value any) (int, error) {
	v, ok := value.([][]any)
	if !ok {
		return 0, typeError(s, value)
	}

	rows, cols, err := s.checkMatrix(v)
	if err != nil {
		return 0, err
	}

	return 8 + rows*cols*s.codec.width, nil
}

func (s boxedMatrixSerializer[T]) Tag() field.Type { return s.tag }

func (s boxedMatrixSerializer[T]) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.([][]any)
	if !ok {
		return typeError(s, value)
	}

	rows, cols, err := s.checkMatrix(v)
	if err != nil {
		return err
	}

	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(rows)) //nolint:gosec
	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(cols)) //nolint:gosec
	for _, row := range v {
		for _, raw := range row {
			s.codec.put(engine, buf, ptr.Advance(s.codec.width), raw.(T))
		}
	}

	return nil
}

func (s boxedMatrixSerializer[T]) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 8, s.tag.String()+" dimensions"); err != nil {
		return nil, err
	}

	rows := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	cols := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	if err := needCount(buf, ptr, cols, s.codec.width, s.tag.String()+" columns"); err != nil {
		return nil, err
	}
	if err := needCount(buf, ptr, rows, cols*s.codec.width, s.tag.String()+" rows"); err != nil {
		return nil, err
	}

	v := make([][]any, rows)
	for i := range v {
		v[i] = make([]any, cols)
		for j := range v[i] {
			v[i][j] = s.codec.get(engine, buf, ptr.Advance(s.codec.width))
		}
	}

	return v, nil
}

func (s boxedMatrixSerializer[T]) Dimensions() int { return 2 }
func (s boxedMatrixSerializer[T]) HasUnit() bool   { return false }

// The boxed array and matrix serializer families. Tags are shared with the
// typed variants; which family decodes a tag is a decode-table choice.
var (
	boxedBoolArraySerializer    = boxedArraySerializer[bool]{field.BoolArray, boolCodec}
	boxedInt8ArraySerializer    = boxedArraySerializer[int8]{field.Int8Array, int8Codec}
	boxedInt16ArraySerializer   = boxedArraySerializer[int16]{field.Int16Array, int16Codec}
	boxedInt32ArraySerializer   = boxedArraySerializer[int32]{field.Int32Array, int32Codec}
	boxedInt64ArraySerializer   = boxedArraySerializer[int64]{field.Int64Array, int64Codec}
	boxedFloat32ArraySerializer = boxedArraySerializer[float32]{field.Float32Array, float32Codec}
	boxedFloat64ArraySerializer = boxedArraySerializer[float64]{field.Float64Array, float64Codec}
	boxedCharArraySerializer    = boxedArraySerializer[Char]{field.CharArray, charCodec}

	boxedBoolMatrixSerializer    = boxedMatrixSerializer[bool]{field.BoolMatrix, boolCodec}
	boxedInt8MatrixSerializer    = boxedMatrixSerializer[int8]{field.Int8Matrix, int8Codec}
	boxedInt16MatrixSerializer   = boxedMatrixSerializer[int16]{field.Int16Matrix, int16Codec}
	boxedInt32MatrixSerializer   = boxedMatrixSerializer[int32]{field.Int32Matrix, int32Codec}
	boxedInt64MatrixSerializer   = boxedMatrixSerializer[int64]{field.Int64Matrix, int64Codec}
	boxedFloat32MatrixSerializer = boxedMatrixSerializer[float32]{field.Float32Matrix, float32Codec}
	boxedFloat64MatrixSerializer = boxedMatrixSerializer[float64]{field.Float64Matrix, float64Codec}
	boxedCharMatrixSerializer    = boxedMatrixSerializer[Char]{field.CharMatrix, charCodec}
)
