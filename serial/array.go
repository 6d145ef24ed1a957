package serial

import (
	"fmt"

	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
)

// arraySerializer encodes a typed slice as a 4-byte element count followed by
// the raw fixed-width elements in engine order. Empty slices are legal and
// encode as a zero count.
type arraySerializer[T any] struct {
	tag   field.Type
	codec elemCodec[T]
}

func (s arraySerializer[T]) Size(value any) (int, error) {
	v, ok := value.([]T)
	if !ok {
		return 0, typeError(s, value)
	}

	return 4 + len(v)*s.codec.width, nil
}

func (s arraySerializer[T]) Tag() field.Type { return s.tag }

func (s arraySerializer[T]) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.([]T)
	if !ok {
		return typeError(s, value)
	}

	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(len(v))) //nolint:gosec
	for _, elem := range v {
		s.codec.put(engine, buf, ptr.Advance(s.codec.width), elem)
	}

	return nil
}

func (s arraySerializer[T]) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 4, s.tag.String()+" length"); err != nil {
		return nil, err
	}

	count := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	if err := needCount(buf, ptr, count, s.codec.width, s.tag.String()+" elements"); err != nil {
		return nil, err
	}

	v := make([]T, count)
	for i := range v {
		v[i] = s.codec.get(engine, buf, ptr.Advance(s.codec.width))
	}

	return v, nil
}

func (s arraySerializer[T]) Dimensions() int { return 1 }
func (s arraySerializer[T]) HasUnit() bool   { return false }

// matrixSerializer encodes a rectangular 2D slice as a 4-byte height, a
// 4-byte width, then height×width raw elements row-major. Jagged or empty
// input fails in Size, before any byte is written.
type matrixSerializer[T any] struct {
	tag   field.Type
	codec elemCodec[T]
}

// checkMatrix validates rectangularity and returns (rows, cols).
func (s matrixSerializer[T]) checkMatrix(v [][]T) (int, int, error) {
	if len(v) == 0 || len(v[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: %s requires at least one row and one column", ErrEmptyShape, s.tag)
	}

	cols := len(v[0])
	for i, row := range v {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: %s row %d has %d columns, expected %d", ErrJagged, s.tag, i, len(row), cols)
		}
	}

	return len(v), cols, nil
}

func (s matrixSerializer[T]) Size(value any) (int, error) {
	v, ok := value.([][]T)
	if !ok {
		return 0, typeError(s, value)
	}

	rows, cols, err := s.checkMatrix(v)
	if err != nil {
		return 0, err
	}

	return 8 + rows*cols*s.codec.width, nil
}

func (s matrixSerializer[T]) Tag() field.Type { return s.tag }

func (s matrixSerializer[T]) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.([][]T)
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
		for _, elem := range row {
			s.codec.put(engine, buf, ptr.Advance(s.codec.width), elem)
		}
	}

	return nil
}

func (s matrixSerializer[T]) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 8, s.tag.String()+" dimensions"); err != nil {
		return nil, err
	}

	// Each dimension is bounded against the buffer on its own, so the
	// rows×cols byte total cannot overflow.
	rows := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	cols := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	if err := needCount(buf, ptr, cols, s.codec.width, s.tag.String()+" columns"); err != nil {
		return nil, err
	}
	if err := needCount(buf, ptr, rows, cols*s.codec.width, s.tag.String()+" rows"); err != nil {
		return nil, err
	}

	v := make([][]T, rows)
	for i := range v {
		v[i] = make([]T, cols)
		for j := range v[i] {
			v[i][j] = s.codec.get(engine, buf, ptr.Advance(s.codec.width))
		}
	}

	return v, nil
}

func (s matrixSerializer[T]) Dimensions() int { return 2 }
func (s matrixSerializer[T]) HasUnit() bool   { return false }

// The primitive array and matrix serializer families.
var (
	boolArraySerializer    = arraySerializer[bool]{field.BoolArray, boolCodec}
	int8ArraySerializer    = arraySerializer[int8]{field.Int8Array, int8Codec}
	int16ArraySerializer   = arraySerializer[int16]{field.Int16Array, int16Codec}
	int32ArraySerializer   = arraySerializer[int32]{field.Int32Array, int32Codec}
	int64ArraySerializer   = arraySerializer[int64]{field.Int64Array, int64Codec}
	float32ArraySerializer = arraySerializer[float32]{field.Float32Array, float32Codec}
	float64ArraySerializer = arraySerializer[float64]{field.Float64Array, float64Codec}
	charArraySerializer    = arraySerializer[Char]{field.CharArray, charCodec}

	boolMatrixSerializer    = matrixSerializer[bool]{field.BoolMatrix, boolCodec}
	int8MatrixSerializer    = matrixSerializer[int8]{field.Int8Matrix, int8Codec}
	int16MatrixSerializer   = matrixSerializer[int16]{field.Int16Matrix, int16Codec}
	int32MatrixSerializer   = matrixSerializer[int32]{field.Int32Matrix, int32Codec}
	int64MatrixSerializer   = matrixSerializer[int64]{field.Int64Matrix, int64Codec}
	float32MatrixSerializer = matrixSerializer[float32]{field.Float32Matrix, float32Codec}
	float64MatrixSerializer = matrixSerializer[float64]{field.Float64Matrix, float64Codec}
	charMatrixSerializer    = matrixSerializer[Char]{field.CharMatrix, charCodec}
)
