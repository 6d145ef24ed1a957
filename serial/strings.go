package serial

import (
	"fmt"

	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
)

// stringSerializer encodes one string as a 4-byte length prefix followed by
// the encoded payload, no terminator. The prefix counts UTF-8 bytes in UTF-8
// mode and UTF-16 code units in UTF-16 mode.
type stringSerializer struct {
	utf16 bool
}

func (s stringSerializer) size(v string) int {
	if s.utf16 {
		return endian.SizeStringUTF16(v)
	}

	return endian.SizeStringUTF8(v)
}

func (s stringSerializer) put(engine endian.EndianEngine, buf []byte, offset int, v string) int {
	if s.utf16 {
		return endian.PutStringUTF16(engine, buf, offset, v)
	}

	return endian.PutStringUTF8(engine, buf, offset, v)
}

func (s stringSerializer) at(engine endian.EndianEngine, buf []byte, offset int) (string, int, error) {
	if s.utf16 {
		return endian.StringUTF16At(engine, buf, offset)
	}

	return endian.StringUTF8At(engine, buf, offset)
}

func (s stringSerializer) Size(value any) (int, error) {
	v, ok := value.(string)
	if !ok {
		return 0, typeError(s, value)
	}

	return s.size(v), nil
}

func (s stringSerializer) Tag() field.Type {
	if s.utf16 {
		return field.StringUTF16
	}

	return field.StringUTF8
}

func (s stringSerializer) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.(string)
	if !ok {
		return typeError(s, value)
	}

	written := s.put(engine, buf, ptr.Get(), v)
	ptr.Advance(written)

	return nil
}

func (s stringSerializer) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	v, consumed, err := s.at(engine, buf, ptr.Get())
	if err != nil {
		return nil, err
	}

	ptr.Advance(consumed)

	return v, nil
}

func (s stringSerializer) Dimensions() int { return 0 }
func (s stringSerializer) HasUnit() bool   { return false }

// stringArraySerializer encodes []string as a 4-byte element count followed
// by each string in the scalar string layout.
type stringArraySerializer struct {
	utf16 bool
}

func (s stringArraySerializer) scalar() stringSerializer { return stringSerializer{utf16: s.utf16} }

func (s stringArraySerializer) Size(value any) (int, error) {
	v, ok := value.([]string)
	if !ok {
		return 0, typeError(s, value)
	}

	total := 4
	for _, elem := range v {
		total += s.scalar().size(elem)
	}

	return total, nil
}

func (s stringArraySerializer) Tag() field.Type {
	if s.utf16 {
		return field.StringUTF16Array
	}

	return field.StringUTF8Array
}

func (s stringArraySerializer) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.([]string)
	if !ok {
		return typeError(s, value)
	}

	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(len(v))) //nolint:gosec
	scalar := s.scalar()
	for _, elem := range v {
		written := scalar.put(engine, buf, ptr.Get(), elem)
		ptr.Advance(written)
	}

	return nil
}

func (s stringArraySerializer) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 4, s.Tag().String()+" length"); err != nil {
		return nil, err
	}

	// Every element carries at least its own 4-byte length prefix.
	count := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	if err := needCount(buf, ptr, count, 4, s.Tag().String()+" elements"); err != nil {
		return nil, err
	}

	scalar := s.scalar()
	v := make([]string, count)
	for i := range v {
		elem, consumed, err := scalar.at(engine, buf, ptr.Get())
		if err != nil {
			return nil, fmt.Errorf("%s element %d: %w", s.Tag(), i, err)
		}
		ptr.Advance(consumed)
		v[i] = elem
	}

	return v, nil
}

func (s stringArraySerializer) Dimensions() int { return 1 }
func (s stringArraySerializer) HasUnit() bool   { return false }

// stringMatrixSerializer encodes [][]string as a 4-byte height and 4-byte
// width followed by each string row-major in the scalar string layout.
// Jagged or empty input fails in Size.
type stringMatrixSerializer struct {
	utf16 bool
}

func (s stringMatrixSerializer) scalar() stringSerializer { return stringSerializer{utf16: s.utf16} }

func (s stringMatrixSerializer) checkMatrix(v [][]string) (int, int, error) {
	if len(v) == 0 || len(v[0]) == 0 {
		return 0, 0, fmt.Errorf("%w: %s requires at least one row and one column", ErrEmptyShape, s.Tag())
	}

	cols := len(v[0])
	for i, row := range v {
		if len(row) != cols {
			return 0, 0, fmt.Errorf("%w: %s row %d has %d columns, expected %d", ErrJagged, s.Tag(), i, len(row), cols)
		}
	}

	return len(v), cols, nil
}

func (s stringMatrixSerializer) Size(value any) (int, error) {
	v, ok := value.([][]string)
	if !ok {
		return 0, typeError(s, value)
	}

	if _, _, err := s.checkMatrix(v); err != nil {
		return 0, err
	}

	total := 8
	scalar := s.scalar()
	for _, row := range v {
		for _, elem := range row {
			total += scalar.size(elem)
		}
	}

	return total, nil
}

func (s stringMatrixSerializer) Tag() field.Type {
	if s.utf16 {
		return field.StringUTF16Matrix
	}

	return field.StringUTF8Matrix
}

func (s stringMatrixSerializer) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.([][]string)
	if !ok {
		return typeError(s, value)
	}

	rows, cols, err := s.checkMatrix(v)
	if err != nil {
		return err
	}

	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(rows)) //nolint:gosec
	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(cols)) //nolint:gosec
	scalar := s.scalar()
	for _, row := range v {
		for _, elem := range row {
			written := scalar.put(engine, buf, ptr.Get(), elem)
			ptr.Advance(written)
		}
	}

	return nil
}

func (s stringMatrixSerializer) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 8, s.Tag().String()+" dimensions"); err != nil {
		return nil, err
	}

	rows := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	cols := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	if err := needCount(buf, ptr, cols, 4, s.Tag().String()+" columns"); err != nil {
		return nil, err
	}
	if err := needCount(buf, ptr, rows, cols*4, s.Tag().String()+" rows"); err != nil {
		return nil, err
	}

	scalar := s.scalar()
	v := make([][]string, rows)
	for i := range v {
		v[i] = make([]string, cols)
		for j := range v[i] {
			elem, consumed, err := scalar.at(engine, buf, ptr.Get())
			if err != nil {
				return nil, fmt.Errorf("%s element (%d,%d): %w", s.Tag(), i, j, err)
			}
			ptr.Advance(consumed)
			v[i][j] = elem
		}
	}

	return v, nil
}

func (s stringMatrixSerializer) Dimensions() int { return 2 }
func (s stringMatrixSerializer) HasUnit() bool   { return false }

// The string serializer family, one instance per encoding.
var (
	stringUTF8Serializer        = stringSerializer{utf16: false}
	stringUTF16Serializer       = stringSerializer{utf16: true}
	stringUTF8ArraySerializer   = stringArraySerializer{utf16: false}
	stringUTF16ArraySerializer  = stringArraySerializer{utf16: true}
	stringUTF8MatrixSerializer  = stringMatrixSerializer{utf16: false}
	stringUTF16MatrixSerializer = stringMatrixSerializer{utf16: true}
)
