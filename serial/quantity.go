package serial

import (
	"fmt"

	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
	"github.com/arloliu/qbin/unit"
)

// Unit header codec.
//
// Every quantity shape carries a 2-byte unit header immediately before its
// numeric payload: the quantity-kind code byte followed by the display-unit
// code byte. The header records the display unit only; magnitudes on the wire
// are always SI-normalized and are never rescaled by the header.

// unitHeaderSize is the encoded size of a unit header.
const unitHeaderSize = 2

// EncodeUnit writes the 2-byte unit header of u, advancing ptr by 2.
// The engine parameter is kept for codec signature uniformity; single bytes
// have no byte order.
func EncodeUnit(u unit.Unit, buf []byte, ptr *Pointer, _ endian.EndianEngine) {
	offset := ptr.Advance(unitHeaderSize)
	buf[offset] = byte(u.Kind())
	buf[offset+1] = u.Code()
}

// GetUnit reads a 2-byte unit header and resolves it to a registered unit.
// An unrecognized (kind, display) pair fails with unit.ErrUnknownUnit; there
// is no default substitution.
func GetUnit(buf []byte, ptr *Pointer, _ endian.EndianEngine) (unit.Unit, error) {
	if err := need(buf, ptr, unitHeaderSize, "unit header"); err != nil {
		return unit.Unit{}, err
	}

	offset := ptr.Advance(unitHeaderSize)

	u, err := unit.Lookup(unit.Kind(buf[offset]), buf[offset+1])
	if err != nil {
		return unit.Unit{}, fmt.Errorf("unit header at offset %d: %w", offset, err)
	}

	return u, nil
}

// quantityScalarSerializer encodes a unit.Scalar as the 2-byte unit header
// followed by the 8-byte SI magnitude.
type quantityScalarSerializer struct{}

func (s quantityScalarSerializer) Size(value any) (int, error) {
	if _, ok := value.(unit.Scalar); !ok {
		return 0, typeError(s, value)
	}

	return unitHeaderSize + 8, nil
}

func (s quantityScalarSerializer) Tag() field.Type { return field.Quantity }

func (s quantityScalarSerializer) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.(unit.Scalar)
	if !ok {
		return typeError(s, value)
	}

	EncodeUnit(v.Unit(), buf, ptr, engine)
	endian.PutFloat64(engine, buf, ptr.Advance(8), v.SI())

	return nil
}

func (s quantityScalarSerializer) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	u, err := GetUnit(buf, ptr, engine)
	if err != nil {
		return nil, err
	}

	if err := need(buf, ptr, 8, "Quantity value"); err != nil {
		return nil, err
	}

	return unit.ScalarFromSI(endian.Float64At(engine, buf, ptr.Advance(8)), u), nil
}

func (s quantityScalarSerializer) Dimensions() int { return 0 }
func (s quantityScalarSerializer) HasUnit() bool   { return true }

// quantityVectorSerializer encodes a unit.Vector as a 4-byte length, the
// 2-byte unit header, then N 8-byte SI magnitudes.
type quantityVectorSerializer struct{}

func (s quantityVectorSerializer) Size(value any) (int, error) {
	v, ok := value.(unit.Vector)
	if !ok {
		return 0, typeError(s, value)
	}

	return 4 + unitHeaderSize + v.Len()*8, nil
}

func (s quantityVectorSerializer) Tag() field.Type { return field.QuantityVector }

func (s quantityVectorSerializer) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.(unit.Vector)
	if !ok {
		return typeError(s, value)
	}

	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(v.Len())) //nolint:gosec
	EncodeUnit(v.Unit(), buf, ptr, engine)
	for _, si := range v.SI() {
		endian.PutFloat64(engine, buf, ptr.Advance(8), si)
	}

	return nil
}

func (s quantityVectorSerializer) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 4, "QuantityVector length"); err != nil {
		return nil, err
	}

	count := int(endian.Uint32At(engine, buf, ptr.Advance(4)))

	u, err := GetUnit(buf, ptr, engine)
	if err != nil {
		return nil, err
	}

	if err := needCount(buf, ptr, count, 8, "QuantityVector values"); err != nil {
		return nil, err
	}

	si := make([]float64, count)
	for i := range si {
		si[i] = endian.Float64At(engine, buf, ptr.Advance(8))
	}

	return unit.VectorFromSI(si, u), nil
}

func (s quantityVectorSerializer) Dimensions() int { return 1 }
func (s quantityVectorSerializer) HasUnit() bool   { return true }

// quantityMatrixSerializer encodes a unit.Matrix as a 4-byte row count, a
// 4-byte column count, the 2-byte unit header, then rows×cols 8-byte SI
// magnitudes row-major. unit.Matrix construction already guarantees a
// non-empty rectangular shape; the zero value is rejected here.
type quantityMatrixSerializer struct{}

func (s quantityMatrixSerializer) Size(value any) (int, error) {
	v, ok := value.(unit.Matrix)
	if !ok {
		return 0, typeError(s, value)
	}

	if v.Rows() == 0 || v.Cols() == 0 {
		return 0, fmt.Errorf("%w: QuantityMatrix requires at least one row and one column", ErrEmptyShape)
	}

	return 8 + unitHeaderSize + v.Rows()*v.Cols()*8, nil
}

func (s quantityMatrixSerializer) Tag() field.Type { return field.QuantityMatrix }

func (s quantityMatrixSerializer) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.(unit.Matrix)
	if !ok {
		return typeError(s, value)
	}

	if v.Rows() == 0 || v.Cols() == 0 {
		return fmt.Errorf("%w: QuantityMatrix requires at least one row and one column", ErrEmptyShape)
	}

	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(v.Rows())) //nolint:gosec
	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(v.Cols())) //nolint:gosec
	EncodeUnit(v.Unit(), buf, ptr, engine)
	for _, row := range v.SI() {
		for _, si := range row {
			endian.PutFloat64(engine, buf, ptr.Advance(8), si)
		}
	}

	return nil
}

func (s quantityMatrixSerializer) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 8, "QuantityMatrix dimensions"); err != nil {
		return nil, err
	}

	rows := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	cols := int(endian.Uint32At(engine, buf, ptr.Advance(4)))

	u, err := GetUnit(buf, ptr, engine)
	if err != nil {
		return nil, err
	}

	if err := needCount(buf, ptr, cols, 8, "QuantityMatrix columns"); err != nil {
		return nil, err
	}
	if err := needCount(buf, ptr, rows, cols*8, "QuantityMatrix rows"); err != nil {
		return nil, err
	}

	si := make([][]float64, rows)
	for i := range si {
		si[i] = make([]float64, cols)
		for j := range si[i] {
			si[i][j] = endian.Float64At(engine, buf, ptr.Advance(8))
		}
	}

	m, err := unit.MatrixFromSI(si, u)
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (s quantityMatrixSerializer) Dimensions() int { return 2 }
func (s quantityMatrixSerializer) HasUnit() bool   { return true }

// The quantity serializer family.
var (
	quantitySerializer    = quantityScalarSerializer{}
	quantityVecSerializer = quantityVectorSerializer{}
	quantityMatSerializer = quantityMatrixSerializer{}
)
