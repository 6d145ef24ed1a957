package serial

import (
	"fmt"

	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
	"github.com/arloliu/qbin/unit"
)

// vectorArraySerializer encodes []unit.Vector (a collection of equal-length
// quantity vectors) as one columnar 2D payload:
//
//	4-byte row count (the shared vector length)
//	4-byte column count (the number of vectors)
//	one 2-byte unit header per column
//	rows×cols 8-byte SI magnitudes, row-major across columns
//
// Each column keeps its own display unit. Vectors of differing length, and
// empty collections, fail in Size before any byte is written.
type vectorArraySerializer struct{}

// checkColumns validates the columnar shape and returns (rows, cols).
func (s vectorArraySerializer) checkColumns(v []unit.Vector) (int, int, error) {
	if len(v) == 0 {
		return 0, 0, fmt.Errorf("%w: QuantityVectorArray requires at least one vector", ErrEmptyShape)
	}

	rows := v[0].Len()
	if rows == 0 {
		return 0, 0, fmt.Errorf("%w: QuantityVectorArray vectors must be non-empty", ErrEmptyShape)
	}

	for i, vec := range v {
		if vec.Len() != rows {
			return 0, 0, fmt.Errorf("%w: QuantityVectorArray vector %d has length %d, expected %d", ErrJagged, i, vec.Len(), rows)
		}
	}

	return rows, len(v), nil
}

func (s vectorArraySerializer) Size(value any) (int, error) {
	v, ok := value.([]unit.Vector)
	if !ok {
		return 0, typeError(s, value)
	}

	rows, cols, err := s.checkColumns(v)
	if err != nil {
		return 0, err
	}

	return 8 + cols*unitHeaderSize + rows*cols*8, nil
}

func (s vectorArraySerializer) Tag() field.Type { return field.QuantityVectorArray }

func (s vectorArraySerializer) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	v, ok := value.([]unit.Vector)
	if !ok {
		return typeError(s, value)
	}

	rows, cols, err := s.checkColumns(v)
	if err != nil {
		return err
	}

	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(rows)) //nolint:gosec
	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(cols)) //nolint:gosec
	for _, vec := range v {
		EncodeUnit(vec.Unit(), buf, ptr, engine)
	}

	// Values interleave across columns: row 0 of every vector, then row 1.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			endian.PutFloat64(engine, buf, ptr.Advance(8), v[c].SI()[r])
		}
	}

	return nil
}

func (s vectorArraySerializer) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 8, "QuantityVectorArray dimensions"); err != nil {
		return nil, err
	}

	rows := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	cols := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	if err := needCount(buf, ptr, cols, unitHeaderSize, "QuantityVectorArray columns"); err != nil {
		return nil, err
	}

	units := make([]unit.Unit, cols)
	for c := range units {
		u, err := GetUnit(buf, ptr, engine)
		if err != nil {
			return nil, fmt.Errorf("QuantityVectorArray column %d: %w", c, err)
		}
		units[c] = u
	}

	if err := needCount(buf, ptr, rows, cols*8, "QuantityVectorArray rows"); err != nil {
		return nil, err
	}

	columns := make([][]float64, cols)
	for c := range columns {
		columns[c] = make([]float64, rows)
	}
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			columns[c][r] = endian.Float64At(engine, buf, ptr.Advance(8))
		}
	}

	v := make([]unit.Vector, cols)
	for c := range v {
		v[c] = unit.VectorFromSI(columns[c], units[c])
	}

	return v, nil
}

func (s vectorArraySerializer) Dimensions() int { return 2 }
func (s vectorArraySerializer) HasUnit() bool   { return true }

var quantityVectorArraySerializer = vectorArraySerializer{}
