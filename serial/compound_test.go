package serial

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
	"github.com/arloliu/qbin/unit"
)

func newCompoundSerializer() compoundSerializer {
	return compoundSerializer{lookup: valueLookup}
}

func TestCompoundMixedRoundTrip(t *testing.T) {
	// 3 rows × 4 mixed-type fields.
	rows := Compound{
		{int32(1), 1.5, "alpha", true},
		{int32(-2), -2.5, "béta", false},
		{int32(3), 0.0, "", true},
	}

	s := newCompoundSerializer()
	for _, engine := range bothEngines {
		decoded := roundTrip(t, s, rows, engine)
		assert.Equal(t, rows, decoded)
	}
}

func TestCompoundWireLayout(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	rows := Compound{
		{int32(7), "x"},
		{int32(8), "y"},
	}

	s := newCompoundSerializer()
	size, err := s.Size(rows)
	require.NoError(t, err)
	// 8 counts + 2 schema tags + 2×(4 int32 + 5 string)
	require.Equal(t, 8+2+2*(4+5), size)

	buf := make([]byte, size)
	require.NoError(t, s.Serialize(rows, buf, NewPointer(), engine))

	assert.Equal(t, uint32(2), endian.Uint32At(engine, buf, 0), "row count")
	assert.Equal(t, uint32(2), endian.Uint32At(engine, buf, 4), "field count")
	assert.Equal(t, byte(field.Int32), buf[8], "schema tag for field 0")
	assert.Equal(t, byte(field.StringUTF8), buf[9], "schema tag for field 1")
}

func TestCompoundWithArrayAndQuantityFields(t *testing.T) {
	rows := Compound{
		{[]int16{1, 2}, unit.NewScalar(1.5, unit.Kilometre), int64(1)},
		{[]int16{3}, unit.NewScalar(-7, unit.Mile), int64(2)},
	}

	s := newCompoundSerializer()
	for _, engine := range bothEngines {
		decoded := roundTrip(t, s, rows, engine)
		got := decoded.(Compound)

		require.Len(t, got, 2)
		assert.Equal(t, []int16{1, 2}, got[0][0])
		assert.Equal(t, []int16{3}, got[1][0])
		assert.Equal(t, unit.Kilometre, got[0][1].(unit.Scalar).Unit())
		assert.Equal(t, rows[1][1].(unit.Scalar).SI(), got[1][1].(unit.Scalar).SI())
		assert.Equal(t, int64(2), got[1][2])
	}
}

func TestCompoundFieldCountMismatch(t *testing.T) {
	rows := Compound{
		{int32(1), 1.5, "a", true},
		{int32(2), 2.5, "b", false},
		{int32(3), 3.5, "c", true},
		{int32(4), 4.5, "d"}, // 3 fields, schema has 4
	}

	_, err := newCompoundSerializer().Size(rows)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestCompoundFieldTypeMismatch(t *testing.T) {
	rows := Compound{
		{int32(1), "a"},
		{int64(2), "b"}, // int64 where schema says int32
	}

	_, err := newCompoundSerializer().Size(rows)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestCompoundEmptyRejected(t *testing.T) {
	s := newCompoundSerializer()

	_, err := s.Size(Compound{})
	require.ErrorIs(t, err, ErrEmptyShape)

	_, err = s.Size(Compound{{}})
	require.ErrorIs(t, err, ErrEmptyShape)
}

func TestCompoundNestedRejected(t *testing.T) {
	inner := Compound{{int32(1)}}
	rows := Compound{{inner}}

	_, err := newCompoundSerializer().Size(rows)
	require.ErrorIs(t, err, ErrUnhandledType)
}

func TestCompoundUnknownSchemaTag(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	// 1 row, 1 field, bogus schema tag.
	buf := make([]byte, 9)
	endian.PutUint32(engine, buf, 0, 1)
	endian.PutUint32(engine, buf, 4, 1)
	buf[8] = 0x7E

	_, err := newCompoundSerializer().Deserialize(buf, NewPointer(), engine)
	require.ErrorIs(t, err, ErrUnknownTag)
}

func TestCompoundOversizedRowCount(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	// Row count claims the uint32 maximum over a valid one-field schema with
	// no row payloads behind it.
	buf := make([]byte, 9)
	endian.PutUint32(engine, buf, 0, 0xFFFFFFFF)
	endian.PutUint32(engine, buf, 4, 1)
	buf[8] = byte(field.Int8)

	_, err := newCompoundSerializer().Deserialize(buf, NewPointer(), engine)
	require.ErrorContains(t, err, "insufficient data")
}

func TestCompoundBiasedSchemaTagRejected(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	// Schema tags are written bare; a tag byte with bit 7 set is unknown.
	buf := make([]byte, 10)
	endian.PutUint32(engine, buf, 0, 1)
	endian.PutUint32(engine, buf, 4, 1)
	buf[8] = byte(field.Int8) | 0x80
	buf[9] = 0x05

	_, err := newCompoundSerializer().Deserialize(buf, NewPointer(), engine)
	require.ErrorIs(t, err, ErrUnknownTag)
}

func TestCompoundMetadata(t *testing.T) {
	s := newCompoundSerializer()
	assert.Equal(t, field.Compound, s.Tag())
	assert.Equal(t, 2, s.Dimensions())
	assert.False(t, s.HasUnit())
}
