package qbin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/serial"
	"github.com/arloliu/qbin/unit"
)

func TestEncodeDecode(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	data, err := Encode(engine, []int32{1, -1, 2147483647})
	require.NoError(t, err)

	decoded, err := Decode(engine, data)
	require.NoError(t, err)
	assert.Equal(t, []int32{1, -1, 2147483647}, decoded)
}

func TestDecodeObjects(t *testing.T) {
	engine := endian.GetLittleEndianEngine()

	data, err := Encode(engine, []float64{1.5, 2.5})
	require.NoError(t, err)

	objects, err := DecodeObjects(engine, data)
	require.NoError(t, err)
	assert.Equal(t, []any{1.5, 2.5}, objects)
}

func TestEncodeWithUTF16(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	data, err := Encode(engine, "héllo", WithUTF16())
	require.NoError(t, err)

	decoded, err := Decode(engine, data)
	require.NoError(t, err)
	assert.Equal(t, "héllo", decoded)
}

func TestEncodeQuantity(t *testing.T) {
	engine := endian.GetBigEndianEngine()
	s := unit.NewScalar(1.5, unit.Kilometre)

	data, err := Encode(engine, s)
	require.NoError(t, err)

	decoded, err := Decode(engine, data)
	require.NoError(t, err)

	got := decoded.(unit.Scalar)
	assert.Equal(t, 1500.0, got.SI())
	assert.Equal(t, unit.Kilometre, got.Unit())
}

func TestEncodeCompound(t *testing.T) {
	engine := endian.GetLittleEndianEngine()
	rows := serial.Compound{
		{int32(1), "a", true},
		{int32(2), "b", false},
	}

	data, err := Encode(engine, rows)
	require.NoError(t, err)

	decoded, err := Decode(engine, data)
	require.NoError(t, err)
	assert.Equal(t, rows, decoded)
}

func TestFingerprint(t *testing.T) {
	engine := endian.GetBigEndianEngine()

	first, err := Encode(engine, []int64{1, 2, 3})
	require.NoError(t, err)
	second, err := Encode(engine, []int64{1, 2, 3})
	require.NoError(t, err)
	other, err := Encode(engine, []int64{1, 2, 4})
	require.NoError(t, err)

	assert.Equal(t, Fingerprint(first), Fingerprint(second), "identical payloads share a fingerprint")
	assert.NotEqual(t, Fingerprint(first), Fingerprint(other))
}
