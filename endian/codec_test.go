package endian

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPutUint16RoundTrip(t *testing.T) {
	for _, engine := range []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()} {
		buf := make([]byte, 4)
		PutUint16(engine, buf, 1, 0xBEEF)
		assert.Equal(t, uint16(0xBEEF), Uint16At(engine, buf, 1))
	}
}

func TestPutUint32ByteOrder(t *testing.T) {
	buf := make([]byte, 4)

	PutUint32(GetBigEndianEngine(), buf, 0, 0x01020304)
	assert.Equal(t, []byte{0x01, 0x02, 0x03, 0x04}, buf)

	PutUint32(GetLittleEndianEngine(), buf, 0, 0x01020304)
	assert.Equal(t, []byte{0x04, 0x03, 0x02, 0x01}, buf)
}

func TestSignedRoundTrip(t *testing.T) {
	engines := []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()}

	int16Cases := []int16{0, 1, -1, math.MinInt16, math.MaxInt16}
	int32Cases := []int32{0, 1, -1, math.MinInt32, math.MaxInt32}
	int64Cases := []int64{0, 1, -1, math.MinInt64, math.MaxInt64}

	for _, engine := range engines {
		buf := make([]byte, 8)
		for _, v := range int16Cases {
			PutInt16(engine, buf, 0, v)
			assert.Equal(t, v, Int16At(engine, buf, 0))
		}
		for _, v := range int32Cases {
			PutInt32(engine, buf, 0, v)
			assert.Equal(t, v, Int32At(engine, buf, 0))
		}
		for _, v := range int64Cases {
			PutInt64(engine, buf, 0, v)
			assert.Equal(t, v, Int64At(engine, buf, 0))
		}
	}
}

func TestFloatBitExactRoundTrip(t *testing.T) {
	engines := []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()}

	f64Cases := []float64{
		0,
		math.Copysign(0, -1),
		1.5,
		-2.25,
		math.Inf(1),
		math.Inf(-1),
		math.NaN(),
		math.Float64frombits(0x7FF8000000000001), // NaN with payload
		math.MaxFloat64,
		math.SmallestNonzeroFloat64,
	}

	for _, engine := range engines {
		buf := make([]byte, 8)
		for _, v := range f64Cases {
			PutFloat64(engine, buf, 0, v)
			got := Float64At(engine, buf, 0)
			assert.Equal(t, math.Float64bits(v), math.Float64bits(got), "float64 bits must round-trip exactly")
		}

		f32Cases := []float32{0, float32(math.Copysign(0, -1)), 3.5, float32(math.Inf(1)), float32(math.NaN())}
		for _, v := range f32Cases {
			PutFloat32(engine, buf, 0, v)
			got := Float32At(engine, buf, 0)
			assert.Equal(t, math.Float32bits(v), math.Float32bits(got), "float32 bits must round-trip exactly")
		}
	}
}

func TestPutStringUTF8(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		payload int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"accented", "héllo", 6},
		{"cjk", "你好", 6},
		{"emoji", "a😀b", 6},
	}

	engine := GetBigEndianEngine()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			size := SizeStringUTF8(tt.input)
			require.Equal(t, 4+tt.payload, size)

			buf := make([]byte, size)
			written := PutStringUTF8(engine, buf, 0, tt.input)
			require.Equal(t, size, written)
			require.Equal(t, uint32(tt.payload), Uint32At(engine, buf, 0))

			got, consumed, err := StringUTF8At(engine, buf, 0)
			require.NoError(t, err)
			assert.Equal(t, tt.input, got)
			assert.Equal(t, size, consumed)
		})
	}
}

func TestPutStringUTF16(t *testing.T) {
	tests := []struct {
		name  string
		input string
		units int
	}{
		{"empty", "", 0},
		{"ascii", "hello", 5},
		{"accented", "héllo", 5},
		{"cjk", "你好", 2},
		{"surrogate pair", "😀", 2}, // outside the BMP: two code units
		{"mixed", "a😀b", 4},
	}

	for _, engine := range []EndianEngine{GetBigEndianEngine(), GetLittleEndianEngine()} {
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				size := SizeStringUTF16(tt.input)
				require.Equal(t, 4+2*tt.units, size)

				buf := make([]byte, size)
				written := PutStringUTF16(engine, buf, 0, tt.input)
				require.Equal(t, size, written)
				require.Equal(t, uint32(tt.units), Uint32At(engine, buf, 0)) //nolint:gosec

				got, consumed, err := StringUTF16At(engine, buf, 0)
				require.NoError(t, err)
				assert.Equal(t, tt.input, got)
				assert.Equal(t, size, consumed)
			})
		}
	}
}

func TestStringDecodeTruncated(t *testing.T) {
	engine := GetBigEndianEngine()

	_, _, err := StringUTF8At(engine, []byte{0, 0}, 0)
	require.Error(t, err)

	// Prefix claims 10 bytes but only 2 follow.
	buf := make([]byte, 6)
	PutUint32(engine, buf, 0, 10)
	_, _, err = StringUTF8At(engine, buf, 0)
	require.Error(t, err)

	buf = make([]byte, 6)
	PutUint32(engine, buf, 0, 10)
	_, _, err = StringUTF16At(engine, buf, 0)
	require.Error(t, err)
}
