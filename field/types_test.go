package field

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func allTypes() []Type {
	return []Type{
		Bool, Int8, Int16, Int32, Int64, Float32, Float64, Char,
		BoolArray, Int8Array, Int16Array, Int32Array, Int64Array, Float32Array, Float64Array, CharArray,
		BoolMatrix, Int8Matrix, Int16Matrix, Int32Matrix, Int64Matrix, Float32Matrix, Float64Matrix, CharMatrix,
		StringUTF8, StringUTF16, StringUTF8Array, StringUTF16Array, StringUTF8Matrix, StringUTF16Matrix,
		Quantity, QuantityVector, QuantityMatrix, QuantityVectorArray,
		Compound,
	}
}

func TestTagsUniqueAndUnbiased(t *testing.T) {
	seen := make(map[Type]bool)
	for _, typ := range allTypes() {
		require.False(t, seen[typ], "duplicate tag 0x%02X", uint8(typ))
		seen[typ] = true

		// Bit 7 must stay free for the little-endian bias.
		assert.Zero(t, typ&LittleEndianBias, "tag %s collides with the bias bit", typ)
	}
}

func TestBiasedFamilies(t *testing.T) {
	biased := []Type{Bool, Int64, CharArray, Float64Matrix, StringUTF8, StringUTF16Matrix}
	for _, typ := range biased {
		assert.True(t, typ.Biased(), "%s should carry the little-endian bias", typ)
	}

	bare := []Type{Quantity, QuantityVector, QuantityMatrix, QuantityVectorArray, Compound}
	for _, typ := range bare {
		assert.False(t, typ.Biased(), "%s should never carry the little-endian bias", typ)
	}
}

func TestBiasRoundTrip(t *testing.T) {
	tagged := Int32Array | LittleEndianBias

	assert.True(t, tagged.HasBias())
	assert.Equal(t, Int32Array, tagged.Unbiased())
	assert.Equal(t, "Int32Array", tagged.String())
	assert.False(t, Int32Array.HasBias())
}

func TestString(t *testing.T) {
	for _, typ := range allTypes() {
		assert.NotContains(t, typ.String(), "Unknown", "tag 0x%02X must have a name", uint8(typ))
	}
	assert.Equal(t, "Unknown(0x7F)", Type(0x7F).String())
}
