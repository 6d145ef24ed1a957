// Package qbin provides a type-prefixed, self-describing binary codec for
// primitives, arrays and matrices (typed and boxed), UTF-8/UTF-16 strings,
// physical-quantity scalars/vectors/matrices, columnar arrays of quantity
// vectors, and heterogeneous compound row sets.
//
// # Basic Usage
//
// Encoding and decoding a value:
//
//	import (
//	    "github.com/arloliu/qbin"
//	    "github.com/arloliu/qbin/endian"
//	)
//
//	engine := endian.GetBigEndianEngine()
//
//	data, err := qbin.Encode(engine, []int32{1, -1, 2147483647})
//	if err != nil { ... }
//
//	value, err := qbin.Decode(engine, data) // []int32
//
// Quantity values carry a physical unit and are stored SI-normalized:
//
//	import "github.com/arloliu/qbin/unit"
//
//	data, _ := qbin.Encode(engine, unit.NewScalar(1.5, unit.Kilometre))
//	s, _ := qbin.Decode(engine, data) // unit.Scalar, 1500 m, displayed as km
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the serial
// package. For the serializer contract, the dispatch tables, and per-shape
// codecs, use the serial, field, unit and endian packages directly.
package qbin

import (
	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/internal/hash"
	"github.com/arloliu/qbin/serial"
)

// Encode serializes value into an exactly sized buffer: one tag byte followed
// by the payload in the engine's byte order. See serial.Encode.
func Encode(engine endian.EndianEngine, value any, opts ...serial.EncodeOption) ([]byte, error) {
	return serial.Encode(engine, value, opts...)
}

// Decode deserializes one encoded value, reconstructing typed slices for
// array and matrix shapes. See serial.Decode.
func Decode(engine endian.EndianEngine, data []byte) (any, error) {
	return serial.Decode(engine, data)
}

// DecodeObjects deserializes one encoded value, reconstructing boxed []any /
// [][]any shapes for array and matrix tags. See serial.DecodeObjects.
func DecodeObjects(engine endian.EndianEngine, data []byte) (any, error) {
	return serial.DecodeObjects(engine, data)
}

// WithUTF16 selects the UTF-16 wire form for string-shaped inputs.
func WithUTF16() serial.EncodeOption {
	return serial.WithUTF16()
}

// Fingerprint computes the xxHash64 of an encoded payload. It gives callers a
// stable identity key for encoded buffers (deduplication, cache keys,
// integrity spot checks) and is deterministic across processes.
func Fingerprint(data []byte) uint64 {
	return hash.ID(data)
}
