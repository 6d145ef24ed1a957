// Package serial implements the qbin wire codec: a type-prefixed,
// self-describing binary format for primitives, arrays and matrices (typed
// and boxed), UTF-8/UTF-16 strings, physical quantities, columnar arrays of
// quantity vectors, and heterogeneous compound row sets.
//
// # Wire format
//
// Every encoded value starts with one tag byte from the field package,
// followed by the payload in the selected byte order. Length-prefixed shapes
// carry 4-byte counts; quantity shapes carry a 2-byte unit header right
// before their SI-normalized numeric payload. See the field and unit
// packages for the tag and unit code spaces.
//
// # Usage
//
//	engine := endian.GetBigEndianEngine()
//
//	data, err := serial.Encode(engine, []int32{1, -1, 2147483647})
//	if err != nil { ... }
//
//	value, err := serial.Decode(engine, data) // []int32
//
// Decode reconstructs typed slices ([]int32, [][]float64, ...);
// DecodeObjects reconstructs boxed shapes ([]any, [][]any) from the same
// tag space.
//
// # Concurrency
//
// Encode and decode calls are fully synchronous and share no mutable state;
// the tag dispatch tables are built once at package initialization and are
// read-only afterwards, so all entry points are safe for concurrent use.
package serial
