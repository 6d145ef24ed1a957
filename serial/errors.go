package serial

import (
	"errors"
	"fmt"
)

var (
	// ErrUnhandledType reports a value whose runtime type has no serializer,
	// or a serializer handed a value of the wrong dynamic type.
	ErrUnhandledType = errors.New("unhandled data type")

	// ErrUnknownTag reports a wire tag byte with no registered decoder.
	ErrUnknownTag = errors.New("unknown type tag")

	// ErrJagged reports a 2D value whose rows differ in length. Detected
	// before any byte is written.
	ErrJagged = errors.New("jagged matrix")

	// ErrEmptyShape reports a shape that requires at least one element
	// (matrices, compound row sets, columnar vector arrays) but has none.
	ErrEmptyShape = errors.New("empty shape")

	// ErrSchemaMismatch reports a compound row whose field count or field
	// types differ from the schema fixed by row 0.
	ErrSchemaMismatch = errors.New("compound schema mismatch")

	// ErrSizeMismatch reports that the bytes actually written differ from
	// the pre-computed size. This is a fatal internal-consistency fault in a
	// serializer implementation, never a consequence of bad input.
	ErrSizeMismatch = errors.New("serialized size mismatch")
)

// typeError builds the ErrUnhandledType failure for a serializer that was
// handed a value of the wrong dynamic type.
func typeError(s Serializer, value any) error {
	return fmt.Errorf("%w: %s serializer cannot handle %T", ErrUnhandledType, s.Tag(), value)
}

// need verifies that n more bytes are available behind the cursor, failing
// with a diagnostic naming the field being decoded and the byte offset.
func need(buf []byte, ptr *Pointer, n int, what string) error {
	if ptr.Get()+n > len(buf) {
		return fmt.Errorf("insufficient data for %s: need %d bytes at offset %d, have %d", what, n, ptr.Get(), len(buf)-ptr.Get())
	}

	return nil
}

// needCount bounds a wire-declared element count by the bytes remaining
// behind the cursor, given the minimum encoded width of one element. Counts
// come straight off the wire and must be validated against the buffer before
// sizing any allocation or byte-total arithmetic with them.
func needCount(buf []byte, ptr *Pointer, count, minWidth int, what string) error {
	if minWidth < 1 {
		minWidth = 1
	}

	remaining := len(buf) - ptr.Get()
	if count > remaining/minWidth {
		return fmt.Errorf("insufficient data for %s: %d elements of at least %d bytes at offset %d, have %d bytes", what, count, minWidth, ptr.Get(), remaining)
	}

	return nil
}
