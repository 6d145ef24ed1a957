package serial

// Pointer is a mutable cursor over a byte buffer with returns-and-advances
// semantics. Each encode or decode call owns exactly one Pointer; it is never
// shared between calls and is not safe for concurrent use.
//
// Pointer performs no bounds checking of its own: encode paths pre-compute
// the exact buffer size, decode paths validate remaining length before
// consuming it.
type Pointer struct {
	offset int
}

// NewPointer returns a cursor positioned at offset zero.
func NewPointer() *Pointer {
	return &Pointer{}
}

// Get returns the current offset without advancing.
func (p *Pointer) Get() int {
	return p.offset
}

// Advance returns the current offset and moves the cursor forward by n.
// The returned offset is where the caller writes or reads the current field;
// the cursor then stands ready for the next one.
func (p *Pointer) Advance(n int) int {
	offset := p.offset
	p.offset += n

	return offset
}
