// Package unit provides the physical-unit model consumed by the qbin codec:
// quantity kinds, display units with SI conversion factors, and the quantity
// value types (Scalar, Vector, Matrix).
//
// Every unit is identified on the wire by a (kind code, display code) byte
// pair. Many display units map to one kind; exactly one unit per kind is the
// SI base unit (factor 1). Magnitudes are always stored SI-normalized; the
// display unit only says how to present them.
//
// The unit table is populated at package initialization and immutable
// afterwards, so lookups are safe for concurrent use.
package unit

import (
	"errors"
	"fmt"
)

// Kind is the quantity-kind code byte of a physical unit (length, mass, ...).
type Kind uint8

const (
	Length        Kind = 0x01
	Mass          Kind = 0x02
	Duration      Kind = 0x03
	Speed         Kind = 0x04
	Angle         Kind = 0x05
	Dimensionless Kind = 0x06
)

func (k Kind) String() string {
	switch k {
	case Length:
		return "Length"
	case Mass:
		return "Mass"
	case Duration:
		return "Duration"
	case Speed:
		return "Speed"
	case Angle:
		return "Angle"
	case Dimensionless:
		return "Dimensionless"
	default:
		return fmt.Sprintf("Unknown(0x%02X)", uint8(k))
	}
}

// ErrUnknownUnit is returned when a (kind, display) byte pair does not
// resolve to a registered unit. Decoding never substitutes a default.
var ErrUnknownUnit = errors.New("unknown unit")

// Unit is one display unit of a quantity kind. Units are immutable values;
// compare them with ==.
type Unit struct {
	kind   Kind
	code   uint8
	symbol string
	factor float64 // SI base units per display unit
}

// Kind returns the quantity-kind code of the unit.
func (u Unit) Kind() Kind { return u.kind }

// Code returns the display-unit code of the unit within its kind.
func (u Unit) Code() uint8 { return u.code }

// Symbol returns the display symbol, e.g. "km".
func (u Unit) Symbol() string { return u.symbol }

// Factor returns how many SI base units one display unit represents.
func (u Unit) Factor() float64 { return u.factor }

// ToSI converts a magnitude expressed in this display unit to SI.
func (u Unit) ToSI(v float64) float64 { return v * u.factor }

// FromSI converts an SI magnitude to this display unit.
func (u Unit) FromSI(v float64) float64 { return v / u.factor }

// IsZero reports whether the unit is the zero value (no registered unit).
func (u Unit) IsZero() bool { return u == Unit{} }

func (u Unit) String() string {
	return fmt.Sprintf("%s[%s]", u.kind, u.symbol)
}

// registry maps kind<<8|code to the registered unit.
var registry = make(map[uint16]Unit)

func register(kind Kind, code uint8, symbol string, factor float64) Unit {
	key := uint16(kind)<<8 | uint16(code)
	if _, exists := registry[key]; exists {
		panic(fmt.Sprintf("unit: duplicate registration for kind 0x%02X code 0x%02X", uint8(kind), code))
	}

	u := Unit{kind: kind, code: code, symbol: symbol, factor: factor}
	registry[key] = u

	return u
}

// The display-unit table. Code 0x01 of each kind is the SI base unit.
var (
	Metre      = register(Length, 0x01, "m", 1)
	Kilometre  = register(Length, 0x02, "km", 1000)
	Centimetre = register(Length, 0x03, "cm", 0.01)
	Millimetre = register(Length, 0x04, "mm", 0.001)
	Mile       = register(Length, 0x05, "mi", 1609.344)
	Foot       = register(Length, 0x06, "ft", 0.3048)

	Kilogram = register(Mass, 0x01, "kg", 1)
	Gram     = register(Mass, 0x02, "g", 0.001)
	Tonne    = register(Mass, 0x03, "t", 1000)
	Pound    = register(Mass, 0x04, "lb", 0.45359237)

	Second      = register(Duration, 0x01, "s", 1)
	Millisecond = register(Duration, 0x02, "ms", 0.001)
	Microsecond = register(Duration, 0x03, "us", 1e-6)
	Minute      = register(Duration, 0x04, "min", 60)
	Hour        = register(Duration, 0x05, "h", 3600)

	MetrePerSecond   = register(Speed, 0x01, "m/s", 1)
	KilometrePerHour = register(Speed, 0x02, "km/h", 1.0/3.6)
	Knot             = register(Speed, 0x03, "kn", 0.514444)
	MilePerHour      = register(Speed, 0x04, "mph", 0.44704)

	Radian = register(Angle, 0x01, "rad", 1)
	Degree = register(Angle, 0x02, "deg", 0.017453292519943295)

	Unity   = register(Dimensionless, 0x01, "-", 1)
	Percent = register(Dimensionless, 0x02, "%", 0.01)
)

// Lookup resolves a (kind, display) byte pair to its registered unit.
// Unknown pairs fail with ErrUnknownUnit; there is no default unit.
func Lookup(kind Kind, code uint8) (Unit, error) {
	u, ok := registry[uint16(kind)<<8|uint16(code)]
	if !ok {
		return Unit{}, fmt.Errorf("%w: kind 0x%02X display 0x%02X", ErrUnknownUnit, uint8(kind), code)
	}

	return u, nil
}
