package serial

import (
	"fmt"

	"github.com/arloliu/qbin/endian"
	"github.com/arloliu/qbin/field"
)

// Compound is a heterogeneous fixed-schema row set: every row holds the same
// number of fields with the same wire types, like a table with mixed-typed
// columns. Row 0 determines the schema; a row with a different field count or
// a field of a different type is a hard error, never truncated or padded.
type Compound [][]any

// compoundSerializer encodes a Compound as:
//
//	4-byte row count
//	4-byte field count
//	one tag byte per field (the row-0 schema, never biased)
//	for each row, each field's payload via its own serializer in schema order
//
// Field payloads are written without per-field tag bytes; the schema carries
// the tags once.
type compoundSerializer struct {
	opts encodeOptions
	// lookup resolves a schema tag to the field serializer of the owning
	// decode table. Nil on encode-only instances.
	lookup func(field.Type) Serializer
}

// schema derives the field serializers from row 0 and validates every other
// row against them.
func (s compoundSerializer) schema(rows Compound) ([]Serializer, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: Compound requires at least one row and one field", ErrEmptyShape)
	}

	fields := make([]Serializer, len(rows[0]))
	for j, value := range rows[0] {
		fs, err := serializerFor(value, s.opts)
		if err != nil {
			return nil, fmt.Errorf("compound field %d: %w", j, err)
		}
		if fs.Tag() == field.Compound {
			return nil, fmt.Errorf("%w: nested compound rows", ErrUnhandledType)
		}
		fields[j] = fs
	}

	for i := 1; i < len(rows); i++ {
		if len(rows[i]) != len(fields) {
			return nil, fmt.Errorf("%w: row %d has %d fields, schema has %d", ErrSchemaMismatch, i, len(rows[i]), len(fields))
		}
		for j, value := range rows[i] {
			fs, err := serializerFor(value, s.opts)
			if err != nil {
				return nil, fmt.Errorf("compound row %d field %d: %w", i, j, err)
			}
			if fs.Tag() != fields[j].Tag() {
				return nil, fmt.Errorf("%w: row %d field %d is %s, schema says %s", ErrSchemaMismatch, i, j, fs.Tag(), fields[j].Tag())
			}
		}
	}

	return fields, nil
}

func (s compoundSerializer) Size(value any) (int, error) {
	rows, ok := value.(Compound)
	if !ok {
		return 0, typeError(s, value)
	}

	fields, err := s.schema(rows)
	if err != nil {
		return 0, err
	}

	total := 8 + len(fields)
	for i, row := range rows {
		for j, fieldValue := range row {
			n, err := fields[j].Size(fieldValue)
			if err != nil {
				return 0, fmt.Errorf("compound row %d field %d: %w", i, j, err)
			}
			total += n
		}
	}

	return total, nil
}

func (s compoundSerializer) Tag() field.Type { return field.Compound }

func (s compoundSerializer) Serialize(value any, buf []byte, ptr *Pointer, engine endian.EndianEngine) error {
	rows, ok := value.(Compound)
	if !ok {
		return typeError(s, value)
	}

	fields, err := s.schema(rows)
	if err != nil {
		return err
	}

	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(len(rows)))   //nolint:gosec
	endian.PutUint32(engine, buf, ptr.Advance(4), uint32(len(fields))) //nolint:gosec
	for _, fs := range fields {
		buf[ptr.Advance(1)] = byte(fs.Tag())
	}

	for i, row := range rows {
		for j, fieldValue := range row {
			if err := fields[j].Serialize(fieldValue, buf, ptr, engine); err != nil {
				return fmt.Errorf("compound row %d field %d: %w", i, j, err)
			}
		}
	}

	return nil
}

func (s compoundSerializer) Deserialize(buf []byte, ptr *Pointer, engine endian.EndianEngine) (any, error) {
	if err := need(buf, ptr, 8, "Compound counts"); err != nil {
		return nil, err
	}

	rowCount := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	fieldCount := int(endian.Uint32At(engine, buf, ptr.Advance(4)))
	if rowCount == 0 || fieldCount == 0 {
		return nil, fmt.Errorf("%w: Compound payload declares %d rows and %d fields", ErrEmptyShape, rowCount, fieldCount)
	}

	if err := need(buf, ptr, fieldCount, "Compound schema"); err != nil {
		return nil, err
	}

	fields := make([]Serializer, fieldCount)
	for j := range fields {
		offset := ptr.Advance(1)
		// Schema tags are written bare; a biased byte has no entry.
		tag := field.Type(buf[offset])
		fs := s.lookup(tag)
		if fs == nil || tag == field.Compound {
			return nil, fmt.Errorf("%w: 0x%02X in compound schema at offset %d", ErrUnknownTag, buf[offset], offset)
		}
		fields[j] = fs
	}

	// Every row holds fieldCount payloads of at least one byte each.
	if err := needCount(buf, ptr, rowCount, fieldCount, "Compound rows"); err != nil {
		return nil, err
	}

	rows := make(Compound, rowCount)
	for i := range rows {
		rows[i] = make([]any, fieldCount)
		for j := range fields {
			fieldValue, err := fields[j].Deserialize(buf, ptr, engine)
			if err != nil {
				return nil, fmt.Errorf("compound row %d field %d: %w", i, j, err)
			}
			rows[i][j] = fieldValue
		}
	}

	return rows, nil
}

func (s compoundSerializer) Dimensions() int { return 2 }
func (s compoundSerializer) HasUnit() bool   { return false }
