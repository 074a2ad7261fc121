package param

import (
	"errors"
	"fmt"
	"sort"

	"github.com/danmuck/termparam/internal/observability"
)

// Table maps parameter IDs to their wire value bytes. A nil Table is treated
// as an absent table: writes fail with ErrNilTable instead of panicking.
// Table is not safe for concurrent use.
type Table map[ID][]byte

func NewTable() Table {
	return make(Table)
}

// Set encodes v into a fresh slice and stores it at id, replacing any
// previous value. IDs in the catalogue only accept their declared kind and,
// for sized entries, their declared length.
func (t Table) Set(id ID, v Value) error {
	if t == nil {
		return ErrNilTable
	}
	if err := checkKind(id, v); err != nil {
		return err
	}
	raw, err := Encode(v)
	if err != nil {
		return err
	}
	if err := checkSize(id, len(raw)); err != nil {
		return err
	}
	t[id] = raw
	return nil
}

// Get decodes the value stored at id as kind k.
func (t Table) Get(id ID, k Kind) (Value, error) {
	v, err := t.get(id, k)
	if err != nil {
		observability.RecordGetFailure(failureReason(err))
	}
	return v, err
}

func (t Table) get(id ID, k Kind) (Value, error) {
	if t == nil {
		return Value{}, ErrNilTable
	}
	raw, ok := t[id]
	if !ok {
		return Value{}, fmt.Errorf("%w: %s", ErrKeyNotFound, id)
	}
	if err := checkSize(id, len(raw)); err != nil {
		return Value{}, err
	}
	v, err := Decode(k, raw)
	if err != nil {
		return Value{}, fmt.Errorf("%s: %w", id, err)
	}
	return v, nil
}

func (t Table) SetU8(id ID, v uint8) error { return t.Set(id, U8(v)) }
func (t Table) SetU16(id ID, v uint16) error { return t.Set(id, U16(v)) }
func (t Table) SetU32(id ID, v uint32) error { return t.Set(id, U32(v)) }
func (t Table) SetText(id ID, v string) error { return t.Set(id, Text(v)) }

func (t Table) GetU8(id ID) (uint8, error) {
	v, err := t.Get(id, KindU8)
	return v.U8, err
}

func (t Table) GetU16(id ID) (uint16, error) {
	v, err := t.Get(id, KindU16)
	return v.U16, err
}

func (t Table) GetU32(id ID) (uint32, error) {
	v, err := t.Get(id, KindU32)
	return v.U32, err
}

func (t Table) GetText(id ID) (string, error) {
	v, err := t.Get(id, KindText)
	return v.Text, err
}

// Scan decodes id into dst, which must be *uint8, *uint16, *uint32 or *string.
// dst is left untouched on failure.
func (t Table) Scan(id ID, dst any) error {
	switch p := dst.(type) {
	case nil:
		return ErrNilOutput
	case *uint8:
		if p == nil {
			return ErrNilOutput
		}
		v, err := t.GetU8(id)
		if err != nil {
			return err
		}
		*p = v
	case *uint16:
		if p == nil {
			return ErrNilOutput
		}
		v, err := t.GetU16(id)
		if err != nil {
			return err
		}
		*p = v
	case *uint32:
		if p == nil {
			return ErrNilOutput
		}
		v, err := t.GetU32(id)
		if err != nil {
			return err
		}
		*p = v
	case *string:
		if p == nil {
			return ErrNilOutput
		}
		v, err := t.GetText(id)
		if err != nil {
			return err
		}
		*p = v
	default:
		return fmt.Errorf("%w: %T", ErrUnsupportedType, dst)
	}
	return nil
}

// Raw returns a copy of the bytes stored at id.
func (t Table) Raw(id ID) ([]byte, bool) {
	raw, ok := t[id]
	if !ok {
		return nil, false
	}
	out := make([]byte, len(raw))
	copy(out, raw)
	return out, true
}

// SetRaw stores b at id without kind checks. Used when ingesting decoded item lists.
func (t Table) SetRaw(id ID, b []byte) error {
	if t == nil {
		return ErrNilTable
	}
	t[id] = append(t[id][:0], b...)
	return nil
}

func (t Table) Has(id ID) bool {
	_, ok := t[id]
	return ok
}

func (t Table) Delete(id ID) {
	delete(t, id)
}

// IDs returns the stored IDs in ascending order.
func (t Table) IDs() []ID {
	ids := make([]ID, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
	return ids
}

func (t Table) Clone() Table {
	if t == nil {
		return nil
	}
	out := make(Table, len(t))
	for id, raw := range t {
		b := make([]byte, len(raw))
		copy(b, raw)
		out[id] = b
	}
	return out
}

func checkKind(id ID, v Value) error {
	if !v.Kind.Valid() {
		return ErrUnknownKind
	}
	spec, ok := Lookup(id)
	if !ok || spec.Kind == v.Kind {
		return nil
	}
	return fmt.Errorf("%w: %s is %s, got %s", ErrKindMismatch, id, spec.Kind, v.Kind)
}

// checkSize enforces the fixed length of catalogue entries whose Size pins an
// otherwise variable-width kind.
func checkSize(id ID, n int) error {
	spec, ok := Lookup(id)
	if !ok || spec.Size == 0 || n == spec.Size {
		return nil
	}
	return fmt.Errorf("%w: %s wants %d bytes, have %d", ErrLengthMismatch, id, spec.Size, n)
}

func failureReason(err error) string {
	switch {
	case errors.Is(err, ErrNilTable):
		return observability.ReasonNilTable
	case errors.Is(err, ErrKeyNotFound):
		return observability.ReasonKeyNotFound
	case errors.Is(err, ErrLengthMismatch):
		return observability.ReasonLengthMismatch
	case errors.Is(err, ErrKindMismatch):
		return observability.ReasonKindMismatch
	default:
		return observability.ReasonOther
	}
}
