package param

import (
	"fmt"
	"strconv"
)

// Value is a typed parameter value. Only the field selected by Kind is meaningful.
type Value struct {
	Kind Kind
	U8   uint8
	U16  uint16
	U32  uint32
	Text string
}

func U8(v uint8) Value { return Value{Kind: KindU8, U8: v} }
func U16(v uint16) Value { return Value{Kind: KindU16, U16: v} }
func U32(v uint32) Value { return Value{Kind: KindU32, U32: v} }
func Text(v string) Value { return Value{Kind: KindText, Text: v} }

// Uint widens any scalar value; ok is false for text and invalid values.
func (v Value) Uint() (uint32, bool) {
	switch v.Kind {
	case KindU8:
		return uint32(v.U8), true
	case KindU16:
		return uint32(v.U16), true
	case KindU32:
		return v.U32, true
	default:
		return 0, false
	}
}

func (v Value) String() string {
	if v.Kind == KindText {
		return strconv.Quote(v.Text)
	}
	if n, ok := v.Uint(); ok {
		return strconv.FormatUint(uint64(n), 10)
	}
	return "<invalid>"
}

// Encode returns the wire bytes of v.
func Encode(v Value) ([]byte, error) {
	return appendValue(nil, v)
}

// Decode interprets b as a value of kind k. Scalars require the exact width.
func Decode(k Kind, b []byte) (Value, error) {
	if !k.Valid() {
		return Value{}, ErrUnknownKind
	}
	if !k.fits(len(b)) {
		return Value{}, fmt.Errorf("%w: %s wants %d bytes, have %d", ErrLengthMismatch, k, k.Width(), len(b))
	}
	return codecs[k].decode(b), nil
}

func appendValue(dst []byte, v Value) ([]byte, error) {
	if !v.Kind.Valid() {
		return nil, ErrUnknownKind
	}
	return codecs[v.Kind].encode(dst, v), nil
}
