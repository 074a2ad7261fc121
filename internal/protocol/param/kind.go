package param

import "encoding/binary"

// Kind is the declared wire type of a parameter.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindU8
	KindU16
	KindU32
	KindText
)

// VariableWidth is the Width of KindText.
const VariableWidth = -1

type codec struct {
	name   string
	width  int
	encode func(dst []byte, v Value) []byte
	decode func(b []byte) Value
}

var codecs = [...]codec{
	KindU8: {
		name:  "BYTE",
		width: 1,
		encode: func(dst []byte, v Value) []byte {
			return append(dst, v.U8)
		},
		decode: func(b []byte) Value {
			return U8(b[0])
		},
	},
	KindU16: {
		name:  "WORD",
		width: 2,
		encode: func(dst []byte, v Value) []byte {
			return binary.BigEndian.AppendUint16(dst, v.U16)
		},
		decode: func(b []byte) Value {
			return U16(binary.BigEndian.Uint16(b))
		},
	},
	KindU32: {
		name:  "DWORD",
		width: 4,
		encode: func(dst []byte, v Value) []byte {
			return binary.BigEndian.AppendUint32(dst, v.U32)
		},
		decode: func(b []byte) Value {
			return U32(binary.BigEndian.Uint32(b))
		},
	},
	KindText: {
		name:  "STRING",
		width: VariableWidth,
		encode: func(dst []byte, v Value) []byte {
			return append(dst, v.Text...)
		},
		decode: func(b []byte) Value {
			return Text(string(b))
		},
	},
}

func (k Kind) Valid() bool {
	return k > KindInvalid && int(k) < len(codecs)
}

// Width is the exact wire length of k, or VariableWidth for text.
// Invalid kinds report 0.
func (k Kind) Width() int {
	if !k.Valid() {
		return 0
	}
	return codecs[k].width
}

func (k Kind) String() string {
	if !k.Valid() {
		return "INVALID"
	}
	return codecs[k].name
}

// fits reports whether a stored value of length n can be decoded as k.
func (k Kind) fits(n int) bool {
	w := k.Width()
	return w == VariableWidth || w == n
}
