package param

import "errors"

var (
	ErrNilTable        = errors.New("param: nil table")
	ErrNilOutput       = errors.New("param: nil output")
	ErrKeyNotFound     = errors.New("param: key not found")
	ErrLengthMismatch  = errors.New("param: length mismatch")
	ErrKindMismatch    = errors.New("param: kind mismatch")
	ErrUnknownKind     = errors.New("param: unknown kind")
	ErrUnknownID       = errors.New("param: unknown parameter id")
	ErrUnsupportedType = errors.New("param: unsupported output type")
	ErrValueCount      = errors.New("param: value count mismatch")
)
