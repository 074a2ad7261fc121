package param

import (
	"fmt"

	"github.com/danmuck/termparam/internal/observability"
	"github.com/rs/zerolog/log"
)

// Bundle is a fixed, ordered group of parameters packed and parsed as one
// configuration unit. Member kinds come from the catalogue.
type Bundle struct {
	Name    string
	Members []ID
}

// BundleError reports the member that stopped a bundle operation.
type BundleError struct {
	Bundle string
	ID     ID
	Err    error
}

func (e *BundleError) Error() string {
	if e.ID == 0 {
		return fmt.Sprintf("param: bundle=%s: %v", e.Bundle, e.Err)
	}
	return fmt.Sprintf("param: bundle=%s member=%s: %v", e.Bundle, e.ID, e.Err)
}

func (e *BundleError) Unwrap() error {
	return e.Err
}

// Pack writes values to the members of b in order. Every value is checked and
// encoded before the first write, so on error t is left unchanged.
func (b Bundle) Pack(t Table, values ...Value) (err error) {
	defer func() { b.record("pack", err) }()
	if t == nil {
		return &BundleError{Bundle: b.Name, Err: ErrNilTable}
	}
	if len(values) != len(b.Members) {
		return &BundleError{
			Bundle: b.Name,
			Err:    fmt.Errorf("%w: want %d, got %d", ErrValueCount, len(b.Members), len(values)),
		}
	}

	staged := make([][]byte, len(b.Members))
	for i, id := range b.Members {
		if _, ok := Lookup(id); !ok {
			return &BundleError{Bundle: b.Name, ID: id, Err: ErrUnknownID}
		}
		if err := checkKind(id, values[i]); err != nil {
			return &BundleError{Bundle: b.Name, ID: id, Err: err}
		}
		raw, err := Encode(values[i])
		if err != nil {
			return &BundleError{Bundle: b.Name, ID: id, Err: err}
		}
		if err := checkSize(id, len(raw)); err != nil {
			return &BundleError{Bundle: b.Name, ID: id, Err: err}
		}
		staged[i] = raw
	}

	for i, id := range b.Members {
		t[id] = staged[i]
	}
	return nil
}

// Parse reads every member of b. It succeeds only when all members are
// present and well formed; partial results are never returned.
func (b Bundle) Parse(t Table) (values []Value, err error) {
	defer func() { b.record("parse", err) }()
	if t == nil {
		return nil, &BundleError{Bundle: b.Name, Err: ErrNilTable}
	}
	out := make([]Value, len(b.Members))
	for i, id := range b.Members {
		spec, ok := Lookup(id)
		if !ok {
			return nil, &BundleError{Bundle: b.Name, ID: id, Err: ErrUnknownID}
		}
		v, err := t.Get(id, spec.Kind)
		if err != nil {
			return nil, &BundleError{Bundle: b.Name, ID: id, Err: err}
		}
		out[i] = v
	}
	return out, nil
}

// Present reports whether every member of b has an entry in t.
func (b Bundle) Present(t Table) bool {
	for _, id := range b.Members {
		if !t.Has(id) {
			return false
		}
	}
	return true
}

func (b Bundle) record(op string, err error) {
	observability.RecordBundleOp(b.Name, op, err)
	if err != nil {
		log.Debug().Str("bundle", b.Name).Str("op", op).Err(err).Msg("bundle failed")
		return
	}
	log.Debug().Str("bundle", b.Name).Str("op", op).Int("members", len(b.Members)).Msg("bundle ok")
}
