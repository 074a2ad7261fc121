package paramlist

import (
	"fmt"

	"github.com/danmuck/termparam/internal/protocol/param"
	"github.com/rs/zerolog/log"
)

type ValidationError struct {
	ID     param.ID
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("paramlist: %s: %s", e.ID, e.Reason)
}

// Validate checks every catalogued entry of t against its declared width.
// Unknown IDs are ignored. The first failure in ID order is returned.
func Validate(t param.Table) error {
	log.Debug().Int("items", len(t)).Msg("paramlist.Validate")
	for _, id := range t.IDs() {
		spec, ok := param.Lookup(id)
		if !ok {
			continue
		}
		raw, _ := t.Raw(id)
		if w := spec.Width(); w != param.VariableWidth && len(raw) != w {
			log.Error().
				Stringer("id", id).
				Int("got", len(raw)).
				Int("want", w).
				Msg("paramlist.Validate length mismatch")
			return ValidationError{
				ID:     id,
				Reason: fmt.Sprintf("%s wants %d bytes, have %d", spec.Kind, w, len(raw)),
			}
		}
	}
	log.Debug().Msg("paramlist.Validate ok")
	return nil
}
